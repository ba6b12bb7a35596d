package generate

// Word pools backing the synthesizer. Kept deliberately small; plausibility
// of format matters here, not distribution.

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Lisa",
	"Anthony", "Sandra", "Mark", "Ashley", "Steven", "Emily", "Andrew", "Michelle",
	"Kevin", "Amanda", "Brian", "Melissa", "George", "Stephanie", "Eric", "Rebecca",
	"Jonathan", "Laura", "Stephen", "Helen", "Larry", "Samantha", "Justin", "Katherine",
	"Scott", "Christine", "Brandon", "Rachel", "Benjamin", "Carolyn", "Samuel", "Janet",
	"Gregory", "Maria", "Patrick", "Heather", "Alexander", "Diane", "Jack", "Olivia",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill",
	"Flores", "Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "amet", "consectetur", "adipiscing", "tempor",
	"labore", "magna", "aliqua", "veniam", "nostrud", "exercitation", "laboris",
	"commodo", "consequat", "voluptate", "cupidatat", "officia", "product",
	"service", "platform", "digital", "cloud", "data", "system", "network",
	"security", "performance", "solution", "integration", "analytics",
	"automation", "infrastructure", "management", "enterprise", "scalable",
	"reliable", "efficient", "innovative", "modern", "advanced", "premium",
	"professional", "dynamic", "global", "strategic", "customer", "market",
	"growth", "development", "technology", "software",
}

var emailProviders = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com",
	"icloud.com", "fastmail.com", "example.com",
}

var companySuffixes = []string{
	"Labs", "Industries", "Systems", "Solutions", "Technologies", "Group",
	"Holdings", "Dynamics", "Logistics", "Works",
}

var departments = []string{
	"Engineering", "Sales", "Marketing", "Finance", "Operations", "Support",
	"Legal", "Human Resources", "Research", "Logistics",
}

var jobLevels = []string{"Junior", "Senior", "Lead", "Principal", "Staff"}

var jobRoles = []string{
	"Engineer", "Analyst", "Manager", "Designer", "Consultant",
	"Technician", "Administrator", "Coordinator", "Architect",
}

var streetSuffixes = []string{"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Ct", "Way"}

var cities = []string{
	"Springfield", "Riverside", "Franklin", "Greenville", "Fairview",
	"Madison", "Georgetown", "Arlington", "Clinton", "Salem", "Bristol",
	"Ashland", "Burlington", "Manchester", "Oxford", "Milton",
}

var states = []string{
	"California", "Texas", "New York", "Florida", "Illinois", "Ohio",
	"Washington", "Colorado", "Oregon", "Georgia", "Arizona", "Michigan",
}

var countries = []string{
	"United States", "Canada", "United Kingdom", "Germany", "France",
	"Japan", "Australia", "Brazil", "India", "Mexico", "Spain", "Netherlands",
}

var currencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "SEK", "NZD", "MXN",
}

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/605.1.15 Safari/17.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 Chrome/119.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0) AppleWebKit/605.1.15 Mobile/15E148",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:120.0) Gecko/20100101 Firefox/120.0",
}

var fictionPrefixes = []string{
	"Nova", "Vega", "Orion", "Helios", "Kepler", "Aurora", "Titan",
	"Cygnus", "Lyra", "Draco", "Hyperion", "Andros",
}

var fictionSuffixes = []string{
	"Prime", "Reach", "Haven", "Gate", "Spire", "Verge", "Basin",
	"Crossing", "Anchorage", "Terminus",
}

var fileExtensions = []string{".pdf", ".csv", ".txt", ".log", ".json", ".png", ".xlsx"}
