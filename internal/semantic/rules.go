package semantic

import "strings"

// Vocabularies recognized both during sample inference and used verbatim by
// the synthesizer for closed-set columns.
var (
	StatusWords   = []string{"active", "inactive", "pending", "suspended", "archived", "disabled"}
	SkillWords    = []string{"beginner", "intermediate", "advanced", "expert", "master"}
	PriorityWords = []string{"low", "medium", "high", "critical", "urgent"}
)

// nameRule maps column-name keywords to a semantic type. A rule matches
// when the lower-cased name contains any keyword and none of the exclusions.
// Rules are evaluated top to bottom, first match wins, so narrower rules
// must sit above the broader ones they would otherwise lose to.
type nameRule struct {
	typ     Type
	keyword []string
	exclude []string
}

func (r nameRule) matches(name string) bool {
	for _, ex := range r.exclude {
		if strings.Contains(name, ex) {
			return false
		}
	}
	for _, kw := range r.keyword {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

var nameRules = []nameRule{
	// Contact and identity. Email before username: "email_login" is mail.
	{typ: Email, keyword: []string{"email", "e_mail"}},
	{typ: PasswordHash, keyword: []string{"password", "passwd"}},
	{typ: Username, keyword: []string{"username", "user_name", "login", "handle", "nickname", "nick"}},
	{typ: FirstName, keyword: []string{"first_name", "firstname", "fname", "given_name"}},
	{typ: LastName, keyword: []string{"last_name", "lastname", "lname", "surname", "family_name"}},
	{typ: FullName, keyword: []string{"full_name", "fullname", "display_name"}},
	{typ: BirthDate, keyword: []string{"birth", "dob"}},

	// Organizational.
	{typ: Company, keyword: []string{"company", "organization", "organisation", "employer", "vendor", "manufacturer", "brand"}},
	{typ: Department, keyword: []string{"department", "division", "team"}},
	{typ: JobTitle, keyword: []string{"job", "occupation", "profession", "position"}},

	// Web/network. These must precede the geographic "address" rule so a
	// mac_address or ip_address never reads as a street.
	{typ: MACAddress, keyword: []string{"mac_address", "macaddr", "hwaddr", "hardware_address"}},
	{typ: IPAddress, keyword: []string{"ip_address", "ipaddr", "remote_addr"}},
	{typ: Domain, keyword: []string{"domain", "hostname", "host"}, exclude: []string{"email"}},
	{typ: URL, keyword: []string{"url", "website", "link", "homepage", "avatar", "image", "photo", "thumbnail", "logo"}},
	{typ: Port, keyword: []string{"port"}, exclude: []string{"portfolio", "report", "support", "important", "airport", "transport", "export", "import"}},
	{typ: UserAgent, keyword: []string{"user_agent", "useragent"}},

	// Geographic.
	{typ: StreetAddress, keyword: []string{"address", "street", "shipping", "billing"}, exclude: []string{"mac", "ip", "email", "url"}},
	{typ: City, keyword: []string{"city", "town"}},
	{typ: PostalCode, keyword: []string{"zip", "postal", "postcode"}},
	{typ: Country, keyword: []string{"country", "nation"}},
	{typ: State, keyword: []string{"state", "province"}, exclude: []string{"status", "statement"}},
	{typ: Phone, keyword: []string{"phone", "mobile", "fax", "telephone"}},

	// Financial. Currency before the money words so currency_code stays a
	// three-letter code.
	{typ: CurrencyCode, keyword: []string{"currency"}},
	{typ: Money, keyword: []string{"price", "amount", "cost", "total", "fee", "salary", "balance", "revenue", "budget", "subtotal", "tax"}},

	// Cryptographic-looking strings.
	{typ: Token, keyword: []string{"token", "hash", "checksum", "signature", "api_key", "apikey", "secret"}},

	// Closed classifications.
	{typ: Status, keyword: []string{"status"}},
	{typ: Priority, keyword: []string{"priority", "severity", "urgency"}},
	{typ: SkillLevel, keyword: []string{"skill", "proficiency", "experience_level", "difficulty"}},

	// Codes and identifiers.
	{typ: Code, keyword: []string{"sku", "serial", "tracking", "badge", "reference", "barcode", "voucher", "coupon", "code"}},

	// Domain fiction.
	{typ: FictionName, keyword: []string{"sector", "outpost", "planet", "station", "galaxy", "colony", "starship", "fleet"}},

	// Filesystem before content: "file_description" is still a file field,
	// but "profile" must never match "file".
	{typ: FilePath, keyword: []string{"path", "directory", "folder"}},
	{typ: FileName, keyword: []string{"file", "attachment", "document"}, exclude: []string{"profile"}},

	// Content.
	{typ: Title, keyword: []string{"title", "subject", "headline"}},
	{typ: Description, keyword: []string{"description", "summary", "bio", "about", "overview", "excerpt"}},
	{typ: Body, keyword: []string{"body", "content", "comment", "message", "note"}},

	// Measurements.
	{typ: Measurement, keyword: []string{"weight", "height", "width", "length", "size", "capacity", "quantity", "qty", "distance", "duration", "score", "rating", "age"}},

	{typ: Version, keyword: []string{"version", "semver"}},

	// Temporal. Start-like words feed the row context that end dates and
	// derived fields read back.
	{typ: StartDate, keyword: []string{"created", "signed", "established", "start", "launched", "joined", "registered", "founded"}},
	{typ: UpdateDate, keyword: []string{"updated", "modified", "edited", "last_seen"}},
	{typ: EndDate, keyword: []string{"end", "expire", "expiry", "expires", "finish", "until", "deadline", "closed", "due"}, exclude: []string{"friend", "gender", "recommend", "legend", "calendar", "sender", "agenda", "attend"}},
	{typ: Timestamp, keyword: []string{"date", "time", "_at"}},

	// Generic name last: anything more specific above already claimed the
	// username/file/domain/host spellings.
	{typ: FullName, keyword: []string{"name"}, exclude: []string{"username", "user_name", "file", "domain", "host", "nick"}},
}
