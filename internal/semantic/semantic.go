// Package semantic infers what a column means from its name, declared type,
// foreign-key status and sampled values, and assigns the generation priority
// that decides in which order a row's columns are filled in.
package semantic

// Type is the closed set of column meanings the synthesizer knows how to
// generate. Adding a Type without a matching generation rule is caught by
// the exhaustiveness test in the generate package.
type Type int

const (
	Unknown Type = iota

	// Structural
	ForeignKey
	PrimaryKey

	// Identity / personal
	FirstName
	LastName
	FullName
	Username
	PasswordHash
	BirthDate

	// Organizational
	Company
	Department
	JobTitle

	// Geographic
	StreetAddress
	City
	State
	Country
	PostalCode

	// Contact
	Email
	Phone

	// Web / network
	URL
	Domain
	IPAddress
	MACAddress
	Port
	UserAgent

	// Temporal
	StartDate
	EndDate
	UpdateDate
	Timestamp

	// Financial
	Money
	CurrencyCode

	// Cryptographic-looking
	Token

	// Status / classification
	Status
	Priority
	SkillLevel

	// Codes and identifiers
	Code

	// Domain fiction (sectors, outposts, planets, stations)
	FictionName

	// Content
	Title
	Description
	Body

	// Filesystem
	FilePath
	FileName

	// Numbers with a unit
	Measurement

	// Versions
	Version

	// Type-only fallbacks
	GenericInteger
	GenericDecimal
	GenericBoolean
	GenericText
	GenericJSON
	GenericUUID
	GenericArray
)

var typeNames = map[Type]string{
	Unknown:        "unknown",
	ForeignKey:     "foreign_key",
	PrimaryKey:     "primary_key",
	FirstName:      "first_name",
	LastName:       "last_name",
	FullName:       "full_name",
	Username:       "username",
	PasswordHash:   "password_hash",
	BirthDate:      "birth_date",
	Company:        "company",
	Department:     "department",
	JobTitle:       "job_title",
	StreetAddress:  "street_address",
	City:           "city",
	State:          "state",
	Country:        "country",
	PostalCode:     "postal_code",
	Email:          "email",
	Phone:          "phone",
	URL:            "url",
	Domain:         "domain",
	IPAddress:      "ip_address",
	MACAddress:     "mac_address",
	Port:           "port",
	UserAgent:      "user_agent",
	StartDate:      "start_date",
	EndDate:        "end_date",
	UpdateDate:     "update_date",
	Timestamp:      "timestamp",
	Money:          "money",
	CurrencyCode:   "currency_code",
	Token:          "token",
	Status:         "status",
	Priority:       "priority",
	SkillLevel:     "skill_level",
	Code:           "code",
	FictionName:    "fiction_name",
	Title:          "title",
	Description:    "description",
	Body:           "body",
	FilePath:       "file_path",
	FileName:       "file_name",
	Measurement:    "measurement",
	Version:        "version",
	GenericInteger: "generic_integer",
	GenericDecimal: "generic_decimal",
	GenericBoolean: "generic_boolean",
	GenericText:    "generic_text",
	GenericJSON:    "generic_json",
	GenericUUID:    "generic_uuid",
	GenericArray:   "generic_array",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// All returns every defined type, for exhaustiveness checks in tests.
func All() []Type {
	types := make([]Type, 0, len(typeNames))
	for t := range typeNames {
		types = append(types, t)
	}
	return types
}

const defaultPriority = 50

// GenerationPriority orders column generation within a row, highest first.
// Derived fields (usernames, domains, emails) come last so the personal and
// organizational values they are built from already sit in the row context.
func (t Type) GenerationPriority() int {
	switch t {
	case PrimaryKey:
		return 100
	case FirstName, LastName:
		return 90
	case Company:
		return 80
	case FullName:
		return 75
	case StartDate:
		return 70
	case Username:
		return 30
	case Domain:
		return 20
	case Email:
		return 10
	default:
		return defaultPriority
	}
}

// Classification is the result of one classifier pass over a column. The
// referenced table is set only for ForeignKey.
type Classification struct {
	Type     Type
	RefTable string
}
