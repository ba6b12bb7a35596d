package generate

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
	"github.com/Lumos-Labs-HQ/synthdb/internal/semantic"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// Synthesizer produces one value for a classified column. All randomness
// flows through the injected rand.Rand so a seeded run is reproducible; the
// only other input it reads is the row context.
type Synthesizer struct {
	rng *rand.Rand
	now time.Time
}

func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng, now: time.Now()}
}

// Synthesize generates a value for the column given its classification, the
// current row context and the reference pool. rowIndex is zero-based.
func (s *Synthesizer) Synthesize(cls semantic.Classification, col schema.Column, ctx *RowContext, rowIndex int, pool *ReferencePool) Value {
	switch cls.Type {
	case semantic.ForeignKey:
		return s.foreignKey(cls.RefTable, col, rowIndex, pool)
	case semantic.PrimaryKey:
		return s.primaryKey(col, rowIndex)

	case semantic.FirstName:
		return text(s.from(firstNames))
	case semantic.LastName:
		return text(s.from(lastNames))
	case semantic.FullName:
		return text(s.fullName(ctx))
	case semantic.Username:
		return text(s.username(ctx, rowIndex))
	case semantic.PasswordHash:
		return text(fmt.Sprintf("$2y$10$%022d", s.rng.Intn(1_000_000_000)))
	case semantic.BirthDate:
		days := 18*365 + s.rng.Intn(52*365)
		return text(s.now.AddDate(0, 0, -days).Format(dateLayout))

	case semantic.Company:
		return text(s.from(lastNames) + " " + s.from(companySuffixes))
	case semantic.Department:
		return text(s.from(departments))
	case semantic.JobTitle:
		return text(s.from(jobLevels) + " " + s.from(jobRoles))

	case semantic.StreetAddress:
		return text(fmt.Sprintf("%d %s %s", 1+s.rng.Intn(9999), s.from(lastNames), s.from(streetSuffixes)))
	case semantic.City:
		return text(s.from(cities))
	case semantic.State:
		return text(s.from(states))
	case semantic.Country:
		return text(s.from(countries))
	case semantic.PostalCode:
		return text(fmt.Sprintf("%05d", s.rng.Intn(100000)))

	case semantic.Email:
		return text(s.email(ctx, rowIndex))
	case semantic.Phone:
		return text(fmt.Sprintf("+1-%03d-%03d-%04d", s.rng.Intn(1000), s.rng.Intn(1000), s.rng.Intn(10000)))

	case semantic.URL:
		return text("https://www." + s.domain(ctx))
	case semantic.Domain:
		return text(s.domain(ctx))
	case semantic.IPAddress:
		return text(s.privateIP())
	case semantic.MACAddress:
		return text(s.macAddress())
	case semantic.Port:
		return literal(strconv.Itoa(1024 + s.rng.Intn(65535-1023)))
	case semantic.UserAgent:
		return text(s.from(userAgents))

	case semantic.StartDate:
		days := 365 + s.rng.Intn(4*365)
		return s.timeValue(s.now.AddDate(0, 0, -days), col)
	case semantic.EndDate:
		base, ok := ctx.MostRecentStartDate()
		if !ok {
			base = s.now.AddDate(0, 0, -s.rng.Intn(365))
		}
		return s.timeValue(base.AddDate(0, 0, 30+s.rng.Intn(701)), col)
	case semantic.UpdateDate:
		return s.timeValue(s.now.AddDate(0, 0, -(1+s.rng.Intn(90))), col)
	case semantic.Timestamp:
		offset := time.Duration(s.rng.Intn(730*24)) * time.Hour
		return s.timeValue(s.now.Add(-offset), col)

	case semantic.Money:
		return literal(fmt.Sprintf("%d.%02d", 10+s.rng.Intn(9990), s.rng.Intn(100)))
	case semantic.CurrencyCode:
		return text(s.from(currencyCodes))

	case semantic.Token:
		return text(s.hexString(32))

	case semantic.Status:
		return text(s.from(semantic.StatusWords))
	case semantic.Priority:
		return text(s.from(semantic.PriorityWords))
	case semantic.SkillLevel:
		return text(s.from(semantic.SkillWords))

	case semantic.Code:
		return text(fmt.Sprintf("%s-%04d-%04d", s.letters(3), s.rng.Intn(10000), s.rng.Intn(10000)))

	case semantic.FictionName:
		return text(s.from(fictionPrefixes) + " " + s.from(fictionSuffixes))

	case semantic.Title:
		return text(s.sentence(3 + s.rng.Intn(5)))
	case semantic.Description:
		return text(s.sentence(8 + s.rng.Intn(13)))
	case semantic.Body:
		return text(s.paragraph())

	case semantic.FilePath:
		return text("/" + s.from(loremWords) + "/" + s.from(loremWords) + "/" + s.from(loremWords) + s.from(fileExtensions))
	case semantic.FileName:
		return text(fmt.Sprintf("%s_%d%s", s.from(loremWords), 1+s.rng.Intn(9999), s.from(fileExtensions)))

	case semantic.Measurement:
		return literal(strconv.Itoa(1 + s.rng.Intn(10000)))
	case semantic.Version:
		return text(fmt.Sprintf("%d.%d.%d", s.rng.Intn(10), s.rng.Intn(20), s.rng.Intn(50)))

	case semantic.GenericInteger:
		return literal(strconv.Itoa(1 + s.rng.Intn(1000)))
	case semantic.GenericDecimal:
		return literal(s.decimal(col))
	case semantic.GenericBoolean:
		return literal(strconv.FormatBool(s.rng.Intn(2) == 0))
	case semantic.GenericText:
		return text(s.from(loremWords))
	case semantic.GenericJSON:
		return text(fmt.Sprintf(`{"generated": true, "tag": "%s"}`, s.from(loremWords)))
	case semantic.GenericUUID:
		return text(s.newUUID())
	case semantic.GenericArray:
		return text(fmt.Sprintf(`{"%s", "%s"}`, s.from(loremWords), s.from(loremWords)))

	default:
		return NullValue
	}
}

func (s *Synthesizer) foreignKey(refTable string, col schema.Column, rowIndex int, pool *ReferencePool) Value {
	if v, ok := pool.Random(refTable, s.rng); ok {
		return v
	}
	// Unknown table or empty pool: substitute a type-appropriate default so
	// the output stays syntactically valid.
	return s.primaryKey(col, rowIndex)
}

func (s *Synthesizer) primaryKey(col schema.Column, rowIndex int) Value {
	if col.Type == schema.TypeUUID {
		return text(s.newUUID())
	}
	n := strconv.Itoa(rowIndex + 1)
	if col.Type.IsTextLike() {
		return text(n)
	}
	return literal(n)
}

// newUUID draws version-4 UUID bytes from the injected generator, so seeded
// runs reproduce UUID columns too. rand.Rand never fails a Read.
func (s *Synthesizer) newUUID() string {
	u, _ := uuid.NewRandomFromReader(s.rng)
	return u.String()
}

func (s *Synthesizer) fullName(ctx *RowContext) string {
	first, okF := ctx.Get("first_name")
	last, okL := ctx.Get("last_name")
	if okF && okL {
		return first + " " + last
	}
	return s.from(firstNames) + " " + s.from(lastNames)
}

func (s *Synthesizer) username(ctx *RowContext, rowIndex int) string {
	first, okF := ctx.Get("first_name")
	last, okL := ctx.Get("last_name")
	if okF && okL {
		return strings.ToLower(first + "." + last)
	}
	return fmt.Sprintf("user%d", rowIndex+1)
}

func (s *Synthesizer) email(ctx *RowContext, rowIndex int) string {
	local := ""
	if u, ok := ctx.Get("username"); ok {
		local = strings.ToLower(u)
	} else if first, ok := ctx.Get("first_name"); ok {
		if last, ok := ctx.Get("last_name"); ok {
			local = strings.ToLower(first + "." + last)
		}
	}
	if local == "" {
		local = fmt.Sprintf("user%d", rowIndex+1)
	}

	domain := ""
	if d, ok := ctx.Get("domain"); ok {
		domain = d
	} else if c, ok := ctx.Get("company"); ok {
		domain = slugify(c) + ".com"
	} else {
		domain = s.from(emailProviders)
	}

	return local + "@" + domain
}

// domain derives a domain name from the organization in context when there
// is one, otherwise invents a placeholder.
func (s *Synthesizer) domain(ctx *RowContext) string {
	if d, ok := ctx.Get("domain"); ok {
		return d
	}
	if c, ok := ctx.Get("company"); ok {
		return slugify(c) + ".com"
	}
	return s.from(loremWords) + s.from(loremWords) + ".com"
}

// slugify strips everything but letters and digits and lower-cases.
func slugify(sv string) string {
	var b strings.Builder
	for _, r := range sv {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r >= 'A' && r <= 'Z' {
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// privateIP draws from the three RFC 1918 ranges.
func (s *Synthesizer) privateIP() string {
	switch s.rng.Intn(3) {
	case 0:
		return fmt.Sprintf("10.%d.%d.%d", s.rng.Intn(256), s.rng.Intn(256), 1+s.rng.Intn(254))
	case 1:
		return fmt.Sprintf("172.%d.%d.%d", 16+s.rng.Intn(16), s.rng.Intn(256), 1+s.rng.Intn(254))
	default:
		return fmt.Sprintf("192.168.%d.%d", s.rng.Intn(256), 1+s.rng.Intn(254))
	}
}

func (s *Synthesizer) macAddress() string {
	parts := make([]string, 6)
	for i := range parts {
		parts[i] = fmt.Sprintf("%02x", s.rng.Intn(256))
	}
	return strings.Join(parts, ":")
}

func (s *Synthesizer) hexString(n int) string {
	const digits = "0123456789abcdef"
	b := make([]byte, n)
	for i := range b {
		b[i] = digits[s.rng.Intn(16)]
	}
	return string(b)
}

func (s *Synthesizer) letters(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('A' + s.rng.Intn(26))
	}
	return string(b)
}

func (s *Synthesizer) sentence(wordCount int) string {
	words := make([]string, wordCount)
	for i := range words {
		words[i] = s.from(loremWords)
	}
	out := strings.Join(words, " ")
	return strings.ToUpper(out[:1]) + out[1:] + "."
}

func (s *Synthesizer) paragraph() string {
	sentences := make([]string, 2+s.rng.Intn(3))
	for i := range sentences {
		sentences[i] = s.sentence(5 + s.rng.Intn(10))
	}
	return strings.Join(sentences, " ")
}

// decimal honors declared precision and scale: the whole part is bounded by
// precision-scale digits, the fraction always has two. Missing metadata
// falls back to a default precision.
func (s *Synthesizer) decimal(col schema.Column) string {
	precision := col.Precision
	if precision <= 0 {
		precision = 5
	}
	scale := col.Scale
	if scale <= 0 || scale >= precision {
		scale = 2
	}
	digits := precision - scale
	if digits > 9 {
		digits = 9
	}
	max := 1
	for i := 0; i < digits; i++ {
		max *= 10
	}
	return fmt.Sprintf("%d.%02d", s.rng.Intn(max), s.rng.Intn(100))
}

func (s *Synthesizer) timeValue(t time.Time, col schema.Column) Value {
	if col.Type == schema.TypeDate {
		return text(t.Format(dateLayout))
	}
	return text(t.Format(timestampLayout))
}

func (s *Synthesizer) from(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}
