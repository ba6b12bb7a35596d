package semantic

import (
	"strconv"
	"strings"

	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

// Classify assigns exactly one semantic type to a column. It is a pure
// function of the column, its table and its foreign-key status, so the
// result can be cached per column and reused for every row.
//
// Precedence: foreign-key status, primary-key naming, sample-value pattern
// inference, declared-type shortcuts, the ordered name rules, then a
// declared-type fallback.
func Classify(col schema.Column, table *schema.Table) Classification {
	if fk := table.ForeignKeyFor(col.Name); fk != nil {
		return Classification{Type: ForeignKey, RefTable: fk.RefTable}
	}

	name := strings.ToLower(col.Name)

	// Primary-key naming convention. An _id suffix without a declared FK
	// edge can false-positive on tables whose constraints were never
	// declared; FK detection above always wins when an edge exists.
	if name == "id" || col.Name == table.PrimaryKey {
		return Classification{Type: PrimaryKey}
	}
	if strings.HasSuffix(name, "_id") && table.PrimaryKey == "" {
		return Classification{Type: PrimaryKey}
	}

	if len(col.Samples) > 0 {
		if t, ok := inferFromSample(col.Samples[0]); ok {
			return Classification{Type: t}
		}
	}

	switch col.Type {
	case schema.TypeUUID:
		return Classification{Type: GenericUUID}
	case schema.TypeBoolean:
		return Classification{Type: GenericBoolean}
	}

	for _, rule := range nameRules {
		if rule.matches(name) {
			return Classification{Type: rule.typ}
		}
	}

	return Classification{Type: typeFallback(col.Type)}
}

// inferFromSample pattern-matches a real sampled value.
func inferFromSample(sample string) (Type, bool) {
	if looksLikeMAC(sample) {
		return MACAddress, true
	}
	if looksLikeIPv4(sample) {
		return IPAddress, true
	}
	if strings.Contains(sample, "@") && strings.Contains(sample, ".") {
		return Email, true
	}

	lower := strings.ToLower(strings.TrimSpace(sample))
	if containsWord(StatusWords, lower) {
		return Status, true
	}
	if containsWord(SkillWords, lower) {
		return SkillLevel, true
	}
	if containsWord(PriorityWords, lower) {
		return Priority, true
	}

	return Unknown, false
}

// looksLikeMAC wants exactly five colon separators and 17 characters total.
func looksLikeMAC(s string) bool {
	return len(s) == 17 && strings.Count(s, ":") == 5
}

// looksLikeIPv4 wants exactly three dot separators with every part a byte.
func looksLikeIPv4(s string) bool {
	if strings.Count(s, ".") != 3 {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

func containsWord(vocab []string, s string) bool {
	for _, w := range vocab {
		if s == w {
			return true
		}
	}
	return false
}

func typeFallback(t schema.DataType) Type {
	if t.IsIntegerLike() {
		return GenericInteger
	}
	switch t {
	case schema.TypeDecimal, schema.TypeFloat:
		return GenericDecimal
	case schema.TypeBoolean:
		return GenericBoolean
	case schema.TypeUUID:
		return GenericUUID
	case schema.TypeJSON:
		return GenericJSON
	case schema.TypeArray:
		return GenericArray
	case schema.TypeInet:
		return IPAddress
	case schema.TypeTimestamp, schema.TypeDate:
		return Timestamp
	case schema.TypeText, schema.TypeVarchar, schema.TypeChar:
		return GenericText
	default:
		return Unknown
	}
}
