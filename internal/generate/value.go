package generate

import "strings"

// Value is one generated cell. Raw carries the unquoted text; Quote says
// whether the SQL rendering wraps it in single quotes.
type Value struct {
	Raw   string
	Quote bool
	Null  bool
}

func text(s string) Value    { return Value{Raw: s, Quote: true} }
func literal(s string) Value { return Value{Raw: s} }

// NullValue is the unquoted NULL marker.
var NullValue = Value{Null: true}

// SQL renders the value as a SQL literal. Embedded single quotes are
// doubled so generated or sampled text can never break out of the literal.
func (v Value) SQL() string {
	if v.Null {
		return "NULL"
	}
	if v.Quote {
		return "'" + strings.ReplaceAll(v.Raw, "'", "''") + "'"
	}
	return v.Raw
}
