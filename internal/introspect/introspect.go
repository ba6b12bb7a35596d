// Package introspect extracts a schema.Schema from a live database,
// including a small sample of real distinct values per text column, behind
// one interface with per-provider adapters.
package introspect

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

const sampleLimit = 20

// Extractor is the schema-introspection collaborator. Failure to connect or
// extract is fatal to a run; sampling failures are not.
type Extractor interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Extract(ctx context.Context) (*schema.Schema, error)
}

// New picks the adapter for a provider name. Unknown providers get the
// PostgreSQL adapter, matching the config default.
func New(provider string) Extractor {
	switch provider {
	case "mysql":
		return newMySQL()
	case "sqlite", "sqlite3":
		return newSQLite()
	default:
		return newPostgres()
	}
}

// shouldSample decides whether a column's real values are worth carrying
// into the schema: text-like columns only, and never identifiers, emails or
// names, which the synthesizer must invent fresh.
func shouldSample(col schema.Column) bool {
	if !col.Type.IsTextLike() {
		return false
	}
	switch col.Type {
	case schema.TypeText, schema.TypeVarchar, schema.TypeChar:
	default:
		return false
	}
	name := strings.ToLower(col.Name)
	return !strings.Contains(name, "id") &&
		!strings.Contains(name, "email") &&
		!strings.Contains(name, "name")
}

// sampleQuery builds the distinct-value probe for one column.
func sampleQuery(table, column string) (string, error) {
	sql, _, err := squirrel.
		Select(schema.QuoteIdent(column)).
		Distinct().
		From(schema.QuoteIdent(table)).
		Where(squirrel.NotEq{schema.QuoteIdent(column): nil}).
		Limit(sampleLimit).
		ToSql()
	return sql, err
}

// typeMap normalizes raw catalog type names across providers.
var typeMap = map[string]schema.DataType{
	"integer": schema.TypeInteger, "int": schema.TypeInteger, "int4": schema.TypeInteger,
	"serial": schema.TypeInteger, "mediumint": schema.TypeInteger,
	"smallint": schema.TypeSmallInt, "int2": schema.TypeSmallInt, "tinyint": schema.TypeSmallInt,
	"bigint": schema.TypeBigInt, "int8": schema.TypeBigInt, "bigserial": schema.TypeBigInt,
	"numeric": schema.TypeDecimal, "decimal": schema.TypeDecimal,
	"real": schema.TypeFloat, "float4": schema.TypeFloat, "float": schema.TypeFloat,
	"double precision": schema.TypeFloat, "float8": schema.TypeFloat, "double": schema.TypeFloat,
	"boolean": schema.TypeBoolean, "bool": schema.TypeBoolean,
	"text": schema.TypeText, "mediumtext": schema.TypeText, "longtext": schema.TypeText,
	"character varying": schema.TypeVarchar, "varchar": schema.TypeVarchar,
	"character": schema.TypeChar, "char": schema.TypeChar, "bpchar": schema.TypeChar,
	"timestamp without time zone": schema.TypeTimestamp, "timestamp with time zone": schema.TypeTimestamp,
	"timestamp": schema.TypeTimestamp, "timestamptz": schema.TypeTimestamp, "datetime": schema.TypeTimestamp,
	"date": schema.TypeDate,
	"uuid": schema.TypeUUID,
	"json": schema.TypeJSON, "jsonb": schema.TypeJSON,
	"array": schema.TypeArray,
	"inet": schema.TypeInet, "cidr": schema.TypeInet,
}

func mapDataType(raw string) schema.DataType {
	base := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.Index(base, "("); idx > 0 {
		base = base[:idx]
	}
	if t, ok := typeMap[base]; ok {
		return t
	}
	// SQLite type affinity and vendor extensions.
	switch {
	case strings.Contains(base, "int"):
		return schema.TypeInteger
	case strings.Contains(base, "char"), strings.Contains(base, "clob"), strings.Contains(base, "text"):
		return schema.TypeText
	case strings.Contains(base, "real"), strings.Contains(base, "floa"), strings.Contains(base, "doub"):
		return schema.TypeFloat
	case strings.Contains(base, "bool"):
		return schema.TypeBoolean
	}
	return schema.TypeUnknown
}
