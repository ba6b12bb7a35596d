package schema

// DataType is the normalized, provider-independent type tag for a column.
// Provider adapters map raw catalog types onto this set; everything the
// generator does not recognize becomes TypeUnknown and degrades to NULL.
type DataType string

const (
	TypeInteger   DataType = "INTEGER"
	TypeSmallInt  DataType = "SMALLINT"
	TypeBigInt    DataType = "BIGINT"
	TypeDecimal   DataType = "DECIMAL"
	TypeFloat     DataType = "FLOAT"
	TypeBoolean   DataType = "BOOLEAN"
	TypeText      DataType = "TEXT"
	TypeVarchar   DataType = "VARCHAR"
	TypeChar      DataType = "CHAR"
	TypeTimestamp DataType = "TIMESTAMP"
	TypeDate      DataType = "DATE"
	TypeUUID      DataType = "UUID"
	TypeJSON      DataType = "JSON"
	TypeArray     DataType = "ARRAY"
	TypeInet      DataType = "INET"
	TypeUnknown   DataType = "UNKNOWN"
)

// IsIntegerLike reports whether the type belongs to the integer family.
func (t DataType) IsIntegerLike() bool {
	switch t {
	case TypeInteger, TypeSmallInt, TypeBigInt:
		return true
	}
	return false
}

// IsTextLike reports whether values of the type are quoted in SQL output.
func (t DataType) IsTextLike() bool {
	switch t {
	case TypeText, TypeVarchar, TypeChar, TypeTimestamp, TypeDate,
		TypeUUID, TypeJSON, TypeArray, TypeInet:
		return true
	}
	return false
}

// Column describes one column of a table. Samples holds up to a handful of
// real distinct values pulled from the source database; when present they
// are preferred over synthesis.
type Column struct {
	Name     string   `yaml:"name"`
	Type     DataType `yaml:"type"`
	Nullable bool     `yaml:"nullable"`
	// Precision and Scale apply to DECIMAL columns only. Zero values mean
	// the catalog did not report them.
	Precision int      `yaml:"precision,omitempty"`
	Scale     int      `yaml:"scale,omitempty"`
	Samples   []string `yaml:"samples,omitempty"`
}

// ForeignKey records that Column references RefTable(RefColumn).
type ForeignKey struct {
	Column    string `yaml:"column"`
	RefTable  string `yaml:"ref_table"`
	RefColumn string `yaml:"ref_column"`
}

// Table is immutable once loaded. Column order is the declaration order and
// is preserved into the output dump.
type Table struct {
	Name        string       `yaml:"name"`
	Columns     []Column     `yaml:"columns"`
	PrimaryKey  string       `yaml:"primary_key,omitempty"`
	ForeignKeys []ForeignKey `yaml:"foreign_keys,omitempty"`
}

// ForeignKeyFor returns the FK edge owned by the named column, if any.
func (t *Table) ForeignKeyFor(column string) *ForeignKey {
	for i := range t.ForeignKeys {
		if t.ForeignKeys[i].Column == column {
			return &t.ForeignKeys[i]
		}
	}
	return nil
}

// Column returns the named column, if declared.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// Schema is the full set of tables handed to the generator.
type Schema struct {
	Tables []Table `yaml:"tables"`
}

// Table returns the named table, if present.
func (s *Schema) Table(name string) *Table {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i]
		}
	}
	return nil
}
