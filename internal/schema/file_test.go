package schema

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")

	in := &Schema{Tables: []Table{
		{
			Name: "users",
			Columns: []Column{
				{Name: "id", Type: TypeInteger},
				{Name: "email", Type: TypeVarchar, Nullable: true, Samples: []string{"a@b.com"}},
			},
			PrimaryKey: "id",
		},
		{
			Name: "orders",
			Columns: []Column{
				{Name: "id", Type: TypeInteger},
				{Name: "user_id", Type: TypeInteger},
				{Name: "total", Type: TypeDecimal, Precision: 10, Scale: 2},
			},
			PrimaryKey:  "id",
			ForeignKeys: []ForeignKey{{Column: "user_id", RefTable: "users", RefColumn: "id"}},
		},
	}}

	if err := SaveFile(in, path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	out, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if len(out.Tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(out.Tables))
	}
	users := out.Table("users")
	if users == nil {
		t.Fatal("Expected users table after round trip")
	}
	if col := users.Column("email"); col == nil || !col.Nullable || len(col.Samples) != 1 {
		t.Errorf("Email column lost metadata: %+v", col)
	}
	orders := out.Table("orders")
	if orders == nil {
		t.Fatal("Expected orders table after round trip")
	}
	if fk := orders.ForeignKeyFor("user_id"); fk == nil || fk.RefTable != "users" {
		t.Errorf("Foreign key lost on round trip: %+v", fk)
	}
	if col := orders.Column("total"); col == nil || col.Precision != 10 || col.Scale != 2 {
		t.Errorf("Precision metadata lost: %+v", col)
	}
}

func TestLoadFileRejectsEmptySchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := SaveFile(&Schema{}, path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("Expected an error for a schema with no tables")
	}
}

func TestLoadFileMissingPath(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
