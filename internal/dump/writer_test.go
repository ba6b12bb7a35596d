package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/synthdb/internal/generate"
	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

func newValue(raw string, quote bool) generate.Value {
	return generate.Value{Raw: raw, Quote: quote}
}

func sampleTable() *schema.Table {
	return &schema.Table{
		Name: "users",
		Columns: []schema.Column{
			{Name: "id", Type: schema.TypeInteger},
			{Name: "name", Type: schema.TypeVarchar},
		},
		PrimaryKey: "id",
	}
}

func TestWriteHeaderOpensDeferredTransaction(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteHeader(); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"BEGIN;", "SET CONSTRAINTS ALL DEFERRED;"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected header to contain %q, got:\n%s", want, out)
		}
	}
	begin := strings.Index(out, "BEGIN;")
	deferred := strings.Index(out, "SET CONSTRAINTS ALL DEFERRED;")
	if begin > deferred {
		t.Error("Expected BEGIN before SET CONSTRAINTS")
	}
}

func TestWriteTableTupleSeparators(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	rows := [][]generate.Value{
		{newValue("1", false), newValue("Ada", true)},
		{newValue("2", false), newValue("Grace", true)},
		{newValue("3", false), newValue("Edsger", true)},
	}
	if err := w.WriteTable(sampleTable(), rows); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "INSERT INTO users (id, name) VALUES") {
		t.Errorf("Unexpected insert head:\n%s", out)
	}
	if !strings.Contains(out, "(1, 'Ada'),") {
		t.Errorf("Expected first tuple to end with a comma:\n%s", out)
	}
	if !strings.Contains(out, "(2, 'Grace'),") {
		t.Errorf("Expected middle tuple to end with a comma:\n%s", out)
	}
	if !strings.Contains(out, "(3, 'Edsger');") {
		t.Errorf("Expected last tuple to end with a semicolon:\n%s", out)
	}
}

func TestWriteTableEscapesQuotesAndNulls(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	rows := [][]generate.Value{
		{newValue("1", false), newValue("O'Brien", true)},
		{newValue("2", false), generate.NullValue},
	}
	if err := w.WriteTable(sampleTable(), rows); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "'O''Brien'") {
		t.Errorf("Expected doubled quote in output:\n%s", out)
	}
	if !strings.Contains(out, "(2, NULL);") {
		t.Errorf("Expected unquoted NULL:\n%s", out)
	}
}

func TestWriteTableSkipsEmptyRowSets(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteTable(sampleTable(), nil); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output for an empty table, got:\n%s", buf.String())
	}
}

func TestQuoteIdentOnlyWhenNeeded(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	table := &schema.Table{
		Name:    "user Order",
		Columns: []schema.Column{{Name: "select", Type: schema.TypeInteger}, {Name: "id", Type: schema.TypeInteger}},
	}
	rows := [][]generate.Value{{newValue("1", false), newValue("2", false)}}
	if err := w.WriteTable(table, rows); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `INSERT INTO "user Order"`) {
		t.Errorf("Expected mixed-case table name to be quoted:\n%s", out)
	}
	if !strings.Contains(out, "(select, id)") {
		t.Errorf("Expected plain lowercase identifiers unquoted:\n%s", out)
	}
}

func TestWriteFooterCommits(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteFooter(); err != nil {
		t.Fatalf("WriteFooter failed: %v", err)
	}
	if !strings.Contains(buf.String(), "COMMIT;") {
		t.Errorf("Expected COMMIT, got:\n%s", buf.String())
	}
}
