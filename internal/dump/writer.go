// Package dump serializes generated rows into a PostgreSQL-style SQL dump:
// one deferred-constraint transaction, one multi-row INSERT per table.
package dump

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/synthdb/internal/generate"
	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

// Writer emits the dump incrementally: header once, then one block per
// table in the order they are handed in, then the commit.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader opens the transaction with constraint checks deferred, so
// any forward reference produced by a cycle fallback survives until COMMIT.
func (d *Writer) WriteHeader() error {
	_, err := fmt.Fprintf(d.w,
		"-- synthdb generated dump\n-- %s\nBEGIN;\nSET CONSTRAINTS ALL DEFERRED;\n",
		time.Now().Format("2006-01-02 15:04:05"))
	if err != nil {
		return fmt.Errorf("failed to write dump header: %w", err)
	}
	return nil
}

// WriteTable emits one INSERT statement with one tuple per row. Tuples are
// comma-separated; the last ends with a semicolon. Columns appear in the
// table's declared order.
func (d *Writer) WriteTable(t *schema.Table, rows [][]generate.Value) error {
	if len(rows) == 0 {
		return nil
	}

	cols := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = schema.QuoteIdent(c.Name)
	}

	if _, err := fmt.Fprintf(d.w, "\n-- Data for %s\nINSERT INTO %s (%s) VALUES\n",
		t.Name, schema.QuoteIdent(t.Name), strings.Join(cols, ", ")); err != nil {
		return fmt.Errorf("failed to write insert for %s: %w", t.Name, err)
	}

	for i, row := range rows {
		literals := make([]string, len(row))
		for j, v := range row {
			literals[j] = v.SQL()
		}

		sep := ","
		if i == len(rows)-1 {
			sep = ";"
		}
		if _, err := fmt.Fprintf(d.w, "(%s)%s\n", strings.Join(literals, ", "), sep); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", t.Name, err)
		}
	}

	return nil
}

// WriteFooter commits the transaction.
func (d *Writer) WriteFooter() error {
	if _, err := fmt.Fprintln(d.w, "COMMIT;"); err != nil {
		return fmt.Errorf("failed to write dump footer: %w", err)
	}
	return nil
}
