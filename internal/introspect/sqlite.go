package introspect

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

type sqliteExtractor struct {
	db *sql.DB
}

func newSQLite() *sqliteExtractor {
	return &sqliteExtractor{}
}

func (s *sqliteExtractor) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("sqlite3", url)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}
	s.db = db
	return nil
}

func (s *sqliteExtractor) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *sqliteExtractor) Extract(ctx context.Context) (*schema.Schema, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query table names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := &schema.Schema{}
	for _, name := range names {
		table, err := s.extractTable(ctx, name)
		if err != nil {
			return nil, err
		}
		out.Tables = append(out.Tables, *table)
	}
	return out, nil
}

func (s *sqliteExtractor) extractTable(ctx context.Context, name string) (*schema.Table, error) {
	table := &schema.Table{Name: name}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", schema.QuoteIdent(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to query columns for %s: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cid, notNull, pk int
		var colName, colType string
		var dflt sql.NullString
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column for %s: %w", name, err)
		}
		table.Columns = append(table.Columns, schema.Column{
			Name:     colName,
			Type:     mapDataType(colType),
			Nullable: notNull == 0,
		})
		if pk == 1 && table.PrimaryKey == "" {
			table.PrimaryKey = colName
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.loadForeignKeys(ctx, table); err != nil {
		return nil, err
	}
	s.loadSamples(ctx, table)

	return table, nil
}

func (s *sqliteExtractor) loadForeignKeys(ctx context.Context, table *schema.Table) error {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA foreign_key_list(%s)", schema.QuoteIdent(table.Name)))
	if err != nil {
		return fmt.Errorf("failed to query foreign keys for %s: %w", table.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, seq int
		var refTable, from string
		var to sql.NullString
		var onUpdate, onDelete, match string
		if err := rows.Scan(&id, &seq, &refTable, &from, &to, &onUpdate, &onDelete, &match); err != nil {
			return fmt.Errorf("failed to scan foreign key for %s: %w", table.Name, err)
		}
		refColumn := "id"
		if to.Valid {
			refColumn = to.String
		}
		table.ForeignKeys = append(table.ForeignKeys, schema.ForeignKey{
			Column:    from,
			RefTable:  refTable,
			RefColumn: refColumn,
		})
	}
	return rows.Err()
}

func (s *sqliteExtractor) loadSamples(ctx context.Context, table *schema.Table) {
	for i := range table.Columns {
		col := &table.Columns[i]
		if !shouldSample(*col) {
			continue
		}

		query, err := sampleQuery(table.Name, col.Name)
		if err != nil {
			continue
		}
		rows, err := s.db.QueryContext(ctx, query)
		if err != nil {
			continue
		}
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err == nil {
				col.Samples = append(col.Samples, v)
			}
		}
		rows.Close()
	}
}
