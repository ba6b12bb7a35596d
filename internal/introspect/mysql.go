package introspect

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

type mysqlExtractor struct {
	db *sql.DB
}

func newMySQL() *mysqlExtractor {
	return &mysqlExtractor{}
}

func (m *mysqlExtractor) Connect(ctx context.Context, url string) error {
	db, err := sql.Open("mysql", url)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}
	m.db = db
	return nil
}

func (m *mysqlExtractor) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *mysqlExtractor) Extract(ctx context.Context) (*schema.Schema, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_type = 'BASE TABLE'
		ORDER BY table_name
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

	s := &schema.Schema{}
	for _, name := range names {
		table, err := m.extractTable(ctx, name)
		if err != nil {
			return nil, err
		}
		s.Tables = append(s.Tables, *table)
	}
	return s, nil
}

func (m *mysqlExtractor) extractTable(ctx context.Context, name string) (*schema.Table, error) {
	table := &schema.Table{Name: name}

	rows, err := m.db.QueryContext(ctx, `
		SELECT column_name, data_type, is_nullable, column_key,
		       numeric_precision, numeric_scale
		FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ?
		ORDER BY ordinal_position
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns for %s: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var colName, dataType, isNullable, columnKey string
		var precision, scale sql.NullInt64
		if err := rows.Scan(&colName, &dataType, &isNullable, &columnKey, &precision, &scale); err != nil {
			return nil, fmt.Errorf("failed to scan column for %s: %w", name, err)
		}
		col := schema.Column{
			Name:     colName,
			Type:     mapDataType(dataType),
			Nullable: isNullable == "YES",
		}
		if precision.Valid {
			col.Precision = int(precision.Int64)
		}
		if scale.Valid {
			col.Scale = int(scale.Int64)
		}
		if columnKey == "PRI" && table.PrimaryKey == "" {
			table.PrimaryKey = colName
		}
		table.Columns = append(table.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := m.loadForeignKeys(ctx, table); err != nil {
		return nil, err
	}
	m.loadSamples(ctx, table)

	return table, nil
}

func (m *mysqlExtractor) loadForeignKeys(ctx context.Context, table *schema.Table) error {
	rows, err := m.db.QueryContext(ctx, `
		SELECT column_name, referenced_table_name, referenced_column_name
		FROM information_schema.key_column_usage
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND referenced_table_name IS NOT NULL
	`, table.Name)
	if err != nil {
		return fmt.Errorf("failed to query foreign keys for %s: %w", table.Name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var fk schema.ForeignKey
		if err := rows.Scan(&fk.Column, &fk.RefTable, &fk.RefColumn); err != nil {
			return fmt.Errorf("failed to scan foreign key for %s: %w", table.Name, err)
		}
		table.ForeignKeys = append(table.ForeignKeys, fk)
	}
	return rows.Err()
}

func (m *mysqlExtractor) loadSamples(ctx context.Context, table *schema.Table) {
	for i := range table.Columns {
		col := &table.Columns[i]
		if !shouldSample(*col) {
			continue
		}

		query, err := sampleQuery(table.Name, col.Name)
		if err != nil {
			continue
		}
		rows, err := m.db.QueryContext(ctx, query)
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
