package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

type postgresExtractor struct {
	pool *pgxpool.Pool
}

func newPostgres() *postgresExtractor {
	return &postgresExtractor{}
}

func (p *postgresExtractor) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec
	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *postgresExtractor) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *postgresExtractor) Extract(ctx context.Context) (*schema.Schema, error) {
	names, err := p.tableNames(ctx)
	if err != nil {
		return nil, err
	}

	s := &schema.Schema{}
	for _, name := range names {
		table, err := p.extractTable(ctx, name)
		if err != nil {
			return nil, err
		}
		s.Tables = append(s.Tables, *table)
	}
	return s, nil
}

func (p *postgresExtractor) tableNames(ctx context.Context) ([]string, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
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
	return names, rows.Err()
}

func (p *postgresExtractor) extractTable(ctx context.Context, name string) (*schema.Table, error) {
	table := &schema.Table{Name: name}

	rows, err := p.pool.Query(ctx, `
		SELECT column_name, data_type, is_nullable, numeric_precision, numeric_scale
		FROM information_schema.columns
		WHERE table_name = $1 AND table_schema = 'public'
		ORDER BY ordinal_position
	`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns for %s: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var colName, dataType, isNullable string
		var precision, scale sql.NullInt64
		if err := rows.Scan(&colName, &dataType, &isNullable, &precision, &scale); err != nil {
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
		table.Columns = append(table.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := p.loadPrimaryKey(ctx, table); err != nil {
		return nil, err
	}
	if err := p.loadForeignKeys(ctx, table); err != nil {
		return nil, err
	}
	p.loadSamples(ctx, table)

	return table, nil
}

func (p *postgresExtractor) loadPrimaryKey(ctx context.Context, table *schema.Table) error {
	row := p.pool.QueryRow(ctx, `
		SELECT kcu.column_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
		  ON tc.constraint_name = kcu.constraint_name
		WHERE tc.table_name = $1 AND tc.constraint_type = 'PRIMARY KEY'
		LIMIT 1
	`, table.Name)

	var pk string
	if err := row.Scan(&pk); err != nil {
		if err == pgx.ErrNoRows {
			return nil
		}
		return fmt.Errorf("failed to query primary key for %s: %w", table.Name, err)
	}
	table.PrimaryKey = pk
	return nil
}

func (p *postgresExtractor) loadForeignKeys(ctx context.Context, table *schema.Table) error {
	rows, err := p.pool.Query(ctx, `
		SELECT
			kcu.column_name,
			ccu.table_name AS foreign_table_name,
			ccu.column_name AS foreign_column_name
		FROM information_schema.key_column_usage AS kcu
		JOIN information_schema.constraint_column_usage AS ccu
		  ON kcu.constraint_name = ccu.constraint_name
		JOIN information_schema.table_constraints AS tc
		  ON kcu.constraint_name = tc.constraint_name
		WHERE kcu.table_name = $1 AND tc.constraint_type = 'FOREIGN KEY'
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

// loadSamples is best effort: a column that cannot be sampled simply keeps
// no samples.
func (p *postgresExtractor) loadSamples(ctx context.Context, table *schema.Table) {
	for i := range table.Columns {
		col := &table.Columns[i]
		if !shouldSample(*col) {
			continue
		}

		query, err := sampleQuery(table.Name, col.Name)
		if err != nil {
			continue
		}
		rows, err := p.pool.Query(ctx, query)
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
