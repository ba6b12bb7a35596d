package cmd

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/synthdb/internal/config"
	"github.com/Lumos-Labs-HQ/synthdb/internal/dump"
	"github.com/Lumos-Labs-HQ/synthdb/internal/generate"
	"github.com/Lumos-Labs-HQ/synthdb/internal/introspect"
	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
	"github.com/Lumos-Labs-HQ/synthdb/internal/sorter"
)

var (
	cloneURL    string
	cloneOutput string
	cloneRows   int
	cloneSeed   int64
)

var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone a database structure into a synthetic SQL dump",
	Long: `Introspect a live database, analyze its schema and sampled values, and
write a dump of synthetic rows that respects foreign-key ordering.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		url := cloneURL
		if url == "" {
			url, err = cfg.GetDatabaseURL()
			if err != nil {
				return err
			}
		}

		start := time.Now()
		ctx := context.Background()

		color.Cyan("🔍 Analyzing schema & sampling data...")
		s, err := extractSchema(ctx, cfg.Database.Provider, url)
		if err != nil {
			return err
		}
		color.Green("✅ Found %d tables", len(s.Tables))

		output := cloneOutput
		if output == "" {
			output = cfg.OutputPath
		}
		rows := cloneRows
		if rows <= 0 {
			rows = cfg.Rows
		}

		if err := runGeneration(s, output, rows, cfg.TableRows, cloneSeed); err != nil {
			return err
		}

		color.Green("✨ Done in %s! Saved to %s", time.Since(start).Round(time.Millisecond), output)
		return nil
	},
}

func extractSchema(ctx context.Context, provider, url string) (*schema.Schema, error) {
	extractor := introspect.New(provider)
	if err := extractor.Connect(ctx, url); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer extractor.Close()

	s, err := extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract schema: %w", err)
	}
	if len(s.Tables) == 0 {
		return nil, fmt.Errorf("no tables found in database")
	}
	return s, nil
}

// runGeneration sorts tables, generates synthetic rows and writes the dump.
func runGeneration(s *schema.Schema, outputPath string, rows int, tableRows map[string]int, seed int64) error {
	result := sorter.Sort(s.Tables)
	if len(result.Cyclic) > 0 {
		color.Yellow("⚠️  Circular dependency involving tables: %s. Falling back to input order.",
			strings.Join(result.Cyclic, ", "))
	}

	names := make([]string, len(result.Order))
	for i, t := range result.Order {
		names[i] = t.Name
	}
	color.Cyan("📋 Insertion order: %s", strings.Join(names, " → "))

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	defer f.Close()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	engine := generate.NewEngine(rng)

	buf := bufio.NewWriter(f)
	w := dump.NewWriter(buf)

	if err := w.WriteHeader(); err != nil {
		return err
	}

	opts := generate.Options{Rows: rows, TableRows: tableRows}
	err = engine.Run(result.Order, opts, func(t *schema.Table, rows [][]generate.Value) error {
		color.Cyan("  📝 Generating %s (%d rows)...", t.Name, len(rows))
		return w.WriteTable(t, rows)
	})
	if err != nil {
		return err
	}

	if err := w.WriteFooter(); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(cloneCmd)
	cloneCmd.Flags().StringVarP(&cloneURL, "url", "u", "", "Database connection URL (overrides env)")
	cloneCmd.Flags().StringVarP(&cloneOutput, "output", "o", "", "Output file path (default dump.sql)")
	cloneCmd.Flags().IntVarP(&cloneRows, "rows", "r", 0, "Rows per table (default 100)")
	cloneCmd.Flags().Int64Var(&cloneSeed, "seed", 0, "Random seed for reproducible output")
}
