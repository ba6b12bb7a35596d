package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/synthdb/internal/config"
	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

var (
	generateSchema string
	generateOutput string
	generateRows   int
	generateSeed   int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic dump from a schema snapshot",
	Long:  `Generate synthetic rows from a saved schema file without touching a database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path := generateSchema
		if path == "" {
			path = cfg.SchemaPath
		}
		s, err := schema.LoadFile(path)
		if err != nil {
			return err
		}
		color.Green("✅ Loaded %d tables from %s", len(s.Tables), path)

		output := generateOutput
		if output == "" {
			output = cfg.OutputPath
		}
		rows := generateRows
		if rows <= 0 {
			rows = cfg.Rows
		}

		start := time.Now()
		if err := runGeneration(s, output, rows, cfg.TableRows, generateSeed); err != nil {
			return err
		}

		color.Green("✨ Done in %s! Saved to %s", time.Since(start).Round(time.Millisecond), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateSchema, "schema", "s", "", "Schema snapshot file (default db/schema.yaml)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file path (default dump.sql)")
	generateCmd.Flags().IntVarP(&generateRows, "rows", "r", 0, "Rows per table (default 100)")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed for reproducible output")
}
