package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/synthdb/internal/config"
	"github.com/Lumos-Labs-HQ/synthdb/internal/schema"
)

var (
	inspectURL    string
	inspectOutput string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Save a schema snapshot from a live database",
	Long: `Introspect a database and write its schema (tables, columns, foreign keys
and sampled values) to a YAML file, for later offline generation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		url := inspectURL
		if url == "" {
			url, err = cfg.GetDatabaseURL()
			if err != nil {
				return err
			}
		}

		color.Cyan("🔍 Analyzing schema & sampling data...")
		s, err := extractSchema(context.Background(), cfg.Database.Provider, url)
		if err != nil {
			return err
		}

		output := inspectOutput
		if output == "" {
			output = cfg.SchemaPath
		}
		if err := schema.SaveFile(s, output); err != nil {
			return err
		}

		color.Green("✅ Saved %d tables to %s", len(s.Tables), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectURL, "url", "u", "", "Database connection URL (overrides env)")
	inspectCmd.Flags().StringVarP(&inspectOutput, "output", "o", "", "Schema file path (default db/schema.yaml)")
}
