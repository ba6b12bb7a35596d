package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Version    string         `json:"version" mapstructure:"version"`
	OutputPath string         `json:"output_path" mapstructure:"output_path"`
	SchemaPath string         `json:"schema_path" mapstructure:"schema_path"`
	Rows       int            `json:"rows" mapstructure:"rows"`
	TableRows  map[string]int `json:"table_rows,omitempty" mapstructure:"table_rows"`
	Database   Database       `json:"database" mapstructure:"database"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "dump.sql"
	}
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = "db/schema.yaml"
	}
	if cfg.Rows <= 0 {
		cfg.Rows = 100
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.OutputPath == "" {
		return fmt.Errorf("output_path cannot be empty")
	}

	return nil
}
