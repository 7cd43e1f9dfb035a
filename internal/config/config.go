package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"campaign-analytics/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values. Use Load to construct a Config.
type Config struct {
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the report API. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL campaign store (PSQL_).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Dataset selects the campaign source (DATASET_).
	Dataset configs.Dataset `envPrefix:"DATASET_"`

	// Report holds the catalog thresholds (REPORT_).
	Report configs.Report `envPrefix:"REPORT_"`
}

// Load reads configuration from environment variables into a Config. The
// given dotenv files are loaded first when they exist; variables already
// set in the environment win. With no files, ".env" is tried.
func Load(files ...string) (Config, error) {
	var cfg Config
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if _, err := cfg.Dataset.Kind(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
