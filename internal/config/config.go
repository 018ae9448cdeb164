// Package config provides configuration loading from environment variables.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// ErrDatabaseDSNRequired is returned when DATABASE_DSN is not set.
var ErrDatabaseDSNRequired = errors.New("config: DATABASE_DSN is required")

// Config holds all configuration for the application.
type Config struct {
	// Server settings
	Port int `env:"PORT, default=8080" json:"port"`

	// Postgres connection string, e.g.
	// "host=localhost user=postgres password=... dbname=openings port=5432 sslmode=disable"
	DatabaseDSN string `env:"DATABASE_DSN, required" json:"-"`

	// Logging settings
	LogFormat string `env:"LOG_FORMAT, default=text" json:"log_format"` // "json" or "text"
	LogLevel  string `env:"LOG_LEVEL, default=info" json:"log_level"`   // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		// DATABASE_DSN is the only required variable, so a missing-required
		// failure can only mean it.
		if errors.Is(err, envconfig.ErrMissingRequired) {
			return nil, ErrDatabaseDSNRequired
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}
