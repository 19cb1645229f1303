// Package config loads game configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation, used by the random-start word
	// picker. A seed of 0 means a time-based seed will be used.
	Seed int64 `env:"RATTRAP_SEED"`

	// LogFile is where the debug log is written. The terminal belongs to
	// the game screen, so logging is discarded unless a file is named.
	LogFile string `env:"RATTRAP_LOG_FILE"`

	// LogLevel is the zerolog level name.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Honeycomb credentials for trace export. Empty disables export.
	HoneycombAPIKey  string `env:"HONEYCOMB_RATTRAP_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_RATTRAP_DATASET" envDefault:"rattrap"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
