// Package config loads runtime configuration: environment variables for
// process settings and a YAML file for source definitions.
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds process-level settings read from the environment.
type Config struct {
	Environment string `envconfig:"CONFSCOUT_ENV" default:"local"`
	LogLevel    string `envconfig:"CONFSCOUT_LOG_LEVEL" default:"info"`

	OutputPath  string `envconfig:"CONFSCOUT_OUTPUT_PATH" default:"data/conferences.json"`
	CatalogPath string `envconfig:"CONFSCOUT_CATALOG_PATH" default:"data/catalog.json"`
	GeoCachePath string `envconfig:"CONFSCOUT_GEO_CACHE_PATH" default:"data/geocode_cache.json"`
	SourcesPath string `envconfig:"CONFSCOUT_SOURCES_PATH" default:"sources.yaml"`

	// GeocodeAPI enables the Nominatim fallback behind the static tables.
	GeocodeAPI bool `envconfig:"CONFSCOUT_GEOCODE_API" default:"true"`

	// DiscordWebhookURL enables Discord notifications when non-empty.
	DiscordWebhookURL string `envconfig:"CONFSCOUT_DISCORD_WEBHOOK_URL" default:""`

	// ClosingSoonDays is the deadline-reminder window.
	ClosingSoonDays int `envconfig:"CONFSCOUT_CLOSING_SOON_DAYS" default:"7"`
}

// Load reads and validates the environment configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks invariants envconfig cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputPath) == "" {
		return fmt.Errorf("CONFSCOUT_OUTPUT_PATH is required")
	}
	if strings.TrimSpace(c.CatalogPath) == "" {
		return fmt.Errorf("CONFSCOUT_CATALOG_PATH is required")
	}
	if c.ClosingSoonDays < 1 {
		return fmt.Errorf("CONFSCOUT_CLOSING_SOON_DAYS must be >= 1")
	}
	return nil
}
