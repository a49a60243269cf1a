// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	Catalog string `json:"catalog,omitempty"` // Path to career catalog JSON file
	Skills  string `json:"skills,omitempty"`  // Comma-separated candidate skills

	// Scoring
	MinScore  int `json:"min_score,omitempty"` // Entries with score <= min_score are dropped
	Threshold int `json:"threshold,omitempty"` // Summary cutoff percentage (default 40)
	Limit     int `json:"limit,omitempty"`     // Cap on returned entries (0 = no cap)

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed match breakdowns
	Port        int    `json:"port,omitempty"`         // HTTP server port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the catalog store
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be between 0 and 100")
	}
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("config error: 'threshold' must be between 0 and 100")
	}
	if c.Limit < 0 {
		return fmt.Errorf("config error: 'limit' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	return nil
}
