// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ScrapeSource configures one job board to scrape.
type ScrapeSource struct {
	Name              string `json:"name"`
	URL               string `json:"url"`
	RequestsPerWindow int    `json:"requests_per_window,omitempty"` // Per-source fetch budget
	WindowSeconds     int    `json:"window_seconds,omitempty"`      // Budget window length
	UseBrowser        bool   `json:"use_browser,omitempty"`         // Headless browser for SPA boards
}

// Window returns the source's rate limit window as a duration.
func (s ScrapeSource) Window() time.Duration {
	if s.WindowSeconds <= 0 {
		return 0
	}
	return time.Duration(s.WindowSeconds) * time.Second
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Input
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Email  string `json:"email,omitempty"`  // Contact email to fall back on

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Scraping
	Sources []ScrapeSource `json:"sources,omitempty"` // Job boards to scrape
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	for i, src := range c.Sources {
		if src.Name == "" {
			return fmt.Errorf("config error: sources[%d] is missing a name", i)
		}
		if src.URL == "" {
			return fmt.Errorf("config error: source %q is missing a url", src.Name)
		}
		if src.RequestsPerWindow < 0 {
			return fmt.Errorf("config error: source %q has a negative request budget", src.Name)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Email == "" {
		result.Email = defaults.Email
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	if len(result.Sources) == 0 {
		result.Sources = defaults.Sources
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
