// Package config provides configuration loading for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use flag defaults. Flags set on the
// command line always win over config file values.
type Config struct {
	Input   string `json:"input,omitempty"`   // Path to the profile JSON file
	Output  string `json:"output,omitempty"`  // Path for the generated document
	Lang    string `json:"lang,omitempty"`    // Section-label language code
	Photo   string `json:"photo,omitempty"`   // Path to a profile photo
	Verbose bool   `json:"verbose,omitempty"` // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// MergeWithDefaults returns a new Config with empty string fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags. A missing photo file is deliberately not an error here: rendering
// falls back to the no-photo layout.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Lang == "" {
		result.Lang = defaults.Lang
	}
	if result.Photo == "" {
		result.Photo = defaults.Photo
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags always
	// win and config can only turn verbose on.
	if defaults.Verbose {
		result.Verbose = true
	}

	return result
}
