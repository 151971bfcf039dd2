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
	// Paths
	RubricPath   string `json:"rubric,omitempty"`     // Path to rubric JSON file (defaults built in)
	TemplatePath string `json:"template,omitempty"`   // Path to markdown template override
	OutputDir    string `json:"output_dir,omitempty"` // Directory for generated artifacts

	// Behavior
	APIKey        string `json:"api_key,omitempty"`        // Gemini API key
	Verbose       bool   `json:"verbose,omitempty"`        // Print detailed debug information
	MaxConcurrent int    `json:"max_concurrent,omitempty"` // Concurrent fetches for multi-video runs
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxConcurrent < 0 {
		return &ConfigurationError{Message: "'max_concurrent' must be non-negative"}
	}
	if c.RubricPath != "" {
		if _, err := os.Stat(c.RubricPath); os.IsNotExist(err) {
			return &ConfigurationError{Message: fmt.Sprintf("rubric file not found: %s", c.RubricPath)}
		}
	}
	if c.TemplatePath != "" {
		if _, err := os.Stat(c.TemplatePath); os.IsNotExist(err) {
			return &ConfigurationError{Message: fmt.Sprintf("template file not found: %s", c.TemplatePath)}
		}
	}
	return nil
}
