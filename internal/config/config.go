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
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume file (TXT, PDF, DOCX, HTML)
	Jobs   string `json:"jobs,omitempty"`   // Path to job upload file (CSV or XLSX)

	// Limits
	MaxUploadRows      int `json:"max_upload_rows,omitempty"`       // Maximum rows accepted per upload file
	MaxResumeFileBytes int `json:"max_resume_file_bytes,omitempty"` // Maximum resume file size

	// Upload batching
	BatchSize    int `json:"batch_size,omitempty"`     // Rows written per batch
	BatchDelayMs int `json:"batch_delay_ms,omitempty"` // Pause between batches

	// Behavior
	APIKey          string `json:"api_key,omitempty"`          // Gemini API key for AI tailoring
	Verbose         bool   `json:"verbose,omitempty"`          // Print detailed debug information
	TokenSimilarity bool   `json:"token_similarity,omitempty"` // Use token-overlap duplicate matching
	DatabaseURL     string `json:"database_url,omitempty"`     // PostgreSQL connection URL
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
	if c.MaxUploadRows < 0 {
		return fmt.Errorf("config error: 'max_upload_rows' must be non-negative")
	}
	if c.MaxResumeFileBytes < 0 {
		return fmt.Errorf("config error: 'max_resume_file_bytes' must be non-negative")
	}
	if c.BatchSize < 0 {
		return fmt.Errorf("config error: 'batch_size' must be non-negative")
	}
	if c.BatchDelayMs < 0 {
		return fmt.Errorf("config error: 'batch_delay_ms' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Jobs != "" {
		if _, err := os.Stat(c.Jobs); os.IsNotExist(err) {
			return fmt.Errorf("config error: jobs file not found: %s", c.Jobs)
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
	if result.Jobs == "" {
		result.Jobs = defaults.Jobs
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MaxUploadRows == 0 {
		result.MaxUploadRows = defaults.MaxUploadRows
	}
	if result.MaxResumeFileBytes == 0 {
		result.MaxResumeFileBytes = defaults.MaxResumeFileBytes
	}
	if result.BatchSize == 0 {
		result.BatchSize = defaults.BatchSize
	}
	if result.BatchDelayMs == 0 {
		result.BatchDelayMs = defaults.BatchDelayMs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
