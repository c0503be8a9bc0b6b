// Package config provides configuration management for the word-database tools.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wordbase/internal/database"
)

// Duplicate-key policies accepted in duplicates.policy.
const (
	PolicyLastWins = "last-wins"
	PolicyReject   = "reject"
)

// Configuration validation errors.
var (
	ErrMissingInputPath       = errors.New("input.path is required")
	ErrMissingOutputPath      = errors.New("output.path is required")
	ErrSamePath               = errors.New("input.path and output.path must differ")
	ErrInvalidDuplicatePolicy = errors.New(`duplicates.policy must be "last-wins" or "reject"`)
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete normalizer configuration.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Duplicates DuplicatesConfig `yaml:"duplicates"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// InputConfig defines where the source database is read from.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig defines where and how the normalized database is written.
type OutputConfig struct {
	Path         string `yaml:"path"`
	CreateBackup bool   `yaml:"create_backup"`
	ShowSummary  bool   `yaml:"show_summary"`
}

// DuplicatesConfig defines how duplicate keys in the source are treated.
type DuplicatesConfig struct {
	Policy string `yaml:"policy"`
}

// Resolve maps the configured policy name to its database policy value.
func (d DuplicatesConfig) Resolve() database.DuplicatePolicy {
	if d.Policy == PolicyReject {
		return database.DuplicateReject
	}

	return database.DuplicateLastWins
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path: "words-database.json",
		},
		Output: OutputConfig{
			Path:        "new-words-database.json",
			ShowSummary: true,
		},
		Duplicates: DuplicatesConfig{
			Policy: PolicyLastWins,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a YAML file, applying defaults for
// omitted fields.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return ErrMissingInputPath
	}

	if c.Output.Path == "" {
		return ErrMissingOutputPath
	}

	if c.Input.Path == c.Output.Path {
		return ErrSamePath
	}

	if c.Duplicates.Policy != PolicyLastWins && c.Duplicates.Policy != PolicyReject {
		return ErrInvalidDuplicatePolicy
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Input: %s, Output: %s, Duplicates: %s}",
		c.Input.Path,
		c.Output.Path,
		c.Duplicates.Policy,
	)
}
