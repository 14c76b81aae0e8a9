package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// HistoryConfig represents the served-fortune history configuration
type HistoryConfig struct {
	// Enabled records every fortune served in random mode
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database. Relative paths are
	// resolved against the fortuner home directory.
	DBPath string `yaml:"db_path"`
}

// Config represents fortuner configuration options
type Config struct {
	// Sources are searched when no source is given on the command line
	Sources []string `yaml:"sources"`

	// ExcludeExtensions lists compiled index extensions skipped during directory walks
	ExcludeExtensions []string `yaml:"exclude_extensions"`

	// Insensitive makes patterns case-insensitive by default
	Insensitive bool `yaml:"insensitive"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// History contains history store configuration
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Sources:           nil,
		ExcludeExtensions: []string{".dat"},
		Insensitive:       false,
		LogLevel:          "warn",
		History: HistoryConfig{
			Enabled: false,
			DBPath:  "history.db",
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers distinguish "absent" from an explicit zero value
	type yamlHistory struct {
		Enabled *bool   `yaml:"enabled"`
		DBPath  *string `yaml:"db_path"`
	}
	type yamlConfig struct {
		Sources           []string     `yaml:"sources"`
		ExcludeExtensions *[]string    `yaml:"exclude_extensions"`
		Insensitive       *bool        `yaml:"insensitive"`
		LogLevel          string       `yaml:"log_level"`
		History           *yamlHistory `yaml:"history"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(yamlCfg.Sources) > 0 {
		cfg.Sources = yamlCfg.Sources
	}
	// An explicit empty list disables exclusion entirely
	if yamlCfg.ExcludeExtensions != nil {
		cfg.ExcludeExtensions = *yamlCfg.ExcludeExtensions
	}
	if yamlCfg.Insensitive != nil {
		cfg.Insensitive = *yamlCfg.Insensitive
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.History != nil {
		if yamlCfg.History.Enabled != nil {
			cfg.History.Enabled = *yamlCfg.History.Enabled
		}
		if yamlCfg.History.DBPath != nil {
			cfg.History.DBPath = *yamlCfg.History.DBPath
		}
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(insensitive *bool, logLevel *string, record *bool) {
	if insensitive != nil {
		c.Insensitive = *insensitive
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if record != nil {
		c.History.Enabled = *record
	}
}

// HistoryPath returns the history database path, resolving relative paths against home.
func (c *Config) HistoryPath(home string) string {
	if c.History.DBPath == ":memory:" || filepath.IsAbs(c.History.DBPath) {
		return c.History.DBPath
	}
	return filepath.Join(home, c.History.DBPath)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	for i, ext := range c.ExcludeExtensions {
		if strings.TrimSpace(ext) == "" || ext == "." {
			return fmt.Errorf("exclude_extensions[%d] cannot be empty", i)
		}
	}

	for i, src := range c.Sources {
		if strings.TrimSpace(src) == "" {
			return fmt.Errorf("sources[%d] cannot be empty", i)
		}
	}

	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("history.db_path cannot be empty when history is enabled")
	}

	return nil
}
