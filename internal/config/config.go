// Package config loads advent configuration from an optional YAML file with
// environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "advent.yaml"

// Config holds all advent configuration.
type Config struct {
	// InputDir is the directory holding puzzle input files (inputs/day01.txt).
	InputDir string `yaml:"input_dir"`

	// Store configures the answer log.
	Store StoreConfig `yaml:"store"`

	// Logging configures diagnostic output.
	Logging LoggingConfig `yaml:"logging"`

	// StrictEmpty makes an all-blank strategy guide an error instead of a
	// zero total.
	StrictEmpty bool `yaml:"strict_empty"`
}

// StoreConfig configures the sqlite answer store.
type StoreConfig struct {
	// Path of the database file. Recording is skipped when empty.
	Path string `yaml:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputDir: "inputs",
		Store: StoreConfig{
			Path: filepath.Join("data", "advent.db"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the config file at path, merges it over defaults, then applies
// environment overrides. A missing file at the default path is not an error;
// an explicitly requested file must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Defaults only.
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides layers ADVENT_* environment variables over the config.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ADVENT_INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("ADVENT_DB_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("ADVENT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// InputPath returns the conventional input file path for a day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", day))
}
