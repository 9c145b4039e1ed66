// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Output  OutputConfig  `toml:"output"`
	History HistoryConfig `toml:"history"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type OutputConfig struct {
	Overwrite string `toml:"overwrite"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Load reads and validates the configuration file, substituting
// environment variables along the way. Missing environment variables
// and validation failures are aggregated into a single *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}

	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file without
// checking env vars or field values. Used by tooling that needs to
// inspect a broken config.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "debug"
	}
	if c.Output.Overwrite == "" {
		c.Output.Overwrite = "always"
	}
	if c.History.Enabled && c.History.Path == "" {
		c.History.Path = DefaultHistoryPath()
	}
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}
