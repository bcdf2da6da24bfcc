package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/0xCarti/numinput"
	"github.com/0xCarti/numinput/units"
)

// Config holds the CLI configuration.
type Config struct {
	// Prefix forces expression evaluation when a value starts with it.
	Prefix string `yaml:"prefix"`
	// MaxDecimals bounds the decimals shown when no step applies.
	MaxDecimals int `yaml:"max_decimals"`
	// Step is the step attribute resolved values are formatted against,
	// unless --step overrides it.
	Step string `yaml:"step"`
	// Conversions maps base units to the units they report in.
	Conversions units.Conversions `yaml:"conversions"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Prefix:      numinput.DefaultPrefix,
		MaxDecimals: numinput.DefaultMaxDecimals,
		Conversions: units.DefaultConversions(),
	}
}

// LoadConfig reads a YAML config file. An empty path or a missing file
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Conversions = cfg.Conversions.Normalized()
	return cfg, nil
}
