// Package config defines the mdlinkify configuration and its YAML
// serialization.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/mdlinkify/pkg/autolink"
)

// Config holds the tool configuration.
type Config struct {
	// PreviousChars is the allow-list of delimiter characters valid
	// immediately before an autolink. Whitespace and start of content
	// are always valid.
	PreviousChars string `yaml:"previous_chars"`

	// ExpandAutolinks controls rewrite output: when false, autolinks
	// are emitted as their raw URL text.
	ExpandAutolinks bool `yaml:"expand_autolinks"`

	// LogLevel sets the logger verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// NewConfig returns a configuration with default values.
func NewConfig() *Config {
	return &Config{
		PreviousChars:   autolink.DefaultValidPreviousCharacters,
		ExpandAutolinks: false,
		LogLevel:        "info",
	}
}

// FromYAML parses a configuration from YAML bytes. Fields absent from
// the input keep their defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return FromYAML(data)
}

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
