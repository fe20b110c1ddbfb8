// Package config loads tool configuration for the parc commands.
package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the conventional configuration file name, looked up in
// the working directory.
const DefaultFile = "parc.yaml"

// Config controls the file-facing tools (watch, lsp, tokens).
type Config struct {
	// Extensions lists the file suffixes treated as calc sources.
	Extensions []string `yaml:"extensions"`

	// Debounce is how long a file has to stay quiet before a reparse.
	Debounce Duration `yaml:"debounce"`

	// Grammar optionally points at an EBNF grammar file for token dumps.
	Grammar string `yaml:"grammar"`

	// Skip lists token kinds dropped from token dumps.
	Skip []string `yaml:"skip"`
}

// Duration is a time.Duration that unmarshals from YAML strings like
// "150ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"150ms\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns d as a time.Duration.
func (d Duration) Duration() time.Duration { return time.Duration(d) }

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Extensions: []string{".calc"},
		Debounce:   Duration(150 * time.Millisecond),
		Skip:       []string{"WS", "COMMENT"},
	}
}

// ApplyDefaults fills unset fields of cfg from DefaultConfig.
func ApplyDefaults(cfg *Config) {
	def := DefaultConfig()
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = def.Extensions
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = def.Debounce
	}
	if len(cfg.Skip) == 0 {
		cfg.Skip = def.Skip
	}
}

// Validate checks cfg for values the tools cannot work with.
func Validate(cfg *Config) error {
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	if cfg.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative")
	}
	return nil
}
