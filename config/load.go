package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads the configuration file at path, applies defaults and
// validates the result. A missing file is an error; use
// LoadConfigOrDefault for the conventional optional lookup.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read configuration file %q: %w", path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadConfigOrDefault loads DefaultFile from the working directory and
// falls back to DefaultConfig when the file does not exist.
func LoadConfigOrDefault() (*Config, error) {
	cfg, err := LoadConfig(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}
