// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the config file from dir, preferring .bizname.yaml over
// .bizname.toml. If neither exists, it returns a zero-value Config and nil
// error.
func Load(dir string) (*Config, error) {
	for _, name := range []string{FileName, TOMLFileName} {
		cfg, err := LoadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return &Config{}, nil
}

// LoadFile reads a single config file, choosing the decoder by extension.
// Files ending in .toml are TOML; everything else is YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		return nil, err
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Write marshals the config to YAML and writes it to w.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close() //nolint:errcheck // best-effort close
	enc.SetIndent(2)
	return enc.Encode(cfg)
}
