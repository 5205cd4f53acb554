// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global bizname configuration.
// It uses $XDG_CONFIG_HOME/bizname if set, otherwise ~/.config/bizname.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bizname")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bizname")
}

// GlobalConfigPath returns the path to the global YAML config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file (config.yaml, or config.toml).
// If neither exists, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	dir := GlobalConfigDir()
	for _, name := range []string{"config.yaml", "config.toml"} {
		cfg, err := LoadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return &Config{}, nil
}
