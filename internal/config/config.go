// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

// Package config handles .bizname.yaml and .bizname.toml configuration files.
package config

// Config represents the contents of a bizname config file.
type Config struct {
	Plugin     string       `yaml:"plugin,omitempty" toml:"plugin,omitempty"`
	Model      string       `yaml:"model,omitempty" toml:"model,omitempty"`
	BaseURL    string       `yaml:"base_url,omitempty" toml:"base_url,omitempty"`
	MaxRetries *int         `yaml:"max_retries,omitempty" toml:"max_retries,omitempty"`
	Server     ServerConfig `yaml:"server,omitempty" toml:"server,omitempty"`
}

// ServerConfig holds settings for `bizname serve`.
type ServerConfig struct {
	Addr         string `yaml:"addr,omitempty" toml:"addr,omitempty"`
	ReadTimeout  string `yaml:"read_timeout,omitempty" toml:"read_timeout,omitempty"`
	WriteTimeout string `yaml:"write_timeout,omitempty" toml:"write_timeout,omitempty"`
}

// Config file names looked up in a directory, in order of preference.
const (
	FileName     = ".bizname.yaml"
	TOMLFileName = ".bizname.toml"
)
