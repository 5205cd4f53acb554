// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package config

// Merge layers repo config over global config. Set repo fields win; unset
// ones fall through to global. Neither input is modified.
func Merge(global, repo *Config) *Config {
	out := Config{}
	if global != nil {
		out = *global
	}
	if repo == nil {
		return &out
	}

	if repo.Plugin != "" {
		out.Plugin = repo.Plugin
	}
	if repo.Model != "" {
		out.Model = repo.Model
	}
	if repo.BaseURL != "" {
		out.BaseURL = repo.BaseURL
	}
	if repo.MaxRetries != nil {
		n := *repo.MaxRetries
		out.MaxRetries = &n
	}
	if repo.Server.Addr != "" {
		out.Server.Addr = repo.Server.Addr
	}
	if repo.Server.ReadTimeout != "" {
		out.Server.ReadTimeout = repo.Server.ReadTimeout
	}
	if repo.Server.WriteTimeout != "" {
		out.Server.WriteTimeout = repo.Server.WriteTimeout
	}
	return &out
}
