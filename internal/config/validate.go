// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/davetashner/bizname/internal/session"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Plugin != "" && !session.KnownPlugin(cfg.Plugin) {
		errs = append(errs, fmt.Sprintf("plugin: unknown plugin %q (must be one of %s)", cfg.Plugin, strings.Join(session.Plugins(), ", ")))
	}

	if cfg.MaxRetries != nil && *cfg.MaxRetries < 0 {
		errs = append(errs, fmt.Sprintf("max_retries: must be non-negative, got %d", *cfg.MaxRetries))
	}

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("base_url: must be an absolute http(s) URL, got %q", cfg.BaseURL))
		}
	}

	durations := []struct{ key, val string }{
		{"server.read_timeout", cfg.Server.ReadTimeout},
		{"server.write_timeout", cfg.Server.WriteTimeout},
	}
	for _, d := range durations {
		if d.val == "" {
			continue
		}
		if v, err := time.ParseDuration(d.val); err != nil || v <= 0 {
			errs = append(errs, fmt.Sprintf("%s: must be a positive duration, got %q", d.key, d.val))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
