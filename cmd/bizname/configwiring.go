// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/davetashner/bizname/internal/config"
	"github.com/davetashner/bizname/internal/namegen"
	"github.com/davetashner/bizname/internal/server"
	"github.com/davetashner/bizname/internal/session"
)

// apiKeyEnv overrides the provider-specific key variables for any plugin.
const apiKeyEnv = "BIZNAME_API_KEY"

// pluginFlagValues holds the persistent flags that select and configure the
// generation plugin. Set flags win over config file values.
type pluginFlagValues struct {
	plugin     string
	model      string
	baseURL    string
	maxRetries int
	configPath string

	fs *pflag.FlagSet
}

var pluginFlags = &pluginFlagValues{}

func (p *pluginFlagValues) bind(fs *pflag.FlagSet) {
	fs.StringVar(&p.plugin, "plugin", "", "generation plugin: gpt or claude (default from config, then "+namegen.DefaultPlugin+")")
	fs.StringVar(&p.model, "model", "", "override the plugin's default model")
	fs.StringVar(&p.baseURL, "base-url", "", "send provider requests to this API host")
	fs.IntVar(&p.maxRetries, "max-retries", -1, "provider retries on transient errors (-1 uses the SDK default)")
	fs.StringVar(&p.configPath, "config", "", "config file to read instead of ./"+config.FileName)
	p.fs = fs
}

func (p *pluginFlagValues) changed(name string) bool {
	return p.fs != nil && p.fs.Changed(name)
}

// loadConfig reads the repo (or --config) file over the global file and
// validates the result.
func loadConfig() (*config.Config, error) {
	var repo *config.Config
	var err error
	if pluginFlags.configPath != "" {
		repo, err = config.LoadFile(pluginFlags.configPath)
	} else {
		repo, err = config.Load(".")
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	global, err := config.LoadGlobal()
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	cfg := config.Merge(global, repo)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// sessionOptions resolves plugin settings: flags, then config, then defaults.
func sessionOptions(cfg *config.Config) session.Options {
	opts := session.Options{
		Plugin:     namegen.DefaultPlugin,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		MaxRetries: -1,
		APIKey:     os.Getenv(apiKeyEnv),
	}
	if cfg.Plugin != "" {
		opts.Plugin = cfg.Plugin
	}
	if cfg.MaxRetries != nil {
		opts.MaxRetries = *cfg.MaxRetries
	}

	if pluginFlags.changed("plugin") {
		opts.Plugin = pluginFlags.plugin
	}
	if pluginFlags.changed("model") {
		opts.Model = pluginFlags.model
	}
	if pluginFlags.changed("base-url") {
		opts.BaseURL = pluginFlags.baseURL
	}
	if pluginFlags.changed("max-retries") {
		opts.MaxRetries = pluginFlags.maxRetries
	}
	return opts
}

// openSession loads config and opens the generation session. The caller
// must Close it.
func openSession(ctx context.Context) (*session.Session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "bizname: %v", err)
	}

	sess, err := session.Open(ctx, sessionOptions(cfg))
	if err != nil {
		if errors.Is(err, session.ErrUnknownPlugin) {
			return nil, exitError(ExitInvalidArgs, "bizname: %v", err)
		}
		return nil, exitError(ExitSetupFailed,
			"bizname: %v\nSet OPENAI_API_KEY (gpt) or ANTHROPIC_API_KEY (claude), or %s for either.", err, apiKeyEnv)
	}
	return sess, nil
}

// serverOptions builds HTTP server options from config. addr, if set, wins.
func serverOptions(cfg *config.Config, addr string) (server.Options, error) {
	opts := server.DefaultOptions()
	if cfg.Server.Addr != "" {
		opts.Addr = cfg.Server.Addr
	}
	if addr != "" {
		opts.Addr = addr
	}
	if cfg.Server.ReadTimeout != "" {
		d, err := time.ParseDuration(cfg.Server.ReadTimeout)
		if err != nil {
			return opts, fmt.Errorf("server.read_timeout: %w", err)
		}
		opts.ReadTimeout = d
	}
	if cfg.Server.WriteTimeout != "" {
		d, err := time.ParseDuration(cfg.Server.WriteTimeout)
		if err != nil {
			return opts, fmt.Errorf("server.write_timeout: %w", err)
		}
		opts.WriteTimeout = d
	}
	return opts, nil
}
