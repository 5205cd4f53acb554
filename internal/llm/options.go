// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"errors"
	"fmt"
	"os"
)

// defaultMaxRetries is how often the SDKs retry 429 and 5xx answers, with
// their own exponential backoff.
const defaultMaxRetries = 3

// ErrMissingAPIKey is returned by provider constructors when neither an
// option nor the provider's environment variable supplies a key.
var ErrMissingAPIKey = errors.New("llm: no API key")

// Option configures a hosted provider. The same options apply to every
// provider in this package.
type Option func(*providerConfig)

type providerConfig struct {
	apiKey     string
	model      string
	baseURL    string
	maxRetries int
}

// WithAPIKey sets the API key, taking precedence over the environment.
func WithAPIKey(key string) Option {
	return func(c *providerConfig) { c.apiKey = key }
}

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(c *providerConfig) { c.model = model }
}

// WithBaseURL sends requests to another host speaking the same API, such as
// a gateway or a test server.
func WithBaseURL(url string) Option {
	return func(c *providerConfig) { c.baseURL = url }
}

// WithMaxRetries sets how many times transient failures are retried. Zero
// disables retries.
func WithMaxRetries(n int) Option {
	return func(c *providerConfig) { c.maxRetries = n }
}

// resolveConfig applies opts over the defaults and fills the key from keyEnv
// when no option set one.
func resolveConfig(defaultModel, keyEnv string, opts []Option) (providerConfig, error) {
	cfg := providerConfig{model: defaultModel, maxRetries: defaultMaxRetries}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.apiKey == "" {
		cfg.apiKey = os.Getenv(keyEnv)
	}
	if cfg.apiKey == "" {
		return cfg, fmt.Errorf("%w: %s not set", ErrMissingAPIKey, keyEnv)
	}
	return cfg, nil
}
