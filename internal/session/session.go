// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

// Package session provides the scoped execution context through which the
// name service reaches a hosted text-generation plugin.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/davetashner/bizname/internal/llm"
	"github.com/davetashner/bizname/internal/prompt"
)

var (
	// ErrClosed is returned by GenerateText after Close.
	ErrClosed = errors.New("session: closed")

	// ErrUnknownPlugin is returned by Open for an unregistered plugin handle.
	ErrUnknownPlugin = errors.New("session: unknown plugin")
)

// Options selects and configures the plugin a session talks to.
type Options struct {
	// Plugin is the plugin handle, e.g. "gpt" or "claude".
	Plugin string

	// Model overrides the plugin's default model.
	Model string

	// APIKey overrides the provider's environment variable.
	APIKey string

	// BaseURL points the provider at a different host.
	BaseURL string

	// MaxRetries is passed to the provider SDK. Negative means SDK default.
	MaxRetries int
}

type factory func(opts ...llm.Option) (llm.Provider, error)

var plugins = map[string]factory{
	"gpt":       newOpenAI,
	"openai":    newOpenAI,
	"claude":    newAnthropic,
	"anthropic": newAnthropic,
}

func newOpenAI(opts ...llm.Option) (llm.Provider, error) {
	return llm.NewOpenAIProvider(opts...)
}

func newAnthropic(opts ...llm.Option) (llm.Provider, error) {
	return llm.NewAnthropicProvider(opts...)
}

// Plugins returns the registered plugin handles, sorted.
func Plugins() []string {
	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KnownPlugin reports whether name is a registered plugin handle.
func KnownPlugin(name string) bool {
	_, ok := plugins[strings.ToLower(name)]
	return ok
}

// providerOptions turns the set fields of o into provider options.
func providerOptions(o Options) []llm.Option {
	var opts []llm.Option
	if o.APIKey != "" {
		opts = append(opts, llm.WithAPIKey(o.APIKey))
	}
	if o.Model != "" {
		opts = append(opts, llm.WithModel(o.Model))
	}
	if o.BaseURL != "" {
		opts = append(opts, llm.WithBaseURL(o.BaseURL))
	}
	if o.MaxRetries >= 0 {
		opts = append(opts, llm.WithMaxRetries(o.MaxRetries))
	}
	return opts
}

// Session is a disposable, authenticated handle on one plugin. It is safe
// for concurrent use.
type Session struct {
	id     string
	plugin string
	gen    *llm.ProviderGenerator

	mu     sync.RWMutex
	closed bool
}

var _ llm.TextGenerator = (*Session)(nil)

// Open resolves opts.Plugin and builds its provider. A missing credential is
// reported here rather than on the first call. Callers must Close the
// session when done.
func Open(_ context.Context, opts Options) (*Session, error) {
	name := strings.ToLower(opts.Plugin)
	mk, ok := plugins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownPlugin, opts.Plugin, strings.Join(Plugins(), ", "))
	}
	p, err := mk(providerOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("session: open %s: %w", name, err)
	}
	// The provider already carries the model override.
	return newSession(name, p, ""), nil
}

// OpenWithProvider wraps an existing provider in a session.
func OpenWithProvider(p llm.Provider, model string) *Session {
	return newSession("custom", p, model)
}

func newSession(plugin string, p llm.Provider, model string) *Session {
	s := &Session{
		id:     uuid.NewString(),
		plugin: plugin,
		gen:    llm.NewProviderGenerator(p, model),
	}
	slog.Debug("session opened", "id", s.id, "plugin", plugin)
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Plugin returns the resolved plugin handle.
func (s *Session) Plugin() string { return s.plugin }

// GenerateText implements llm.TextGenerator.
func (s *Session) GenerateText(ctx context.Context, tmpl prompt.Template, args prompt.Args, cfg llm.GenerationConfig) (string, error) {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return "", ErrClosed
	}
	return s.gen.GenerateText(ctx, tmpl, args, cfg)
}

// Close releases the session. It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	slog.Debug("session closed", "id", s.id)
	return nil
}
