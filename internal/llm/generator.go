// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"

	"github.com/davetashner/bizname/internal/prompt"
)

// ProviderGenerator adapts a Provider into a TextGenerator.
type ProviderGenerator struct {
	provider Provider
	model    string
}

var _ TextGenerator = (*ProviderGenerator)(nil)

// NewProviderGenerator returns a TextGenerator that sends rendered prompts to
// p. An empty model leaves the choice to the provider.
func NewProviderGenerator(p Provider, model string) *ProviderGenerator {
	return &ProviderGenerator{provider: p, model: model}
}

// GenerateText renders tmpl with args and returns the provider's output
// verbatim. Errors from rendering or from the provider are returned as is.
func (g *ProviderGenerator) GenerateText(ctx context.Context, tmpl prompt.Template, args prompt.Args, cfg GenerationConfig) (string, error) {
	text, err := tmpl.Render(args)
	if err != nil {
		return "", err
	}

	temp := cfg.Temperature
	resp, err := g.provider.Complete(ctx, Request{
		Prompt:      text,
		Model:       g.model,
		MaxTokens:   cfg.MaxTokens(),
		Temperature: &temp,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
