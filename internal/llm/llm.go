// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

// Package llm provides a provider-agnostic LLM client interface, concrete
// providers, and the text-generation capability the name service depends on.
package llm

import (
	"context"

	"github.com/davetashner/bizname/internal/prompt"
)

// Provider abstracts an LLM API behind a single synchronous completion method.
type Provider interface {
	// Complete sends a prompt to the LLM and returns the response.
	// Implementations must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request describes a single completion request.
type Request struct {
	// Prompt is the user message to send.
	Prompt string

	// Model overrides the provider's default model. If empty, the provider
	// uses its configured default.
	Model string

	// MaxTokens limits the response length. If zero, the provider uses its
	// own default.
	MaxTokens int

	// Temperature controls randomness. If nil, the provider uses its default.
	Temperature *float64
}

// Response holds the result of a completion call.
type Response struct {
	// Content is the text returned by the model.
	Content string

	// Model is the model that actually served the request (may differ from
	// the requested model if the provider remapped it).
	Model string

	// Usage reports token consumption.
	Usage Usage
}

// Usage tracks input and output token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// GenerationConfig carries the per-call generation knobs.
type GenerationConfig struct {
	// MaxWords is an advisory cap on output length, in words. Zero means
	// the provider default.
	MaxWords int

	// Temperature controls randomness (0.0-1.0).
	Temperature float64
}

// MaxTokens converts the word cap into a token cap, assuming roughly four
// tokens per three words.
func (c GenerationConfig) MaxTokens() int {
	if c.MaxWords <= 0 {
		return 0
	}
	return (c.MaxWords*4 + 2) / 3
}

// TextGenerator fills a prompt template and returns the generated text.
type TextGenerator interface {
	GenerateText(ctx context.Context, tmpl prompt.Template, args prompt.Args, cfg GenerationConfig) (string, error)
}
