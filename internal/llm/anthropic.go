// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultAnthropicModel = "claude-sonnet-4-5-20250929"

	// anthropicFallbackMaxTokens is sent when the request leaves MaxTokens
	// unset. The Messages API rejects requests without one.
	anthropicFallbackMaxTokens = 1024
)

// AnthropicProvider backs the "claude" plugin with the Messages API.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
}

var _ Provider = (*AnthropicProvider)(nil)

// NewAnthropicProvider builds a provider from opts, reading
// ANTHROPIC_API_KEY when no key option is given.
func NewAnthropicProvider(opts ...Option) (*AnthropicProvider, error) {
	cfg, err := resolveConfig(defaultAnthropicModel, "ANTHROPIC_API_KEY", opts)
	if err != nil {
		return nil, err
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.apiKey),
		option.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.baseURL))
	}
	return &AnthropicProvider{client: anthropic.NewClient(reqOpts...), model: cfg.model}, nil
}

// Model returns the model used when a request does not name one.
func (p *AnthropicProvider) Model() string { return p.model }

// Complete sends req as a single user turn.
func (p *AnthropicProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	msg, err := p.client.Messages.New(ctx, p.params(req))
	if err != nil {
		return nil, fmt.Errorf("anthropic: completion failed: %w", err)
	}

	return &Response{
		Content: joinText(msg.Content),
		Model:   string(msg.Model),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

func (p *AnthropicProvider) params(req Request) anthropic.MessageNewParams {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}
	maxTokens := int64(anthropicFallbackMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}
	return params
}

// joinText concatenates the text blocks of a reply. Other block types carry
// no output text.
func joinText(blocks []anthropic.ContentBlockUnion) string {
	var b strings.Builder
	for _, block := range blocks {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}
	return b.String()
}
