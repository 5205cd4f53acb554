// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "gpt-4o-mini"

// ErrEmptyCompletion is returned when the API answers without any choices.
var ErrEmptyCompletion = errors.New("openai: response contained no choices")

// OpenAIProvider backs the "gpt" plugin with the Chat Completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider builds a provider from opts, reading OPENAI_API_KEY when
// no key option is given.
func NewOpenAIProvider(opts ...Option) (*OpenAIProvider, error) {
	cfg, err := resolveConfig(defaultOpenAIModel, "OPENAI_API_KEY", opts)
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
	return &OpenAIProvider{client: openai.NewClient(reqOpts...), model: cfg.model}, nil
}

// Model returns the model used when a request does not name one.
func (p *OpenAIProvider) Model() string { return p.model }

// Complete sends req as a single user message.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	completion, err := p.client.Chat.Completions.New(ctx, p.params(req))
	if err != nil {
		return nil, fmt.Errorf("openai: completion failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	// n defaults to 1, so only the first choice carries output.
	return &Response{
		Content: completion.Choices[0].Message.Content,
		Model:   completion.Model,
		Usage: Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

func (p *OpenAIProvider) params(req Request) openai.ChatCompletionNewParams {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	return params
}
