// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

// Package namegen generates business-name suggestions from a fixed prompt.
package namegen

import (
	"context"

	"github.com/davetashner/bizname/internal/llm"
	"github.com/davetashner/bizname/internal/prompt"
)

// PromptTemplate is the prompt sent for every request. Edit it before
// building to change what the service asks for.
const PromptTemplate prompt.Template = "Act as a business name expert. I need help coming up with a name for my {industry} company. " +
	"Please provide a list of 10 memorable, relevant, and unique business names with a {style} tone. " +
	"The names must not contain more than 5 syllables. "

// DefaultPlugin is the plugin handle used when none is configured.
const DefaultPlugin = "gpt"

// Fixed generation settings.
const (
	maxWords    = 100
	temperature = 0.8
)

// Config returns the generation settings used for every request.
func Config() llm.GenerationConfig {
	return llm.GenerationConfig{MaxWords: maxWords, Temperature: temperature}
}

// Request is the wire shape of a generate call.
type Request struct {
	Style    string `json:"style" jsonschema:"Tone of the names, e.g. playful, yet professional"`
	Industry string `json:"industry" jsonschema:"Industry the company operates in, e.g. seo marketing"`
}

// Param describes one input of Generate, for interactive collection.
type Param struct {
	Name  string
	Label string
}

// Params returns Generate's inputs in declaration order.
func Params() []Param {
	return []Param{
		{Name: "style", Label: "Style"},
		{Name: "industry", Label: "Industry"},
	}
}

// Service is the stateless name generation endpoint.
type Service struct {
	gen llm.TextGenerator
}

// New returns a Service that generates through gen.
func New(gen llm.TextGenerator) *Service {
	return &Service{gen: gen}
}

// Generate asks the plugin for business names. The output is returned
// exactly as the plugin produced it and errors are not wrapped.
func (s *Service) Generate(ctx context.Context, style, industry string) (string, error) {
	args := prompt.Args{"industry": industry, "style": style}
	return s.gen.GenerateText(ctx, PromptTemplate, args, Config())
}

// Do runs Generate for a decoded request.
func (s *Service) Do(ctx context.Context, req Request) (string, error) {
	return s.Generate(ctx, req.Style, req.Industry)
}
