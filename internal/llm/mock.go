// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"sync"
)

// MockProvider is a Provider for tests. It records every request and answers
// it with reply.
type MockProvider struct {
	reply func(Request) (string, error)

	mu    sync.Mutex
	calls []Request
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider returns a mock that answers every request with content.
func NewMockProvider(content string) *MockProvider {
	return &MockProvider{reply: func(Request) (string, error) { return content, nil }}
}

// NewFailingProvider returns a mock whose every call fails with err.
func NewFailingProvider(err error) *MockProvider {
	return &MockProvider{reply: func(Request) (string, error) { return "", err }}
}

// NewEchoProvider returns a mock that answers with the prompt it was sent.
func NewEchoProvider() *MockProvider {
	return &MockProvider{reply: func(r Request) (string, error) { return r.Prompt, nil }}
}

// Complete records req, then returns the mock's reply. A cancelled context
// fails before anything is recorded.
func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	content, err := m.reply(req)
	if err != nil {
		return nil, err
	}
	return &Response{Content: content, Model: "mock"}, nil
}

// Calls returns a copy of the requests received so far.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}
