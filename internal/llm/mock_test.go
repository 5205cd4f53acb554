// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package llm_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/bizname/internal/llm"
)

func TestMockProvider_FixedReply(t *testing.T) {
	m := llm.NewMockProvider("1. Acme")

	for range 2 {
		resp, err := m.Complete(context.Background(), llm.Request{Prompt: "p"})
		require.NoError(t, err)
		assert.Equal(t, "1. Acme", resp.Content)
		assert.Equal(t, "mock", resp.Model)
	}
	assert.Len(t, m.Calls(), 2)
}

func TestFailingProvider(t *testing.T) {
	quota := errors.New("quota exceeded")
	m := llm.NewFailingProvider(quota)

	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "p"})
	assert.Nil(t, resp)
	assert.Same(t, quota, err)
	assert.Len(t, m.Calls(), 1, "failed calls are still recorded")
}

func TestEchoProvider_ReturnsPrompt(t *testing.T) {
	m := llm.NewEchoProvider()

	resp, err := m.Complete(context.Background(), llm.Request{Prompt: "names for a bakery"})
	require.NoError(t, err)
	assert.Equal(t, "names for a bakery", resp.Content)
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	m := llm.NewMockProvider("")
	temp := 0.8
	req := llm.Request{Prompt: "p", Model: "m", MaxTokens: 134, Temperature: &temp}

	_, err := m.Complete(context.Background(), req)
	require.NoError(t, err)

	calls := m.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, req, calls[0])

	calls[0].Prompt = "mutated"
	assert.Equal(t, "p", m.Calls()[0].Prompt, "Calls must return a copy")
}

func TestMockProvider_CancelledContext(t *testing.T) {
	m := llm.NewMockProvider("unused")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Complete(ctx, llm.Request{Prompt: "p"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Calls())
}

func TestMockProvider_ConcurrentAccess(t *testing.T) {
	m := llm.NewEchoProvider()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Complete(context.Background(), llm.Request{Prompt: "p"})
		}()
	}
	wg.Wait()
	assert.Len(t, m.Calls(), 20)
}
