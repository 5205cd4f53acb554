// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/bizname/internal/llm"
)

// chatResponse is the JSON shape returned by the Chat Completions API.
type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

func newChatServer(t *testing.T, resp chatResponse, captured *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			var body map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
				*captured = body
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func okChat(content string) chatResponse {
	return chatResponse{
		ID:      "chatcmpl-test",
		Object:  "chat.completion",
		Created: 1700000000,
		Model:   "gpt-4o-mini",
		Choices: []chatChoice{{
			Message:      chatMessage{Role: "assistant", Content: content},
			FinishReason: "stop",
		}},
		Usage: chatUsage{PromptTokens: 12, CompletionTokens: 7, TotalTokens: 19},
	}
}

func newTestOpenAI(t *testing.T, url string) *llm.OpenAIProvider {
	t.Helper()
	p, err := llm.NewOpenAIProvider(
		llm.WithAPIKey("test-key"),
		llm.WithBaseURL(url),
		llm.WithMaxRetries(0),
	)
	require.NoError(t, err)
	return p
}

func TestNewOpenAIProvider_FromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-test-key")

	p, err := llm.NewOpenAIProvider()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.Model())
}

func TestNewOpenAIProvider_NoKeyError(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	p, err := llm.NewOpenAIProvider()
	assert.Nil(t, p)
	require.ErrorIs(t, err, llm.ErrMissingAPIKey)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewOpenAIProvider_ModelOption(t *testing.T) {
	p, err := llm.NewOpenAIProvider(llm.WithAPIKey("k"), llm.WithModel("gpt-4.1"))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", p.Model())
}

func TestOpenAIComplete_SendsParams(t *testing.T) {
	var captured map[string]interface{}
	srv := newChatServer(t, okChat("1. Rankly\n2. Searchlight"), &captured)
	defer srv.Close()

	temp := 0.8
	resp, err := newTestOpenAI(t, srv.URL).Complete(context.Background(), llm.Request{
		Prompt:      "names please",
		MaxTokens:   134,
		Temperature: &temp,
	})
	require.NoError(t, err)

	assert.Equal(t, "1. Rankly\n2. Searchlight", resp.Content)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, 12, resp.Usage.InputTokens)
	assert.Equal(t, 7, resp.Usage.OutputTokens)

	assert.Equal(t, "gpt-4o-mini", captured["model"])
	assert.Equal(t, float64(134), captured["max_completion_tokens"])
	assert.Equal(t, 0.8, captured["temperature"])

	msgs, ok := captured["messages"].([]interface{})
	require.True(t, ok, "messages should be an array")
	require.Len(t, msgs, 1)
	msg := msgs[0].(map[string]interface{})
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "names please", msg["content"])
}

func TestOpenAIComplete_ModelOverrideAndDefaults(t *testing.T) {
	var captured map[string]interface{}
	srv := newChatServer(t, okChat("ok"), &captured)
	defer srv.Close()

	_, err := newTestOpenAI(t, srv.URL).Complete(context.Background(), llm.Request{
		Prompt: "hi",
		Model:  "gpt-4.1-nano",
	})
	require.NoError(t, err)

	assert.Equal(t, "gpt-4.1-nano", captured["model"])
	_, hasTemp := captured["temperature"]
	assert.False(t, hasTemp, "temperature should be omitted when unset")
	_, hasMax := captured["max_completion_tokens"]
	assert.False(t, hasMax, "max_completion_tokens should be omitted when unset")

	msgs := captured["messages"].([]interface{})
	require.Len(t, msgs, 1)
	assert.Equal(t, "user", msgs[0].(map[string]interface{})["role"])
}

func TestOpenAIComplete_NoChoices(t *testing.T) {
	empty := okChat("")
	empty.Choices = []chatChoice{}
	srv := newChatServer(t, empty, nil)
	defer srv.Close()

	_, err := newTestOpenAI(t, srv.URL).Complete(context.Background(), llm.Request{Prompt: "hi"})
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}

func TestOpenAIComplete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer srv.Close()

	_, err := newTestOpenAI(t, srv.URL).Complete(context.Background(), llm.Request{Prompt: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai: completion failed")
}
