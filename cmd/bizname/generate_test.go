// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ece *exitCodeError
	require.True(t, errors.As(err, &ece), "expected exitCodeError, got %v", err)
	return ece.code
}

func TestGenerateCmd_EndToEnd(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	srv := newChatEchoServer(t, 0)

	out, err := execute(t, "", "generate",
		"--base-url", srv.URL, "--max-retries", "0",
		"--style", "playful, yet professional", "--industry", "seo marketing")
	require.NoError(t, err)

	assert.Contains(t, out, "name for my seo marketing company")
	assert.Contains(t, out, "with a playful, yet professional tone")
	assert.NotContains(t, out, "{industry}")
	assert.NotContains(t, out, "{style}")
}

func TestGenerateCmd_SharedKeyEnv(t *testing.T) {
	isolate(t)
	t.Setenv(apiKeyEnv, "shared-key")
	srv := newChatEchoServer(t, 0)

	_, err := execute(t, "", "generate", "--base-url", srv.URL, "--max-retries", "0",
		"--style", "s", "--industry", "i")
	assert.NoError(t, err)
}

func TestGenerateCmd_RequiresFlags(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "generate", "--style", "only")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "industry")
}

func TestGenerateCmd_ProviderFailure(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "test-key")
	srv := newChatEchoServer(t, http.StatusInternalServerError)

	_, err := execute(t, "", "generate", "--base-url", srv.URL, "--max-retries", "0",
		"--style", "s", "--industry", "i")
	require.Error(t, err)
	assert.Equal(t, ExitGenerateFailed, exitCode(t, err))
	assert.Contains(t, err.Error(), "openai: completion failed")
}

func TestGenerateCmd_MissingCredential(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "generate", "--style", "s", "--industry", "i")
	require.Error(t, err)
	assert.Equal(t, ExitSetupFailed, exitCode(t, err))
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestGenerateCmd_UnknownPlugin(t *testing.T) {
	isolate(t)

	_, err := execute(t, "", "generate", "--plugin", "gpt-3", "--style", "s", "--industry", "i")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, exitCode(t, err))
	assert.Contains(t, err.Error(), "unknown plugin")
}
