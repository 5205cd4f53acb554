// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

// Package mcpserver exposes the name service as a Model Context Protocol tool.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// New creates a new MCP server with the generate tool registered.
func New(version string, gen Generator) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "bizname",
		Title:   "Bizname Business Name Generator",
		Version: version,
	}, nil)

	registerTools(server, gen)
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, gen Generator, transport mcp.Transport) error {
	server := New(version, gen)
	return server.Run(ctx, transport)
}
