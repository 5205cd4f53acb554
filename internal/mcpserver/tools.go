// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/bizname/internal/namegen"
	"github.com/davetashner/bizname/internal/redact"
)

// Generator is the operation behind the generate tool.
type Generator interface {
	Generate(ctx context.Context, style, industry string) (string, error)
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds the generate tool to the MCP server.
func registerTools(server *mcp.Server, gen Generator) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Suggest ten memorable business names for an industry, written in the requested tone. Returns the model's text as is.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, generateHandler(gen))
}

func generateHandler(gen Generator) func(context.Context, *mcp.CallToolRequest, namegen.Request) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input namegen.Request) (*mcp.CallToolResult, any, error) {
		text, err := gen.Generate(ctx, input.Style, input.Industry)
		if err != nil {
			msg := redact.String(err.Error())
			slog.Error("generate tool failed", "error", msg)
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: msg}},
			}, nil, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: text},
			},
		}, nil, nil
	}
}
