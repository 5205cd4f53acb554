// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/davetashner/bizname/internal/mcpserver"
	"github.com/davetashner/bizname/internal/namegen"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running bizname as an MCP server, exposing the generate tool to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Start an MCP server on stdin/stdout exposing one tool:
  - generate: suggest business names for a style and an industry

The session with the generation plugin stays open until the client
disconnects.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		sess, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		defer sess.Close() //nolint:errcheck // release is best-effort

		return mcpserver.Run(cmd.Context(), Version, namegen.New(sess), &mcp.StdioTransport{})
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
