// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davetashner/bizname/internal/namegen"
)

// Generate command flags.
var (
	generateStyle    string
	generateIndustry string
)

// generateCmd runs a single generation and prints the plugin's output.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate business names once",
	Long: `Generate business names for one style and industry and print the
plugin's output unchanged.

Examples:
  bizname generate --style "playful, yet professional" --industry "seo marketing"
  bizname generate --plugin claude --style calm --industry "yoga studio"`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "tone of the names")
	generateCmd.Flags().StringVar(&generateIndustry, "industry", "", "industry the company operates in")
	_ = generateCmd.MarkFlagRequired("style")
	_ = generateCmd.MarkFlagRequired("industry")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close() //nolint:errcheck // release is best-effort

	text, err := namegen.New(sess).Generate(cmd.Context(), generateStyle, generateIndustry)
	if err != nil {
		return exitError(ExitGenerateFailed, "bizname: %v", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
