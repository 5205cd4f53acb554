// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	biznamelog "github.com/davetashner/bizname/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for bizname. Run without a subcommand it
// starts the interactive demo.
var rootCmd = &cobra.Command{
	Use:   "bizname",
	Short: "Generate business names with a hosted language model",
	Long: `Bizname asks a hosted language model for ten memorable business names,
given an industry and the tone you want them written in.

Run it with no arguments to try it interactively, or use "bizname serve"
to expose the same operation at POST /generate.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		biznamelog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	pluginFlags.bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
