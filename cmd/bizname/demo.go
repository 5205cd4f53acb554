// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/davetashner/bizname/internal/demo"
	"github.com/davetashner/bizname/internal/namegen"
)

// demoCmd runs the interactive console loop. It is also the root command's
// default action.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Try name generation interactively",
	Long: `Run one worked example, then prompt for a style and an industry and
print the generated names, repeating until you answer anything but "y".

A temporary session with the configured plugin is opened for the run and
closed on exit.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	sess, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer sess.Close() //nolint:errcheck // release is best-effort

	if err := demo.Run(cmd.Context(), namegen.New(sess), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return exitError(ExitGenerateFailed, "bizname: %v", err)
	}
	return nil
}
