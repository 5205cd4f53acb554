// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	biznamelog "github.com/davetashner/bizname/internal/log"
	"github.com/davetashner/bizname/internal/namegen"
	"github.com/davetashner/bizname/internal/server"
)

// Serve command flags.
var (
	serveAddr      string
	serveLogFormat string
)

// serveCmd exposes the generate operation over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve POST /generate over HTTP",
	Long: `Start an HTTP server exposing:
  POST /generate  {"style": "...", "industry": "..."} -> generated text
  GET  /healthz   liveness check
  GET  /metrics   Prometheus metrics

Provider failures are answered with 502 and the provider's message.
The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, then "+server.DefaultOptions().Addr+")")
	serveCmd.Flags().StringVar(&serveLogFormat, "log-format", biznamelog.FormatText, "log format: text or json")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := biznamelog.SetupWriter(os.Stderr, serveLogFormat, verbose, quiet); err != nil {
		return exitError(ExitInvalidArgs, "bizname: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return exitError(ExitInvalidArgs, "bizname: %v", err)
	}
	opts, err := serverOptions(cfg, serveAddr)
	if err != nil {
		return exitError(ExitInvalidArgs, "bizname: %v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close() //nolint:errcheck // release is best-effort

	return server.New(namegen.New(sess), opts).Run(ctx)
}
