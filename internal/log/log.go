// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

// Package log configures structured logging for bizname using log/slog.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Supported handler formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Level maps verbosity flags to a slog level.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Setup configures the default slog logger to write text to stderr.
func Setup(verbose, quiet bool) {
	_ = SetupWriter(os.Stderr, FormatText, verbose, quiet)
}

// SetupWriter configures the default slog logger to write to w in the given
// format ("text" or "json"; empty means text).
func SetupWriter(w io.Writer, format string, verbose, quiet bool) error {
	opts := &slog.HandlerOptions{Level: Level(verbose, quiet)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q (must be text or json)", format)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}
