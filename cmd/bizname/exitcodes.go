// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the bizname CLI.
const (
	ExitOK             = 0 // Completed normally.
	ExitInvalidArgs    = 1 // Invalid arguments or config.
	ExitSetupFailed    = 2 // No session could be opened (plugin or credential).
	ExitGenerateFailed = 3 // The generation plugin returned an error.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitSetupFailed:
			msg = "bizname: could not open a session"
		case ExitGenerateFailed:
			msg = "bizname: generation failed"
		default:
			msg = "bizname: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
