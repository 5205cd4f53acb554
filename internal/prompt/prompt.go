// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

// Package prompt fills named-slot prompt templates.
package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingArg is returned by Render when a slot has no value.
var ErrMissingArg = errors.New("prompt: missing argument")

// Template is prompt text with named slots written as {name}.
type Template string

// Args maps slot names to the values substituted for them.
type Args map[string]string

// Slots returns the slot names in order of first appearance.
func (t Template) Slots() []string {
	var names []string
	seen := make(map[string]bool)
	scan(string(t), func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	})
	return names
}

// Render substitutes args into the template in a single pass. Substituted
// values are not re-scanned, so a value containing "{style}" is emitted as is.
func (t Template) Render(args Args) (string, error) {
	s := string(t)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != '{' {
			b.WriteByte(s[i])
			i++
			continue
		}
		end := slotEnd(s, i)
		if end < 0 {
			b.WriteByte(s[i])
			i++
			continue
		}
		name := s[i+1 : end]
		val, ok := args[name]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrMissingArg, name)
		}
		b.WriteString(val)
		i = end + 1
	}
	return b.String(), nil
}

// scan calls fn for every slot in s.
func scan(s string, fn func(name string)) {
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		if end := slotEnd(s, i); end > 0 {
			fn(s[i+1 : end])
			i = end
		}
	}
}

// slotEnd returns the index of the closing brace of the slot opening at
// s[open], or -1 if the braces do not enclose an identifier.
func slotEnd(s string, open int) int {
	for j := open + 1; j < len(s); j++ {
		c := s[j]
		switch {
		case c == '}':
			if j == open+1 {
				return -1
			}
			return j
		case c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && j > open+1:
		default:
			return -1
		}
	}
	return -1
}
