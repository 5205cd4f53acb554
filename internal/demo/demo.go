// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

// Package demo runs the interactive console loop for trying the name
// service locally.
package demo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/davetashner/bizname/internal/namegen"
)

// Title heads the demo output.
const Title = "Generate business names"

// Example inputs used for the first, non-interactive run.
const (
	ExampleStyle    = "playful, yet professional"
	ExampleIndustry = "seo marketing"
)

// Generator is the operation the demo exercises.
type Generator interface {
	Generate(ctx context.Context, style, industry string) (string, error)
}

var (
	colorTitle  = color.New(color.Bold)
	colorHeader = color.New(color.FgGreen)
	colorLabel  = color.New(color.FgHiBlack)
	colorCmd    = color.New(color.FgGreen, color.BgBlack)
)

// ShouldContinue reports whether answer asks for another round. Only "y",
// in any case and with surrounding whitespace, does.
func ShouldContinue(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}

// Run prints a worked example, then prompts on in for inputs until the user
// stops. Errors from gen abort the loop and are returned as is. End of input
// is treated as a request to stop.
func Run(ctx context.Context, gen Generator, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	_, _ = colorTitle.Fprintln(out, Title)
	_, _ = fmt.Fprintln(out)

	// Example.
	_, _ = colorHeader.Fprintln(out, "First, let's run through an example...")
	printLabeled(out, "Style of tone for name:", ExampleStyle)
	printLabeled(out, "Industry:", ExampleIndustry)
	_, _ = colorLabel.Fprintln(out, "Generating...")
	result, err := gen.Generate(ctx, ExampleStyle, ExampleIndustry)
	if err != nil {
		return err
	}
	printLabeled(out, "Output:", result+"\n")

	// Loop.
	_, _ = colorHeader.Fprintln(out, "Now, try with your own inputs...")
	for again := true; again; {
		values, ok := collect(scanner, out)
		if !ok {
			break
		}

		_, _ = colorLabel.Fprintln(out, "Generating...")
		result, err := gen.Generate(ctx, values["style"], values["industry"])
		if err != nil {
			return err
		}
		printLabeled(out, "Results:", result+"\n")

		_, _ = colorHeader.Fprint(out, "Generate another (y/n)? ")
		again = scanner.Scan() && ShouldContinue(scanner.Text())
		_, _ = fmt.Fprintln(out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// Done.
	_, _ = fmt.Fprintln(out, "Ready to share with your friends (and the world)?")
	_, _ = fmt.Fprint(out, "Run ")
	_, _ = colorCmd.Fprint(out, "$ bizname serve ")
	_, _ = fmt.Fprintln(out, " to get an HTTP endpoint at POST /generate.")
	return nil
}

// collect prompts for every parameter of Generate. It returns false if the
// input ends first.
func collect(scanner *bufio.Scanner, out io.Writer) (map[string]string, bool) {
	values := make(map[string]string, len(namegen.Params()))
	for _, p := range namegen.Params() {
		_, _ = colorLabel.Fprintf(out, "%s: ", p.Label)
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			return nil, false
		}
		values[p.Name] = scanner.Text()
	}
	return values, true
}

func printLabeled(out io.Writer, label, value string) {
	_, _ = colorLabel.Fprint(out, label)
	_, _ = fmt.Fprintln(out, " "+value)
}
