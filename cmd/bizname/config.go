// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/bizname/internal/config"
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View bizname configuration",
	Long: `View bizname configuration.

Bizname reads .bizname.yaml (or .bizname.toml) from the current directory.
A global config at ~/.config/bizname/config.yaml provides defaults.
Repo-level settings override global settings, and flags override both.`,
}

// configGetCmd retrieves a configuration value by dot-notation key path.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a merged configuration value by dot-notation key path.

Examples:
  bizname config get plugin
  bizname config get server.addr`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configListCmd lists all configuration values with their source.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long: `List every set configuration value, annotated with whether it comes
from the repo config or the global config. Repo values override global values.`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return exitError(ExitInvalidArgs, "bizname: %v", err)
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return exitError(ExitInvalidArgs, "bizname: %v", err)
	}
	return printValue(cmd, val)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	globalCfg, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	repoCfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading repo config: %w", err)
	}

	globalMap, err := configToFlatMap(globalCfg)
	if err != nil {
		return err
	}
	repoMap, err := configToFlatMap(repoCfg)
	if err != nil {
		return err
	}

	type entry struct {
		value  any
		source string
	}
	seen := make(map[string]entry)
	for k, v := range globalMap {
		seen[k] = entry{value: v, source: "global"}
	}
	for k, v := range repoMap {
		seen[k] = entry{value: v, source: "repo"}
	}

	if len(seen) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintf(w, "Create %s to choose a plugin, model or server address.\n", config.FileName)
		return nil
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	globalColor := color.New(color.FgCyan)
	repoColor := color.New(color.FgGreen)
	for _, k := range keys {
		e := seen[k]
		label := globalColor.Sprint("(global)")
		if e.source == "repo" {
			label = repoColor.Sprint("(repo)")
		}
		_, _ = fmt.Fprintf(w, "%s = %v %s\n", k, e.value, label)
	}
	return nil
}

func configToFlatMap(cfg *config.Config) (map[string]any, error) {
	m, err := config.ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return config.FlattenMap(m, ""), nil
}

// printValue outputs a value: scalars as plain text, maps as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}
