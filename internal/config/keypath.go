// Copyright 2026 The Bizname Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetValue retrieves a value from a Config by dot-notation key path.
// It returns scalar values as-is, and maps for intermediate nodes.
func GetValue(cfg *Config, keyPath string) (any, error) {
	m, err := ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return navigateMap(m, keyPath)
}

// ToMap converts a Config to a nested map via YAML round-trip. Unset fields
// are absent.
func ToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// FlattenMap recursively flattens a nested map to dot-notation keys.
func FlattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			for sk, sv := range FlattenMap(sub, key) {
				result[sk] = sv
			}
		} else {
			result[key] = v
		}
	}
	return result
}

// navigateMap traverses a nested map using a dot-notation key path.
func navigateMap(m map[string]any, keyPath string) (any, error) {
	var current any = m
	for _, part := range strings.Split(keyPath, ".") {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q: parent is not a map", part)
		}
		val, exists := cm[part]
		if !exists {
			return nil, fmt.Errorf("key %q not found", keyPath)
		}
		current = val
	}
	return current, nil
}
