// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
)

// fileConfig holds rendering defaults read from a TOML config file.
// Command line flags take precedence over every value.
type fileConfig struct {
	Title        string   `toml:"title"`
	Host         string   `toml:"host"`
	Template     string   `toml:"template"`
	Wrap         int      `toml:"wrap"`
	ListMarker   string   `toml:"list_marker"`
	Jobs         int      `toml:"jobs"`
	MethodsOrder []string `toml:"methods_order"`
}

// loadFileConfig decodes config file; empty path yields zero config.
// Unknown keys are reported as warnings and otherwise ignored.
func loadFileConfig(path string, warnings io.Writer) (fileConfig, error) {
	var cfg fileConfig
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	for _, key := range meta.Undecoded() {
		writeCLIWarning(warnings, fmt.Sprintf("unknown config key %q in %s", key.String(), path))
	}

	return cfg, nil
}

// writeCLIWarning writes one highlighted warning line.
func writeCLIWarning(output io.Writer, message string) {
	_, _ = color.New(color.FgYellow).Fprintln(output, "warning: "+message)
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}

// firstPositive returns the first value greater than zero.
func firstPositive(values ...int) int {
	for _, value := range values {
		if value > 0 {
			return value
		}
	}

	return 0
}
