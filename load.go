// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadRoutesFile reads and decodes a route table file.
func LoadRoutesFile(path string) (RouteTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RouteTable{}, fmt.Errorf("%w: %w", ErrReadRoutesFile, err)
	}

	return ParseRoutes(data)
}

// ParseRoutes decodes a route table from JSON or YAML bytes.
func ParseRoutes(data []byte) (RouteTable, error) {
	var table RouteTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return RouteTable{}, fmt.Errorf("%w: %w", ErrDecodeRoutes, err)
	}

	return table, nil
}
