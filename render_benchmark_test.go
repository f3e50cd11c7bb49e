// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"context"
	"os"
	"testing"
)

// BenchmarkParseRoutes measures route table decoding cost.
func BenchmarkParseRoutes(b *testing.B) {
	routesBytes := readBenchmarkFile(b, routesFixturePath)

	b.ReportAllocs()
	b.SetBytes(int64(len(routesBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := ParseRoutes(routesBytes); err != nil {
			b.Fatalf("ParseRoutes: %v", err)
		}
	}
}

// BenchmarkDescribeRoutes measures concurrent normalization of all documented routes.
func BenchmarkDescribeRoutes(b *testing.B) {
	table, err := ParseRoutes(readBenchmarkFile(b, routesFixturePath))
	if err != nil {
		b.Fatalf("ParseRoutes: %v", err)
	}

	routes := FilterRoutes(table.Routes, RouteFilter{})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := DescribeRoutes(context.Background(), routes, 0); err != nil {
			b.Fatalf("DescribeRoutes: %v", err)
		}
	}
}

// BenchmarkRenderListTemplate measures full in-memory render flow for list template.
func BenchmarkRenderListTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, "list")
}

// BenchmarkRenderTableTemplate measures full in-memory render flow for table template.
func BenchmarkRenderTableTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, "table")
}

// BenchmarkRenderFileListTemplate measures read + render flow from file path.
func BenchmarkRenderFileListTemplate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := RenderFile(routesFixturePath, Options{
			Title:        "API reference",
			TemplateName: "list",
		})
		if err != nil {
			b.Fatalf("RenderFile: %v", err)
		}
	}
}

// benchmarkRenderTemplate runs common in-memory benchmark for selected template.
func benchmarkRenderTemplate(b *testing.B, templateName string) {
	routesBytes := readBenchmarkFile(b, routesFixturePath)
	table, err := ParseRoutes(routesBytes)
	if err != nil {
		b.Fatalf("ParseRoutes: %v", err)
	}

	options := Options{
		Title:        "API reference",
		SourcePath:   routesFixturePath,
		TemplateName: templateName,
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(routesBytes)))

	for i := 0; i < b.N; i++ {
		_, err := Render(table, options)
		if err != nil {
			b.Fatalf("Render: %v", err)
		}
	}
}

// readBenchmarkFile loads benchmark fixture file and fails benchmark on read errors.
func readBenchmarkFile(b *testing.B, path string) []byte {
	b.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read benchmark file %q: %v", path, err)
	}

	if len(data) == 0 {
		b.Fatalf("empty benchmark file: %s", path)
	}

	return data
}
