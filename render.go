// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	// defaultTitle is used when caller does not provide custom title.
	defaultTitle = "API reference"
	// defaultTemplateName is used when caller does not provide template name.
	defaultTemplateName = "list"
	// defaultWrapWidth wraps plain description paragraphs at this width.
	defaultWrapWidth = 80
	// defaultListMarker is used when caller does not provide list marker style.
	defaultListMarker = "*"
)

const (
	templateListName  = "list"
	templateTableName = "table"
)

// RenderFile reads a route table file and renders markdown documentation.
func RenderFile(path string, opt Options) (string, error) {
	table, err := LoadRoutesFile(path)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(opt.SourcePath) == "" {
		opt.SourcePath = path
	}

	return Render(table, opt)
}

// Render filters, describes and renders route table into a CommonMark document.
func Render(table RouteTable, opt Options) (string, error) {
	routes := FilterRoutes(table.Routes, opt.Filter)
	if len(routes) == 0 {
		return "", ErrNoRoutes
	}

	docs, err := DescribeRoutes(context.Background(), routes, opt.Jobs)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(opt.Host) == "" {
		opt.Host = table.Host
	}

	return RenderDocs(docs, opt)
}

// RenderDocs renders already described routes in the given order.
func RenderDocs(docs []RouteDoc, opt Options) (string, error) {
	if len(docs) == 0 {
		return "", ErrNoRoutes
	}

	view := buildRenderView(docs, opt)

	markdownTemplate, err := resolveTemplate(opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := markdownTemplate.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteMarkdownTemplate, err)
	}

	return collapseBlankLines(out.String()), nil
}

// BuiltinTemplateNames returns all available built-in template names.
func BuiltinTemplateNames() []string {
	return slices.Sorted(maps.Keys(builtInTemplateFiles))
}

// BuiltinTemplate returns one built-in template by name.
func BuiltinTemplate(name string) (string, error) {
	name = normalizeTemplateName(name)
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadBuiltinTemplate, err)
	}

	return string(data), nil
}
