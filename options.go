// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

// Options configures markdown rendering.
type Options struct {
	// Title is the document heading; "API reference" when empty.
	Title string
	// Host overrides the route table host shown under the title.
	Host string
	// SourcePath is shown as the origin of the route table when set.
	SourcePath string
	// TemplateName selects a built-in template ("list" or "table").
	TemplateName string
	// TemplateText is a custom template and takes precedence over TemplateName.
	TemplateText string
	// WrapWidth wraps route descriptions; 80 when not positive.
	WrapWidth int
	// ListMarker is the unordered list marker, "*" or "-".
	ListMarker string
	// Jobs bounds concurrent route normalization; GOMAXPROCS when not positive.
	Jobs int
	// Filter selects and orders documented routes.
	Filter RouteFilter
}
