// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import "errors"

var (
	// ErrNilDescription is returned when a schema description node required by its parent is missing.
	ErrNilDescription = errors.New("nil schema description")
	// ErrUnknownKind is returned when a schema description carries a kind outside the known set.
	ErrUnknownKind = errors.New("unknown schema kind")
	// ErrDecodeDescription is returned when schema description decoding fails.
	ErrDecodeDescription = errors.New("decode schema description")
	// ErrDecodeRoutes is returned when route table decoding fails.
	ErrDecodeRoutes = errors.New("decode route table")
	// ErrReadRoutesFile is returned when route table file loading fails.
	ErrReadRoutesFile = errors.New("read route table file")
	// ErrDescribeRoute is returned when one route section cannot be normalized.
	ErrDescribeRoute = errors.New("describe route")
	// ErrNoRoutes is returned when no route is left to document after filtering.
	ErrNoRoutes = errors.New("no routes to document")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrParseCustomTemplate is returned when caller template text cannot be parsed.
	ErrParseCustomTemplate = errors.New("parse custom template")
	// ErrUnknownExampleMode is returned when example generation mode is not supported.
	ErrUnknownExampleMode = errors.New("unknown example mode")
	// ErrUnknownExampleFormat is returned when example generation format is not supported.
	ErrUnknownExampleFormat = errors.New("unknown example format")
	// ErrEncodeExampleJSON is returned when generated example JSON encoding fails.
	ErrEncodeExampleJSON = errors.New("encode example json")
	// ErrEncodeExampleYAML is returned when generated example YAML encoding fails.
	ErrEncodeExampleYAML = errors.New("encode example yaml")
)
