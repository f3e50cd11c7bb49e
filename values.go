// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	// refPrefix marks a reference to another resolved field value.
	refPrefix = "ref:"
	// contextPrefix marks a reference to the shared validation context.
	contextPrefix = "context:"
	// contextSigil replaces contextPrefix in display paths.
	contextSigil = "$"
)

var referencePattern = regexp.MustCompile(`^(ref|context):.+`)

// isReference reports whether value is a reference token.
func isReference(value any) bool {
	token, ok := value.(string)
	return ok && referencePattern.MatchString(token)
}

// formatReference converts reference token into display path.
func formatReference(token string) string {
	if path, ok := strings.CutPrefix(token, refPrefix); ok {
		return path
	}

	if path, ok := strings.CutPrefix(token, contextPrefix); ok {
		return contextSigil + path
	}

	return token
}

// hasReference reports whether any value is a reference token.
func hasReference(values []any) bool {
	for _, value := range values {
		if isReference(value) {
			return true
		}
	}

	return false
}

// filterValues drops empty and open-range sentinels and renders the rest for display.
func filterValues(kind Kind, values []any) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if text, ok := value.(string); ok && text == "" {
			continue
		}

		if kind == KindNumber && isInfinity(value) {
			continue
		}

		if isReference(value) {
			out = append(out, formatReference(value.(string)))
			continue
		}

		out = append(out, mustJSONInline(value))
	}

	if len(out) == 0 {
		return nil
	}

	return out
}

// isInfinity reports whether value is a positive or negative infinite number.
func isInfinity(value any) bool {
	switch typed := value.(type) {
	case float64:
		return math.IsInf(typed, 0)
	case float32:
		return math.IsInf(float64(typed), 0)
	default:
		return false
	}
}

// mustJSONInline marshals value as single-line JSON text without HTML escaping.
func mustJSONInline(value any) string {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(jsonSafe(value)); err != nil {
		return fmt.Sprintf("%v", value)
	}

	return strings.TrimSuffix(out.String(), "\n")
}

// jsonSafe rewrites values encoding/json rejects: non-finite floats become null
// and mappings with non-string keys get their keys formatted as text.
func jsonSafe(value any) any {
	switch typed := value.(type) {
	case float64:
		if math.IsInf(typed, 0) || math.IsNaN(typed) {
			return nil
		}
	case float32:
		if math.IsInf(float64(typed), 0) || math.IsNaN(float64(typed)) {
			return nil
		}
	case []any:
		out := make([]any, len(typed))
		for index, item := range typed {
			out[index] = jsonSafe(item)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = jsonSafe(item)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = jsonSafe(item)
		}

		return out
	}

	return value
}
