// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// peerRelationWith is the dependency type that requires peers to be present.
const peerRelationWith = "with"

// formatRuleArgument converts rule argument into display params.
func formatRuleArgument(rule Rule, path string) (any, error) {
	switch arg := rule.Arg.(type) {
	case *AssertArgument:
		value, err := normalize(arg.Schema, "", true, path+".assert")
		if err != nil {
			return nil, err
		}

		return &DocAssertion{Key: formatReference(arg.Ref), Value: value}, nil
	case *PatternArgument:
		return formatPattern(arg), nil
	case string:
		if isReference(arg) {
			return DocReference{Ref: formatReference(arg)}, nil
		}

		return arg, nil
	case nil:
		return "", nil
	default:
		return arg, nil
	}
}

// formatPattern renders pattern text with optional name and inversion marker.
func formatPattern(arg *PatternArgument) string {
	pattern := arg.Pattern
	if arg.Name != "" {
		pattern += " (" + arg.Name + ")"
	}

	if arg.Invert {
		pattern += " - inverted"
	}

	return pattern
}

// formatPeers renders one dependency constraint as a sentence.
func formatPeers(dependency Dependency) string {
	if dependency.Key != "" {
		negation := "not "
		if dependency.Type == peerRelationWith {
			negation = ""
		}

		return fmt.Sprintf("Requires %s to %sbe present when %s is.",
			strings.Join(dependency.Peers, ", "), negation, dependency.Key)
	}

	return "Requires " + strings.Join(dependency.Peers, " "+dependency.Type+" ") + "."
}

// formatDependencies renders all dependencies, nil when there are none.
func formatDependencies(dependencies []Dependency) []string {
	if len(dependencies) == 0 {
		return nil
	}

	out := make([]string, 0, len(dependencies))
	for _, dependency := range dependencies {
		out = append(out, formatPeers(dependency))
	}

	return out
}

// capitalize upper-cases the first rune and keeps the rest as is.
func capitalize(text string) string {
	_, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return text
	}

	// Casers keep state, so one is built per call.
	return cases.Upper(language.Und).String(text[:size]) + text[size:]
}

// processNotes wraps a single note into a sequence; missing notes stay nil.
func processNotes(notes any) []any {
	switch typed := notes.(type) {
	case nil:
		return nil
	case string:
		if typed == "" {
			return nil
		}

		return []any{typed}
	case []any:
		return slices.Clone(typed)
	case []string:
		out := make([]any, 0, len(typed))
		for _, note := range typed {
			out = append(out, note)
		}

		return out
	default:
		return []any{typed}
	}
}
