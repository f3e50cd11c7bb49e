// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"unicode"
)

// templateFS stores built-in markdown templates embedded into the package.
//
//go:embed templates/*.md.gotmpl
var templateFS embed.FS

// builtInTemplateFiles maps template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateListName:  "templates/list.md.gotmpl",
	templateTableName: "templates/table.md.gotmpl",
}

// parsedBuiltinTemplates parses every built-in template once per process.
// Parsed templates are safe for concurrent execution, so handlers share them.
var parsedBuiltinTemplates = sync.OnceValues(func() (map[string]*template.Template, error) {
	out := make(map[string]*template.Template, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		text, err := BuiltinTemplate(name)
		if err != nil {
			return nil, err
		}

		parsed, err := template.New(name).Funcs(templateFuncs()).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, name, err)
		}

		out[name] = parsed
	}

	return out, nil
})

// resolveTemplate returns the custom template when given, otherwise the selected built-in one.
func resolveTemplate(opt Options) (*template.Template, error) {
	if text := strings.TrimSpace(opt.TemplateText); text != "" {
		parsed, err := template.New("custom").Funcs(templateFuncs()).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseCustomTemplate, err)
		}

		return parsed, nil
	}

	name := normalizeTemplateName(opt.TemplateName)
	if name == "" {
		name = defaultTemplateName
	}

	builtins, err := parsedBuiltinTemplates()
	if err != nil {
		return nil, err
	}

	parsed, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	return parsed, nil
}

// normalizeTemplateName normalizes built-in template identifiers.
func normalizeTemplateName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// templateFuncs provides utility functions available inside markdown templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"jsonInline": func(value any) string {
			return escapeInline(mustJSONInline(value))
		},
		"headingAnchor": markdownHeadingAnchor,
		"tableCell":     escapeTableCell,
		"details":       joinAttributes,
	}
}

// markdownHeadingAnchor converts heading text into a GitHub-style anchor slug.
// Letters and digits are kept, whitespace, '-' and '_' separate words, anything else is dropped.
func markdownHeadingAnchor(heading string) string {
	kept := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r), r == '-', r == '_':
			return ' '
		default:
			return -1
		}
	}, heading)

	return strings.Join(strings.Fields(kept), "-")
}

// escapeTableCell keeps a value on one line and escapes pipe separators.
func escapeTableCell(value string) string {
	return strings.ReplaceAll(sanitizeText(value), "|", "\\|")
}

// joinAttributes renders attributes as one "Name: value; ..." line.
func joinAttributes(attributes []attributeView) string {
	parts := make([]string, 0, len(attributes))
	for _, attribute := range attributes {
		parts = append(parts, attribute.Name+": "+attribute.Value)
	}

	return strings.Join(parts, "; ")
}
