// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"fmt"
	"strings"
)

// nodeAttributes renders flat attribute list for one documented node.
func nodeAttributes(node *DocNode) []attributeView {
	if node == nil {
		return nil
	}

	out := make([]attributeView, 0, 16)

	if flags := node.Flags; flags != nil {
		if flags.Forbidden {
			out = append(out, attributeView{Name: "Forbidden", Value: yesNo(true)})
		}

		if flags.Stripped {
			out = append(out, attributeView{Name: "Stripped", Value: yesNo(true)})
		}

		if flags.Default != nil {
			out = append(out, attributeView{Name: "Default", Value: inlineCode(mustJSONInline(flags.Default))})
		}

		if flags.Encoding != "" {
			out = append(out, attributeView{Name: "Encoding", Value: inlineCode(flags.Encoding)})
		}

		if flags.Insensitive {
			out = append(out, attributeView{Name: "Case insensitive", Value: yesNo(true)})
		}

		if flags.AllowUnknown != nil {
			out = append(out, attributeView{Name: "Unknown keys", Value: allowedRejected(*flags.AllowUnknown)})
		}

		if flags.AllowOnly {
			out = append(out, attributeView{Name: "Only allowed values", Value: yesNo(true)})
		}
	}

	if node.Kind == KindReference {
		if len(node.Target) > 0 {
			out = append(out, attributeView{Name: "References", Value: codeList(node.Target)})
		}
	} else if len(node.AllowedValues) > 0 {
		out = append(out, attributeView{Name: "Allowed values", Value: codeList(node.AllowedValues)})
	}

	if len(node.DisallowedValues) > 0 {
		out = append(out, attributeView{Name: "Disallowed values", Value: codeList(node.DisallowedValues)})
	}

	if len(node.Examples) > 0 {
		out = append(out, attributeView{Name: "Examples", Value: jsonList(node.Examples)})
	}

	if node.Unit != "" {
		out = append(out, attributeView{Name: "Unit", Value: inlineCode(node.Unit)})
	}

	if len(node.Tags) > 0 {
		out = append(out, attributeView{Name: "Tags", Value: codeList(node.Tags)})
	}

	for _, note := range noteLines(node.Notes) {
		out = append(out, attributeView{Name: "Note", Value: note})
	}

	for _, peer := range node.Peers {
		out = append(out, attributeView{Name: "Peers", Value: sanitizeText(peer)})
	}

	if len(node.Rules) > 0 {
		rules := make([]string, 0, len(node.Rules))
		for _, rule := range node.Rules {
			rules = append(rules, ruleText(rule))
		}

		out = append(out, attributeView{Name: "Rules", Value: strings.Join(rules, ", ")})
	}

	if node.Meta != nil {
		out = append(out, attributeView{Name: "Meta", Value: inlineCode(mustJSONInline(node.Meta))})
	}

	return out
}

// routeAttributes renders route-level metadata.
func routeAttributes(doc RouteDoc) []attributeView {
	out := make([]attributeView, 0, 4)
	if len(doc.Tags) > 0 {
		out = append(out, attributeView{Name: "Tags", Value: codeList(doc.Tags)})
	}

	if doc.Vhost != nil {
		out = append(out, attributeView{Name: "Virtual host", Value: inlineCode(mustJSONInline(doc.Vhost))})
	}

	if doc.CORS != nil {
		out = append(out, attributeView{Name: "CORS", Value: inlineCode(mustJSONInline(doc.CORS))})
	}

	if doc.JSONP != "" {
		out = append(out, attributeView{Name: "JSONP", Value: inlineCode(doc.JSONP)})
	}

	return out
}

// ruleText renders one rule with its display params.
func ruleText(rule DocRule) string {
	switch params := rule.Params.(type) {
	case string:
		if params == "" {
			return rule.Name
		}

		return rule.Name + " " + inlineCode(params)
	case DocReference:
		return rule.Name + " ref " + inlineCode(params.Ref)
	case *DocAssertion:
		return rule.Name + " " + inlineCode(params.Key) + " matches " + summarizeDocNode(params.Value)
	default:
		return rule.Name + " " + inlineCode(mustJSONInline(params))
	}
}

// summarizeDocNode provides compact markdown text for a nested node.
func summarizeDocNode(node *DocNode) string {
	switch {
	case node == nil, node.IsDenied:
		return "nothing"
	case node.IsConditional():
		return "a conditional schema"
	}

	summary := inlineCode(node.Kind.String())
	if len(node.AllowedValues) > 0 {
		summary += " in " + codeList(node.AllowedValues)
	}

	return summary
}

// noteLines renders notes as single-line plain text.
func noteLines(notes []any) []string {
	if len(notes) == 0 {
		return nil
	}

	out := make([]string, 0, len(notes))
	for _, note := range notes {
		text, ok := note.(string)
		if !ok {
			text = fmt.Sprintf("%v", note)
		}

		if text = sanitizeText(text); text != "" {
			out = append(out, text)
		}
	}

	return out
}

// inlineCode wraps value in an escaped inline code span.
func inlineCode(value string) string {
	return "`" + escapeInline(value) + "`"
}

// codeList renders display strings into comma-separated inline code tokens.
func codeList(values []string) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, inlineCode(value))
	}

	return strings.Join(parts, ", ")
}

// jsonList renders JSON values list into comma-separated inline code tokens.
func jsonList(values []any) string {
	parts := make([]string, 0, len(values))
	for _, item := range values {
		parts = append(parts, inlineCode(mustJSONInline(item)))
	}

	return strings.Join(parts, ", ")
}

// yesNo renders bool as "yes" or "no".
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

// allowedRejected renders bool as "allowed" or "rejected".
func allowedRejected(value bool) string {
	if value {
		return "allowed"
	}

	return "rejected"
}
