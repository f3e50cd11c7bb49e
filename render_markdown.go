// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"strings"
	"unicode/utf8"
)

// fencePrefix opens and closes fenced code blocks.
const fencePrefix = "```"

// structuredLinePrefixes start markdown lines that are never re-wrapped.
var structuredLinePrefixes = []string{"#", ">", "- ", "* ", "+ ", "|", "---", "***", "___"}

// descriptionFormatter reflows route descriptions for markdown output.
type descriptionFormatter struct {
	width  int
	marker string
}

// newDescriptionFormatter applies defaults to wrap width and list marker.
func newDescriptionFormatter(width int, marker string) descriptionFormatter {
	if width <= 0 {
		width = defaultWrapWidth
	}

	return descriptionFormatter{width: width, marker: listMarkerOrDefault(marker)}
}

// listMarkerOrDefault accepts "*" or "-" and falls back to the default marker.
func listMarkerOrDefault(marker string) string {
	marker = strings.TrimSpace(marker)
	if marker == "*" || marker == "-" {
		return marker
	}

	return defaultListMarker
}

// format wraps plain paragraphs and passes lists, quotes, tables and fences through.
func (formatter descriptionFormatter) format(text string) string {
	text = strings.TrimSpace(unixLineEndings(text))
	if text == "" {
		return ""
	}

	var (
		out       []string
		paragraph []string
		inFence   bool
	)

	flush := func() {
		if len(paragraph) > 0 {
			out = append(out, formatter.wrap(strings.Join(paragraph, " "))...)
			paragraph = nil
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, fencePrefix) {
			flush()
			out = append(out, line)
			inFence = !inFence
			continue
		}

		switch {
		case inFence:
			out = append(out, line)
		case trimmed == "":
			flush()
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
		case isStructuredLine(line):
			flush()
			out = append(out, formatter.relist(line))
		default:
			paragraph = append(paragraph, trimmed)
		}
	}

	flush()
	return strings.Join(out, "\n")
}

// wrap breaks one paragraph into lines of at most width runes; long words overflow.
func (formatter descriptionFormatter) wrap(text string) []string {
	var (
		lines   []string
		current strings.Builder
		length  int
	)

	for _, word := range strings.Fields(text) {
		size := utf8.RuneCountInString(word)
		if length > 0 && length+1+size > formatter.width {
			lines = append(lines, current.String())
			current.Reset()
			length = 0
		}

		if length > 0 {
			current.WriteByte(' ')
			length++
		}

		current.WriteString(word)
		length += size
	}

	if length > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// relist swaps the marker of an unordered list item for the configured one.
func (formatter descriptionFormatter) relist(line string) string {
	body := strings.TrimLeft(line, " ")
	if len(body) < 2 || body[1] != ' ' || !strings.ContainsRune("-*+", rune(body[0])) {
		return line
	}

	return line[:len(line)-len(body)] + formatter.marker + body[1:]
}

// isStructuredLine reports whether line is markdown syntax that must keep its own line.
func isStructuredLine(line string) bool {
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}

	trimmed := strings.TrimSpace(line)
	for _, prefix := range structuredLinePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return isOrderedListItem(trimmed)
}

// isOrderedListItem reports whether line starts with "1. " or "1) ".
func isOrderedListItem(line string) bool {
	digits := len(line) - len(strings.TrimLeft(line, "0123456789"))
	if digits == 0 || digits+1 >= len(line) {
		return false
	}

	return (line[digits] == '.' || line[digits] == ')') && line[digits+1] == ' '
}

// sanitizeText squashes whitespace runs into single spaces.
func sanitizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// unixLineEndings converts CRLF and CR to LF.
func unixLineEndings(text string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(text)
}

// collapseBlankLines drops trailing spaces and repeated blank lines outside fences.
func collapseBlankLines(text string) string {
	var (
		out     []string
		inFence bool
		blank   bool
	)

	for _, raw := range strings.Split(unixLineEndings(text), "\n") {
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, fencePrefix) {
			inFence = !inFence
		}

		if trimmed == "" && !inFence {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}

			blank = true
			continue
		}

		blank = false
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"
}

// escapeInline escapes backticks inside inline code spans.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}
