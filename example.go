// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ExampleModeAll builds example with all documented keys.
	ExampleModeAll ExampleMode = "all"
	// ExampleModeRequired builds example with required keys only.
	ExampleModeRequired ExampleMode = "required"
)

// ExampleMode configures example generation key coverage.
type ExampleMode string

const (
	// ExampleFormatJSON encodes example payload as JSON.
	ExampleFormatJSON ExampleFormat = "json"
	// ExampleFormatYAML encodes example payload as YAML.
	ExampleFormatYAML ExampleFormat = "yaml"
)

// ExampleFormat configures output format for generated example payload.
type ExampleFormat string

// exampleScalarPlaceholders provides fallback values for scalar kinds.
var exampleScalarPlaceholders = map[Kind]any{
	KindString:  "<string>",
	KindNumber:  0,
	KindBoolean: false,
	KindDate:    "<date>",
	KindBinary:  "<binary>",
}

// exampleObject is an object example that keeps documented key order.
type exampleObject []exampleField

// exampleField is one key of an object example; Comment feeds YAML key comments.
type exampleField struct {
	Key     string
	Value   any
	Comment string
}

// exampleBuilder converts documentation trees into example values.
type exampleBuilder struct {
	mode ExampleMode
}

// GenerateExample returns generated example payload encoded in selected format.
func GenerateExample(node *DocNode, mode ExampleMode, format ExampleFormat) ([]byte, error) {
	format, err := normalizeExampleFormat(format)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExampleFormatYAML:
		return GenerateExampleYAML(node, mode)
	default:
		return GenerateExampleJSON(node, mode)
	}
}

// GenerateExampleJSON returns generated example payload encoded as pretty JSON.
func GenerateExampleJSON(node *DocNode, mode ExampleMode) ([]byte, error) {
	value, err := generateExampleValue(node, mode)
	if err != nil {
		return nil, err
	}

	data, err := marshalExampleJSON(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleJSON, err)
	}

	return data, nil
}

// GenerateExampleYAML returns generated example payload encoded as YAML with key comments.
func GenerateExampleYAML(node *DocNode, mode ExampleMode) ([]byte, error) {
	value, err := generateExampleValue(node, mode)
	if err != nil {
		return nil, err
	}

	rootNode, err := yamlNodeForValue(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	data, err := marshalExampleYAMLNode(rootNode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeExampleYAML, err)
	}

	return data, nil
}

// generateExampleValue validates mode and builds example value.
func generateExampleValue(node *DocNode, mode ExampleMode) (any, error) {
	mode, err := normalizeExampleMode(mode)
	if err != nil {
		return nil, err
	}

	builder := exampleBuilder{mode: mode}
	return builder.buildNode(node), nil
}

// normalizeExampleMode validates and normalizes caller mode value.
func normalizeExampleMode(mode ExampleMode) (ExampleMode, error) {
	normalized := ExampleMode(strings.ToLower(strings.TrimSpace(string(mode))))
	switch normalized {
	case ExampleModeAll, ExampleModeRequired:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleMode, mode)
	}
}

// normalizeExampleFormat validates and normalizes caller format value.
func normalizeExampleFormat(format ExampleFormat) (ExampleFormat, error) {
	normalized := ExampleFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case ExampleFormatJSON, ExampleFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExampleFormat, format)
	}
}

// buildNode recursively builds example value for one documented node.
func (builder exampleBuilder) buildNode(node *DocNode) any {
	switch {
	case node == nil, node.IsDenied:
		return nil
	case node.IsConditional():
		if node.Then != nil {
			return builder.buildNode(node.Then)
		}

		return builder.buildNode(node.Otherwise)
	}

	if value, ok := explicitExampleValue(node); ok {
		return value
	}

	switch node.Kind {
	case KindObject:
		return builder.buildObject(node)
	case KindArray:
		return builder.buildArray(node)
	case KindAlternatives:
		if len(node.Alternatives) == 0 {
			return nil
		}

		return builder.buildNode(node.Alternatives[0])
	case KindReference:
		if len(node.Target) > 0 {
			return "<" + node.Target[0] + ">"
		}

		return nil
	}

	if value, ok := exampleScalarPlaceholders[node.Kind]; ok {
		return value
	}

	return nil
}

// buildObject materializes object example from named children in documented order.
func (builder exampleBuilder) buildObject(node *DocNode) exampleObject {
	out := make(exampleObject, 0, len(node.Children))
	for _, child := range node.Children {
		if child.Pattern || child.Forbidden() {
			continue
		}

		if child.Flags != nil && child.Flags.Stripped {
			continue
		}

		if builder.mode == ExampleModeRequired && !child.Required() {
			continue
		}

		out = append(out, exampleField{
			Key:     child.Name,
			Value:   builder.buildNode(child),
			Comment: exampleKeyComment(child),
		})
	}

	return out
}

// buildArray materializes array example from ordered items or the first item shape.
func (builder exampleBuilder) buildArray(node *DocNode) []any {
	if len(node.OrderedItems) > 0 {
		out := make([]any, 0, len(node.OrderedItems))
		for _, item := range node.OrderedItems {
			out = append(out, builder.buildNode(item))
		}

		return out
	}

	if len(node.Items) > 0 {
		return []any{builder.buildNode(node.Items[0])}
	}

	return []any{}
}

// explicitExampleValue selects example, default or first allowed value.
func explicitExampleValue(node *DocNode) (any, bool) {
	if len(node.Examples) > 0 {
		return node.Examples[0], true
	}

	if node.Flags != nil && node.Flags.Default != nil {
		return node.Flags.Default, true
	}

	if node.Kind != KindReference && len(node.AllowedValues) > 0 {
		var value any
		if err := json.Unmarshal([]byte(node.AllowedValues[0]), &value); err != nil {
			return node.AllowedValues[0], true
		}

		return value, true
	}

	return nil, false
}

// exampleKeyComment builds YAML key comment from node description and notes.
func exampleKeyComment(node *DocNode) string {
	lines := make([]string, 0, 1+len(node.Notes))
	if description := sanitizeText(node.Description); description != "" {
		lines = append(lines, description)
	}

	lines = append(lines, noteLines(node.Notes)...)
	return strings.Join(lines, "\n")
}

// MarshalJSON encodes object example keeping key order.
func (object exampleObject) MarshalJSON() ([]byte, error) {
	var out bytes.Buffer
	out.WriteByte('{')
	for index, field := range object {
		if index > 0 {
			out.WriteByte(',')
		}

		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}

		value, err := marshalExampleJSONCompact(field.Value)
		if err != nil {
			return nil, err
		}

		out.Write(key)
		out.WriteByte(':')
		out.Write(value)
	}

	out.WriteByte('}')
	return out.Bytes(), nil
}

// marshalExampleJSONCompact encodes one value without HTML escaping.
func marshalExampleJSONCompact(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(out.Bytes(), []byte("\n")), nil
}

// marshalExampleJSON serializes example payload as pretty JSON.
func marshalExampleJSON(value any) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalExampleYAMLNode serializes example node tree as YAML document.
func marshalExampleYAMLNode(node *yaml.Node) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{node},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// yamlNodeForValue builds deterministic yaml.Node tree from example value.
func yamlNodeForValue(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case nil:
		return yamlScalarNode("!!null", "null"), nil
	case bool:
		return yamlScalarNode("!!bool", strconv.FormatBool(typed)), nil
	case string:
		return yamlScalarNode("!!str", typed), nil
	case int:
		return yamlScalarNode("!!int", strconv.Itoa(typed)), nil
	case int64:
		return yamlScalarNode("!!int", strconv.FormatInt(typed, 10)), nil
	case uint64:
		return yamlScalarNode("!!int", strconv.FormatUint(typed, 10)), nil
	case float64:
		return yamlScalarNode("!!float", formatYAMLFloat(typed)), nil
	case exampleObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, field := range typed {
			valueNode, err := yamlNodeForValue(field.Value)
			if err != nil {
				return nil, err
			}

			keyNode := yamlScalarNode("!!str", field.Key)
			keyNode.HeadComment = field.Comment
			node.Content = append(node.Content, keyNode, valueNode)
		}

		return node, nil
	case map[string]any:
		node := &yaml.Node{}
		if err := node.Encode(typed); err != nil {
			return nil, err
		}

		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			valueNode, err := yamlNodeForValue(item)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, valueNode)
		}

		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(typed); err != nil {
			return nil, err
		}

		return node, nil
	}
}

// formatYAMLFloat renders float scalar including YAML infinity and NaN spellings.
func formatYAMLFloat(value float64) string {
	switch {
	case math.IsInf(value, 1):
		return ".inf"
	case math.IsInf(value, -1):
		return "-.inf"
	case math.IsNaN(value):
		return ".nan"
	default:
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
