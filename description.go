// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Presence values of description flags.
const (
	PresenceOptional  = "optional"
	PresenceRequired  = "required"
	PresenceForbidden = "forbidden"
)

// Description is one node of a validation schema introspection tree.
//
// A node is either typed (Kind set) or conditional (Ref and Is set). Values in
// Valids and Invalids are literals or reference tokens such as "ref:a.b" and
// "context:env".
type Description struct {
	Kind Kind `json:"type,omitempty" yaml:"type,omitempty"`

	Children     Children       `json:"children,omitempty" yaml:"children,omitempty"`
	Patterns     []Pattern      `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	Items        []*Description `json:"items,omitempty" yaml:"items,omitempty"`
	OrderedItems []*Description `json:"orderedItems,omitempty" yaml:"orderedItems,omitempty"`
	Alternatives []*Description `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`

	Ref       string       `json:"ref,omitempty" yaml:"ref,omitempty"`
	Is        *Description `json:"is,omitempty" yaml:"is,omitempty"`
	Then      *Description `json:"then,omitempty" yaml:"then,omitempty"`
	Otherwise *Description `json:"otherwise,omitempty" yaml:"otherwise,omitempty"`

	Valids       []any        `json:"valids,omitempty" yaml:"valids,omitempty"`
	Invalids     []any        `json:"invalids,omitempty" yaml:"invalids,omitempty"`
	Flags        *Flags       `json:"flags,omitempty" yaml:"flags,omitempty"`
	Rules        []Rule       `json:"rules,omitempty" yaml:"rules,omitempty"`
	Dependencies []Dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       any      `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Meta        any      `json:"meta,omitempty" yaml:"meta,omitempty"`
	Unit        string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Examples    []any    `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// Child is one named object member.
type Child struct {
	Key  string
	Node *Description
}

// Children keeps object members in declaration order.
type Children []Child

// UnmarshalYAML decodes a mapping into children preserving key order.
func (children *Children) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: children must be a mapping (line %d)", ErrDecodeDescription, value.Line)
	}

	out := make(Children, 0, len(value.Content)/2)
	for index := 0; index+1 < len(value.Content); index += 2 {
		keyNode := value.Content[index]
		node := new(Description)
		if err := value.Content[index+1].Decode(node); err != nil {
			return err
		}

		out = append(out, Child{Key: keyNode.Value, Node: node})
	}

	*children = out
	return nil
}

// Pattern is a dynamically keyed object member.
type Pattern struct {
	Regex string       `json:"regex" yaml:"regex"`
	Rule  *Description `json:"rule" yaml:"rule"`
}

// Flags are the presence and modifier flags of a description node.
type Flags struct {
	Presence     string `json:"presence,omitempty" yaml:"presence,omitempty"`
	Strip        bool   `json:"strip,omitempty" yaml:"strip,omitempty"`
	AllowUnknown *bool  `json:"allowUnknown,omitempty" yaml:"allowUnknown,omitempty"`
	Default      any    `json:"default,omitempty" yaml:"default,omitempty"`
	Encoding     string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Insensitive  bool   `json:"insensitive,omitempty" yaml:"insensitive,omitempty"`
	AllowOnly    bool   `json:"allowOnly,omitempty" yaml:"allowOnly,omitempty"`
}

// Dependency is a peer presence constraint between object keys.
type Dependency struct {
	Type  string   `json:"type" yaml:"type"`
	Key   string   `json:"key,omitempty" yaml:"key,omitempty"`
	Peers []string `json:"peers" yaml:"peers"`
}

// Rule is one named constraint.
//
// Arg holds *AssertArgument for "assert" rules, *PatternArgument for "regex"
// rules carrying a pattern and the decoded raw value otherwise.
type Rule struct {
	Name string `json:"name" yaml:"name"`
	Arg  any    `json:"arg,omitempty" yaml:"arg,omitempty"`
}

// AssertArgument requires the value at Ref to satisfy Schema.
type AssertArgument struct {
	Ref    string       `json:"ref" yaml:"ref"`
	Schema *Description `json:"schema" yaml:"schema"`
}

// PatternArgument is the argument of a regex rule.
type PatternArgument struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Invert  bool   `json:"invert,omitempty" yaml:"invert,omitempty"`
}

// UnmarshalYAML decodes rule and selects argument variant by rule name.
func (rule *Rule) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Name string    `yaml:"name"`
		Arg  yaml.Node `yaml:"arg"`
	}

	if err := value.Decode(&raw); err != nil {
		return err
	}

	rule.Name = raw.Name
	rule.Arg = nil
	if raw.Arg.Kind == 0 {
		return nil
	}

	switch {
	case raw.Name == "assert":
		argument := new(AssertArgument)
		if err := raw.Arg.Decode(argument); err != nil {
			return err
		}

		rule.Arg = argument
		return nil
	case raw.Name == "regex" && raw.Arg.Kind == yaml.MappingNode:
		argument := new(PatternArgument)
		if err := raw.Arg.Decode(argument); err != nil {
			return err
		}

		if argument.Pattern != "" {
			rule.Arg = argument
			return nil
		}
	}

	var argument any
	if err := raw.Arg.Decode(&argument); err != nil {
		return err
	}

	rule.Arg = argument
	return nil
}

// ParseDescription decodes one schema description from JSON or YAML bytes.
func ParseDescription(data []byte) (*Description, error) {
	node := new(Description)
	if err := yaml.Unmarshal(data, node); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeDescription, err)
	}

	return node, nil
}
