// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

// DocNode is a documentation-ready schema node.
//
// Typed nodes fill Kind and the fields their kind implies: Children for
// objects, Items, ForbiddenItems and OrderedItems for arrays, Alternatives for
// alternatives and Rules for everything else. Conditional nodes fill only
// Condition, Then and Otherwise. Denied nodes fill only IsDenied (and Root).
type DocNode struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Pattern     bool     `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       []any    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Meta        any      `json:"meta,omitempty" yaml:"meta,omitempty"`
	Unit        string   `json:"unit,omitempty" yaml:"unit,omitempty"`
	Kind        Kind     `json:"type,omitempty" yaml:"type,omitempty"`

	AllowedValues    []string  `json:"allowedValues,omitempty" yaml:"allowedValues,omitempty"`
	DisallowedValues []string  `json:"disallowedValues,omitempty" yaml:"disallowedValues,omitempty"`
	Examples         []any     `json:"examples,omitempty" yaml:"examples,omitempty"`
	Peers            []string  `json:"peers,omitempty" yaml:"peers,omitempty"`
	Target           []string  `json:"target,omitempty" yaml:"target,omitempty"`
	Flags            *DocFlags `json:"flags,omitempty" yaml:"flags,omitempty"`

	Children       []*DocNode `json:"children,omitempty" yaml:"children,omitempty"`
	OrderedItems   []*DocNode `json:"orderedItems,omitempty" yaml:"orderedItems,omitempty"`
	Items          []*DocNode `json:"items,omitempty" yaml:"items,omitempty"`
	ForbiddenItems []*DocNode `json:"forbiddenItems,omitempty" yaml:"forbiddenItems,omitempty"`
	Alternatives   []*DocNode `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	Rules          []DocRule  `json:"rules,omitempty" yaml:"rules,omitempty"`

	Condition *DocCondition `json:"condition,omitempty" yaml:"condition,omitempty"`
	Then      *DocNode      `json:"then,omitempty" yaml:"then,omitempty"`
	Otherwise *DocNode      `json:"otherwise,omitempty" yaml:"otherwise,omitempty"`

	Root     bool `json:"root,omitempty" yaml:"root,omitempty"`
	IsDenied bool `json:"isDenied,omitempty" yaml:"isDenied,omitempty"`
}

// DocFlags are display flags of a documented node.
type DocFlags struct {
	AllowUnknown *bool  `json:"allowUnknown,omitempty" yaml:"allowUnknown,omitempty"`
	Default      any    `json:"default,omitempty" yaml:"default,omitempty"`
	Encoding     string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Insensitive  bool   `json:"insensitive,omitempty" yaml:"insensitive,omitempty"`
	Required     bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Forbidden    bool   `json:"forbidden,omitempty" yaml:"forbidden,omitempty"`
	Stripped     bool   `json:"stripped,omitempty" yaml:"stripped,omitempty"`
	AllowOnly    bool   `json:"allowOnly,omitempty" yaml:"allowOnly,omitempty"`
}

// DocCondition is the "when key matches value" part of a conditional node.
type DocCondition struct {
	Key   string   `json:"key" yaml:"key"`
	Value *DocNode `json:"value" yaml:"value"`
}

// DocRule is one documented constraint.
//
// Params holds a display string, *DocAssertion, DocReference or the raw rule
// argument.
type DocRule struct {
	Name   string `json:"name" yaml:"name"`
	Params any    `json:"params" yaml:"params"`
}

// DocAssertion documents that the value at Key must satisfy Value.
type DocAssertion struct {
	Key   string   `json:"key" yaml:"key"`
	Value *DocNode `json:"value" yaml:"value"`
}

// DocReference documents a rule argument pointing at another value.
type DocReference struct {
	Ref string `json:"ref" yaml:"ref"`
}

// IsConditional reports whether node is a conditional branch point.
func (node *DocNode) IsConditional() bool {
	return node != nil && node.Condition != nil
}

// Required reports whether node is flagged as required.
func (node *DocNode) Required() bool {
	return node != nil && node.Flags != nil && node.Flags.Required
}

// Forbidden reports whether node is flagged as forbidden.
func (node *DocNode) Forbidden() bool {
	return node != nil && node.Flags != nil && node.Flags.Forbidden
}
