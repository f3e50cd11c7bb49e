// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"fmt"
	"slices"
	"strconv"
)

// rootPath labels the top-level node in error messages.
const rootPath = "(root)"

// Normalize converts a root parameter group description into a documentation tree.
//
// An object description with an empty children mapping documents a section
// where validation rejects any value and normalizes to a denied node.
func Normalize(node *Description) (*DocNode, error) {
	return normalize(node, "", true, rootPath)
}

// Describe normalizes a root description and marks the result as root.
// A nil description documents nothing and yields nil.
func Describe(node *Description) (*DocNode, error) {
	if node == nil {
		return nil, nil
	}

	doc, err := Normalize(node)
	if err != nil {
		return nil, err
	}

	doc.Root = true
	return doc, nil
}

// DescribeStatusSchema normalizes response schemas keyed by status code.
func DescribeStatusSchema(status map[string]*Description) (map[string]*DocNode, error) {
	if len(status) == 0 {
		return nil, nil
	}

	out := make(map[string]*DocNode, len(status))
	for _, code := range sortedStatusCodes(status) {
		doc, err := Describe(status[code])
		if err != nil {
			return nil, fmt.Errorf("status %s: %w", code, err)
		}

		out[code] = doc
	}

	return out, nil
}

// normalize converts one description node.
// Unnamed positions (the root, items, alternatives, assert schemas) turn an
// object with an empty children mapping into a denied node.
func normalize(node *Description, name string, unnamed bool, path string) (*DocNode, error) {
	if node == nil {
		return nil, fmt.Errorf("%w at %s", ErrNilDescription, path)
	}

	if unnamed && node.Kind == KindObject && node.Children != nil && len(node.Children) == 0 {
		return &DocNode{IsDenied: true}, nil
	}

	if node.Ref != "" && node.Is != nil {
		return normalizeCondition(node, path)
	}

	kind := node.Kind
	if hasReference(node.Valids) {
		kind = KindReference
	}

	doc := &DocNode{
		Name:        name,
		Description: node.Description,
		Notes:       processNotes(node.Notes),
		Tags:        slices.Clone(node.Tags),
		Meta:        node.Meta,
		Unit:        node.Unit,
		Kind:        kind,
		Examples:    slices.Clone(node.Examples),
		Peers:       formatDependencies(node.Dependencies),
		Flags:       docFlags(node.Flags),
	}

	if node.Valids != nil {
		doc.AllowedValues = filterValues(kind, node.Valids)
	}

	if node.Invalids != nil {
		doc.DisallowedValues = filterValues(kind, node.Invalids)
	}

	if kind == KindReference {
		doc.Target = filterValues(kind, node.Valids)
	}

	var err error
	switch kind {
	case KindObject:
		doc.Children, err = normalizeChildren(node, path)
		if err == nil {
			doc.Rules, err = normalizeRules(node.Rules, path)
		}
	case KindArray:
		err = normalizeArray(doc, node, path)
		if err == nil {
			doc.Rules, err = normalizeRules(node.Rules, path)
		}
	case KindAlternatives:
		doc.Alternatives, err = normalizeList(node.Alternatives, path+".alternatives")
	case KindAny, KindBinary, KindBoolean, KindDate, KindFunc, KindLazy,
		KindNumber, KindString, KindSymbol, KindReference:
		doc.Rules, err = normalizeRules(node.Rules, path)
	default:
		return nil, fmt.Errorf("%w %q at %s", ErrUnknownKind, kind, path)
	}

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// normalizeCondition converts a conditional node; branches are named by their own kind.
func normalizeCondition(node *Description, path string) (*DocNode, error) {
	value, err := normalize(node.Is, node.Is.Kind.String(), false, path+".is")
	if err != nil {
		return nil, err
	}

	doc := &DocNode{
		Condition: &DocCondition{
			Key:   formatReference(node.Ref),
			Value: value,
		},
	}

	if node.Then != nil {
		doc.Then, err = normalize(node.Then, node.Then.Kind.String(), false, path+".then")
		if err != nil {
			return nil, err
		}
	}

	if node.Otherwise != nil {
		doc.Otherwise, err = normalize(node.Otherwise, node.Otherwise.Kind.String(), false, path+".otherwise")
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// normalizeChildren converts named children followed by pattern-keyed children.
func normalizeChildren(node *Description, path string) ([]*DocNode, error) {
	out := make([]*DocNode, 0, len(node.Children)+len(node.Patterns))
	for _, child := range node.Children {
		doc, err := normalize(child.Node, child.Key, false, appendPath(path, child.Key))
		if err != nil {
			return nil, err
		}

		out = append(out, doc)
	}

	for index, pattern := range node.Patterns {
		doc, err := normalize(pattern.Rule, pattern.Regex, false, path+".patterns["+strconv.Itoa(index)+"]")
		if err != nil {
			return nil, err
		}

		doc.Pattern = true
		out = append(out, doc)
	}

	return out, nil
}

// normalizeArray fills ordered items and splits items into allowed and forbidden shapes.
func normalizeArray(doc *DocNode, node *Description, path string) error {
	if node.OrderedItems != nil {
		ordered, err := normalizeList(node.OrderedItems, path+".orderedItems")
		if err != nil {
			return err
		}

		doc.OrderedItems = ordered
	}

	if node.Items == nil {
		return nil
	}

	items, err := normalizeList(node.Items, path+".items")
	if err != nil {
		return err
	}

	doc.Items = make([]*DocNode, 0, len(items))
	doc.ForbiddenItems = make([]*DocNode, 0)
	for _, item := range items {
		if item.Forbidden() {
			doc.ForbiddenItems = append(doc.ForbiddenItems, item)
			continue
		}

		doc.Items = append(doc.Items, item)
	}

	return nil
}

// normalizeList converts unnamed nested nodes in order.
func normalizeList(nodes []*Description, path string) ([]*DocNode, error) {
	out := make([]*DocNode, 0, len(nodes))
	for index, node := range nodes {
		doc, err := normalize(node, "", true, path+"["+strconv.Itoa(index)+"]")
		if err != nil {
			return nil, err
		}

		out = append(out, doc)
	}

	return out, nil
}

// normalizeRules converts constraints; no rules yields an empty, non-nil slice.
func normalizeRules(rules []Rule, path string) ([]DocRule, error) {
	out := make([]DocRule, 0, len(rules))
	for _, rule := range rules {
		params, err := formatRuleArgument(rule, path)
		if err != nil {
			return nil, err
		}

		out = append(out, DocRule{Name: capitalize(rule.Name), Params: params})
	}

	return out, nil
}

// docFlags maps description flags to display flags.
func docFlags(flags *Flags) *DocFlags {
	if flags == nil {
		return nil
	}

	return &DocFlags{
		AllowUnknown: flags.AllowUnknown,
		Default:      flags.Default,
		Encoding:     flags.Encoding,
		Insensitive:  flags.Insensitive,
		Required:     flags.Presence == PresenceRequired,
		Forbidden:    flags.Presence == PresenceForbidden,
		Stripped:     flags.Strip,
		AllowOnly:    flags.AllowOnly,
	}
}
