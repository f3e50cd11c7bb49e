// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/routedoc

package routedoc

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind is the type tag of a schema description node.
type Kind string

const (
	KindAny          Kind = "any"
	KindAlternatives Kind = "alternatives"
	KindArray        Kind = "array"
	KindBinary       Kind = "binary"
	KindBoolean      Kind = "boolean"
	KindDate         Kind = "date"
	KindFunc         Kind = "func"
	KindLazy         Kind = "lazy"
	KindNumber       Kind = "number"
	KindObject       Kind = "object"
	KindString       Kind = "string"
	KindSymbol       Kind = "symbol"

	// KindReference is never decoded from input. Normalize assigns it to nodes
	// whose allowed values point at another field or at the shared context.
	KindReference Kind = "reference"
)

// describedKinds enumerates kinds accepted in schema description input.
var describedKinds = map[Kind]struct{}{
	KindAny:          {},
	KindAlternatives: {},
	KindArray:        {},
	KindBinary:       {},
	KindBoolean:      {},
	KindDate:         {},
	KindFunc:         {},
	KindLazy:         {},
	KindNumber:       {},
	KindObject:       {},
	KindString:       {},
	KindSymbol:       {},
}

// Described reports whether kind may appear in schema description input.
func (kind Kind) Described() bool {
	_, ok := describedKinds[kind]
	return ok
}

// String returns kind tag text.
func (kind Kind) String() string {
	return string(kind)
}

// UnmarshalYAML decodes kind tag and rejects tags outside the known set.
func (kind *Kind) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if parsed == "" {
		*kind = ""
		return nil
	}

	if !parsed.Described() {
		return fmt.Errorf("%w %q (line %d)", ErrUnknownKind, raw, value.Line)
	}

	*kind = parsed
	return nil
}
