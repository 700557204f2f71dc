// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package mschema

// Schema is the runtime description of one schema: its field tree plus the
// side tables the document mapper keeps next to it.
type Schema struct {
	// Tree is the raw field tree (an Object value).
	Tree *Value
	// ChildSchemas are sub-schemas registered out-of-band by path.
	ChildSchemas []ChildSchema

	Methods  []Function
	Statics  []Function
	Query    []Function
	Virtuals []string

	Options Options
}

// ChildSchema relates a parent schema to an embedded schema registered at Path.
type ChildSchema struct {
	Path             string
	ArraySubdocument bool
	Schema           *Schema
}

// Function is a named method, static or query helper. Signature is the
// optional real call signature, e.g. "(this: UserDocument, n: number) => boolean".
type Function struct {
	Name      string
	Signature string
}

// Options holds the schema options that influence generated types.
type Options struct {
	ToObject SerializeOptions
}

// SerializeOptions mirrors the toObject option subset that matters for lean types.
// Nil means not set.
type SerializeOptions struct {
	Virtuals *bool
	Getters  *bool
}

// LeanIncludesVirtuals reports whether lean objects carry virtual fields.
// Virtuals are included unless explicitly disabled, and a getters flag
// re-enables them even when virtuals are disabled.
func (s *Schema) LeanIncludesVirtuals() bool {
	if s == nil {
		return true
	}
	o := s.Options.ToObject
	if o.Virtuals != nil && !*o.Virtuals {
		return o.Getters != nil && *o.Getters
	}
	return true
}

// Model is one top-level schema registered under a name.
type Model struct {
	Name   string
	Schema *Schema
	Source string // snapshot file the model was loaded from
}
