// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

// Kind is the variant tag of a Type.
type Kind int

const (
	KindAtom Kind = iota
	KindReference
	KindEmbedded
	KindNested
	KindArray
	KindMap
)

// Type is a normalized field type. Exactly the members that belong to Kind
// are set.
type Type struct {
	Kind Kind

	Atom Atom     // KindAtom
	Enum []string // KindAtom with AtomString

	Ref string // KindReference: target declaration name

	Embedded    string // KindEmbedded: child declaration name
	SubdocArray bool   // KindEmbedded: element of an embedded-document array

	Fields []Field // KindNested

	Elem *Type // KindArray element, KindMap value
}

// Field is one normalized schema entry.
type Field struct {
	Name     string
	Type     Type
	Optional bool
	Virtual  bool
}

func atomType(a Atom) Type { return Type{Kind: KindAtom, Atom: a} }

func anyType() Type { return atomType(AtomAny) }

func arrayOf(elem Type) Type { return Type{Kind: KindArray, Elem: &elem} }

func mapOf(value Type) Type { return Type{Kind: KindMap, Elem: &value} }
