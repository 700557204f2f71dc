// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package typegen synthesizes TypeScript declarations from document schema
// graphs. Raw schema trees are spliced, normalized into closed Field values,
// rendered per mode, and assembled into per-model declaration units that a
// layout Renderer turns into the final file.
package typegen

import "strings"

// Mode selects between the plain-object and the hydrated document rendering.
type Mode int

const (
	// Lean renders plain structural types, as returned by toObject().
	Lean Mode = iota
	// Hydrated renders the library's rich wrapper types.
	Hydrated
)

func (m Mode) String() string {
	if m == Hydrated {
		return "hydrated"
	}
	return "lean"
}

// Atom is a primitive schema type.
type Atom int

const (
	AtomAny Atom = iota
	AtomString
	AtomNumber
	AtomBoolean
	AtomDate
	AtomBuffer
	AtomObjectID
	AtomDecimal
)

var atomMarkers = map[string]Atom{
	"String":     AtomString,
	"Number":     AtomNumber,
	"Boolean":    AtomBoolean,
	"Date":       AtomDate,
	"Buffer":     AtomBuffer,
	"ObjectId":   AtomObjectID,
	"ObjectID":   AtomObjectID,
	"Decimal128": AtomDecimal,
	"Mixed":      AtomAny,
	"Object":     AtomAny,
}

// ParseAtom maps a type marker such as "String" to its atom.
func ParseAtom(marker string) (Atom, bool) {
	a, ok := atomMarkers[marker]
	return a, ok
}

var enumEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// ResolveAtom returns the TypeScript token for an atom. A non-empty enum turns
// a string atom into a union of its quoted literals, in declaration order.
func ResolveAtom(a Atom, enum []string, mode Mode) string {
	switch a {
	case AtomString:
		if len(enum) > 0 {
			quoted := make([]string, len(enum))
			for i, v := range enum {
				quoted[i] = `"` + enumEscaper.Replace(v) + `"`
			}
			return strings.Join(quoted, " | ")
		}
		return "string"
	case AtomNumber:
		return "number"
	case AtomBoolean:
		return "boolean"
	case AtomDate:
		return "Date"
	case AtomBuffer:
		if mode == Hydrated {
			return "mongoose.Types.Buffer"
		}
		return "Buffer"
	case AtomObjectID:
		return "mongoose.Types.ObjectId"
	case AtomDecimal:
		if mode == Hydrated {
			return "mongoose.Types.Decimal128"
		}
		return "number"
	default:
		return "any"
	}
}
