// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

// synthesizer renders normalized fields for one declaration in one mode.
type synthesizer struct {
	mode Mode
	// self is the model being declared. Hydrated references to it use the
	// lean name because XDocument is not yet complete at that point.
	self string
	// virtuals controls whether virtual fields are emitted.
	virtuals bool
}

// Synthesize renders fields as declaration members in tree order.
func Synthesize(fields []Field, mode Mode, self string, includeVirtuals bool) []Member {
	s := synthesizer{mode: mode, self: self, virtuals: includeVirtuals}
	return s.members(fields)
}

func (s synthesizer) members(fields []Field) []Member {
	out := make([]Member, 0, len(fields))
	for _, f := range fields {
		if f.Virtual && !s.virtuals {
			continue
		}
		out = append(out, Member{Name: f.Name, Optional: f.Optional, Type: s.expr(f.Type)})
	}
	return out
}

func (s synthesizer) expr(t Type) TypeExpr {
	switch t.Kind {
	case KindAtom:
		return textExpr(ResolveAtom(t.Atom, t.Enum, s.mode))

	case KindReference:
		target := t.Ref
		if s.mode == Hydrated && t.Ref != s.self {
			target += "Document"
		}
		return textExpr(target + `["_id"] | ` + target)

	case KindEmbedded:
		if s.mode == Hydrated {
			return textExpr(t.Embedded + "Document")
		}
		return textExpr(t.Embedded)

	case KindNested:
		return TypeExpr{IsObject: true, Object: s.members(t.Fields)}

	case KindArray:
		elem := s.expr(*t.Elem)
		if s.mode == Hydrated {
			if t.Elem.Kind == KindEmbedded && t.Elem.SubdocArray {
				return elem.wrap("mongoose.Types.DocumentArray<", ">")
			}
			return elem.wrap("mongoose.Types.Array<", ">")
		}
		if elem.compound() {
			return elem.wrap("(", ")[]")
		}
		return elem.wrap("", "[]")

	case KindMap:
		value := s.expr(*t.Elem)
		if s.mode == Hydrated {
			return value.wrap("mongoose.Types.Map<", ">")
		}
		return value.wrap("Map<string, ", ">")
	}
	return textExpr("any")
}
