// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAtom(t *testing.T) {
	tests := []struct {
		atom     Atom
		lean     string
		hydrated string
	}{
		{AtomString, "string", "string"},
		{AtomNumber, "number", "number"},
		{AtomBoolean, "boolean", "boolean"},
		{AtomDate, "Date", "Date"},
		{AtomBuffer, "Buffer", "mongoose.Types.Buffer"},
		{AtomObjectID, "mongoose.Types.ObjectId", "mongoose.Types.ObjectId"},
		{AtomDecimal, "number", "mongoose.Types.Decimal128"},
		{AtomAny, "any", "any"},
	}
	for _, tt := range tests {
		t.Run(tt.lean+"/"+tt.hydrated, func(t *testing.T) {
			assert.Equal(t, tt.lean, ResolveAtom(tt.atom, nil, Lean))
			assert.Equal(t, tt.hydrated, ResolveAtom(tt.atom, nil, Hydrated))
		})
	}
}

func TestResolveAtom_Enum(t *testing.T) {
	assert.Equal(t, `"a" | "b"`, ResolveAtom(AtomString, []string{"a", "b"}, Lean))
	assert.Equal(t, `"b" | "a" | "b"`, ResolveAtom(AtomString, []string{"b", "a", "b"}, Hydrated), "order kept, no dedupe")
	assert.Equal(t, `"say \"hi\""`, ResolveAtom(AtomString, []string{`say "hi"`}, Lean))
	assert.Equal(t, "number", ResolveAtom(AtomNumber, []string{"1"}, Lean), "enum only applies to strings")
}

func TestParseAtom(t *testing.T) {
	tests := []struct {
		marker string
		want   Atom
		ok     bool
	}{
		{"String", AtomString, true},
		{"ObjectId", AtomObjectID, true},
		{"Decimal128", AtomDecimal, true},
		{"Mixed", AtomAny, true},
		{"Object", AtomAny, true},
		{"Whatever", AtomAny, false},
	}
	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			got, ok := ParseAtom(tt.marker)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
