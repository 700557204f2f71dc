// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package mschema models the raw, loosely-typed schema object graph of a
// document model as exported by the schema snapshot collaborator, and loads
// it from YAML or JSON snapshot files.
package mschema

import "fmt"

// Kind identifies the raw shape of a Value.
type Kind int

const (
	// Undefined is an explicitly undefined value (null in snapshots).
	Undefined Kind = iota
	// Scalar is a string, number or boolean literal. Type markers are strings.
	Scalar
	// Seq is an array.
	Seq
	// Object is a key-ordered mapping.
	Object
)

func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Scalar:
		return "scalar"
	case Seq:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one node of a raw schema tree.
type Value struct {
	Kind   Kind
	Scalar any      // string, bool, int64 or float64 when Kind == Scalar
	Items  []*Value // Kind == Seq
	keys   []string
	fields map[string]*Value

	// Embedded is set by the sub-schema splicer on values that stand for an
	// out-of-band registered child schema.
	Embedded *Embedded
}

// Embedded marks a value as a spliced child schema.
type Embedded struct {
	Name               string // synthetic declaration name, e.g. "UserPet"
	Schema             *Schema
	IsArray            bool
	DefaultIsUndefined bool // array default explicitly set to undefined
	Required           bool // the replaced descriptor carried required: true
}

// NewUndefined returns an explicit undefined value.
func NewUndefined() *Value { return &Value{Kind: Undefined} }

// NewScalar wraps a literal.
func NewScalar(v any) *Value { return &Value{Kind: Scalar, Scalar: v} }

// NewMarker is shorthand for a string type marker such as "String".
func NewMarker(name string) *Value { return NewScalar(name) }

// NewSeq returns an array value.
func NewSeq(items ...*Value) *Value { return &Value{Kind: Seq, Items: items} }

// NewObject returns an empty ordered object.
func NewObject() *Value {
	return &Value{Kind: Object, fields: make(map[string]*Value)}
}

// Set inserts or replaces key, keeping the original position of existing keys.
// It returns v for chaining.
func (v *Value) Set(key string, val *Value) *Value {
	if v.fields == nil {
		v.fields = make(map[string]*Value)
	}
	if _, ok := v.fields[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.fields[key] = val
	return v
}

// Get returns the value stored at key.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != Object {
		return nil, false
	}
	val, ok := v.fields[key]
	return val, ok
}

// Has reports whether key is present, even when its value is undefined.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Delete removes key.
func (v *Value) Delete(key string) {
	if _, ok := v.Get(key); !ok {
		return
	}
	delete(v.fields, key)
	for i, k := range v.keys {
		if k == key {
			v.keys = append(v.keys[:i:i], v.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the object's keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil || v.Kind != Object {
		return nil
	}
	return v.keys
}

// Len returns the number of keys of an object or items of an array.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.Kind {
	case Object:
		return len(v.keys)
	case Seq:
		return len(v.Items)
	}
	return 0
}

// AsString returns the scalar as a string and whether it was one.
func (v *Value) AsString() (string, bool) {
	if v == nil || v.Kind != Scalar {
		return "", false
	}
	s, ok := v.Scalar.(string)
	return s, ok
}

// AsBool returns the scalar as a boolean and whether it was one.
func (v *Value) AsBool() (bool, bool) {
	if v == nil || v.Kind != Scalar {
		return false, false
	}
	b, ok := v.Scalar.(bool)
	return b, ok
}

// IsUndefined reports whether v is missing or explicitly undefined.
func (v *Value) IsUndefined() bool {
	return v == nil || v.Kind == Undefined
}

// Clone returns a deep copy. Embedded child schemas are shared, not copied.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	out := &Value{Kind: v.Kind, Scalar: v.Scalar, Embedded: v.Embedded}
	if v.Items != nil {
		out.Items = make([]*Value, len(v.Items))
		for i, item := range v.Items {
			out.Items[i] = item.Clone()
		}
	}
	if v.Kind == Object {
		out.fields = make(map[string]*Value, len(v.keys))
		out.keys = make([]string, len(v.keys))
		copy(out.keys, v.keys)
		for k, f := range v.fields {
			out.fields[k] = f.Clone()
		}
	}
	return out
}
