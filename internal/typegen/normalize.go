// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"fmt"
	"strings"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/logger"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/mschema"
)

// reservedKeys are schema bookkeeping entries that never describe user data.
var reservedKeys = map[string]bool{
	"get":            true,
	"set":            true,
	"schemaName":     true,
	"defaultOptions": true,
	"_checkRequired": true,
	"_cast":          true,
	"checkRequired":  true,
	"cast":           true,
	"__v":            true,
}

// Normalize converts a spliced raw tree into normalized fields, in tree order.
// Shapes that match no rule degrade to any.
func Normalize(model string, tree *mschema.Value, maxDepth int) ([]Field, error) {
	n := &normalizer{model: model, maxDepth: maxDepth}
	return n.fields(tree, 0)
}

type normalizer struct {
	model    string
	maxDepth int
}

func (n *normalizer) fields(tree *mschema.Value, depth int) ([]Field, error) {
	if depth > n.maxDepth {
		return nil, depthError(n.model, n.maxDepth)
	}
	keys := tree.Keys()
	out := make([]Field, 0, len(keys))
	for _, key := range keys {
		raw, _ := tree.Get(key)
		f, ok, err := n.field(key, raw, depth)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (n *normalizer) field(key string, raw *mschema.Value, depth int) (Field, bool, error) {
	if reservedKeys[key] {
		return Field{}, false, nil
	}
	if raw == nil {
		raw = mschema.NewUndefined()
	}
	if isVirtualAccessor(raw) {
		if key == "id" {
			return Field{}, false, nil
		}
		return Field{Name: key, Type: anyType(), Virtual: true}, true, nil
	}

	f := Field{Name: key, Optional: !isRequired(raw)}

	switch {
	case raw.Kind == mschema.Seq:
		// Arrays are initialized to [] unless a spliced child opted out.
		if raw.Len() == 0 {
			f.Type = arrayOf(anyType())
			f.Optional = false
			break
		}
		elem := raw.Items[0]
		t, _, err := n.resolve(key, elem, depth)
		if err != nil {
			return Field{}, false, err
		}
		f.Type = arrayOf(t)
		f.Optional = elem.Embedded != nil && elem.Embedded.DefaultIsUndefined

	case isArrayMarker(raw):
		f.Type = arrayOf(anyType())
		f.Optional = hasNoDefault(raw)

	case isTypedArray(raw):
		t, optional, err := n.typedArray(key, raw, depth)
		if err != nil {
			return Field{}, false, err
		}
		f.Type = t
		f.Optional = optional

	default:
		t, required, err := n.resolve(key, raw, depth)
		if err != nil {
			return Field{}, false, err
		}
		f.Type = t
		if required {
			f.Optional = false
		}
	}

	if key == "_id" {
		f.Optional = false
	}
	return f, true, nil
}

// typedArray handles {type: [...]} descriptors and reports optionality.
func (n *normalizer) typedArray(key string, raw *mschema.Value, depth int) (Type, bool, error) {
	typ, _ := raw.Get("type")
	noDefault := hasNoDefault(raw)
	if typ.Len() == 0 {
		return arrayOf(anyType()), noDefault, nil
	}

	elem := typ.Items[0]
	desc := raw.Clone()
	if isOptionsDescriptor(elem) {
		// Element-level validators: the element options describe the type.
		inner, _ := elem.Get("type")
		desc.Set("type", inner)
		if ref, ok := elem.Get("ref"); ok {
			desc.Set("ref", ref)
		}
		if enum, ok := elem.Get("enum"); ok && !desc.Has("enum") {
			desc.Set("enum", enum)
		}
		t, _, err := n.resolve(key, desc, depth)
		return arrayOf(t), noDefault, err
	}

	desc.Set("type", elem)
	t, _, err := n.resolve(key, desc, depth)
	if err != nil {
		return Type{}, false, err
	}
	if idx, _ := raw.Get("index"); isString(idx, "2dsphere") {
		return arrayOf(t), true, nil
	}
	return arrayOf(t), noDefault, nil
}

// resolve maps a descriptor to its type. The boolean reports shapes that are
// always present (anonymous nested objects, required embedded documents).
func (n *normalizer) resolve(key string, desc *mschema.Value, depth int) (Type, bool, error) {
	switch {
	case desc.IsUndefined():
		return anyType(), false, nil
	case desc.Embedded != nil:
		return Type{
			Kind:        KindEmbedded,
			Embedded:    desc.Embedded.Name,
			SubdocArray: desc.Embedded.IsArray,
		}, desc.Embedded.Required, nil
	case desc.Kind == mschema.Seq:
		if desc.Len() == 0 {
			return arrayOf(anyType()), false, nil
		}
		t, _, err := n.resolve(key, desc.Items[0], depth)
		return arrayOf(t), false, err
	case desc.Kind == mschema.Scalar:
		return n.marker(key, desc, nil), false, nil
	case desc.Len() == 0:
		return anyType(), false, nil
	}

	if !desc.Has("type") {
		if isVirtualAccessor(desc) {
			return anyType(), false, nil
		}
		fields, err := n.fields(desc, depth+1)
		if err != nil {
			return Type{}, false, err
		}
		return Type{Kind: KindNested, Fields: fields}, true, nil
	}

	typ, _ := desc.Get("type")
	ref, hasRef := refOf(desc)
	if hasRef && !isString(typ, "Map") {
		return Type{Kind: KindReference, Ref: ref}, false, nil
	}

	switch {
	case typ.IsUndefined():
		return anyType(), false, nil
	case typ.Embedded != nil, typ.Kind == mschema.Seq:
		return n.resolve(key, typ, depth)
	case typ.Kind == mschema.Object:
		if typ.Len() == 0 {
			return anyType(), false, nil
		}
		fields, err := n.fields(typ, depth+1)
		if err != nil {
			return Type{}, false, err
		}
		return Type{Kind: KindNested, Fields: fields}, true, nil
	}

	if isString(typ, "Map") {
		// An outer ref types the map values.
		if hasRef {
			return mapOf(Type{Kind: KindReference, Ref: ref}), false, nil
		}
		of, ok := desc.Get("of")
		if !ok {
			return mapOf(anyType()), false, nil
		}
		v, _, err := n.resolve(key, of, depth)
		return mapOf(v), false, err
	}
	return n.marker(key, typ, enumOf(desc)), false, nil
}

func (n *normalizer) marker(key string, v *mschema.Value, enum []string) Type {
	s, ok := v.AsString()
	if !ok {
		logger.Logger.Debugw("field shape not recognized, typing as any", "model", n.model, "field", key, "value", v.Scalar)
		return anyType()
	}
	switch s {
	case "Array":
		return arrayOf(anyType())
	case "Map":
		return mapOf(anyType())
	}
	a, ok := ParseAtom(s)
	if !ok {
		logger.Logger.Debugw("type marker not recognized, typing as any", "model", n.model, "field", key, "marker", s)
		return anyType()
	}
	t := atomType(a)
	if a == AtomString {
		t.Enum = enum
	}
	return t
}

func depthError(model string, maxDepth int) error {
	return errors.WithHint(
		errors.Markf(errors.ErrMaxDepthExceeded, "model %s: schema nesting deeper than %d levels", model, maxDepth),
		"raise maxDepth in mtgen.yaml if the nesting is intentional")
}

func isVirtualAccessor(v *mschema.Value) bool {
	return v != nil && v.Kind == mschema.Object && v.Embedded == nil &&
		v.Has("path") && v.Has("getters") && v.Has("setters")
}

func isOptionsDescriptor(v *mschema.Value) bool {
	return v != nil && v.Kind == mschema.Object && v.Embedded == nil && v.Has("type")
}

func isArrayMarker(v *mschema.Value) bool {
	if isString(v, "Array") {
		return true
	}
	typ, ok := v.Get("type")
	return ok && isString(typ, "Array")
}

func isTypedArray(v *mschema.Value) bool {
	typ, ok := v.Get("type")
	return ok && typ.Kind == mschema.Seq
}

func isString(v *mschema.Value, want string) bool {
	s, ok := v.AsString()
	return ok && s == want
}

// isRequired accepts required: true and the [true, "message"] tuple form.
func isRequired(v *mschema.Value) bool {
	r, ok := v.Get("required")
	if !ok {
		return false
	}
	if r.Kind == mschema.Seq && r.Len() > 0 {
		r = r.Items[0]
	}
	b, _ := r.AsBool()
	return b
}

// hasNoDefault reports an explicit default: undefined.
func hasNoDefault(v *mschema.Value) bool {
	d, ok := v.Get("default")
	return ok && d.IsUndefined()
}

func refOf(desc *mschema.Value) (string, bool) {
	raw, ok := desc.Get("ref")
	if !ok {
		return "", false
	}
	ref, ok := raw.AsString()
	if !ok || ref == "" {
		return "", false
	}
	ref = strings.ReplaceAll(ref, "'", "")
	if strings.Contains(ref, ".") {
		ref = SubDocName(ref, "")
	}
	return ref, true
}

// enumOf reads enum: [...] or enum: {values: [...]}.
func enumOf(desc *mschema.Value) []string {
	raw, ok := desc.Get("enum")
	if !ok {
		return nil
	}
	if raw.Kind == mschema.Object {
		raw, _ = raw.Get("values")
	}
	if raw == nil || raw.Kind != mschema.Seq {
		return nil
	}
	out := make([]string, 0, raw.Len())
	for _, item := range raw.Items {
		if item.IsUndefined() {
			continue
		}
		if s, ok := item.AsString(); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(item.Scalar))
	}
	return out
}
