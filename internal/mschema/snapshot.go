// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package mschema

import (
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
)

func parseSnapshot(root *Value) ([]Model, error) {
	if root.IsUndefined() {
		return nil, nil
	}
	if root.Kind != Object {
		return nil, errors.Newf("top level must be an object, got %s", root.Kind)
	}
	list, ok := root.Get("models")
	if !ok || list.IsUndefined() {
		return nil, nil
	}
	if list.Kind != Seq {
		return nil, errors.Newf("models must be a list, got %s", list.Kind)
	}

	models := make([]Model, 0, len(list.Items))
	for i, item := range list.Items {
		if item.Kind != Object {
			return nil, errors.Newf("models[%d]: must be an object", i)
		}
		nameVal, _ := item.Get("name")
		name, ok := nameVal.AsString()
		if !ok || name == "" {
			return nil, errors.Newf("models[%d]: name is required", i)
		}
		schema, err := parseSchema(item)
		if err != nil {
			return nil, errors.Wrapf(err, "model %s", name)
		}
		models = append(models, Model{Name: name, Schema: schema})
	}
	return models, nil
}

func parseSchema(v *Value) (*Schema, error) {
	s := &Schema{Tree: NewObject()}

	if tree, ok := v.Get("tree"); ok && !tree.IsUndefined() {
		if tree.Kind != Object {
			return nil, errors.Newf("tree must be an object, got %s", tree.Kind)
		}
		s.Tree = tree
	}

	if children, ok := v.Get("childSchemas"); ok && !children.IsUndefined() {
		if children.Kind != Seq {
			return nil, errors.Newf("childSchemas must be a list, got %s", children.Kind)
		}
		for i, c := range children.Items {
			child, err := parseChild(c)
			if err != nil {
				return nil, errors.Wrapf(err, "childSchemas[%d]", i)
			}
			s.ChildSchemas = append(s.ChildSchemas, child)
		}
	}

	var err error
	if s.Methods, err = parseFunctions(v, "methods"); err != nil {
		return nil, err
	}
	if s.Statics, err = parseFunctions(v, "statics"); err != nil {
		return nil, err
	}
	if s.Query, err = parseFunctions(v, "query"); err != nil {
		return nil, err
	}
	if s.Virtuals, err = parseNames(v, "virtuals"); err != nil {
		return nil, err
	}

	if opts, ok := v.Get("options"); ok {
		if toObject, ok := opts.Get("toObject"); ok {
			s.Options.ToObject.Virtuals = optionalBool(toObject, "virtuals")
			s.Options.ToObject.Getters = optionalBool(toObject, "getters")
		}
	}

	for _, name := range s.Virtuals {
		if !s.Tree.Has(name) {
			s.Tree.Set(name, virtualAccessor(name))
		}
	}
	return s, nil
}

func parseChild(v *Value) (ChildSchema, error) {
	if v.Kind != Object {
		return ChildSchema{}, errors.Newf("must be an object, got %s", v.Kind)
	}
	pathVal, _ := v.Get("path")
	p, ok := pathVal.AsString()
	if !ok || p == "" {
		return ChildSchema{}, errors.New("path is required")
	}
	schemaVal, ok := v.Get("schema")
	if !ok || schemaVal.Kind != Object {
		return ChildSchema{}, errors.Newf("%s: schema is required", p)
	}
	schema, err := parseSchema(schemaVal)
	if err != nil {
		return ChildSchema{}, errors.Wrapf(err, "%s", p)
	}
	isArray, _ := v.Get("arraySubdocument")
	arr, _ := isArray.AsBool()
	return ChildSchema{Path: p, ArraySubdocument: arr, Schema: schema}, nil
}

// parseFunctions accepts either a list of names or a mapping of name to an
// optional signature string.
func parseFunctions(v *Value, key string) ([]Function, error) {
	raw, ok := v.Get(key)
	if !ok || raw.IsUndefined() {
		return nil, nil
	}
	switch raw.Kind {
	case Seq:
		var out []Function
		for i, item := range raw.Items {
			name, ok := item.AsString()
			if !ok {
				return nil, errors.Newf("%s[%d]: must be a string", key, i)
			}
			out = append(out, Function{Name: name})
		}
		return out, nil
	case Object:
		var out []Function
		for _, name := range raw.Keys() {
			sig, _ := raw.Get(name)
			s, _ := sig.AsString()
			out = append(out, Function{Name: name, Signature: s})
		}
		return out, nil
	}
	return nil, errors.Newf("%s must be a list or an object, got %s", key, raw.Kind)
}

func parseNames(v *Value, key string) ([]string, error) {
	fns, err := parseFunctions(v, key)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(fns))
	for i, f := range fns {
		names[i] = f.Name
	}
	return names, nil
}

func optionalBool(v *Value, key string) *bool {
	raw, ok := v.Get(key)
	if !ok {
		return nil
	}
	b, ok := raw.AsBool()
	if !ok {
		return nil
	}
	return &b
}

// virtualAccessor builds the raw shape the document mapper uses for virtuals.
func virtualAccessor(name string) *Value {
	return NewObject().
		Set("path", NewScalar(name)).
		Set("getters", NewSeq()).
		Set("setters", NewSeq())
}
