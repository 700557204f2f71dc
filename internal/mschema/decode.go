// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package mschema

import (
	"fmt"
	"sort"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"
)

// DecodeYAML parses YAML into an ordered Value tree.
func DecodeYAML(data []byte) (*Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return NewUndefined(), nil
	}
	return fromYAMLNode(&doc)
}

func fromYAMLNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return NewUndefined(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.SequenceNode:
		out := NewSeq()
		for _, c := range n.Content {
			item, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, item)
		}
		return out, nil
	case yaml.MappingNode:
		out := NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out.Set(key, val)
		}
		return out, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
}

func fromYAMLScalar(n *yaml.Node) (*Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return NewUndefined(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return NewScalar(b), nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			var f float64
			if derr := n.Decode(&f); derr != nil {
				return nil, err
			}
			return NewScalar(f), nil
		}
		return NewScalar(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return NewScalar(f), nil
	}
	return NewScalar(n.Value), nil
}

// DecodeJSON parses relaxed or canonical extended JSON into an ordered Value
// tree. Decoding goes through bson.D so object key order is kept, and
// {"$undefined": true} is understood as an explicit undefined.
func DecodeJSON(data []byte) (*Value, error) {
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, err
	}
	return fromBSON(doc), nil
}

func fromBSON(v any) *Value {
	switch t := v.(type) {
	case nil:
		return NewUndefined()
	case bson.Undefined, bson.Null:
		return NewUndefined()
	case bson.D:
		out := NewObject()
		for _, e := range t {
			out.Set(e.Key, fromBSON(e.Value))
		}
		return out
	case bson.M:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := NewObject()
		for _, k := range keys {
			out.Set(k, fromBSON(t[k]))
		}
		return out
	case bson.A:
		return fromBSONSlice(t)
	case []any:
		return fromBSONSlice(t)
	case string, bool, int64, float64:
		return NewScalar(t)
	case int32:
		return NewScalar(int64(t))
	case int:
		return NewScalar(int64(t))
	default:
		return NewScalar(fmt.Sprint(t))
	}
}

func fromBSONSlice(items []any) *Value {
	out := NewSeq()
	for _, item := range items {
		out.Items = append(out.Items, fromBSON(item))
	}
	return out
}
