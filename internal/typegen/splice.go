// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/logger"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/mschema"
)

// SubDocName derives the declaration name of an embedded schema: prefix
// followed by every path segment capitalized, with one trailing "s" removed.
// The rule is lossy; "pet" and "pets" under the same parent collide.
func SubDocName(path, prefix string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(seg[size:])
	}
	return strings.TrimSuffix(sb.String(), "s")
}

// Child is an embedded schema lifted out of its parent to be declared on its own.
type Child struct {
	Name    string // synthetic declaration name
	Owner   string // name of the declaration that embeds it
	Path    string // dotted path within the owner
	IsArray bool
	Schema  *mschema.Schema
	Tree    *mschema.Value // spliced tree of the child itself
}

// Splice returns a copy of schema's tree with every registered child schema
// replaced in place by an embedded marker, together with the lifted children
// in emission order: each child comes after its own descendants.
func Splice(name string, schema *mschema.Schema, maxDepth int) (*mschema.Value, []Child, error) {
	sp := &splicer{model: name, maxDepth: maxDepth, seen: make(map[string]string)}
	return sp.splice(name, schema, 0)
}

type splicer struct {
	model    string
	maxDepth int
	seen     map[string]string // synthetic name -> owner path that produced it
}

func (sp *splicer) splice(owner string, schema *mschema.Schema, depth int) (*mschema.Value, []Child, error) {
	if depth > sp.maxDepth {
		return nil, nil, depthError(sp.model, sp.maxDepth)
	}

	if schema == nil {
		return mschema.NewObject(), nil, nil
	}
	tree := schema.Tree.Clone()
	if tree == nil {
		tree = mschema.NewObject()
	}

	var children []Child
	for _, cs := range schema.ChildSchemas {
		name := SubDocName(cs.Path, owner)
		where := owner + "." + cs.Path
		if prev, ok := sp.seen[name]; ok {
			logger.Logger.Warnw("embedded schema name collision; later declaration shadows earlier",
				"model", sp.model, "name", name, "first", prev, "second", where)
		}
		sp.seen[name] = where

		raw := lookupPath(tree, cs.Path)
		emb := &mschema.Embedded{
			Name:     name,
			Schema:   cs.Schema,
			IsArray:  cs.ArraySubdocument,
			Required: isRequired(raw),
		}
		if cs.ArraySubdocument {
			emb.DefaultIsUndefined = hasNoDefault(raw)
		}

		node := mschema.NewObject()
		node.Embedded = emb
		if cs.ArraySubdocument {
			node = mschema.NewSeq(node)
		}
		setPath(tree, cs.Path, node)

		childTree, grandchildren, err := sp.splice(name, cs.Schema, depth+1)
		if err != nil {
			return nil, nil, err
		}
		children = append(children, grandchildren...)
		children = append(children, Child{
			Name:    name,
			Owner:   owner,
			Path:    cs.Path,
			IsArray: cs.ArraySubdocument,
			Schema:  cs.Schema,
			Tree:    childTree,
		})
	}
	return tree, children, nil
}

func lookupPath(tree *mschema.Value, path string) *mschema.Value {
	cur := tree
	for _, seg := range strings.Split(path, ".") {
		next, ok := cur.Get(seg)
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// setPath stores val at a dotted path, creating intermediate objects and
// discarding whatever was there before, descendants included.
func setPath(tree *mschema.Value, path string, val *mschema.Value) {
	segs := strings.Split(path, ".")
	cur := tree
	for _, seg := range segs[:len(segs)-1] {
		next, ok := cur.Get(seg)
		if !ok || next.Kind != mschema.Object || next.Embedded != nil {
			next = mschema.NewObject()
			cur.Set(seg, next)
		}
		cur = next
	}
	cur.Set(segs[len(segs)-1], val)
}
