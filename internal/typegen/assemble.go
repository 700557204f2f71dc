// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/logger"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/mschema"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/signatures"
)

// DefaultMaxDepth bounds schema nesting when no ceiling is configured.
const DefaultMaxDepth = 32

// Assembler builds declaration units from loaded models.
type Assembler struct {
	MaxDepth   int
	Signatures signatures.Table
	Exceptions []string
}

// Assemble processes models in order, one at a time. Models named in
// Exceptions are skipped and reported.
func (a *Assembler) Assemble(models []mschema.Model) (units []Unit, skipped []string, err error) {
	except := make(map[string]bool, len(a.Exceptions))
	for _, name := range a.Exceptions {
		except[name] = true
	}

	owners := make(map[string]string)
	claim := func(name, owner string) {
		if prev, ok := owners[name]; ok && prev != owner {
			logger.Logger.Warnw("declaration name used twice; generated file will not compile",
				"name", name, "first", prev, "second", owner)
			return
		}
		owners[name] = owner
	}

	for _, m := range models {
		if except[m.Name] {
			logger.Logger.Infow("skipping model listed in exceptions", "model", m.Name)
			skipped = append(skipped, m.Name)
			continue
		}
		claim(m.Name, m.Name)

		unit, err := a.assembleModel(m)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "model %s", m.Name)
		}
		for _, d := range unit.Decls {
			if d.Kind == DeclChildLean {
				claim(d.Name, m.Name)
			}
		}
		units = append(units, unit)
	}
	return units, skipped, nil
}

func (a *Assembler) maxDepth() int {
	if a.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return a.MaxDepth
}

func (a *Assembler) assembleModel(m mschema.Model) (Unit, error) {
	name := m.Name
	schema := m.Schema
	if schema == nil {
		schema = &mschema.Schema{Tree: mschema.NewObject()}
	}

	tree, children, err := Splice(name, schema, a.maxDepth())
	if err != nil {
		return Unit{}, err
	}

	unit := Unit{Model: name}
	for _, c := range children {
		decls, err := a.childDecls(name, c)
		if err != nil {
			return Unit{}, err
		}
		unit.Decls = append(unit.Decls, decls...)
	}

	fields, err := Normalize(name, tree, a.maxDepth())
	if err != nil {
		return Unit{}, err
	}
	if len(fields) == 0 {
		logger.Logger.Debugw("model has no fields", "model", name)
	}

	unit.Decls = append(unit.Decls,
		Declaration{
			Kind:    DeclLean,
			Name:    name,
			Doc:     leanDocs(name, name),
			Members: Synthesize(fields, Lean, name, schema.LeanIncludesVirtuals()),
		},
		Declaration{
			Kind:  DeclObjectAlias,
			Name:  name + "Object",
			Doc:   objectDocs(name),
			Alias: name,
		},
		Declaration{
			Kind:    DeclQueries,
			Name:    name + "Queries",
			Doc:     constructorDocs("Mongoose Query types", name),
			Members: functionMembers(name, signatures.Query, schema.Query, a.Signatures),
		},
		Declaration{
			Kind:    DeclMethods,
			Name:    name + "Methods",
			Members: functionMembers(name, signatures.Methods, schema.Methods, a.Signatures),
		},
		Declaration{
			Kind:    DeclStatics,
			Name:    name + "Statics",
			Members: functionMembers(name, signatures.Statics, schema.Statics, a.Signatures),
		},
		Declaration{
			Kind:    DeclModel,
			Name:    name + "Model",
			Doc:     constructorDocs("Mongoose Model type", name),
			Extends: []string{"mongoose.Model<" + name + "Document, " + name + "Queries>", name + "Statics"},
		},
		Declaration{
			Kind:  DeclSchema,
			Name:  name + "Schema",
			Doc:   schemaDocs(name),
			Alias: "mongoose.Schema<" + name + "Document, " + name + "Model>",
		},
		Declaration{
			Kind:    DeclDocument,
			Name:    name + "Document",
			Doc:     constructorDocs("Mongoose Document type", name),
			Extends: []string{"mongoose.Document<" + idType(fields) + ", " + name + "Queries>", name + "Methods"},
			Members: Synthesize(fields, Hydrated, name, true),
		},
	)
	return unit, nil
}

func (a *Assembler) childDecls(model string, c Child) ([]Declaration, error) {
	fields, err := Normalize(model, c.Tree, a.maxDepth())
	if err != nil {
		return nil, err
	}

	doc := Declaration{
		Kind:    DeclChildDocument,
		Name:    c.Name + "Document",
		Members: Synthesize(fields, Hydrated, model, true),
	}
	if c.IsArray {
		doc.Doc = subdocumentDocs(c.Owner, c.Path)
		doc.Extends = []string{"mongoose.Types.EmbeddedDocument"}
	} else {
		doc.Doc = constructorDocs("Mongoose Document type", c.Owner)
		doc.Extends = []string{"mongoose.Document<" + idType(fields) + ">"}
	}

	lean := Declaration{
		Kind:    DeclChildLean,
		Name:    c.Name,
		Doc:     leanDocs(c.Owner, c.Name),
		Members: Synthesize(fields, Lean, model, c.Schema.LeanIncludesVirtuals()),
	}
	return []Declaration{lean, doc}, nil
}

// idType is the hydrated type of _id, or never when the tree has none.
func idType(fields []Field) string {
	for _, f := range fields {
		if f.Name != "_id" {
			continue
		}
		e := synthesizer{mode: Hydrated}.expr(f.Type)
		if e.IsObject {
			return "any"
		}
		return e.Format("", 0)
	}
	return "never"
}
