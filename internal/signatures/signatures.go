// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package signatures holds real call signatures for hand-written model
// functions, keyed by model, function family and function name.
//
// A signature file looks like:
//
//	User:
//	  methods:
//	    isAdmin: "(this: UserDocument) => boolean"
//	  statics:
//	    findByEmail: "(this: UserModel, email: string) => Promise<UserDocument | null>"
//	  query:
//	    byEmail: "(this: any, email: string) => any"
package signatures

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/mschema"
)

// Family is one of the three function families a model can declare.
type Family string

const (
	Methods Family = "methods"
	Statics Family = "statics"
	Query   Family = "query"
)

// Families lists the families in emission order.
var Families = []Family{Query, Methods, Statics}

// Table maps model name -> family -> function name -> signature.
type Table map[string]map[Family]map[string]string

// Lookup returns the signature for a function, if one is known.
func (t Table) Lookup(model string, family Family, name string) (string, bool) {
	sig, ok := t[model][family][name]
	if !ok || sig == "" {
		return "", false
	}
	return sig, true
}

// Set records a signature, replacing any previous one.
func (t Table) Set(model string, family Family, name, signature string) {
	if t[model] == nil {
		t[model] = make(map[Family]map[string]string)
	}
	if t[model][family] == nil {
		t[model][family] = make(map[string]string)
	}
	t[model][family][name] = signature
}

// Merge returns a new table holding t overlaid with other. Entries in other win.
func (t Table) Merge(other Table) Table {
	out := make(Table)
	for _, src := range []Table{t, other} {
		for model, fams := range src {
			for fam, fns := range fams {
				for name, sig := range fns {
					if sig != "" {
						out.Set(model, fam, name, sig)
					}
				}
			}
		}
	}
	return out
}

// Parse decodes a YAML (or JSON) signature table.
func Parse(data []byte) (Table, error) {
	var raw map[string]map[Family]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing signature table")
	}
	t := make(Table)
	for model, fams := range raw {
		for fam, fns := range fams {
			switch fam {
			case Methods, Statics, Query:
			default:
				return nil, errors.WithHint(
					errors.Newf("model %s: unknown function family %q", model, fam),
					"families are methods, statics and query")
			}
			for name, sig := range fns {
				t.Set(model, fam, name, sig)
			}
		}
	}
	return t, nil
}

// Load reads a signature table from disk.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrapf(err, "signature file %s", path), errors.ErrConfigurationNotFound)
		}
		return nil, errors.Wrapf(err, "reading signature file %s", path)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "signature file %s", path)
	}
	return t, nil
}

// FromModels collects the signatures carried inline by model snapshots.
func FromModels(models []mschema.Model) Table {
	t := make(Table)
	for _, m := range models {
		if m.Schema == nil {
			continue
		}
		fams := map[Family][]mschema.Function{
			Methods: m.Schema.Methods,
			Statics: m.Schema.Statics,
			Query:   m.Schema.Query,
		}
		for fam, fns := range fams {
			for _, fn := range fns {
				if fn.Signature != "" {
					t.Set(m.Name, fam, fn.Name, fn.Signature)
				}
			}
		}
	}
	return t
}
