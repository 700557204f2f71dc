// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"os"
	"path/filepath"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/logger"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/mschema"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/signatures"
)

// Options configures one generation run.
type Options struct {
	Imports    []string
	Exceptions []string
	Signatures signatures.Table
	MaxDepth   int

	// Previous is the text of the previously generated file, if any.
	Previous string
	// Fresh discards the custom region found in Previous.
	Fresh bool
}

// Result is the outcome of a generation run.
type Result struct {
	Output  []byte
	Units   []Unit
	Skipped []string
}

// Declarations returns the total number of emitted declarations.
func (r *Result) Declarations() int {
	n := 0
	for _, u := range r.Units {
		n += len(u.Decls)
	}
	return n
}

// Generate synthesizes declarations for models and renders them with r.
// Output depends only on its inputs, so unchanged inputs give identical bytes.
func Generate(models []mschema.Model, r Renderer, opts Options) (*Result, error) {
	asm := &Assembler{
		MaxDepth:   opts.MaxDepth,
		Signatures: signatures.FromModels(models).Merge(opts.Signatures),
		Exceptions: opts.Exceptions,
	}
	units, skipped, err := asm.Assemble(models)
	if err != nil {
		return nil, err
	}

	custom := ""
	if !opts.Fresh {
		custom = ExtractCustom(opts.Previous)
	}

	out, err := r.Render(&File{Imports: opts.Imports, Units: units, Custom: custom})
	if err != nil {
		return nil, errors.Wrapf(err, "rendering %s layout", r.Name())
	}
	logger.Logger.Debugw("rendered output", "layout", r.Name(), "models", len(units), "bytes", len(out))

	return &Result{Output: out, Units: units, Skipped: skipped}, nil
}

// WriteOutput persists generated text, creating parent directories.
func WriteOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Mark(errors.Wrapf(err, "creating directory for %s", path), errors.ErrFileWriteFailure)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // generated source is meant to be readable
		return errors.Mark(errors.Wrapf(err, "writing %s", path), errors.ErrFileWriteFailure)
	}
	return nil
}
