// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package flat renders declarations as standalone exported types.
package flat

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen"
)

//go:embed flat.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("flat.ts.tmpl").
	Funcs(typegen.TemplateFuncs("  ", typegen.FlatSentinels)).
	ParseFS(tmplFS, "flat.ts.tmpl"))

// Renderer writes every declaration as a top-level export.
type Renderer struct{}

// Name returns the layout identifier.
func (r *Renderer) Name() string {
	return "flat"
}

// Sentinels returns the top-level custom region markers.
func (r *Renderer) Sentinels() typegen.Sentinels {
	return typegen.FlatSentinels
}

// Render produces the generated file.
func (r *Renderer) Render(f *typegen.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "flat.ts.tmpl", f); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
