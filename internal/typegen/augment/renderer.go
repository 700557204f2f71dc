// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package augment renders declarations inside a single ambient
// `declare module "mongoose"` block. Pure aliases are omitted.
package augment

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen"
)

//go:embed augment.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("augment.ts.tmpl").
	Funcs(typegen.TemplateFuncs("\t", typegen.AugmentSentinels)).
	ParseFS(tmplFS, "augment.ts.tmpl"))

// Renderer writes module augmentation declarations.
type Renderer struct{}

func (r *Renderer) Name() string {
	return "augment"
}

func (r *Renderer) Sentinels() typegen.Sentinels {
	return typegen.AugmentSentinels
}

func (r *Renderer) Render(f *typegen.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "augment.ts.tmpl", f); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
