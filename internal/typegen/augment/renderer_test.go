// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package augment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen"
)

func TestRenderer_Render(t *testing.T) {
	r := &Renderer{}
	assert.Equal(t, "augment", r.Name())
	assert.Equal(t, typegen.AugmentSentinels, r.Sentinels())

	out, err := r.Render(&typegen.File{
		Imports: []string{`import { Color } from "./color";`},
		Units: []typegen.Unit{{
			Model: "Tag",
			Decls: []typegen.Declaration{
				{
					Kind:    typegen.DeclLean,
					Name:    "Tag",
					Doc:     []string{"Lean version of TagDocument"},
					Members: []typegen.Member{{Name: "color", Type: typegen.TypeExpr{Text: "Color"}}},
				},
				{Kind: typegen.DeclObjectAlias, Name: "TagObject", Alias: "Tag"},
				{Kind: typegen.DeclMethods, Name: "TagMethods"},
			},
		}},
	})
	require.NoError(t, err)
	text := string(out)

	assert.True(t, strings.HasPrefix(text, typegen.Banner+"\n"+typegen.DefaultImport+"\n"+`import { Color } from "./color";`+"\n"))
	assert.Contains(t, text, "declare module \"mongoose\" {\n")
	assert.Contains(t, text, "\t/**\n\t * Lean version of TagDocument\n\t */\n\tinterface Tag {\n\t\tcolor: Color;\n\t}\n")
	assert.Contains(t, text, "\ttype TagMethods = {}\n")
	assert.NotContains(t, text, "TagObject")
	assert.NotContains(t, text, "export ")
	assert.True(t, strings.HasSuffix(text, typegen.AugmentSentinels.Header+typegen.AugmentSentinels.Footer+"}\n"))
}
