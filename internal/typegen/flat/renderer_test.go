// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package flat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen"
)

func tagFile(custom string) *typegen.File {
	return &typegen.File{
		Units: []typegen.Unit{{
			Model: "Tag",
			Decls: []typegen.Declaration{
				{
					Kind:    typegen.DeclLean,
					Name:    "Tag",
					Members: []typegen.Member{{Name: "label", Optional: true, Type: typegen.TypeExpr{Text: "string"}}},
				},
				{Kind: typegen.DeclObjectAlias, Name: "TagObject", Alias: "Tag"},
				{Kind: typegen.DeclStatics, Name: "TagStatics"},
			},
		}},
		Custom: custom,
	}
}

func TestRenderer_Render(t *testing.T) {
	r := &Renderer{}
	assert.Equal(t, "flat", r.Name())
	assert.Equal(t, typegen.FlatSentinels, r.Sentinels())

	out, err := r.Render(tagFile(""))
	require.NoError(t, err)

	want := typegen.Banner + "\n" + typegen.DefaultImport + "\n\n" +
		"export interface Tag {\n  label?: string;\n}\n\n" +
		"export type TagObject = Tag\n\n" +
		"export type TagStatics = {}\n\n" +
		typegen.FlatSentinels.Header + typegen.FlatSentinels.Footer
	assert.Equal(t, want, string(out))
}

func TestRenderer_RenderCustomRegion(t *testing.T) {
	out, err := (&Renderer{}).Render(tagFile("export type Color = \"red\";\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), typegen.FlatSentinels.Header+"export type Color = \"red\";\n"+typegen.FlatSentinels.Footer)
}
