// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/mschema"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/signatures"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen/augment"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen/flat"
)

const userSnapshot = `
models:
  - name: User
    tree:
      name: {type: String, required: true}
      pets: [{}]
    childSchemas:
      - path: pets
        arraySubdocument: true
        schema:
          tree:
            kind: {type: String, enum: [cat, dog]}
    methods: [isAdmin]
`

func loadModels(t *testing.T, snapshot string) []mschema.Model {
	t.Helper()
	fsys := fstest.MapFS{"models.yaml": &fstest.MapFile{Data: []byte(snapshot)}}
	models, err := mschema.NewLoader(fsys).LoadFile("models.yaml")
	require.NoError(t, err)
	return models
}

// assertInOrder checks that every snippet occurs in out, each after the previous one.
func assertInOrder(t *testing.T, out string, snippets ...string) {
	t.Helper()
	pos := 0
	for _, s := range snippets {
		i := strings.Index(out[pos:], s)
		if !assert.GreaterOrEqual(t, i, 0, "missing or out of order:\n%s\n--- in ---\n%s", s, out) {
			return
		}
		pos += i + len(s)
	}
}

func TestGenerate_FlatEndToEnd(t *testing.T) {
	res, err := typegen.Generate(loadModels(t, userSnapshot), &flat.Renderer{}, typegen.Options{
		Imports: []string{`import { Extra } from "./extra";`},
	})
	require.NoError(t, err)
	out := string(res.Output)

	assert.True(t, strings.HasPrefix(out, typegen.Banner+"\n"+typegen.DefaultImport+"\n"+`import { Extra } from "./extra";`+"\n\n"))

	assertInOrder(t, out,
		"export interface UserPet {\n  kind?: \"cat\" | \"dog\";\n}\n",
		"export interface UserPetDocument extends mongoose.Types.EmbeddedDocument {\n  kind?: \"cat\" | \"dog\";\n}\n",
		"export interface User {\n  name: string;\n  pets: UserPet[];\n}\n",
		"export type UserObject = User\n",
		"export type UserQueries = {}\n",
		"export type UserMethods = {\n  isAdmin: (this: UserDocument, ...args: any[]) => any;\n}\n",
		"export type UserStatics = {}\n",
		"export interface UserModel extends mongoose.Model<UserDocument, UserQueries>, UserStatics {}\n",
		"export type UserSchema = mongoose.Schema<UserDocument, UserModel>\n",
		"export interface UserDocument extends mongoose.Document<never, UserQueries>, UserMethods {\n  name: string;\n  pets: mongoose.Types.DocumentArray<UserPetDocument>;\n}\n",
	)
	assert.True(t, strings.HasSuffix(out, "}\n\n"+typegen.FlatSentinels.Header+typegen.FlatSentinels.Footer))
	assert.Equal(t, 10, res.Declarations())
}

func TestGenerate_DocComments(t *testing.T) {
	res, err := typegen.Generate(loadModels(t, userSnapshot), &flat.Renderer{}, typegen.Options{})
	require.NoError(t, err)
	assertInOrder(t, string(res.Output),
		"/**\n * Lean version of UserPetDocument\n *\n",
		"/**\n * Mongoose Embedded Document type\n *\n * Type of `UserDocument[\"pets\"]` element.\n */\nexport interface UserPetDocument",
		"/**\n * Mongoose Schema type\n",
	)
}

func TestGenerate_Idempotent(t *testing.T) {
	models := loadModels(t, userSnapshot)
	for _, r := range []typegen.Renderer{&flat.Renderer{}, &augment.Renderer{}} {
		t.Run(r.Name(), func(t *testing.T) {
			first, err := typegen.Generate(models, r, typegen.Options{})
			require.NoError(t, err)
			second, err := typegen.Generate(models, r, typegen.Options{Previous: string(first.Output)})
			require.NoError(t, err)
			assert.Equal(t, string(first.Output), string(second.Output))
		})
	}
}

func TestGenerate_CustomRegionRoundTrip(t *testing.T) {
	models := loadModels(t, userSnapshot)
	for _, r := range []typegen.Renderer{&flat.Renderer{}, &augment.Renderer{}} {
		t.Run(r.Name(), func(t *testing.T) {
			s := r.Sentinels()
			prev := "stale\n" + s.Header + "// mine\n" + s.Footer + "stale\n"

			res, err := typegen.Generate(models, r, typegen.Options{Previous: prev})
			require.NoError(t, err)
			assert.Contains(t, string(res.Output), s.Header+"// mine\n"+s.Footer)
			assert.NotContains(t, string(res.Output), "stale")

			res, err = typegen.Generate(models, r, typegen.Options{Previous: prev, Fresh: true})
			require.NoError(t, err)
			assert.NotContains(t, string(res.Output), "// mine")
		})
	}
}

func TestGenerate_CustomRegionSurvivesLayoutSwitch(t *testing.T) {
	models := loadModels(t, userSnapshot)
	prev := typegen.AugmentSentinels.Wrap("\ttype Extra = string;\n")

	res, err := typegen.Generate(models, &flat.Renderer{}, typegen.Options{Previous: prev})
	require.NoError(t, err)
	assert.Contains(t, string(res.Output), typegen.FlatSentinels.Wrap("\ttype Extra = string;\n"))
}

func TestGenerate_Augment(t *testing.T) {
	res, err := typegen.Generate(loadModels(t, userSnapshot), &augment.Renderer{}, typegen.Options{})
	require.NoError(t, err)
	out := string(res.Output)

	assertInOrder(t, out,
		typegen.DefaultImport+"\n\ndeclare module \"mongoose\" {\n",
		"\tinterface UserPet {\n\t\tkind?: \"cat\" | \"dog\";\n\t}\n",
		"\tinterface User {\n\t\tname: string;\n\t\tpets: UserPet[];\n\t}\n",
		"\ttype UserMethods = {\n\t\tisAdmin: (this: UserDocument, ...args: any[]) => any;\n\t}\n",
		"\tinterface UserDocument extends mongoose.Document<never, UserQueries>, UserMethods {\n",
	)
	assert.NotContains(t, out, "UserObject =")
	assert.NotContains(t, out, "UserSchema =")
	assert.NotContains(t, out, "export ")
	assert.True(t, strings.HasSuffix(out, typegen.AugmentSentinels.Header+typegen.AugmentSentinels.Footer+"}\n"))
}

func TestGenerate_Signatures(t *testing.T) {
	snapshot := `
models:
  - name: User
    tree: {name: String}
    methods:
      isAdmin: "(this: UserDocument) => boolean"
      rename: ~
    statics: [findByName]
    query: [byName]
`
	table := make(signatures.Table)
	table.Set("User", signatures.Statics, "findByName", "(this: UserModel, name: string) => Promise<UserDocument>")
	table.Set("User", signatures.Query, "byName", "(this: any, name: string) => any")

	res, err := typegen.Generate(loadModels(t, snapshot), &flat.Renderer{}, typegen.Options{Signatures: table})
	require.NoError(t, err)
	assertInOrder(t, string(res.Output),
		"byName: <Q extends mongoose.Query<any, UserDocument, any>>(this: Q, name: string) => Q;\n",
		"isAdmin: (this: UserDocument) => boolean;\n",
		"rename: (this: UserDocument, ...args: any[]) => any;\n",
		"findByName: (this: UserModel, name: string) => Promise<UserDocument>;\n",
	)
}

func TestGenerate_SelfReferenceAndOthers(t *testing.T) {
	snapshot := `
models:
  - name: User
    tree:
      friends: {type: [{type: ObjectId, ref: User}]}
      bestPost: {type: ObjectId, ref: Post}
  - name: Post
    tree:
      author: {type: ObjectId, ref: User, required: true}
`
	res, err := typegen.Generate(loadModels(t, snapshot), &flat.Renderer{}, typegen.Options{})
	require.NoError(t, err)
	out := string(res.Output)

	assertInOrder(t, out,
		"export interface User {\n  friends: (User[\"_id\"] | User)[];\n  bestPost?: Post[\"_id\"] | Post;\n}\n",
		"export interface UserDocument extends mongoose.Document<never, UserQueries>, UserMethods {\n  friends: mongoose.Types.Array<User[\"_id\"] | User>;\n  bestPost?: PostDocument[\"_id\"] | PostDocument;\n}\n",
		"export interface Post {\n  author: User[\"_id\"] | User;\n}\n",
		"  author: UserDocument[\"_id\"] | UserDocument;\n",
	)
}

func TestGenerate_ModelWithoutSchema(t *testing.T) {
	res, err := typegen.Generate([]mschema.Model{{Name: "Bare"}}, &flat.Renderer{}, typegen.Options{})
	require.NoError(t, err)
	assertInOrder(t, string(res.Output),
		"export interface Bare {}\n",
		"export interface BareDocument extends mongoose.Document<never, BareQueries>, BareMethods {}\n",
	)
}

func TestGenerate_MaxDepth(t *testing.T) {
	snapshot := "models:\n  - name: Deep\n    tree: {a: {b: {c: String}}}\n"
	_, err := typegen.Generate(loadModels(t, snapshot), &flat.Renderer{}, typegen.Options{MaxDepth: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMaxDepthExceeded))
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.ts")
	require.NoError(t, typegen.WriteOutput(path, []byte("x")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	err = typegen.WriteOutput(filepath.Join(blocker, "out.ts"), []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFileWriteFailure))
}

func TestRegister(t *testing.T) {
	reg := typegen.Register{"flat": &flat.Renderer{}, "augment": &augment.Renderer{}}
	assert.Equal(t, []string{"augment", "flat"}, reg.Available())

	r, err := reg.Get("flat")
	require.NoError(t, err)
	assert.Equal(t, "flat", r.Name())

	_, err = reg.Get("nested")
	require.Error(t, err)
}
