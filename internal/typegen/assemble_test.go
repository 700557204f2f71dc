// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/mschema"
)

func kinds(u Unit) []DeclKind {
	out := make([]DeclKind, len(u.Decls))
	for i, d := range u.Decls {
		out[i] = d.Kind
	}
	return out
}

func decl(t *testing.T, u Unit, name string) Declaration {
	t.Helper()
	for _, d := range u.Decls {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("declaration %s not found", name)
	return Declaration{}
}

func TestAssemble_Order(t *testing.T) {
	pet := &mschema.Schema{Tree: mustTree(t, "name: String")}
	profile := &mschema.Schema{Tree: mustTree(t, "_id: {type: ObjectId}\nbio: String")}
	user := mschema.Model{Name: "User", Schema: &mschema.Schema{
		Tree: mustTree(t, "_id: {type: ObjectId, auto: true}\npets: [{}]\nprofile: {}"),
		ChildSchemas: []mschema.ChildSchema{
			{Path: "pets", ArraySubdocument: true, Schema: pet},
			{Path: "profile", Schema: profile},
		},
		Methods: []mschema.Function{{Name: "isAdmin"}},
	}}

	units, skipped, err := (&Assembler{}).Assemble([]mschema.Model{user})
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, units, 1)

	u := units[0]
	assert.Equal(t, []DeclKind{
		DeclChildLean, DeclChildDocument,
		DeclChildLean, DeclChildDocument,
		DeclLean, DeclObjectAlias, DeclQueries, DeclMethods, DeclStatics,
		DeclModel, DeclSchema, DeclDocument,
	}, kinds(u))

	assert.Equal(t, []string{"mongoose.Types.EmbeddedDocument"}, decl(t, u, "UserPetDocument").Extends)
	assert.Equal(t, []string{"mongoose.Document<mongoose.Types.ObjectId>"}, decl(t, u, "UserProfileDocument").Extends)
	assert.Equal(t, []string{
		"mongoose.Document<mongoose.Types.ObjectId, UserQueries>", "UserMethods",
	}, decl(t, u, "UserDocument").Extends)
	assert.Equal(t, []string{"mongoose.Model<UserDocument, UserQueries>", "UserStatics"}, decl(t, u, "UserModel").Extends)
	assert.Equal(t, "User", decl(t, u, "UserObject").Alias)
	assert.Equal(t, "mongoose.Schema<UserDocument, UserModel>", decl(t, u, "UserSchema").Alias)

	lean := decl(t, u, "User")
	require.Len(t, lean.Members, 3)
	assert.Equal(t, "UserPet[]", lean.Members[1].Type.Format("", 0))
	assert.Equal(t, "UserProfile", lean.Members[2].Type.Format("", 0))
	assert.True(t, lean.Members[2].Optional)

	doc := decl(t, u, "UserDocument")
	assert.Equal(t, "mongoose.Types.DocumentArray<UserPetDocument>", doc.Members[1].Type.Format("", 0))
	assert.Equal(t, "UserProfileDocument", doc.Members[2].Type.Format("", 0))

	methods := decl(t, u, "UserMethods")
	require.Len(t, methods.Members, 1)
	assert.Equal(t, "(this: UserDocument, ...args: any[]) => any", methods.Members[0].Type.Text)
}

func TestAssemble_NoIDIsNever(t *testing.T) {
	m := mschema.Model{Name: "Log", Schema: &mschema.Schema{Tree: mustTree(t, "msg: String")}}
	units, _, err := (&Assembler{}).Assemble([]mschema.Model{m})
	require.NoError(t, err)
	assert.Equal(t, "mongoose.Document<never, LogQueries>", decl(t, units[0], "LogDocument").Extends[0])
}

func TestAssemble_Exceptions(t *testing.T) {
	models := []mschema.Model{
		{Name: "User", Schema: &mschema.Schema{Tree: mschema.NewObject()}},
		{Name: "Audit", Schema: &mschema.Schema{Tree: mschema.NewObject()}},
	}
	units, skipped, err := (&Assembler{Exceptions: []string{"Audit"}}).Assemble(models)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "User", units[0].Model)
	assert.Equal(t, []string{"Audit"}, skipped)
}

func TestAssemble_LeanVirtuals(t *testing.T) {
	off := false
	schema := &mschema.Schema{
		Tree:    mustTree(t, "name: String\nfullName: {path: fullName, getters: [], setters: []}"),
		Options: mschema.Options{ToObject: mschema.SerializeOptions{Virtuals: &off}},
	}
	units, _, err := (&Assembler{}).Assemble([]mschema.Model{{Name: "User", Schema: schema}})
	require.NoError(t, err)

	assert.Len(t, decl(t, units[0], "User").Members, 1, "lean excludes virtuals when disabled")
	assert.Len(t, decl(t, units[0], "UserDocument").Members, 2)
}

func TestAssemble_PreservesModelOrder(t *testing.T) {
	models := []mschema.Model{
		{Name: "Zebra", Schema: &mschema.Schema{Tree: mschema.NewObject()}},
		{Name: "Apple", Schema: &mschema.Schema{Tree: mschema.NewObject()}},
	}
	units, _, err := (&Assembler{}).Assemble(models)
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "Zebra", units[0].Model)
	assert.Equal(t, "Apple", units[1].Model)
}
