// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"fmt"
	"strings"
)

// DeclKind identifies the role of a declaration within a model unit.
type DeclKind int

const (
	DeclChildLean DeclKind = iota
	DeclChildDocument
	DeclLean
	DeclObjectAlias
	DeclQueries
	DeclMethods
	DeclStatics
	DeclModel
	DeclSchema
	DeclDocument
)

func (k DeclKind) String() string {
	switch k {
	case DeclChildLean:
		return "child-lean"
	case DeclChildDocument:
		return "child-document"
	case DeclLean:
		return "lean"
	case DeclObjectAlias:
		return "object-alias"
	case DeclQueries:
		return "queries"
	case DeclMethods:
		return "methods"
	case DeclStatics:
		return "statics"
	case DeclModel:
		return "model"
	case DeclSchema:
		return "schema"
	case DeclDocument:
		return "document"
	default:
		return fmt.Sprintf("DeclKind(%d)", int(k))
	}
}

// Declaration is one self-contained type declaration.
type Declaration struct {
	Kind    DeclKind
	Name    string
	Doc     []string // doc comment lines, empty for none
	Extends []string
	Alias   string // right-hand side of a pure type alias
	Members []Member
}

// IsAlias reports a "type X = Y" declaration.
func (d Declaration) IsAlias() bool { return d.Alias != "" }

// IsTypeLiteral reports a "type X = { ... }" declaration.
func (d Declaration) IsTypeLiteral() bool {
	return d.Kind == DeclQueries || d.Kind == DeclMethods || d.Kind == DeclStatics
}

// Unit is the ordered set of declarations produced for one model.
type Unit struct {
	Model string
	Decls []Declaration
}

// FormatDoc renders doc lines as a JSDoc block at the given indentation.
// It returns "" when there are no lines.
func FormatDoc(lines []string, indent string) string {
	if len(lines) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(indent + "/**\n")
	for _, l := range lines {
		if l == "" {
			sb.WriteString(indent + " *\n")
			continue
		}
		sb.WriteString(indent + " * " + l + "\n")
	}
	sb.WriteString(indent + " */\n")
	return sb.String()
}

func constructorExample(model string) string {
	return fmt.Sprintf("const %s = mongoose.model<%sDocument, %sModel, %sQueries>(%q, %sSchema);",
		model, model, model, model, model, model)
}

func leanDocs(model, full string) []string {
	lower := strings.ToLower(model)
	summary := "This has all Mongoose getters & functions removed. This type will be returned from `" + model + "Document.toObject()`."
	if full == model {
		summary += " To avoid conflicts with model names, use the type alias `" + model + "Object`."
	}
	return []string{
		"Lean version of " + full + "Document",
		"",
		summary,
		"```",
		"const " + lower + "Object = " + lower + ".toObject();",
		"```",
	}
}

func objectDocs(model string) []string {
	lower := strings.ToLower(model)
	return []string{
		"Lean version of " + model + "Document (type alias of `" + model + "`)",
		"",
		"Use this type alias to avoid conflicts with model names:",
		"```",
		`import { ` + model + ` } from "../models"`,
		`import { ` + model + `Object } from "../interfaces/mongoose.gen.ts"`,
		"",
		"const " + lower + "Object: " + model + "Object = " + lower + ".toObject();",
		"```",
	}
}

func constructorDocs(title, model string) []string {
	return []string{
		title,
		"",
		"Pass this type to the Mongoose Model constructor:",
		"```",
		constructorExample(model),
		"```",
	}
}

func schemaDocs(model string) []string {
	return []string{
		"Mongoose Schema type",
		"",
		"Assign this type to new " + model + " schema instances:",
		"```",
		"const " + model + "Schema: " + model + "Schema = new mongoose.Schema({ ... })",
		"```",
	}
}

func subdocumentDocs(owner, path string) []string {
	return []string{
		"Mongoose Embedded Document type",
		"",
		"Type of `" + owner + `Document["` + path + `"]` + "` element.",
	}
}
