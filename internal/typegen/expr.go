// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"regexp"
	"strconv"
	"strings"
)

// TypeExpr is a rendered type. It is either plain text or an object literal,
// optionally surrounded by wrapper text such as "mongoose.Types.Array<" and ">".
type TypeExpr struct {
	Prefix   string
	Text     string
	IsObject bool
	Object   []Member
	Suffix   string
}

// Member is one property line of an interface or object literal.
type Member struct {
	Name     string
	Optional bool
	Type     TypeExpr
}

func textExpr(s string) TypeExpr { return TypeExpr{Text: s} }

func (e TypeExpr) wrap(prefix, suffix string) TypeExpr {
	e.Prefix = prefix + e.Prefix
	e.Suffix += suffix
	return e
}

// compound reports whether the expression needs parentheses before an
// array suffix: unions, generic applications with several arguments and
// object literals all contain a space.
func (e TypeExpr) compound() bool {
	return e.IsObject || strings.Contains(e.Prefix+e.Text+e.Suffix, " ")
}

// Format renders the expression. Object literal members are indented one
// level deeper than level.
func (e TypeExpr) Format(indent string, level int) string {
	if !e.IsObject {
		return e.Prefix + e.Text + e.Suffix
	}
	var sb strings.Builder
	sb.WriteString(e.Prefix)
	sb.WriteString("{\n")
	for _, m := range e.Object {
		sb.WriteString(m.Format(indent, level+1))
	}
	sb.WriteString(strings.Repeat(indent, level))
	sb.WriteString("}")
	sb.WriteString(e.Suffix)
	return sb.String()
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// PropertyName quotes names that are not valid identifiers.
func PropertyName(name string) string {
	if identifierPattern.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}

// Format renders "name?: type;\n" at the given indentation level.
func (m Member) Format(indent string, level int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(indent, level))
	sb.WriteString(PropertyName(m.Name))
	if m.Optional {
		sb.WriteString("?")
	}
	sb.WriteString(": ")
	sb.WriteString(m.Type.Format(indent, level))
	sb.WriteString(";\n")
	return sb.String()
}

// FormatMembers renders members one per line.
func FormatMembers(members []Member, indent string, level int) string {
	var sb strings.Builder
	for _, m := range members {
		sb.WriteString(m.Format(indent, level))
	}
	return sb.String()
}
