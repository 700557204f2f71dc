// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"strings"
	"text/template"
)

// TemplateFuncs returns the helpers layout templates use. indent is one
// indentation unit; s frames the custom region.
func TemplateFuncs(indent string, s Sentinels) template.FuncMap {
	return template.FuncMap{
		"banner":        func() string { return Banner },
		"defaultImport": func() string { return DefaultImport },
		"doc": func(lines []string, level int) string {
			return FormatDoc(lines, strings.Repeat(indent, level))
		},
		"indent": func(level int) string { return strings.Repeat(indent, level) },
		"extends": func(types []string) string {
			if len(types) == 0 {
				return ""
			}
			return " extends " + strings.Join(types, ", ")
		},
		"body": func(members []Member, level int) string {
			if len(members) == 0 {
				return "{}"
			}
			return "{\n" + FormatMembers(members, indent, level+1) + strings.Repeat(indent, level) + "}"
		},
		"custom": s.Wrap,
	}
}
