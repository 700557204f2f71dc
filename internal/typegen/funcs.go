// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"regexp"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/mschema"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/signatures"
)

// DefaultSignature is used when no real signature is known.
const DefaultSignature = "(...args: any[]) => any"

// signaturePattern splits "(this: T, a: string) => R" into params and return type.
var signaturePattern = regexp.MustCompile(`\((?:this: \w*(?:, )?)?(.*)\) => (.*)`)

// reservedFunctions are installed by the library itself.
var reservedFunctions = map[string]bool{
	"initializeTimestamps": true,
}

// FunctionType renders the call signature of one function bound to its
// receiver. Query helpers are generic over the query type so chained calls
// keep the narrowed query.
func FunctionType(model string, family signatures.Family, signature string) string {
	var params, ret string
	if m := signaturePattern.FindStringSubmatch(signature); m != nil {
		params, ret = m[1], m[2]
	}
	if params != "" {
		params = ", " + params
	}
	if ret == "" {
		ret = "any"
	}

	switch family {
	case signatures.Query:
		return "<Q extends mongoose.Query<any, " + model + "Document, any>>(this: Q" + params + ") => Q"
	case signatures.Methods:
		return "(this: " + model + "Document" + params + ") => " + ret
	default:
		return "(this: " + model + "Model" + params + ") => " + ret
	}
}

// functionMembers renders one family of functions. Real signatures come from
// table; anything missing falls back to DefaultSignature.
func functionMembers(model string, family signatures.Family, fns []mschema.Function, table signatures.Table) []Member {
	members := make([]Member, 0, len(fns))
	for _, fn := range fns {
		if reservedFunctions[fn.Name] {
			continue
		}
		sig, ok := table.Lookup(model, family, fn.Name)
		if !ok {
			sig = DefaultSignature
		}
		members = append(members, Member{Name: fn.Name, Type: textExpr(FunctionType(model, family, sig))})
	}
	return members
}
