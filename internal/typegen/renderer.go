// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"sort"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
)

// Banner opens every generated file.
const Banner = "/* tslint:disable */\n" +
	"/* eslint-disable */\n" +
	"\n" +
	"// ######################################## THIS FILE WAS GENERATED BY MONGOOSE-TSGEN ######################################## //\n" +
	"\n" +
	"// NOTE: ANY CHANGES MADE WILL BE OVERWRITTEN ON SUBSEQUENT EXECUTIONS OF MONGOOSE-TSGEN.\n"

// DefaultImport is always the first import line.
const DefaultImport = `import mongoose from "mongoose";`

// File is everything a layout needs to produce the generated text.
type File struct {
	Imports []string // extra raw import lines, after DefaultImport
	Units   []Unit
	Custom  string // preserved custom region, without sentinels
}

// Renderer turns synthesized declarations into one output layout.
type Renderer interface {
	// Name returns the layout identifier used in configuration (e.g. "flat").
	Name() string

	// Render produces the complete file text.
	Render(f *File) ([]byte, error)

	// Sentinels returns the custom region markers this layout writes.
	Sentinels() Sentinels
}

// Register maps layout names to renderers.
type Register map[string]Renderer

// Get retrieves a renderer by name.
func (r Register) Get(name string) (Renderer, error) {
	renderer, ok := r[name]
	if !ok {
		return nil, errors.WithHintf(errors.Newf("unknown layout: %s", name), "available layouts: %v", r.Available())
	}
	return renderer, nil
}

// Available returns all registered layout names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
