// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/pterm/pterm"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/commands"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen/augment"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen/flat"
)

// Renderers returns every output layout the CLI offers.
func Renderers() typegen.Register {
	renderers := make(typegen.Register)
	renderers["flat"] = &flat.Renderer{}
	renderers["augment"] = &augment.Renderer{}
	return renderers
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd(Renderers())
	if getenv("NO_COLOR") != "" {
		pterm.DisableColor()
	}
	return rootCmd.ExecuteContext(ctx)
}
