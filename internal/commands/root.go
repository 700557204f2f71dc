// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/cmdctx"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/logger"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/typegen"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(renderers typegen.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mtgen",
		Short: "Generate TypeScript declarations from Mongoose schema snapshots",
		Long: `mtgen reads snapshots of registered Mongoose schemas and writes a TypeScript
declaration file with lean, document, model, methods, statics and query types
for every model.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cmdctx.PreRunLoad,
		PersistentPostRun: func(*cobra.Command, []string) { logger.Cleanup() },
	}

	rootCmd.PersistentFlags().StringP(cmdctx.FlagConfig, "c", "", "Config file (default: mtgen.{yaml,yml,json,toml} in the working directory)")
	rootCmd.PersistentFlags().CountP(cmdctx.FlagVerbose, "v", "Increase log verbosity (-v info, -vv debug)")

	registerRunCmd(rootCmd, renderers)
	registerConfigCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

// skipLoad replaces PreRunLoad for commands that do not need a project config.
func skipLoad(*cobra.Command, []string) error {
	return nil
}
