// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package cmdctx

import (
	"github.com/spf13/cobra"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/logger"
)

// Persistent flag names read by PreRunLoad.
const (
	FlagConfig  = "config"
	FlagVerbose = "verbose"
)

// FromCommand extracts the Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, ErrNotLoaded
	}
	return ctx, nil
}

// PreRunLoad is a PersistentPreRunE function that loads the project
// context, initializes the logger and stores the context in the command.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	var opts Options
	if f := cmd.Flags().Lookup(FlagConfig); f != nil {
		opts.ConfigPath = f.Value.String()
	}
	if v, err := cmd.Flags().GetCount(FlagVerbose); err == nil {
		opts.Verbosity = v
	}

	ctx, err := Load(cmd.Context(), opts)
	if err != nil {
		return err
	}

	cfg := From(ctx).Config
	logger.Initialize(logger.Options{
		Verbosity:  opts.Verbosity,
		Console:    cmd.ErrOrStderr(),
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	if cfg.Path != "" {
		logger.Logger.Infow("loaded config", "path", cfg.Path)
	}

	cmd.SetContext(ctx)
	return nil
}
