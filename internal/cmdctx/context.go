// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package cmdctx provides project context loading for CLI commands.
package cmdctx

import (
	"context"
	"os"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/config"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
)

// ErrNotLoaded indicates a command ran without PreRunLoad.
var ErrNotLoaded = errors.New("project context not loaded")

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config has defaults, the config file and MTGEN_* overrides applied.
	// Flags are applied on top by each command.
	Config *config.Config

	// Dir is the working directory the configuration was resolved from.
	Dir string

	// Verbosity is the -v count.
	Verbosity int
}

// Options controls Load.
type Options struct {
	ConfigPath string
	Dir        string // defaults to the working directory
	Verbosity  int
}

// Load resolves the configuration and returns a new context.Context with
// the Context stored in it.
func Load(ctx context.Context, opts Options) (context.Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	dir := opts.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get current directory")
		}
		dir = cwd
	}

	cfg, err := config.Load(opts.ConfigPath, dir)
	if err != nil {
		return nil, err
	}

	return With(ctx, &Context{Config: cfg, Dir: dir, Verbosity: opts.Verbosity}), nil
}

// With stores c in ctx.
func With(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// From extracts the Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if ctx == nil {
		return nil
	}
	if c, ok := ctx.Value(contextKey{}).(*Context); ok {
		return c
	}
	return nil
}
