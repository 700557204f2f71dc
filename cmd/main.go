// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package main is the entry point for the mtgen CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/noqcks/francescov1-mongoose-tsgen/cmd/internal"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := internal.Run(ctx, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		stop()
		os.Exit(1) //nolint:gocritic // stop is called explicitly above
	}
}
