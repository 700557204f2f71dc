// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package errors provides error handling for mtgen.
//
// It re-exports github.com/cockroachdb/errors so callers get stack traces,
// wrapping and user-facing hints from a single import, and defines the
// sentinel error kinds that abort a generation run.
//
// Usage:
//
//	if err := load(); err != nil {
//	    return errors.Wrap(err, "failed to load snapshot")
//	}
//
//	if errors.Is(err, errors.ErrConfigurationNotFound) {
//	    // report and exit
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel error kinds. Wrap them with Mark or Wrapf to add context while
// keeping errors.Is working.
var (
	// ErrConfigurationNotFound indicates a required config file or models path does not exist.
	ErrConfigurationNotFound = New("configuration not found")

	// ErrAmbiguousConfiguration indicates more than one candidate config file was found.
	ErrAmbiguousConfiguration = New("ambiguous configuration")

	// ErrModuleLoadFailure indicates a schema snapshot could not be loaded or held no models.
	ErrModuleLoadFailure = New("module load failure")

	// ErrFileWriteFailure indicates the generated output could not be persisted.
	ErrFileWriteFailure = New("file write failure")

	// ErrMaxDepthExceeded indicates schema nesting went past the configured ceiling.
	ErrMaxDepthExceeded = New("maximum schema depth exceeded")
)

// Mark tags err with the given sentinel kind so that errors.Is(err, kind)
// holds while err's own message is preserved.
func Mark(err error, kind error) error {
	if err == nil {
		return nil
	}
	return crdb.Mark(err, kind)
}

// Markf creates a new error with the formatted message, tagged with kind.
func Markf(kind error, format string, args ...interface{}) error {
	return crdb.Mark(crdb.Newf(format, args...), kind)
}
