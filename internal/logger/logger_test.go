// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity))
	}
}

func TestNew_ConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Verbosity: VerbosityUser, Console: &buf}).Sugar()

	l.Infow("hidden")
	l.Warnw("shown", "model", "User")
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "User")
}

func TestNew_FileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "mtgen.log")
	var console bytes.Buffer
	l := New(Options{Verbosity: VerbosityInfo, Console: &console, File: logFile}).Sugar()

	l.Infow("generated", "models", 3)
	require.NoError(t, l.Sync())

	content, err := os.ReadFile(logFile) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"generated"`)
	assert.Contains(t, string(content), `"models":3`)
}

func TestInitialize_ReplacesGlobal(t *testing.T) {
	orig := Logger
	defer func() { Logger = orig }()

	var buf bytes.Buffer
	Initialize(Options{Verbosity: VerbosityDebug, Console: &buf})
	Logger.Debugw("debug line")
	Cleanup()

	assert.Contains(t, buf.String(), "debug line")
}
