// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package logger provides the process-wide structured logger.
package logger

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. It is a no-op until Initialize is called so
// library code can log unconditionally.
var Logger = zap.NewNop().Sugar()

// Verbosity levels for the -v flag count.
const (
	VerbosityUser  = 0 // warnings and errors only
	VerbosityInfo  = 1 // -v: + progress and skipped models
	VerbosityDebug = 2 // -vv: + per-field degradations
)

// Options configures Initialize.
type Options struct {
	Verbosity int
	Console   io.Writer // defaults to os.Stderr

	// File enables an additional JSON log written through a rotating file.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// VerbosityToLevel maps the -v count to a zap level.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Initialize replaces the global logger.
func Initialize(opts Options) {
	Logger = New(opts).Sugar()
}

// New builds a logger with a console core and, when opts.File is set, a
// JSON core writing to a rotated file.
func New(opts Options) *zap.Logger {
	level := zap.NewAtomicLevelAt(VerbosityToLevel(opts.Verbosity))

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	consoleCfg := encoderCfg
	consoleCfg.TimeKey = ""
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(zapcore.AddSync(console)), level)

	if opts.File != "" {
		fileCfg := encoderCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		rotated := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    max(1, opts.MaxSizeMB),
			MaxBackups: max(0, opts.MaxBackups),
			MaxAge:     max(0, opts.MaxAgeDays),
			Compress:   opts.Compress,
		}
		core = zapcore.NewTee(core, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(rotated), level))
	}

	return zap.New(core).Named("mtgen")
}

// Cleanup flushes any buffered log entries.
func Cleanup() {
	_ = Logger.Sync()
}
