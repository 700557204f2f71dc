// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package version reports which mtgen build is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
)

// Set with -ldflags "-X .../internal/version.Version=v1.2.3". Unset values are
// filled from the module build info when available.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go"`
}

var current = sync.OnceValue(func() Build {
	info, _ := debug.ReadBuildInfo()
	return resolve(Build{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}, info)
})

// Current returns the build description, resolved once per process.
func Current() Build {
	return current()
}

// resolve fills the placeholders of b from the module and VCS settings.
func resolve(b Build, info *debug.BuildInfo) Build {
	if info == nil {
		return b
	}
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "none" && len(s.Value) >= 7 {
				b.Commit = s.Value[:7]
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = s.Value
			}
		case "vcs.modified":
			if s.Value == "true" && b.Commit != "none" {
				b.Commit += "-dirty"
			}
		}
	}
	return b
}

// String formats the build for the version command.
func (b Build) String() string {
	return fmt.Sprintf("mtgen version %s (commit: %s, built: %s, go: %s)",
		b.Version, b.Commit, b.Date, b.GoVersion)
}

// Info returns the formatted build description.
func Info() string {
	return Current().String()
}

// Short returns the version number only.
func Short() string {
	return Current().Version
}
