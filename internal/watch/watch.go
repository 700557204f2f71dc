// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package watch re-runs generation when schema snapshots change.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/logger"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/mschema"
)

// DefaultDebounce coalesces bursts of events into a single run.
const DefaultDebounce = 200 * time.Millisecond

// RunFunc regenerates the output. Its errors are logged and watching continues.
type RunFunc func(ctx context.Context) error

// Watcher watches a models path, a snapshot file or a directory tree.
type Watcher struct {
	root     string
	file     string // set when root is a single file
	watcher  *fsnotify.Watcher
	debounce time.Duration
	ignored  map[string]bool
}

// New creates a Watcher for path. Directories are watched recursively.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "models path %s", path), errors.ErrConfigurationNotFound)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{root: abs, watcher: fw, debounce: debounce, ignored: map[string]bool{}}

	if info.IsDir() {
		err = w.addTree(abs)
	} else {
		w.file = abs
		err = fw.Add(filepath.Dir(abs))
	}
	if err != nil {
		_ = fw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", path)
	}
	return w, nil
}

// Ignore excludes path from triggering runs, typically the generated file.
func (w *Watcher) Ignore(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		w.ignored[abs] = true
	}
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == "node_modules" {
			return filepath.SkipDir
		}
		logger.Logger.Debugw("watching directory", "path", path)
		return w.watcher.Add(path)
	})
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if w.ignored[event.Name] {
		return false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if w.file != "" {
		return event.Name == w.file
	}
	return mschema.IsSnapshotFile(event.Name)
}

// Run blocks until ctx is cancelled, calling fn after each debounced burst
// of snapshot changes.
func (w *Watcher) Run(ctx context.Context, fn RunFunc) error {
	defer w.watcher.Close() //nolint:errcheck

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.file == "" && event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						logger.Logger.Warnw("failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			if !w.relevant(event) {
				continue
			}
			logger.Logger.Infow("snapshot changed", "file", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := fn(ctx); err != nil {
				logger.Logger.Errorw("regeneration failed", "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Logger.Warnw("watcher error", "error", err)
		}
	}
}
