// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
)

func start(t *testing.T, w *Watcher) (<-chan struct{}, context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	runs := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			runs <- struct{}{}
			return nil
		})
	}()
	t.Cleanup(cancel)
	return runs, cancel, done
}

func waitRun(t *testing.T, runs <-chan struct{}) {
	t.Helper()
	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a regeneration run")
	}
}

func TestWatcher_Directory(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, 20*time.Millisecond)
	require.NoError(t, err)

	runs, cancel, done := start(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.yaml"), []byte("models: []\n"), 0o644))
	waitRun(t, runs)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_NestedDirectoryCreatedLater(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, 20*time.Millisecond)
	require.NoError(t, err)

	runs, _, _ := start(t, w)

	nested := filepath.Join(dir, "billing")
	require.NoError(t, os.Mkdir(nested, 0o755))
	// Give the loop a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(nested, "invoice.json"), []byte(`{"models": []}`), 0o644))
	waitRun(t, runs)
}

func TestWatcher_SingleFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "models.yaml")
	require.NoError(t, os.WriteFile(file, []byte("models: []\n"), 0o644))

	w, err := New(file, 20*time.Millisecond)
	require.NoError(t, err)

	runs, _, _ := start(t, w)

	require.NoError(t, os.WriteFile(file, []byte("models: []\n# edited\n"), 0o644))
	waitRun(t, runs)
}

func TestWatcher_Relevant(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, 0)
	require.NoError(t, err)
	defer w.watcher.Close() //nolint:errcheck

	out := filepath.Join(dir, "out.gen.yaml")
	w.Ignore(out)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "yaml write", event: fsnotify.Event{Name: filepath.Join(dir, "a.yaml"), Op: fsnotify.Write}, want: true},
		{name: "json create", event: fsnotify.Event{Name: filepath.Join(dir, "a.json"), Op: fsnotify.Create}, want: true},
		{name: "yml remove", event: fsnotify.Event{Name: filepath.Join(dir, "a.yml"), Op: fsnotify.Remove}, want: true},
		{name: "chmod only", event: fsnotify.Event{Name: filepath.Join(dir, "a.yaml"), Op: fsnotify.Chmod}, want: false},
		{name: "other extension", event: fsnotify.Event{Name: filepath.Join(dir, "notes.txt"), Op: fsnotify.Write}, want: false},
		{name: "ignored output", event: fsnotify.Event{Name: out, Op: fsnotify.Write}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
	assert.Equal(t, DefaultDebounce, w.debounce)
}

func TestNew_MissingPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), 0)
	assert.ErrorIs(t, err, errors.ErrConfigurationNotFound)
}
