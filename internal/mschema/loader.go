// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package mschema

import (
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/logger"
)

// IsSnapshotFile reports whether name has a snapshot extension.
func IsSnapshotFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Loader loads schema snapshots from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Find returns all snapshot files under root (a file or directory within the
// loader's filesystem), sorted by path. node_modules directories are skipped.
func (l *Loader) Find(root string) ([]string, error) {
	info, err := fs.Stat(l.fsys, root)
	if err != nil {
		return nil, errors.WithHint(
			errors.Mark(errors.Wrapf(err, "models path %q", root), errors.ErrConfigurationNotFound),
			"pass the models snapshot directory as the first argument or set `models` in mtgen.yaml")
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = fs.WalkDir(l.fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return fs.SkipDir
			}
			return nil
		}
		if IsSnapshotFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %q", root)
	}
	sort.Strings(files)
	return files, nil
}

// LoadFile loads and parses one snapshot file. The format is determined from
// the file extension.
func (l *Loader) LoadFile(filePath string) ([]Model, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "could not find a snapshot at %s", filePath), errors.ErrModuleLoadFailure)
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading %s", filePath), errors.ErrModuleLoadFailure)
	}

	var root *Value
	switch strings.ToLower(path.Ext(filePath)) {
	case ".yaml", ".yml":
		root, err = DecodeYAML(data)
	case ".json":
		root, err = DecodeJSON(data)
	default:
		return nil, errors.Markf(errors.ErrModuleLoadFailure, "%s: format not supported", filePath)
	}
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parsing %s", filePath), errors.ErrModuleLoadFailure)
	}

	models, err := parseSnapshot(root)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "snapshot %s", filePath), errors.ErrModuleLoadFailure)
	}
	for i := range models {
		models[i].Source = filePath
	}
	return models, nil
}

// LoadAll loads every file in order. A file without models is skipped with a
// warning; the run fails only when no file produced a model. A model name
// seen twice keeps its first position and the later definition.
func (l *Loader) LoadAll(files []string) ([]Model, error) {
	if len(files) == 0 {
		return nil, errors.WithHint(
			errors.Markf(errors.ErrModuleLoadFailure, "no schema snapshot files found"),
			"snapshot files must end in .yaml, .yml or .json")
	}

	var models []Model
	index := make(map[string]int)
	for _, file := range files {
		loaded, err := l.LoadFile(file)
		if err != nil {
			return nil, err
		}
		if len(loaded) == 0 {
			logger.Logger.Warnw("snapshot found but no models were declared in it", "file", file)
			continue
		}
		for _, m := range loaded {
			if i, ok := index[m.Name]; ok {
				logger.Logger.Warnw("model declared more than once; later definition wins",
					"model", m.Name, "first", models[i].Source, "second", m.Source)
				models[i] = m
				continue
			}
			index[m.Name] = len(models)
			models = append(models, m)
		}
	}

	if len(models) == 0 {
		return nil, errors.WithHint(
			errors.Markf(errors.ErrModuleLoadFailure, "no models found in %d snapshot file(s)", len(files)),
			"each snapshot needs a top-level `models` list")
	}
	return models, nil
}

// LoadPath loads all models reachable from an OS path, which may be a single
// snapshot file or a directory.
func LoadPath(modelsPath string) ([]Model, error) {
	abs, err := filepath.Abs(modelsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %q", modelsPath)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.WithHint(
			errors.Mark(errors.Wrapf(err, "models path %q", modelsPath), errors.ErrConfigurationNotFound),
			"pass the models snapshot directory as the first argument or set `models` in mtgen.yaml")
	}

	dir, root := abs, "."
	if !info.IsDir() {
		dir, root = filepath.Dir(abs), filepath.Base(abs)
	}

	loader := NewLoader(os.DirFS(dir))
	files, err := loader.Find(root)
	if err != nil {
		return nil, err
	}
	return loader.LoadAll(files)
}
