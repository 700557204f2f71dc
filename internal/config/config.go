// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

// Package config handles mtgen project configuration.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// mtgen.{yaml,yml,json,toml} file, MTGEN_* environment variables and finally
// command-line flags (applied by the caller).
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
)

// EnvPrefix is the prefix of environment overrides, e.g. MTGEN_OUTPUT.
const EnvPrefix = "MTGEN"

// Layouts understood by the renderers.
const (
	LayoutFlat    = "flat"
	LayoutAugment = "augment"
)

// Defaults.
const (
	DefaultModels   = "./src/models"
	DefaultOutput   = "./src/interfaces/mongoose.gen.ts"
	DefaultLayout   = LayoutFlat
	DefaultMaxDepth = 32
)

// CandidateFiles are the config file names looked up in the working directory.
var CandidateFiles = []string{"mtgen.yaml", "mtgen.yml", "mtgen.json", "mtgen.toml"}

// LogConfig configures the optional rotated JSON log file.
type LogConfig struct {
	File       string `mapstructure:"file" yaml:"file,omitempty" json:"file,omitempty" jsonschema:"path of a rotated JSON log file; empty disables it"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB" yaml:"maxSizeMB,omitempty" json:"maxSizeMB,omitempty" jsonschema:"size in megabytes before the log file is rotated"`
	MaxBackups int    `mapstructure:"maxBackups" yaml:"maxBackups,omitempty" json:"maxBackups,omitempty" jsonschema:"number of rotated files to keep"`
	MaxAgeDays int    `mapstructure:"maxAgeDays" yaml:"maxAgeDays,omitempty" json:"maxAgeDays,omitempty" jsonschema:"days to keep rotated files"`
	Compress   bool   `mapstructure:"compress" yaml:"compress,omitempty" json:"compress,omitempty" jsonschema:"gzip rotated files"`
}

// Config represents the mtgen project configuration file.
type Config struct {
	Models     string    `mapstructure:"models" yaml:"models,omitempty" json:"models,omitempty" jsonschema:"schema snapshot file or directory"`
	Output     string    `mapstructure:"output" yaml:"output,omitempty" json:"output,omitempty" jsonschema:"generated declaration file"`
	Layout     string    `mapstructure:"layout" yaml:"layout,omitempty" json:"layout,omitempty" jsonschema:"output layout: flat or augment"`
	Imports    []string  `mapstructure:"imports" yaml:"imports,omitempty" json:"imports,omitempty" jsonschema:"extra import lines written after the default import"`
	Exceptions []string  `mapstructure:"exceptions" yaml:"exceptions,omitempty" json:"exceptions,omitempty" jsonschema:"model names to skip"`
	Signatures string    `mapstructure:"signatures" yaml:"signatures,omitempty" json:"signatures,omitempty" jsonschema:"function signature override file"`
	Fresh      bool      `mapstructure:"fresh" yaml:"fresh,omitempty" json:"fresh,omitempty" jsonschema:"discard the custom region of the previous output"`
	MaxDepth   int       `mapstructure:"maxDepth" yaml:"maxDepth,omitempty" json:"maxDepth,omitempty" jsonschema:"maximum schema nesting depth"`
	Log        LogConfig `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty" jsonschema:"log file settings"`

	// Path is the config file that was read, empty when none was found.
	Path string `mapstructure:"-" yaml:"-" json:"-"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("models", DefaultModels)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("layout", DefaultLayout)
	v.SetDefault("imports", []string{})
	v.SetDefault("exceptions", []string{})
	v.SetDefault("signatures", "")
	v.SetDefault("fresh", false)
	v.SetDefault("maxDepth", DefaultMaxDepth)

	v.SetDefault("log.file", "")
	v.SetDefault("log.maxSizeMB", 10)
	v.SetDefault("log.maxBackups", 3)
	v.SetDefault("log.maxAgeDays", 28)
	v.SetDefault("log.compress", false)
}

// Find returns the config file in dir, or "" when there is none. More than
// one candidate is an ErrAmbiguousConfiguration.
func Find(dir string) (string, error) {
	var found []string
	for _, name := range CandidateFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			found = append(found, path)
		}
	}

	switch len(found) {
	case 0:
		return "", nil
	case 1:
		return found[0], nil
	default:
		err := errors.Markf(errors.ErrAmbiguousConfiguration, "found %d config files in %s", len(found), dir)
		return "", errors.WithHintf(err, "keep only one of: %s", strings.Join(found, ", "))
	}
}

// Load resolves the configuration. An explicit path must exist; otherwise
// the candidates in dir are considered.
func Load(explicit, dir string) (*Config, error) {
	v := newViper()

	path := explicit
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			err = errors.Mark(errors.Wrapf(err, "config file %s", path), errors.ErrConfigurationNotFound)
			return nil, errors.WithHint(err, "check the --config flag")
		}
	} else {
		var err error
		if path, err = Find(dir); err != nil {
			return nil, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// LoadWithViper unmarshals a configuration from an already prepared viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Default returns the configuration made of defaults only.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, _ := LoadWithViper(v)
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Save writes the Config to a YAML file.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "failed to create %s", path), errors.ErrFileWriteFailure)
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Mark(errors.Wrapf(err, "failed to write %s", path), errors.ErrFileWriteFailure)
	}
	return enc.Close()
}

// Layouts lists the accepted layout names.
func Layouts() []string {
	return []string{LayoutFlat, LayoutAugment}
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Models == "" {
		return errors.New("models path is required")
	}
	if c.Output == "" {
		return errors.New("output path is required")
	}
	if !slices.Contains(Layouts(), c.Layout) {
		return errors.WithHintf(errors.Newf("unknown layout %q", c.Layout),
			"use one of: %s", strings.Join(Layouts(), ", "))
	}
	if c.MaxDepth <= 0 {
		return errors.Newf("maxDepth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// JSONSchema returns the indented JSON Schema of the config file.
func JSONSchema() ([]byte, error) {
	schema, err := jsonschema.For[Config](nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to infer config schema")
	}
	schema.Title = "mtgen configuration"

	data, err := json.Marshal(schema, jsontext.WithIndent("  "))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode config schema")
	}
	return append(data, '\n'), nil
}
