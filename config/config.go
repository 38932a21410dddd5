// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the format registry and runtime settings used by
// the alnparse command.
package config

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/lukeulrich/alignshop-qt-sub010/format"
	"github.com/lukeulrich/alignshop-qt-sub010/parse"
	"github.com/lukeulrich/alignshop-qt-sub010/parse/clustal"
	"github.com/lukeulrich/alignshop-qt-sub010/parse/fasta"
)

const (
	DefaultEnvPrefix = "ALNPARSE"

	DefaultLogLevel   = "info"
	DefaultChunkSize  = fasta.DefaultChunkSize
	DefaultSampleSize = format.DefaultSampleSize
)

// DefaultFormats is the registry used when the configuration names none.
var DefaultFormats = []Format{
	{Type: "fasta", Name: "FASTA", Extensions: []string{"fa", "faa", "fnt", "fasta", "fas"}},
	{Type: "clustal", Name: "Clustal", Extensions: []string{"aln", "clw"}},
}

// Format is one registry entry.
type Format struct {
	Type       string   `json:"type"       mapstructure:"type"`
	Name       string   `json:"name"       mapstructure:"name"`
	Extensions []string `json:"extensions" mapstructure:"extensions"`
}

// Config holds the settings for a run.
type Config struct {
	LogLevel   string   `json:"log_level,omitempty"   mapstructure:"log_level"`
	ChunkSize  int      `json:"chunk_size,omitempty"  mapstructure:"chunk_size"`
	SampleSize int      `json:"sample_size,omitempty" mapstructure:"sample_size"`
	Formats    []Format `json:"formats,omitempty"     mapstructure:"formats"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel:   DefaultLogLevel,
		ChunkSize:  DefaultChunkSize,
		SampleSize: DefaultSampleSize,
		Formats:    append([]Format(nil), DefaultFormats...),
	}
}

// Load reads the configuration file at path, if path is not empty, and
// applies ALNPARSE_* environment overrides over the defaults.
func Load(path string) (*Config, error) {
	v := viper.NewWithOptions(
		viper.KeyDelimiter("."),
		viper.EnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_")),
	)

	v.SetEnvPrefix(DefaultEnvPrefix)
	v.AutomaticEnv()

	_ = v.BindEnv("log_level")
	v.SetDefault("log_level", DefaultLogLevel)

	_ = v.BindEnv("chunk_size")
	v.SetDefault("chunk_size", DefaultChunkSize)

	_ = v.BindEnv("sample_size")
	v.SetDefault("sample_size", DefaultSampleSize)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}

	decodeHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	)

	cfg := &Config{}
	if err := v.Unmarshal(cfg, viper.DecodeHook(decodeHooks)); err != nil {
		return nil, errors.Wrap(err, "config: failed to load configuration")
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = append([]Format(nil), DefaultFormats...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings and registry entries.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ChunkSize <= 0 {
		return errors.Errorf("config: chunk_size must be positive, got %d", c.ChunkSize)
	}
	if c.SampleSize <= 0 {
		return errors.Errorf("config: sample_size must be positive, got %d", c.SampleSize)
	}
	for i, f := range c.Formats {
		if t, ok := format.ParseType(f.Type); !ok || t == format.Unknown {
			return errors.Errorf("config: formats[%d]: unknown format type %q", i, f.Type)
		}
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (log.Level, error) {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return l, errors.Wrapf(err, "config: log_level")
	}
	return l, nil
}

// Detector returns a format detector for the registry, binding a new parser
// to each entry. logger may be nil.
func (c *Config) Detector(logger *log.Logger) (*format.Detector, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	descs := make([]format.Descriptor, 0, len(c.Formats))
	for _, f := range c.Formats {
		t, _ := format.ParseType(f.Type)
		var p parse.Parser
		switch t {
		case format.Fasta:
			fp := fasta.NewParser()
			fp.ChunkSize = c.ChunkSize
			fp.Logger = logger
			p = fp
		case format.Clustal:
			cp := clustal.NewParser()
			cp.Logger = logger
			p = cp
		}
		descs = append(descs, format.NewDescriptor(t, f.Name, f.Extensions, p))
	}
	d := format.NewDetector(descs...)
	d.SampleSize = c.SampleSize
	return d, nil
}
