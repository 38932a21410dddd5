// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lukeulrich/alignshop-qt-sub010/config"
	"github.com/lukeulrich/alignshop-qt-sub010/format"
	"github.com/lukeulrich/alignshop-qt-sub010/parse"
	"github.com/lukeulrich/alignshop-qt-sub010/parse/clustal"
	"github.com/lukeulrich/alignshop-qt-sub010/parse/fasta"
)

// app holds the state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	formatName string

	cfg      *config.Config
	log      *log.Logger
	detector *format.Detector

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "alnparse",
		Short: "Detect, parse and convert FASTA and Clustal sequence files",
		Long: `alnparse reads FASTA and Clustal files, detecting the format from the
file content or, failing that, from the file extension.

Settings are read from the file given by --config and from ALNPARSE_*
environment variables.

Usage examples:

1. Report the format of some files:

	alnparse detect a.fa b.aln

2. Summarise an alignment and print its consensus:

	alnparse parse --consensus b.aln

3. Convert a Clustal alignment to PHYLIP:

	alnparse convert b.aln --to phylip -o b.phy
`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.init() },
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the configuration")
	flags.StringVar(&a.formatName, "format", "", "force the input format (fasta or clustal)")

	root.AddCommand(
		a.detectCmd(),
		a.parseCmd(),
		a.convertCmd(),
		a.plotCmd(),
		a.realignCmd(),
		a.filterCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log.NewWithOptions(a.stderr, log.Options{
		Level:  level,
		Prefix: "alnparse",
	})

	a.detector, err = cfg.Detector(a.log)
	if err != nil {
		return err
	}
	if a.formatName != "" {
		t, ok := format.ParseType(a.formatName)
		if !ok || t == format.Unknown {
			return errors.Errorf("unknown format %q", a.formatName)
		}
		if _, ok := a.detector.ByType(t); !ok {
			return errors.Errorf("format %q is not configured", a.formatName)
		}
	}
	return nil
}

// resolve returns the format of the file at path, honouring --format.
func (a *app) resolve(path string) (format.Descriptor, error) {
	if a.formatName != "" {
		t, _ := format.ParseType(a.formatName)
		d, _ := a.detector.ByType(t)
		return d, nil
	}
	d, err := a.detector.FromFile(path)
	if err != nil {
		return d, err
	}
	if d.IsUnknown() {
		return d, errors.Errorf("%s: unrecognised format", path)
	}
	return d, nil
}

// load detects the format of the file at path and parses it, logging
// progress at debug level.
func (a *app) load(ctx context.Context, path string) (*parse.Result, format.Descriptor, error) {
	d, err := a.resolve(path)
	if err != nil {
		return nil, d, err
	}
	a.log.Debug("detected format", "file", path, "format", d.Name)

	next := int64(0)
	progress := func(done, total int64) {
		if total <= 0 {
			return
		}
		pct := done * 100 / total
		if pct >= next {
			a.log.Debug("parsing", "file", path, "percent", pct)
			next = pct/10*10 + 10
		}
	}
	switch p := d.Parser.(type) {
	case *fasta.Parser:
		p.Progress = progress
	case *clustal.Parser:
		p.Progress = progress
	}

	res, err := d.Parser.ParseFile(ctx, path)
	if err != nil {
		return nil, d, err
	}
	a.log.Info("parsed", "file", path, "format", d.Name, "records", res.Len())
	return res, d, nil
}

// output returns the writer for path, which is standard output if path is
// empty or "-". The returned function closes the file.
func (a *app) output(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return a.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "create %s", path)
	}
	return f, f.Close, nil
}
