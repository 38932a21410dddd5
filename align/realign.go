// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/biogo/external/mafft"
	"github.com/biogo/external/muscle"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
	"github.com/lukeulrich/alignshop-qt-sub010/parse/fasta"
)

// Realigner aligns sequences with an external multiple aligner. The aligner
// must be on the PATH and write an aligned FASTA file to standard output.
type Realigner struct {
	// Aligner is "muscle" or "mafft".
	Aligner string

	// Logger, if not nil, receives debug output.
	Logger *log.Logger
}

// Ungapped returns a copy of res with gap characters removed from every
// record and the alignment flag unset.
func Ungapped(res *parse.Result) *parse.Result {
	out := &parse.Result{Grammar: res.Grammar, IsAlignment: parse.Unset, Records: make([]parse.Record, len(res.Records))}
	for i, r := range res.Records {
		s := make([]byte, 0, len(r.Sequence))
		for _, b := range r.Sequence {
			if !IsGap(b) {
				s = append(s, b)
			}
		}
		out.Records[i] = parse.Record{Header: r.Header, Sequence: s}
	}
	return out
}

// Command returns the aligner command reading from the FASTA file in.
func (r Realigner) Command(in string) (*exec.Cmd, error) {
	var (
		cmd *exec.Cmd
		err error
	)
	switch strings.ToLower(r.Aligner) {
	case "muscle":
		cmd, err = muscle.Muscle{InFile: in, Quiet: true}.BuildCommand()
	case "mafft":
		cmd, err = mafft.Mafft{InFile: in, Auto: true, Quiet: true}.BuildCommand()
	default:
		return nil, errors.Errorf("align: no valid aligner specified: %q", r.Aligner)
	}
	return cmd, errors.Wrap(err, "align: build aligner command")
}

// Realign removes gaps from the records of res, aligns them with the
// external aligner and parses its output. The returned Result is marked as
// an alignment if all its records have the same length.
func (r Realigner) Realign(ctx context.Context, res *parse.Result) (*parse.Result, error) {
	if res == nil || len(res.Records) < 2 {
		return nil, errors.Wrap(ErrEmpty, "align: realignment needs at least two sequences")
	}

	f, err := os.CreateTemp("", "realign-*.fa")
	if err != nil {
		return nil, errors.Wrap(err, "align: temporary file")
	}
	defer os.Remove(f.Name())
	err = WriteFasta(f, Ungapped(res), DefaultWidth)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}

	cmd, err := r.Command(f.Name())
	if err != nil {
		return nil, err
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.Logger != nil {
		r.Logger.Debug("running aligner", "cmd", strings.Join(cmd.Args, " "))
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "align: start %s", cmd.Path)
	}
	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-done
		return nil, errors.Wrap(parse.ErrCanceled, ctx.Err().Error())
	case err := <-done:
		if err != nil {
			return nil, errors.Wrapf(err, "align: %s: %s", r.Aligner, strings.TrimSpace(stderr.String()))
		}
	}

	p := fasta.NewParser()
	p.Logger = r.Logger
	aligned, err := p.ParseStream(ctx, &stdout, int64(stdout.Len()))
	if err != nil {
		return nil, errors.Wrap(err, "align: parse aligner output")
	}
	aligned.Grammar = res.Grammar
	if _, err := Width(aligned); err == nil {
		aligned.IsAlignment = parse.True
	} else {
		aligned.IsAlignment = parse.False
	}
	return aligned, nil
}
