// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"bufio"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/pkg/errors"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
)

// DefaultWidth is the FASTA line width used when none is given.
const DefaultWidth = 60

// WriteFasta writes the records in res to w in FASTA format with sequence
// lines wrapped at width.
func WriteFasta(w io.Writer, res *parse.Result, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	alpha := Alphabet(res.Grammar)
	fw := fasta.NewWriter(w, width)
	for _, r := range res.Records {
		s := linear.NewSeq(r.Header, alphabet.BytesToLetters(r.Sequence), alpha)
		if _, err := fw.Write(s); err != nil {
			return errors.Wrapf(err, "align: write %q", r.Header)
		}
	}
	return nil
}

// PhylipNameWidth is the maximum name length in strict PHYLIP files.
const PhylipNameWidth = 10

// WritePhylip writes the alignment in res to w in sequential PHYLIP format:
// a line giving the number of sequences and the alignment length, then one
// line per sequence holding its name and residues. It returns the headers
// that are longer than PhylipNameWidth, which strict readers truncate.
func WritePhylip(w io.Writer, res *parse.Result) (long []string, err error) {
	n, err := Width(res)
	if err != nil {
		return nil, err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(res.Records), n)
	for _, r := range res.Records {
		fmt.Fprintf(bw, "%s %s\n", r.Header, r.Sequence)
		if len(r.Header) > PhylipNameWidth {
			long = append(long, r.Header)
		}
	}
	return long, bw.Flush()
}
