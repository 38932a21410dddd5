// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package align provides analysis and output of parsed sequence
// collections, bridging parse.Result values into bíogo sequence types.
package align

import (
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/biogo/biogo/seq/multi"
	"github.com/pkg/errors"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
)

var (
	ErrEmpty   = errors.New("align: no sequences")
	ErrRagged  = errors.New("align: sequences differ in length")
	ErrNoAlign = errors.New("align: not an alignment")
)

// Alphabet returns the gapped bíogo alphabet for g. Unknown and Amino both
// map to the protein alphabet.
func Alphabet(g parse.Grammar) alphabet.Alphabet {
	switch g {
	case parse.DNA:
		return alphabet.DNAgapped
	case parse.RNA:
		return alphabet.RNAgapped
	}
	return alphabet.Protein
}

// Width returns the common length of the records in res. It is an error for
// res to be empty or for the records to differ in length.
func Width(res *parse.Result) (int, error) {
	if res == nil || len(res.Records) == 0 {
		return 0, ErrEmpty
	}
	n := len(res.Records[0].Sequence)
	for _, r := range res.Records[1:] {
		if len(r.Sequence) != n {
			return 0, errors.Wrapf(ErrRagged, "%q has length %d, expected %d", r.Header, len(r.Sequence), n)
		}
	}
	return n, nil
}

// ToMulti returns the records of res as a bíogo multiple alignment.
func ToMulti(res *parse.Result) (*multi.Multi, error) {
	if _, err := Width(res); err != nil {
		return nil, err
	}
	alpha := Alphabet(res.Grammar)
	rows := make([]seq.Sequence, len(res.Records))
	for i, r := range res.Records {
		rows[i] = linear.NewSeq(r.Header, alphabet.BytesToLetters(r.Sequence), alpha)
	}
	m, err := multi.NewMulti("", rows, seq.DefaultConsensus)
	if err != nil {
		return nil, errors.Wrap(err, "align: build alignment")
	}
	return m, nil
}

// Consensus returns the column consensus of the alignment in res in upper
// case.
func Consensus(res *parse.Result) (string, error) {
	m, err := ToMulti(res)
	if err != nil {
		return "", err
	}
	qs := m.Consensus(false)
	b := make([]byte, qs.Len())
	for i := range b {
		b[i] = upper(byte(qs.At(i).L))
	}
	return string(b), nil
}
