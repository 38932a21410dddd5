// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse provides the types and contract shared by the streaming
// sequence file parsers in the fasta and clustal subpackages.
//
// A parser consumes a byte stream together with an advisory total size and
// returns either a complete Result or an error, never both. Progress is
// reported through an optional ProgressFunc and parsing may be cancelled
// cooperatively, either through a context or by calling Cancel from another
// goroutine.
package parse

import (
	"bytes"
	"context"
	"io"
)

// Grammar is the biological alphabet class of a parsed sequence collection.
// Parsers never infer it; it is always Unknown in a freshly parsed Result.
type Grammar int

const (
	Unknown Grammar = iota
	Amino
	DNA
	RNA
)

func (g Grammar) String() string {
	switch g {
	case Amino:
		return "amino"
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	}
	return "unknown"
}

// Tristate is a boolean that may also be unset.
type Tristate int

const (
	Unset Tristate = iota
	True
	False
)

func (t Tristate) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	}
	return "unknown"
}

// Record is a single header and sequence pair as found in the source.
// The sequence is kept as raw bytes and is not checked against any alphabet.
type Record struct {
	Header   string
	Sequence []byte
}

// NewRecord returns a Record holding a copy of seq.
func NewRecord(header string, seq []byte) Record {
	return Record{Header: header, Sequence: append([]byte(nil), seq...)}
}

// Result is the format-agnostic product of a parse. Records are held in
// order of first appearance in the source.
type Result struct {
	Grammar     Grammar
	IsAlignment Tristate
	Records     []Record
}

// Len returns the number of records in the Result.
func (r *Result) Len() int { return len(r.Records) }

// Equal returns whether r and o hold the same records in the same order
// with the same grammar and alignment flag.
func (r *Result) Equal(o *Result) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.Grammar != o.Grammar || r.IsAlignment != o.IsAlignment || len(r.Records) != len(o.Records) {
		return false
	}
	for i, rec := range r.Records {
		if rec.Header != o.Records[i].Header || !bytes.Equal(rec.Sequence, o.Records[i].Sequence) {
			return false
		}
	}
	return true
}

// Parser is the capability shared by all sequence format parsers.
type Parser interface {
	// IsCompatibleString reports whether sample looks like the start of
	// data in the parser's format. It never consumes input.
	IsCompatibleString(sample string) bool

	// ParseStream parses all data from r. total is the expected number of
	// bytes in r and is used only for progress reporting.
	ParseStream(ctx context.Context, r io.Reader, total int64) (*Result, error)

	// ParseFile parses the named file.
	ParseFile(ctx context.Context, path string) (*Result, error)

	// ParseString parses s.
	ParseString(ctx context.Context, s string) (*Result, error)

	// Cancel requests that an in-flight parse stop at its next checkpoint.
	Cancel()
}

// StreamParser is the part of Parser that File and String build on.
type StreamParser interface {
	ParseStream(ctx context.Context, r io.Reader, total int64) (*Result, error)
}
