// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fasta provides a streaming FASTA parser.
//
// Records are delimited by a '>' at the start of input or immediately after
// a newline. A '>' anywhere else is ordinary sequence data. The header is the
// text between the '>' and the next newline with surrounding white space
// removed; the sequence is the remaining text of the record with all white
// space removed.
package fasta

import (
	"bytes"
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
)

// DefaultChunkSize is the number of bytes requested from the input per read
// when Parser.ChunkSize is not set.
const DefaultChunkSize = 8192

// ErrLeadingJunk is the reason given when data other than white space
// precedes the first record.
var ErrLeadingJunk = errors.New("first non-whitespace character must be the > symbol")

const space = " \t\r\n\f\v"

var separator = []byte("\n>")

// Parser is a FASTA parser. The zero value is ready to use.
type Parser struct {
	parse.Cancellation

	// ChunkSize is the read size used when streaming.
	ChunkSize int

	// Progress, if not nil, is called after every read.
	Progress parse.ProgressFunc

	// Logger, if not nil, receives debug output.
	Logger *log.Logger
}

// NewParser returns a new Parser with the default chunk size.
func NewParser() *Parser { return &Parser{ChunkSize: DefaultChunkSize} }

// IsCompatibleString returns whether the first non-white space character of
// sample is a '>' that is either the first character or follows a newline.
func (p *Parser) IsCompatibleString(sample string) bool {
	i := firstNonSpace([]byte(sample))
	return i < len(sample) && sample[i] == '>' && (i == 0 || sample[i-1] == '\n')
}

// ParseFile parses the named file.
func (p *Parser) ParseFile(ctx context.Context, path string) (*parse.Result, error) {
	return parse.File(ctx, p, path)
}

// ParseString parses s.
func (p *Parser) ParseString(ctx context.Context, s string) (*parse.Result, error) {
	return parse.String(ctx, p, s)
}

// ParseStream parses FASTA data from r. Input consisting only of white space
// gives an empty Result. The cancellation flag is cleared on return.
func (p *Parser) ParseStream(ctx context.Context, r io.Reader, total int64) (*parse.Result, error) {
	if r == nil {
		return nil, parse.ErrNilReader
	}
	defer p.Reset()

	size := p.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	s := &stream{r: r, chunk: make([]byte, size)}
	prog := parse.NewProgress(p.Progress, total)
	res := &parse.Result{Grammar: parse.Unknown, IsAlignment: parse.Unset}

	// The start of input counts as following a newline.
	prev := byte('\n')
	line := 1
	for {
		if err := s.next(ctx, p, prog); err != nil {
			return nil, err
		}
		i := firstNonSpace(s.buf)
		if i < len(s.buf) {
			before := prev
			if i > 0 {
				before = s.buf[i-1]
			}
			if s.buf[i] != '>' || before != '\n' {
				line += bytes.Count(s.buf[:i], []byte{'\n'})
				return nil, &parse.FormatError{Format: "fasta", Line: line, Err: ErrLeadingJunk}
			}
			s.buf = s.buf[i:]
			break
		}
		if len(s.buf) != 0 {
			line += bytes.Count(s.buf, []byte{'\n'})
			prev = s.buf[len(s.buf)-1]
			s.buf = s.buf[:0]
		}
		if s.eof {
			prog.Done()
			return res, nil
		}
	}

	// s.buf[0] is now always the '>' opening the current record.
	from := 1
	for {
		if j := bytes.Index(s.buf[from:], separator); j >= 0 {
			end := from + j
			res.Records = append(res.Records, p.record(s.buf[1:end+1]))
			s.buf = s.buf[end+1:]
			from = 1
			continue
		}
		if s.eof {
			res.Records = append(res.Records, p.record(s.buf[1:]))
			break
		}
		if n := len(s.buf) - 1; n > from {
			from = n
		}
		if err := s.next(ctx, p, prog); err != nil {
			return nil, err
		}
	}

	prog.Done()
	if p.Logger != nil {
		p.Logger.Debug("fasta parse complete", "records", len(res.Records), "bytes", s.read)
	}
	return res, nil
}

// record builds a Record from the text following a '>'. A record without a
// newline is all header.
func (p *Parser) record(text []byte) parse.Record {
	var rec parse.Record
	nl := bytes.IndexByte(text, '\n')
	if nl < 0 {
		rec = parse.Record{Header: string(bytes.Trim(text, space)), Sequence: []byte{}}
	} else {
		rec = parse.Record{Header: string(bytes.Trim(text[:nl], space)), Sequence: stripSpace(text[nl+1:])}
	}
	if p.Logger != nil {
		p.Logger.Debug("fasta record", "header", rec.Header, "length", len(rec.Sequence))
	}
	return rec
}

type stream struct {
	r     io.Reader
	chunk []byte
	buf   []byte
	read  int64
	eof   bool
}

// next appends one read from the underlying reader to buf, reports progress
// and then checks for cancellation.
func (s *stream) next(ctx context.Context, c *Parser, prog *parse.Progress) error {
	n, err := s.r.Read(s.chunk)
	s.buf = append(s.buf, s.chunk[:n]...)
	s.read += int64(n)
	switch {
	case err == io.EOF:
		s.eof = true
	case err != nil:
		return errors.Wrap(err, "fasta: read")
	}
	prog.Report(s.read)
	return c.Check(ctx)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

func firstNonSpace(b []byte) int {
	for i, c := range b {
		if !isSpace(c) {
			return i
		}
	}
	return len(b)
}

func stripSpace(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if !isSpace(c) {
			out = append(out, c)
		}
	}
	return out
}
