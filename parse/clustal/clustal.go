// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clustal provides a streaming parser for Clustal alignment files.
//
// A Clustal file starts with a header line beginning with CLUSTAL followed
// by a blank line. The alignment follows as blocks separated by blank lines.
// Each block holds one line per sequence, an identifier followed by a
// fragment of the aligned sequence and an optional residue count, and may
// hold a consensus line of '.', ':' and '*' characters, which is discarded.
// Every block must name the same identifiers in the same order.
package clustal

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
)

// Reasons given for structural errors.
var (
	ErrMissingHeader    = errors.New("missing or invalid CLUSTAL header line")
	ErrMissingBlankLine = errors.New("blank line must immediately follow the CLUSTAL header line")
	ErrMalformedLine    = errors.New("malformed alignment line")
	ErrBlockSize        = errors.New("number of sequences differs from previous block(s)")
	ErrDistinctID       = errors.New("sequence identifiers distinct from previous block(s)")
	ErrOrder            = errors.New("sequence identifiers ordered differently from previous blocks")
	ErrBlockLength      = errors.New("alignments within block do not all have the same length")
	ErrNoSequences      = errors.New("no sequences found")
	ErrSingleSequence   = errors.New("alignment must have more than one sequence")
)

const header = "CLUSTAL"

// Parser is a Clustal parser. The zero value is ready to use.
type Parser struct {
	parse.Cancellation

	// Progress, if not nil, is called after every line.
	Progress parse.ProgressFunc

	// Logger, if not nil, receives debug output.
	Logger *log.Logger
}

// NewParser returns a new Parser.
func NewParser() *Parser { return &Parser{} }

// IsCompatibleString returns whether the first non-white space text of
// sample is CLUSTAL, in upper case, at the start of sample or of a line.
func (p *Parser) IsCompatibleString(sample string) bool {
	i := 0
	for i < len(sample) && isSpace(sample[i]) {
		i++
	}
	return strings.HasPrefix(sample[i:], header) && (i == 0 || sample[i-1] == '\n')
}

// ParseFile parses the named file.
func (p *Parser) ParseFile(ctx context.Context, path string) (*parse.Result, error) {
	return parse.File(ctx, p, path)
}

// ParseString parses s.
func (p *Parser) ParseString(ctx context.Context, s string) (*parse.Result, error) {
	return parse.String(ctx, p, s)
}

type row struct {
	id   string
	frag []byte
	line int
}

// ParseStream parses a Clustal alignment from r. On success the Result is
// marked as an alignment and every record has the same length. The
// cancellation flag is cleared on return.
func (p *Parser) ParseStream(ctx context.Context, r io.Reader, total int64) (*parse.Result, error) {
	if r == nil {
		return nil, parse.ErrNilReader
	}
	defer p.Reset()

	l := &lines{r: bufio.NewReader(r), prog: parse.NewProgress(p.Progress, total)}

	for {
		line, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, l.errorf(ErrMissingHeader)
		}
		if isBlank(line) {
			continue
		}
		// Unlike IsCompatibleString, the header test ignores case.
		if len(line) < len(header) || !strings.EqualFold(line[:len(header)], header) {
			return nil, l.errorf(ErrMissingHeader)
		}
		break
	}
	line, ok, err := l.next()
	if err != nil {
		return nil, err
	}
	if ok && !isBlank(line) {
		return nil, l.errorf(ErrMissingBlankLine)
	}

	var (
		ids   []string
		known = make(map[string]bool)
		seqs  [][]byte
	)
	for blocks := 0; ; {
		if err := p.Check(ctx); err != nil {
			return nil, err
		}
		rows, err := l.block()
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			if l.eof {
				break
			}
			continue
		}
		blocks++

		if ids == nil {
			ids = make([]string, 0, len(rows))
			seqs = make([][]byte, 0, len(rows))
			for _, r := range rows {
				ids = append(ids, r.id)
				known[r.id] = true
				seqs = append(seqs, nil)
			}
		} else {
			for i, r := range rows {
				if i >= len(ids) {
					return nil, &parse.FormatError{Format: "clustal", Line: r.line, Err: ErrBlockSize}
				}
				if r.id != ids[i] {
					if !known[r.id] {
						return nil, &parse.FormatError{Format: "clustal", Line: r.line, Err: ErrDistinctID}
					}
					return nil, &parse.FormatError{Format: "clustal", Line: r.line, Err: ErrOrder}
				}
			}
			if len(rows) != len(ids) {
				return nil, &parse.FormatError{Format: "clustal", Line: rows[len(rows)-1].line, Err: ErrBlockSize}
			}
		}
		for _, r := range rows[1:] {
			if len(r.frag) != len(rows[0].frag) {
				return nil, &parse.FormatError{Format: "clustal", Line: r.line, Err: ErrBlockLength}
			}
		}
		for i, r := range rows {
			seqs[i] = append(seqs[i], r.frag...)
		}
		if p.Logger != nil {
			p.Logger.Debug("clustal block", "block", blocks, "sequences", len(rows), "columns", len(rows[0].frag))
		}
		if l.eof {
			break
		}
	}

	switch len(ids) {
	case 0:
		return nil, &parse.FormatError{Format: "clustal", Err: ErrNoSequences}
	case 1:
		return nil, &parse.FormatError{Format: "clustal", Err: ErrSingleSequence}
	}

	res := &parse.Result{
		Grammar:     parse.Unknown,
		IsAlignment: parse.True,
		Records:     make([]parse.Record, len(ids)),
	}
	for i, id := range ids {
		res.Records[i] = parse.Record{Header: id, Sequence: seqs[i]}
	}
	l.prog.Done()
	return res, nil
}

// lines reads the input one line at a time, reporting progress as it goes.
type lines struct {
	r    *bufio.Reader
	prog *parse.Progress
	read int64
	n    int
	eof  bool
}

// next returns the next line without its line terminator. ok is false when
// the input is exhausted.
func (l *lines) next() (line string, ok bool, err error) {
	if l.eof {
		return "", false, nil
	}
	s, err := l.r.ReadString('\n')
	l.read += int64(len(s))
	switch {
	case err == io.EOF:
		l.eof = true
		if len(s) == 0 {
			return "", false, nil
		}
	case err != nil:
		return "", false, errors.Wrap(err, "clustal: read")
	}
	l.n++
	l.prog.Report(l.read)
	return strings.TrimRight(s, "\r\n"), true, nil
}

func (l *lines) errorf(reason error) error {
	return &parse.FormatError{Format: "clustal", Line: l.n, Err: reason}
}

// block returns the alignment rows of the next block. Leading blank lines
// are skipped and the block ends at a blank line or the end of input.
// Consensus lines are dropped, so a block holding only a consensus line
// gives no rows.
func (l *lines) block() ([]row, error) {
	var (
		rows    []row
		started bool
	)
	for {
		line, ok, err := l.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return rows, nil
		}
		if isBlank(line) {
			if started {
				return rows, nil
			}
			continue
		}
		started = true
		if isConsensus(line) {
			continue
		}
		id, frag, ok := splitAlignment(line)
		if !ok {
			return nil, l.errorf(ErrMalformedLine)
		}
		rows = append(rows, row{id: id, frag: frag, line: l.n})
	}
}

// isConsensus returns whether line is an indented line of white space and
// conservation marks holding at least one mark.
func isConsensus(line string) bool {
	if len(line) == 0 || line[0] != ' ' {
		return false
	}
	var marks bool
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '.' || c == ':' || c == '*':
			marks = true
		case !isSpace(c):
			return false
		}
	}
	return marks
}

// splitAlignment splits an alignment line into its identifier and residue
// fragment. A trailing residue count separated by a space is removed and
// all remaining white space is dropped from the fragment.
func splitAlignment(line string) (id string, frag []byte, ok bool) {
	i := strings.IndexFunc(line, func(r rune) bool { return r < 0x80 && isSpace(byte(r)) })
	if i <= 0 {
		return "", nil, false
	}
	rest := strings.TrimRight(strings.TrimLeft(line[i:], spaces), spaces)
	if rest == "" {
		return "", nil, false
	}

	j := len(rest)
	for j > 0 && '0' <= rest[j-1] && rest[j-1] <= '9' {
		j--
	}
	if j < len(rest) && j > 0 && rest[j-1] == ' ' {
		rest = rest[:j-1]
	}

	frag = make([]byte, 0, len(rest))
	for k := 0; k < len(rest); k++ {
		if !isSpace(rest[k]) {
			frag = append(frag, rest[k])
		}
	}
	return line[:i], frag, true
}

const spaces = " \t\r\n\f\v"

func isSpace(b byte) bool {
	return strings.IndexByte(spaces, b) >= 0
}

func isBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if !isSpace(line[i]) {
			return false
		}
	}
	return true
}
