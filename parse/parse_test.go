// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestResultEqual(c *check.C) {
	a := &Result{IsAlignment: True, Records: []Record{NewRecord("a", []byte("AC")), NewRecord("b", nil)}}
	b := &Result{IsAlignment: True, Records: []Record{{Header: "a", Sequence: []byte("AC")}, {Header: "b", Sequence: []byte{}}}}
	c.Check(a.Equal(b), check.Equals, true)
	b.Records[0].Sequence[1] = 'G'
	c.Check(a.Equal(b), check.Equals, false)
	c.Check(a.Equal(&Result{Records: a.Records}), check.Equals, false)
	c.Check(a.Equal(nil), check.Equals, false)
	c.Check((*Result)(nil).Equal(nil), check.Equals, true)
	c.Check(a.Len(), check.Equals, 2)
}

func (s *S) TestNewRecordCopies(c *check.C) {
	b := []byte("ACGT")
	r := NewRecord("x", b)
	b[0] = 'T'
	c.Check(string(r.Sequence), check.Equals, "ACGT")
}

func (s *S) TestStrings(c *check.C) {
	c.Check(Unknown.String(), check.Equals, "unknown")
	c.Check(Amino.String(), check.Equals, "amino")
	c.Check(DNA.String(), check.Equals, "dna")
	c.Check(RNA.String(), check.Equals, "rna")
	c.Check(Unset.String(), check.Equals, "unknown")
	c.Check(True.String(), check.Equals, "true")
	c.Check(False.String(), check.Equals, "false")
}

func (s *S) TestProgress(c *check.C) {
	var got [][2]int64
	p := NewProgress(func(done, total int64) { got = append(got, [2]int64{done, total}) }, 10)
	for _, v := range []int64{2, 1, 5, 12, 7} {
		p.Report(v)
	}
	p.Done()
	c.Check(got, check.DeepEquals, [][2]int64{{2, 10}, {2, 10}, {5, 10}, {10, 10}, {10, 10}, {10, 10}})

	// A nil func is allowed and an unknown total does not clamp.
	p = NewProgress(nil, -1)
	p.Report(100)
	p.Done()
}

func (s *S) TestCancellation(c *check.C) {
	var cn Cancellation
	c.Check(cn.Check(context.Background()), check.IsNil)
	c.Check(cn.Check(nil), check.IsNil)
	cn.Cancel()
	c.Check(cn.Canceled(), check.Equals, true)
	c.Check(cn.Check(context.Background()), check.Equals, ErrCanceled)
	cn.Reset()
	c.Check(cn.Canceled(), check.Equals, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := cn.Check(ctx)
	c.Check(errors.Is(err, ErrCanceled), check.Equals, true)
	c.Check(err, check.ErrorMatches, "context canceled: parse canceled")
}

func (s *S) TestFormatError(c *check.C) {
	reason := errors.New("malformed alignment line")
	err := error(&FormatError{Format: "clustal", Line: 4, Err: reason})
	c.Check(err, check.ErrorMatches, "clustal: line 4: malformed alignment line")
	c.Check(errors.Is(err, reason), check.Equals, true)
	c.Check(Reason(err), check.Equals, "malformed alignment line")
	c.Check((&FormatError{Format: "clustal", Err: reason}).Error(), check.Equals, "clustal: malformed alignment line")
	c.Check(Reason(ErrIsDir), check.Equals, "path is a directory")
}

// countParser records the arguments it is called with.
type countParser struct {
	total int64
	data  []byte
}

func (p *countParser) ParseStream(_ context.Context, r io.Reader, total int64) (*Result, error) {
	p.total = total
	var err error
	p.data, err = io.ReadAll(r)
	return &Result{}, err
}

func (s *S) TestFileAndString(c *check.C) {
	var p countParser
	_, err := String(context.Background(), &p, "hello")
	c.Assert(err, check.IsNil)
	c.Check(p.total, check.Equals, int64(5))
	c.Check(string(p.data), check.Equals, "hello")

	dir := c.MkDir()
	fn := filepath.Join(dir, "x")
	c.Assert(os.WriteFile(fn, []byte("abc\n"), 0o644), check.IsNil)
	_, err = File(context.Background(), &p, fn)
	c.Assert(err, check.IsNil)
	c.Check(p.total, check.Equals, int64(4))
	c.Check(string(p.data), check.Equals, "abc\n")

	empty := filepath.Join(dir, "empty")
	c.Assert(os.WriteFile(empty, nil, 0o644), check.IsNil)
	for _, t := range []struct {
		path string
		want error
	}{
		{filepath.Join(dir, "missing"), ErrNotExist},
		{dir, ErrIsDir},
		{empty, ErrEmptyFile},
	} {
		p := countParser{total: -1}
		_, err := File(context.Background(), &p, t.path)
		c.Check(errors.Is(err, t.want), check.Equals, true, check.Commentf("%s: %v", t.path, err))
		c.Check(p.total, check.Equals, int64(-1))
	}
}
