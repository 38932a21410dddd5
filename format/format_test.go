// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/check.v1"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
	"github.com/lukeulrich/alignshop-qt-sub010/parse/clustal"
	"github.com/lukeulrich/alignshop-qt-sub010/parse/fasta"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestSetExtensions(c *check.C) {
	d := NewDescriptor(Fasta, "FASTA", []string{"FA", ".faa", "  ", "", "fa", " Fnt ", ".FAA"}, nil)
	c.Check(d.Extensions(), check.DeepEquals, []string{"fa", "faa", "fnt"})
	c.Check(d.HasExtension(".FA"), check.Equals, true)
	c.Check(d.HasExtension(""), check.Equals, false)
	c.Check(d.HasExtension("aln"), check.Equals, false)

	e := d
	e.SetExtensions([]string{"aln"})
	c.Check(d.Extensions(), check.DeepEquals, []string{"fa", "faa", "fnt"})
	c.Check(e.Extensions(), check.DeepEquals, []string{"aln"})
}

func (s *S) TestEqual(c *check.C) {
	p := fasta.NewParser()
	a := NewDescriptor(Fasta, "FASTA", []string{"fa", "faa"}, p)
	c.Check(a.Equal(NewDescriptor(Fasta, "FASTA", []string{".FA", "faa"}, p)), check.Equals, true)
	c.Check(a.Equal(NewDescriptor(Fasta, "FASTA", []string{"faa", "fa"}, p)), check.Equals, false)
	c.Check(a.Equal(NewDescriptor(Fasta, "Fasta", []string{"fa", "faa"}, p)), check.Equals, false)
	c.Check(a.Equal(NewDescriptor(Clustal, "FASTA", []string{"fa", "faa"}, p)), check.Equals, false)
	c.Check(a.Equal(NewDescriptor(Fasta, "FASTA", []string{"fa", "faa"}, fasta.NewParser())), check.Equals, false)
	c.Check(Descriptor{}.Equal(Descriptor{}), check.Equals, true)
}

func (s *S) TestParseType(c *check.C) {
	for _, t := range []struct {
		in   string
		want Type
		ok   bool
	}{
		{"fasta", Fasta, true},
		{" Clustal ", Clustal, true},
		{"genbank", Unknown, false},
	} {
		got, ok := ParseType(t.in)
		c.Check(got, check.Equals, t.want)
		c.Check(ok, check.Equals, t.ok)
	}
	c.Check(Clustal.String(), check.Equals, "clustal")
	c.Check(Type(99).String(), check.Equals, "unknown")
}

func newDetector() (*Detector, Descriptor, Descriptor) {
	fa := NewDescriptor(Fasta, "FASTA", []string{"fa", "faa", "fnt"}, fasta.NewParser())
	aln := NewDescriptor(Clustal, "Clustal", []string{"aln"}, clustal.NewParser())
	return NewDetector(fa, aln), fa, aln
}

func (s *S) TestFromFileExtension(c *check.C) {
	d, fa, aln := newDetector()
	c.Check(d.FromFileExtension("faa").Equal(fa), check.Equals, true)
	c.Check(d.FromFileExtension("FNT").Equal(fa), check.Equals, true)
	c.Check(d.FromFileExtension(".aln").Equal(aln), check.Equals, true)
	c.Check(d.FromFileExtension("xyz").IsUnknown(), check.Equals, true)
	c.Check(d.FromFileExtension("").IsUnknown(), check.Equals, true)

	// First match wins.
	other := NewDescriptor(Clustal, "Other", []string{"fa"}, nil)
	d = NewDetector(other, fa)
	c.Check(d.FromFileExtension("fa").Equal(other), check.Equals, true)
}

func (s *S) TestFromString(c *check.C) {
	d, fa, aln := newDetector()
	c.Check(d.FromString(">seq\nACGT").Equal(fa), check.Equals, true)
	c.Check(d.FromString("\nCLUSTAL W\n\n").Equal(aln), check.Equals, true)
	c.Check(d.FromString("LOCUS  x").IsUnknown(), check.Equals, true)

	// Descriptors without a parser are never chosen by content.
	d = NewDetector(NewDescriptor(Fasta, "FASTA", []string{"fa"}, nil), aln)
	c.Check(d.FromString(">seq\nACGT").IsUnknown(), check.Equals, true)
}

func (s *S) TestFromFile(c *check.C) {
	d, fa, aln := newDetector()
	dir := c.MkDir()
	write := func(name, data string) string {
		fn := filepath.Join(dir, name)
		c.Assert(os.WriteFile(fn, []byte(data), 0o644), check.IsNil)
		return fn
	}

	for _, t := range []struct {
		path string
		want Descriptor
	}{
		{write("a.fa", ">seq\nACGT\n"), fa},
		// Content beats the extension.
		{write("b.fa", "CLUSTAL W\n\na AC\nb GT\n"), aln},
		{write("c.txt", "\n\n>seq\nACGT\n"), fa},
		// Unrecognised content falls back to the extension.
		{write("d.ALN", "junk"), aln},
		{write("e.txt", "junk"), Descriptor{}},
		{write("f.faa", ""), fa},
	} {
		got, err := d.FromFile(t.path)
		c.Assert(err, check.IsNil)
		c.Check(got.Equal(t.want), check.Equals, true, check.Commentf("%s: got %v", t.path, got.Type))
	}

	_, err := d.FromFile(filepath.Join(dir, "missing.fa"))
	c.Check(errors.Is(err, parse.ErrNotExist), check.Equals, true)
}

// Only the leading sample is examined.
func (s *S) TestFromFileSample(c *check.C) {
	d, _, aln := newDetector()
	d.SampleSize = 16
	fn := filepath.Join(c.MkDir(), "x.aln")
	c.Assert(os.WriteFile(fn, []byte(strings.Repeat(" ", 32)+">seq\nAC\n"), 0o644), check.IsNil)
	got, err := d.FromFile(fn)
	c.Assert(err, check.IsNil)
	c.Check(got.Equal(aln), check.Equals, true)
}

func (s *S) TestDefaultDetector(c *check.C) {
	d := NewDefaultDetector()
	c.Check(d.Formats(), check.HasLen, 2)
	c.Check(d.FromFileExtension("fasta").Type, check.Equals, Fasta)
	c.Check(d.FromFileExtension("clw").Type, check.Equals, Clustal)
	desc, ok := d.ByType(Clustal)
	c.Check(ok, check.Equals, true)
	c.Check(desc.Parser, check.NotNil)
	_, ok = NewDetector().ByType(Fasta)
	c.Check(ok, check.Equals, false)
}
