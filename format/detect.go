// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
	"github.com/lukeulrich/alignshop-qt-sub010/parse/clustal"
	"github.com/lukeulrich/alignshop-qt-sub010/parse/fasta"
)

// DefaultSampleSize is the number of leading bytes of a file examined by
// FromFile when Detector.SampleSize is not set.
const DefaultSampleSize = 10240

// Detector maps file extensions and content to registered formats. Lookups
// consider descriptors in registration order and the first match wins.
type Detector struct {
	// SampleSize is the number of leading bytes read by FromFile.
	SampleSize int

	formats []Descriptor
}

// NewDetector returns a Detector holding copies of the given descriptors.
func NewDetector(formats ...Descriptor) *Detector {
	return &Detector{SampleSize: DefaultSampleSize, formats: append([]Descriptor(nil), formats...)}
}

// NewDefaultDetector returns a Detector for FASTA and Clustal files, each
// with a new parser.
func NewDefaultDetector() *Detector {
	return NewDetector(
		NewDescriptor(Fasta, "FASTA", []string{"fa", "faa", "fnt", "fasta", "fas"}, fasta.NewParser()),
		NewDescriptor(Clustal, "Clustal", []string{"aln", "clw"}, clustal.NewParser()),
	)
}

// Formats returns the registered descriptors in order.
func (d *Detector) Formats() []Descriptor {
	return append([]Descriptor(nil), d.formats...)
}

// ByType returns the first descriptor of type t.
func (d *Detector) ByType(t Type) (Descriptor, bool) {
	for _, f := range d.formats {
		if f.Type == t {
			return f, true
		}
	}
	return Descriptor{}, false
}

// FromFileExtension returns the first descriptor listing ext, compared
// without case, or the zero Descriptor.
func (d *Detector) FromFileExtension(ext string) Descriptor {
	for _, f := range d.formats {
		if f.HasExtension(ext) {
			return f
		}
	}
	return Descriptor{}
}

// FromString returns the first descriptor with a parser that accepts
// sample, or the zero Descriptor.
func (d *Detector) FromString(sample string) Descriptor {
	for _, f := range d.formats {
		if f.Parser != nil && f.Parser.IsCompatibleString(sample) {
			return f
		}
	}
	return Descriptor{}
}

// FromFile returns the format of the named file. The leading bytes of the
// file are examined first and the file extension is used only if the
// content is not recognised. It is an error for the file not to exist.
func (d *Detector) FromFile(path string) (Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Descriptor{}, errors.Wrapf(parse.ErrNotExist, "%s", path)
		}
		return Descriptor{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	size := d.SampleSize
	if size <= 0 {
		size = DefaultSampleSize
	}
	buf := make([]byte, size)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Descriptor{}, errors.Wrapf(err, "read %s", path)
	}

	if desc := d.FromString(string(buf[:n])); !desc.IsUnknown() {
		return desc, nil
	}
	return d.FromFileExtension(filepath.Ext(path)), nil
}
