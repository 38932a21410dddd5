// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format provides descriptors for sequence file formats and
// detection of a file's format from its extension or its content.
package format

import (
	"strings"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
)

// Type identifies a sequence file format.
type Type int

const (
	Unknown Type = iota
	Fasta
	Clustal
)

var typeNames = map[Type]string{
	Unknown: "unknown",
	Fasta:   "fasta",
	Clustal: "clustal",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// ParseType returns the Type named by s, ignoring case. ok is false if s
// does not name a known format.
func ParseType(s string) (t Type, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == s {
			return t, true
		}
	}
	return Unknown, false
}

// Descriptor describes a registered format. The parser, if any, is borrowed;
// its lifetime belongs to whoever configured the Descriptor.
type Descriptor struct {
	Type   Type
	Name   string
	Parser parse.Parser

	exts []string
}

// NewDescriptor returns a Descriptor with the given extensions normalised
// as by SetExtensions.
func NewDescriptor(t Type, name string, exts []string, p parse.Parser) Descriptor {
	d := Descriptor{Type: t, Name: name, Parser: p}
	d.SetExtensions(exts)
	return d
}

// Extensions returns a copy of the descriptor's extensions.
func (d Descriptor) Extensions() []string {
	return append([]string(nil), d.exts...)
}

// SetExtensions sets the extensions of d. Extensions are lower cased and
// stripped of surrounding white space and a leading dot; blank entries and
// duplicates are dropped. The order of first appearance is kept.
func (d *Descriptor) SetExtensions(exts []string) {
	d.exts = nil
	seen := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = normalizeExt(e)
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		d.exts = append(d.exts, e)
	}
}

// HasExtension returns whether ext, compared without case and ignoring a
// leading dot, is one of d's extensions.
func (d Descriptor) HasExtension(ext string) bool {
	ext = normalizeExt(ext)
	if ext == "" {
		return false
	}
	for _, e := range d.exts {
		if e == ext {
			return true
		}
	}
	return false
}

// IsUnknown returns whether d is the zero Descriptor returned when
// detection fails.
func (d Descriptor) IsUnknown() bool { return d.Type == Unknown }

// Equal returns whether d and o have the same type, name, extensions in
// the same order and the same parser instance.
func (d Descriptor) Equal(o Descriptor) bool {
	if d.Type != o.Type || d.Name != o.Name || d.Parser != o.Parser || len(d.exts) != len(o.exts) {
		return false
	}
	for i, e := range d.exts {
		if e != o.exts[i] {
			return false
		}
	}
	return true
}

func normalizeExt(e string) string {
	e = strings.TrimSpace(e)
	e = strings.TrimPrefix(e, ".")
	return strings.ToLower(strings.TrimSpace(e))
}
