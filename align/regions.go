// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"fmt"

	"github.com/biogo/store/step"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
)

// Class is the conservation class of an alignment column.
type Class int

const (
	// Conserved columns hold the same residue in every row.
	Conserved Class = iota
	// Partial columns hold one residue type and at least one gap.
	Partial
	// Variable columns hold more than one residue type.
	Variable
	// Gap columns hold only gaps.
	Gap
)

func (c Class) String() string {
	switch c {
	case Conserved:
		return "conserved"
	case Partial:
		return "partial"
	case Variable:
		return "variable"
	case Gap:
		return "gap"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Equal implements step.Equaler.
func (c Class) Equal(e step.Equaler) bool { return c == e.(Class) }

// Region is a run of adjacent columns sharing a Class, spanning [Start, End).
type Region struct {
	Start, End int
	Class      Class
}

func (r Region) String() string { return fmt.Sprintf("%d-%d:%v", r.Start, r.End, r.Class) }

// Classify returns the Class of column col of the alignment in res.
func Classify(res *parse.Result, col int) Class {
	var (
		first byte
		gaps  bool
		seen  bool
	)
	for _, r := range res.Records {
		b := r.Sequence[col]
		if IsGap(b) {
			gaps = true
			continue
		}
		b = upper(b)
		if !seen {
			first, seen = b, true
			continue
		}
		if b != first {
			return Variable
		}
	}
	switch {
	case !seen:
		return Gap
	case gaps:
		return Partial
	}
	return Conserved
}

// ConservedRegions returns the alignment in res divided into maximal runs
// of columns of the same Class, in column order.
func ConservedRegions(res *parse.Result) ([]Region, error) {
	w, err := Width(res)
	if err != nil {
		return nil, err
	}
	if w == 0 {
		return nil, nil
	}
	v, err := step.New(0, w, Gap)
	if err != nil {
		return nil, err
	}
	for col := 0; col < w; col++ {
		if c := Classify(res, col); c != Gap {
			v.Set(col, c)
		}
	}
	var regions []Region
	v.Do(func(start, end int, e step.Equaler) {
		regions = append(regions, Region{Start: start, End: end, Class: e.(Class)})
	})
	return regions, nil
}
