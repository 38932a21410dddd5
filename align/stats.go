// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
)

// Summary holds length statistics for a sequence collection. All lengths
// are counts of sequence bytes, including gaps.
type Summary struct {
	Sequences int
	Size      int // Total length of all sequences.
	Min       int
	Max       int
	Mean      float64
	N50       int
}

// Summarize returns length statistics for the records in res.
func Summarize(res *parse.Result) Summary {
	var b Summary
	if res == nil || len(res.Records) == 0 {
		return b
	}
	lens := make([]int, len(res.Records))
	b.Min = len(res.Records[0].Sequence)
	for i, r := range res.Records {
		n := len(r.Sequence)
		lens[i] = n
		b.Size += n
		if n < b.Min {
			b.Min = n
		}
		if n > b.Max {
			b.Max = n
		}
	}
	b.Sequences = len(lens)
	b.Mean = float64(b.Size) / float64(b.Sequences)

	// N50 is the length of the sequence at which the cumulative length of
	// sequences sorted longest first reaches half the total.
	sort.Sort(sort.Reverse(sort.IntSlice(lens)))
	for i, csum := 0, 0; i < len(lens); i++ {
		csum += lens[i]
		if 2*csum >= b.Size {
			b.N50 = lens[i]
			break
		}
	}
	return b
}

// IsGap returns whether b is a gap character.
func IsGap(b byte) bool { return b == '-' || b == '.' }

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// ColumnEntropy returns the Shannon entropy, in nats, of the residue
// distribution in each column of the alignment in res. Gaps are not counted
// and residues are compared without case. A column holding only gaps has
// zero entropy.
func ColumnEntropy(res *parse.Result) ([]float64, error) {
	w, err := Width(res)
	if err != nil {
		return nil, err
	}
	h := make([]float64, w)
	counts := make(map[byte]float64)
	var p []float64
	for col := 0; col < w; col++ {
		for k := range counts {
			delete(counts, k)
		}
		for _, r := range res.Records {
			if b := r.Sequence[col]; !IsGap(b) {
				counts[upper(b)]++
			}
		}
		if len(counts) == 0 {
			continue
		}
		p = p[:0]
		for _, n := range counts {
			p = append(p, n)
		}
		floats.Scale(1/floats.Sum(p), p)
		h[col] = stat.Entropy(p)
	}
	return h, nil
}

// IdentityMatrix returns the pairwise fractional identity of the rows of
// the alignment in res. For each pair only columns where at least one of
// the two rows is not a gap are considered; a pair with no such column has
// identity zero. The diagonal is one.
func IdentityMatrix(res *parse.Result) (*mat.SymDense, error) {
	w, err := Width(res)
	if err != nil {
		return nil, err
	}
	n := len(res.Records)
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		m.SetSym(i, i, 1)
		a := res.Records[i].Sequence
		for j := i + 1; j < n; j++ {
			b := res.Records[j].Sequence
			var same, cols int
			for k := 0; k < w; k++ {
				ga, gb := IsGap(a[k]), IsGap(b[k])
				if ga && gb {
					continue
				}
				cols++
				if !ga && !gb && upper(a[k]) == upper(b[k]) {
					same++
				}
			}
			if cols > 0 {
				m.SetSym(i, j, float64(same)/float64(cols))
			}
		}
	}
	return m, nil
}

// Filter returns the records of res whose residue count, excluding gaps,
// is at least minLen and, if maxLen is positive, at most maxLen. The records
// are shared with res.
func Filter(res *parse.Result, minLen, maxLen int) *parse.Result {
	out := &parse.Result{Grammar: res.Grammar, IsAlignment: res.IsAlignment}
	for _, r := range res.Records {
		n := 0
		for _, b := range r.Sequence {
			if !IsGap(b) {
				n++
			}
		}
		if n < minLen || (maxLen > 0 && n > maxLen) {
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out
}
