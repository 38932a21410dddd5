// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package align

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
)

// EntropyPlot returns a line plot of the column entropy of the alignment
// in res.
func EntropyPlot(res *parse.Result, title string) (*plot.Plot, error) {
	h, err := ColumnEntropy(res)
	if err != nil {
		return nil, err
	}
	xys := make(plotter.XYs, len(h))
	for i, v := range h {
		xys[i].X = float64(i + 1)
		xys[i].Y = v
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Entropy (nats)"
	p.Y.Min = 0

	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, errors.Wrap(err, "align: entropy line")
	}
	p.Add(l)
	return p, nil
}

// SaveEntropyPlot writes the entropy plot of res to path. The image format
// is chosen by the extension of path.
func SaveEntropyPlot(res *parse.Result, title, path string) error {
	p, err := EntropyPlot(res, title)
	if err != nil {
		return err
	}
	return errors.Wrapf(p.Save(8*vg.Inch, 3*vg.Inch, path), "align: save %s", path)
}
