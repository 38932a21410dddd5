// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/lukeulrich/alignshop-qt-sub010/align"
)

func (a *app) filterCmd() *cobra.Command {
	var (
		minLen, maxLen int
		out      string
		width    int
	)
	cmd := &cobra.Command{
		Use:   "filter FILE",
		Short: "Write the sequences within a length range as FASTA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			res, _, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			kept := align.Filter(res, minLen, maxLen)
			a.log.Info("filtered", "file", args[0], "kept", kept.Len(), "dropped", res.Len()-kept.Len())
			w, done, err := a.output(out)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := done(); err == nil {
					err = cerr
				}
			}()
			return align.WriteFasta(w, kept, width)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&minLen, "min", 0, "minimum residue count")
	flags.IntVar(&maxLen, "max", 0, "maximum residue count (0 for no limit)")
	flags.StringVarP(&out, "output", "o", "", "output file (default standard output)")
	flags.IntVar(&width, "width", align.DefaultWidth, "FASTA line width")
	return cmd
}
