// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/lukeulrich/alignshop-qt-sub010/align"
)

func (a *app) realignCmd() *cobra.Command {
	var (
		aligner string
		out     string
		width   int
	)
	cmd := &cobra.Command{
		Use:   "realign FILE",
		Short: "Realign sequences with muscle or mafft and write FASTA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			res, _, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r := align.Realigner{Aligner: aligner, Logger: a.log}
			if _, err := r.Command(args[0]); err != nil {
				return err
			}
			aligned, err := r.Realign(cmd.Context(), res)
			if err != nil {
				return err
			}
			w, done, err := a.output(out)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := done(); err == nil {
					err = cerr
				}
			}()
			return align.WriteFasta(w, aligned, width)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&aligner, "aligner", "muscle", "external aligner (muscle or mafft)")
	flags.StringVarP(&out, "output", "o", "", "output file (default standard output)")
	flags.IntVar(&width, "width", align.DefaultWidth, "FASTA line width")
	return cmd
}
