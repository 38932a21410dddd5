// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lukeulrich/alignshop-qt-sub010/align"
)

func (a *app) convertCmd() *cobra.Command {
	var (
		to    string
		out   string
		width int
	)
	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Write a file as FASTA or PHYLIP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			to = strings.ToLower(to)
			if to != "fasta" && to != "phylip" {
				return errors.Errorf("unknown output format %q", to)
			}
			res, _, err := a.load(cmd.Context(), args[0])
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

			if to == "fasta" {
				return align.WriteFasta(w, res, width)
			}
			long, err := align.WritePhylip(w, res)
			for _, name := range long {
				a.log.Warn("name exceeds PHYLIP width", "name", name, "width", align.PhylipNameWidth)
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&to, "to", "fasta", "output format (fasta or phylip)")
	flags.StringVarP(&out, "output", "o", "", "output file (default standard output)")
	flags.IntVar(&width, "width", align.DefaultWidth, "FASTA line width")
	return cmd
}
