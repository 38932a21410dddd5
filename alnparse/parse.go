// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukeulrich/alignshop-qt-sub010/align"
	"github.com/lukeulrich/alignshop-qt-sub010/parse"
)

func (a *app) parseCmd() *cobra.Command {
	var consensus bool
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, d, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			b := align.Summarize(res)
			w := a.stdout
			fmt.Fprintf(w, "file\t%s\n", args[0])
			fmt.Fprintf(w, "format\t%s\n", d.Name)
			fmt.Fprintf(w, "records\t%d\n", b.Sequences)
			fmt.Fprintf(w, "alignment\t%v\n", res.IsAlignment)
			fmt.Fprintf(w, "size\t%d\n", b.Size)
			fmt.Fprintf(w, "min\t%d\n", b.Min)
			fmt.Fprintf(w, "max\t%d\n", b.Max)
			fmt.Fprintf(w, "mean\t%.2f\n", b.Mean)
			fmt.Fprintf(w, "n50\t%d\n", b.N50)
			if consensus {
				if res.IsAlignment != parse.True {
					a.log.Warn("consensus of unaligned records", "file", args[0])
				}
				cons, err := align.Consensus(res)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "consensus\t%s\n", cons)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&consensus, "consensus", false, "print the column consensus")
	return cmd
}
