// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lukeulrich/alignshop-qt-sub010/align"
)

func (a *app) plotCmd() *cobra.Command {
	var (
		out   string
		title string
	)
	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Plot the column entropy of an alignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if title == "" {
				title = filepath.Base(args[0])
			}
			if err := align.SaveEntropyPlot(res, title, out); err != nil {
				return err
			}
			a.log.Info("wrote plot", "file", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output image; the format follows the extension")
	cmd.Flags().StringVar(&title, "title", "", "plot title (default the input file name)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
