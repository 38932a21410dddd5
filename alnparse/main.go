// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// alnparse detects, parses and converts FASTA and Clustal sequence files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"github.com/lukeulrich/alignshop-qt-sub010/parse"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	if err != nil {
		if errors.Is(err, parse.ErrCanceled) {
			fmt.Fprintln(os.Stderr, "alnparse: canceled")
		} else {
			fmt.Fprintf(os.Stderr, "alnparse: %v\n", err)
		}
		os.Exit(1)
	}
}
