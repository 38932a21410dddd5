// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// File parses the named file with p. It fails without reading if the path
// does not exist, is a directory or names an empty file. The file is closed
// before File returns.
func File(ctx context.Context, p StreamParser, path string) (*Result, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotExist, "%s", path)
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	if fi.IsDir() {
		return nil, errors.Wrapf(ErrIsDir, "%s", path)
	}
	if fi.Size() == 0 {
		return nil, errors.Wrapf(ErrEmptyFile, "%s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return p.ParseStream(ctx, f, fi.Size())
}

// String parses s with p, using the length of s as the total.
func String(ctx context.Context, p StreamParser, s string) (*Result, error) {
	return p.ParseStream(ctx, strings.NewReader(s), int64(len(s)))
}
