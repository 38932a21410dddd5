// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"fmt"

	"github.com/pkg/errors"
)

// Input errors. These are returned before any progress is reported.
var (
	ErrNotExist  = errors.New("file does not exist")
	ErrIsDir     = errors.New("path is a directory")
	ErrEmptyFile = errors.New("file is empty")
	ErrNilReader = errors.New("nil reader")
)

// ErrCanceled is returned, possibly wrapped, when a parse is stopped by
// Cancel or by its context.
var ErrCanceled = errors.New("parse canceled")

// FormatError describes input that violates the structure of a format.
// Err holds the reason and is one of the sentinel errors exported by the
// format's parser package.
type FormatError struct {
	Format string
	Line   int // 1-based line of the violation, 0 if not known.
	Err    error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", e.Format, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Reason returns the human readable reason held by err if it is or wraps a
// FormatError, otherwise the error text.
func Reason(err error) string {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Err.Error()
	}
	return err.Error()
}
