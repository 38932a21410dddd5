// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

// ProgressFunc is called with the number of bytes consumed so far and the
// advisory total. It is called synchronously and must not block for long.
type ProgressFunc func(done, total int64)

// Progress tracks the values reported during a single parse so that the
// reported sequence is non-decreasing and ends at (total, total).
type Progress struct {
	fn    ProgressFunc
	total int64
	last  int64
}

// NewProgress returns a Progress reporting to fn, which may be nil.
func NewProgress(fn ProgressFunc, total int64) *Progress {
	if total < 0 {
		total = 0
	}
	return &Progress{fn: fn, total: total}
}

// Report emits done, clamped so that it never decreases and never exceeds
// the total when a total is known.
func (p *Progress) Report(done int64) {
	if p.total > 0 && done > p.total {
		done = p.total
	}
	if done < p.last {
		done = p.last
	}
	p.last = done
	if p.fn != nil {
		p.fn(done, p.total)
	}
}

// Done emits the final (total, total) value.
func (p *Progress) Done() {
	p.last = p.total
	if p.fn != nil {
		p.fn(p.total, p.total)
	}
}

// Cancellation is a cooperative cancellation flag. The zero value is ready
// to use and is intended to be embedded in parser types.
type Cancellation struct {
	flag atomic.Bool
}

// Cancel sets the flag. It is safe to call from any goroutine.
func (c *Cancellation) Cancel() { c.flag.Store(true) }

// Canceled reports whether Cancel has been called since the last Reset.
func (c *Cancellation) Canceled() bool { return c.flag.Load() }

// Reset clears the flag.
func (c *Cancellation) Reset() { c.flag.Store(false) }

// Check returns an error wrapping ErrCanceled if the flag is set or ctx is
// done, and nil otherwise.
func (c *Cancellation) Check(ctx context.Context) error {
	if c.flag.Load() {
		return ErrCanceled
	}
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return errors.Wrap(ErrCanceled, ctx.Err().Error())
	default:
	}
	return nil
}
