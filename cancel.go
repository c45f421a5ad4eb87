// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

import (
	"context"
	"sync/atomic"
)

// batchCanceler checks a context.Context for cancellation between values
// of k: Run calls Check before each k's search. The core algorithm never
// suspends or checks cancellation mid-epoch (§5): a worker's inner loop is
// pure compute on private buffers. The batches of a single FindM call are
// not checked, so a search already in progress runs until it finds m(k).
type batchCanceler struct {
	ctx       context.Context
	cancelled int32 // atomic flag, sticky once set
}

func newBatchCanceler(ctx context.Context) *batchCanceler {
	if ctx == nil {
		ctx = context.Background()
	}
	return &batchCanceler{ctx: ctx}
}

// Check reports whether the context has been cancelled. Once true it stays
// true; the caller is expected to stop looping, never to resume.
func (c *batchCanceler) Check() bool {
	if atomic.LoadInt32(&c.cancelled) != 0 {
		return true
	}
	select {
	case <-c.ctx.Done():
		atomic.StoreInt32(&c.cancelled, 1)
		return true
	default:
		return false
	}
}

// Err returns the context's error, if any.
func (c *batchCanceler) Err() error {
	return c.ctx.Err()
}
