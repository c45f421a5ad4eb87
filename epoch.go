// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

import (
	"math"
	"sync/atomic"
)

// maxU64 represents the "no candidate found yet" sentinel for best_m,
// equivalent to the reference's UINT64_MAX.
const maxU64 = math.MaxUint64

// epoch is the immutable-header-plus-two-atomics state shared by every
// worker during a single batch (§3 "Epoch state"). The header fields are
// written once by EpochController before the epoch starts and never
// mutated afterward; bestM and endLimit are the only cross-goroutine
// read/write surface in the whole system (§5).
type epoch struct {
	k       uint32
	tileLen uint32
	step    uint64

	startM uint64 // inclusive
	endM   uint64 // inclusive, the original (unshrunk) bound

	primes []uint32
	math   epochMath

	bestM    atomic.Uint64 // smallest m confirmed this epoch; maxU64 if none yet
	endLimit atomic.Uint64 // current inclusive upper bound; monotonically non-increasing
}

func newEpoch(k uint32, tileLen uint32, step, startM, endM uint64, primes []uint32, em epochMath) *epoch {
	e := &epoch{
		k:       k,
		tileLen: tileLen,
		step:    step,
		startM:  startM,
		endM:    endM,
		primes:  primes,
		math:    em,
	}
	e.bestM.Store(maxU64)
	e.endLimit.Store(endM)
	return e
}

// tryMinBestM implements the reference's try_set_best: a CAS-min on bestM,
// and on success a CAS-min shrink of endLimit to bestM-1. Both loops are
// monotone (Invariant E1): endLimit never exceeds bestM-1 once bestM is
// finite, so no worker can advance past a bound that no longer matters.
func (e *epoch) tryMinBestM(m uint64) {
	for {
		cur := e.bestM.Load()
		if m >= cur {
			return
		}
		if e.bestM.CompareAndSwap(cur, m) {
			newLimit := uint64(0)
			if m > 0 {
				newLimit = m - 1
			}
			for {
				oldLimit := e.endLimit.Load()
				if newLimit >= oldLimit {
					return
				}
				if e.endLimit.CompareAndSwap(oldLimit, newLimit) {
					return
				}
			}
		}
	}
}
