// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

// worker holds one goroutine's exclusively-owned state: its id within the
// thread count, and the scratch buffers it reuses across every tile, every
// epoch, and every k (§3 "Per-worker state", §5 "Resource policy").
type worker struct {
	tid int
	buf workerBuffers
}

// initOffsetsForEpoch computes off[pi] = smallest i>=0 with
// (base_test0+i) % p == 0, for this worker's first tile base in the given
// epoch. This happens once per epoch; every subsequent tile carries its
// offsets forward via tileSieve's stride-mod update (§4.6).
func (w *worker) initOffsetsForEpoch(e *epoch) []uint32 {
	w.buf.ensureOffsets(len(e.primes))
	off := w.buf.off[:len(e.primes)]

	baseTest0 := e.startM + uint64(w.tid)*uint64(e.tileLen) + 1
	for pi, p := range e.primes {
		if p == 2 {
			off[pi] = uint32(baseTest0 & 1)
			continue
		}
		r := e.math.fd[pi].Mod(baseTest0)
		if r != 0 {
			off[pi] = p - r
		} else {
			off[pi] = 0
		}
	}
	return off
}

// run scans this worker's strided sequence of tiles for the given epoch,
// reporting any hit via e.tryMinBestM, until its tile base exceeds the
// epoch's (possibly shrinking) end_limit (§4.6 "Main loop").
func (w *worker) run(e *epoch) {
	off := w.initOffsetsForEpoch(e)
	base := e.startM + uint64(w.tid)*uint64(e.tileLen)

	for {
		lim := e.endLimit.Load()
		if base > lim {
			return
		}

		maxStarts := lim - base + 1
		startCount := uint64(e.tileLen)
		if maxStarts < startCount {
			startCount = maxStarts
		}

		tileSieve(e.k, e.primes, e.math, base+1, int(startCount), off, &w.buf)
		if s, ok := windowScan(e.k, w.buf.badBits, int(startCount)); ok {
			e.tryMinBestM(base + uint64(s))
		}

		base += e.step
	}
}
