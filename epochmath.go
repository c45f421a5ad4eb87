// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

// epochMath holds the per-k precomputed reciprocal and stride-mod tables,
// one entry per prime in the same order as the prime list.
type epochMath struct {
	fd        []FastDiv
	strideMod []uint32
}

// buildEpochMath precomputes fd[] and strideMod[] for the given primes and
// step (step = tile_len * thread_count). For p == 2, strideMod[i] is
// step & 1 (FastDiv is never consulted for p == 2); for odd p it is
// FastMod(step, p).
func buildEpochMath(primes []uint32, step uint64) (epochMath, error) {
	n := len(primes)
	em := epochMath{
		fd:        make([]FastDiv, n),
		strideMod: make([]uint32, n),
	}
	for i, p := range primes {
		em.fd[i] = NewFastDiv(p)
	}
	for i, p := range primes {
		if p == 2 {
			em.strideMod[i] = uint32(step & 1)
		} else {
			em.strideMod[i] = em.fd[i].Mod(step)
		}
	}
	return em, nil
}
