// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

import "math/bits"

// FastDiv precomputes a 64-bit reciprocal for a prime divisor d, allowing
// n mod d and exact-division tests to be computed with a mulhi and a
// couple of corrections instead of a hardware DIV.
//
// Hardware 64-bit division is serially ~20-40 cycles; mulhi plus two
// compares is ~5. This is the single hottest primitive in the sieve: it
// runs once per (prime, window position) pair where the prime divides the
// residual.
type FastDiv struct {
	D  uint32 // the divisor (always a prime)
	Mu uint64 // floor(2^64 / D) for odd D, 2^63 for D == 2 (unused on that path)
}

// NewFastDiv builds the reciprocal for an odd prime or for 2. With Mu =
// 2^63, DivMod and Mod are still exact for 2, but tileSieve and
// buildEpochMath never call them for p == 2: they use bit operations
// (trailing-zero shift, step & 1) instead.
func NewFastDiv(p uint32) FastDiv {
	if p == 2 {
		return FastDiv{D: 2, Mu: 1 << 63}
	}
	return FastDiv{D: p, Mu: ^uint64(0) / uint64(p)}
}

// DivMod returns q, r such that n == q*d + r, computed via mulhi(n, Mu)
// with up to two corrections, for d == fd.D.
func (fd FastDiv) DivMod(n uint64) (q uint64, r uint64) {
	d := uint64(fd.D)
	q0, _ := bits.Mul64(n, fd.Mu)
	rr := n - q0*d
	if rr >= d {
		rr -= d
		q0++
	}
	if rr >= d {
		rr -= d
		q0++
	}
	return q0, rr
}

// Mod returns n mod fd.D.
func (fd FastDiv) Mod(n uint64) uint32 {
	_, r := fd.DivMod(n)
	return uint32(r)
}

// DivideIfDivisible divides *n by fd.D in place and returns true if fd.D
// divides *n exactly; otherwise it returns false and leaves *n unchanged.
// TileSieve calls this in a loop to strip every power of a prime from a
// single residual.
func (fd FastDiv) DivideIfDivisible(n *uint64) bool {
	q, r := fd.DivMod(*n)
	if r != 0 {
		return false
	}
	*n = q
	return true
}
