// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

import "math/bits"

// tileSieve strips prime factors <= k from every position in a window and
// sets buf.badBits[i] iff (baseTest+i) is k-smooth. off[] carries the
// distance from baseTest to each prime's next multiple across calls: on
// return, off[pi] is valid for a tile whose base_test is this tile's
// base_test + step (§4.4).
//
// Naming follows the reference source: "bad" is set at smooth positions,
// not non-smooth ones (resolved per OQ1) -- a hit is a window where every
// bit is set.
func tileSieve(k uint32, primes []uint32, em epochMath, baseTest uint64, startCount int, off []uint32, buf *workerBuffers) {
	winLen := startCount + int(k)
	buf.ensureWindow(winLen)
	residual := buf.residual[:winLen]
	badBits := buf.badBits[:(winLen+63)/64]

	for i := 0; i < winLen; i++ {
		residual[i] = baseTest + uint64(i)
	}
	bitsetClear(badBits)

	for pi, p := range primes {
		fd := em.fd[pi]

		for i := int(off[pi]); i < winLen; i += int(p) {
			x := residual[i]
			if p == 2 {
				x >>= uint(bits.TrailingZeros64(x))
			} else {
				for fd.DivideIfDivisible(&x) {
				}
			}
			residual[i] = x
		}

		sm := em.strideMod[pi]
		if sm != 0 {
			o := off[pi]
			if o >= sm {
				off[pi] = o - sm
			} else {
				off[pi] = o + p - sm
			}
		}
	}

	for i := 0; i < winLen; i++ {
		if residual[i] == 1 {
			bitsetSet(badBits, i)
		}
	}
}
