// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ksmooth

// PrimesUpTo returns the ordered list of primes p <= k, using a sieve of
// Eratosthenes over a byte slice of length k+1. For k <= 1 it returns an
// empty, non-nil slice.
//
// Allocation failure in Go surfaces as a runtime panic rather than a nil
// return; the deferred recover below converts that panic into the same
// explicit SieveError the rest of this package returns, so callers never
// need a recover of their own.
func PrimesUpTo(k uint32) (primes []uint32, err error) {
	if k <= 1 {
		return []uint32{}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			primes, err = nil, wrapKError("primes_upto", k, errFromRecover(r))
		}
	}()

	mark := make([]bool, k+1)
	for i := uint32(2); i*i <= k; i++ {
		if mark[i] {
			continue
		}
		for j := i * i; j <= k; j += i {
			mark[j] = true
		}
	}

	count := uint32(0)
	for i := uint32(2); i <= k; i++ {
		if !mark[i] {
			count++
		}
	}

	primes = make([]uint32, 0, count)
	for i := uint32(2); i <= k; i++ {
		if !mark[i] {
			primes = append(primes, i)
		}
	}
	return primes, nil
}

// errFromRecover normalizes a recover() value into an error.
func errFromRecover(r interface{}) error {
	if e, ok := r.(error); ok {
		return e
	}
	return ErrAllocation
}
