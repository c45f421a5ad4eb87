package ksmooth

import "testing"

func isKSmoothNaive(n uint64, primes []uint32) bool {
	if n == 0 {
		return false
	}
	for _, p := range primes {
		for n%uint64(p) == 0 {
			n /= uint64(p)
		}
	}
	return n == 1
}

// TestTileSieveSmoothnessClassification is property P1: bad_bits[i] is set
// iff (base_test+i) is k-smooth, checked against a naive trial-division
// oracle for small k.
func TestTileSieveSmoothnessClassification(t *testing.T) {
	for _, k := range []uint32{1, 2, 3, 5, 7, 10, 17} {
		primes, err := PrimesUpTo(k)
		if err != nil {
			t.Fatalf("PrimesUpTo(%d): %v", k, err)
		}
		step := uint64(37) // arbitrary, only needs to be > 0
		em, err := buildEpochMath(primes, step)
		if err != nil {
			t.Fatalf("buildEpochMath: %v", err)
		}

		baseTest := uint64(1)
		startCount := 200
		winLen := startCount + int(k)

		off := make([]uint32, len(primes))
		for pi, p := range primes {
			off[pi] = em.fd[pi].Mod(baseTest)
			if off[pi] != 0 {
				off[pi] = p - off[pi]
			}
			if p == 2 {
				off[pi] = uint32(baseTest & 1)
			}
		}

		buf := &workerBuffers{}
		tileSieve(k, primes, em, baseTest, startCount, off, buf)

		for i := 0; i < winLen; i++ {
			n := baseTest + uint64(i)
			want := isKSmoothNaive(n, primes)
			got := bitsetGet(buf.badBits, i) == 1
			if got != want {
				t.Fatalf("k=%d n=%d: bad_bits=%v want %v (k-smooth oracle)", k, n, got, want)
			}
		}
	}
}

// TestTileSieveCarriedOffsets is property P2: after advancing, off[pi] is
// valid for the next tile (base_test + step) and stays within [0, p).
func TestTileSieveCarriedOffsets(t *testing.T) {
	k := uint32(30)
	primes, err := PrimesUpTo(k)
	if err != nil {
		t.Fatalf("PrimesUpTo: %v", err)
	}
	step := uint64(64 * 3)
	em, err := buildEpochMath(primes, step)
	if err != nil {
		t.Fatalf("buildEpochMath: %v", err)
	}

	baseTest := uint64(101)
	startCount := 64

	off := make([]uint32, len(primes))
	for pi, p := range primes {
		r := em.fd[pi].Mod(baseTest)
		if p == 2 {
			r = uint32(baseTest & 1)
		}
		if r != 0 {
			off[pi] = p - r
		}
	}

	buf := &workerBuffers{}
	tileSieve(k, primes, em, baseTest, startCount, off, buf)

	nextBase := baseTest + step
	for pi, p := range primes {
		if off[pi] >= p {
			t.Fatalf("off[%d] = %d out of range [0,%d)", pi, off[pi], p)
		}
		if (nextBase+uint64(off[pi]))%uint64(p) != 0 {
			t.Fatalf("p=%d: (nextBase+off) %% p = %d, want 0", p, (nextBase+uint64(off[pi]))%uint64(p))
		}
	}
}

// TestOffsetUpdateIdempotence is property P6: applying the stride-mod
// update p times recovers the original offset mod p.
func TestOffsetUpdateIdempotence(t *testing.T) {
	p := uint32(13)
	fd := NewFastDiv(p)
	step := uint64(1000003)
	sm := fd.Mod(step)

	off := uint32(5)
	orig := off
	for i := uint32(0); i < p; i++ {
		if off >= sm {
			off = off - sm
		} else {
			off = off + p - sm
		}
	}
	if off != orig {
		t.Fatalf("after %d applications, off=%d want %d", p, off, orig)
	}
}
