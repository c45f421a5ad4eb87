package ksmooth

import "testing"

func TestFastDivModMatchesHardware(t *testing.T) {
	primes := []uint32{2, 3, 5, 7, 11, 13, 97, 9973}
	for _, p := range primes {
		fd := NewFastDiv(p)
		boundaries := []uint64{0, 1, uint64(p) - 1, uint64(p), uint64(p) + 1}
		boundaries = append(boundaries, ^uint64(0)/uint64(p)-1, ^uint64(0))
		for _, n := range boundaries {
			want := n % uint64(p)
			if p == 2 {
				// FastDiv is never used for p==2 in the sieve itself (the
				// trailing-zero bit trick is used instead); DivMod must
				// still be correct for the property test's sake.
			}
			got := fd.Mod(n)
			if uint64(got) != want {
				t.Fatalf("p=%d n=%d: Mod()=%d want %d", p, n, got, want)
			}
			q, r := fd.DivMod(n)
			if q != n/uint64(p) || r != want {
				t.Fatalf("p=%d n=%d: DivMod()=(%d,%d) want (%d,%d)", p, n, q, r, n/uint64(p), want)
			}
		}
	}
}

func TestFastDivModUniformSamples(t *testing.T) {
	primes := []uint32{2, 3, 5, 7, 11, 13, 97, 9973}
	var x uint64 = 0x2545F4914F6CDD1D // splitmix64-ish seed
	next := func() uint64 {
		x += 0x9E3779B97F4A7C15
		z := x
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}
	for _, p := range primes {
		fd := NewFastDiv(p)
		for i := 0; i < 2000; i++ {
			n := next()
			if uint64(fd.Mod(n)) != n%uint64(p) {
				t.Fatalf("p=%d n=%d: Mod()=%d want %d", p, n, fd.Mod(n), n%uint64(p))
			}
		}
	}
}

func TestDivideIfDivisible(t *testing.T) {
	fd := NewFastDiv(7)
	n := uint64(7 * 7 * 7 * 5)
	count := 0
	for fd.DivideIfDivisible(&n) {
		count++
	}
	if count != 3 {
		t.Fatalf("expected to strip 3 factors of 7, got %d (n=%d)", count, n)
	}
	if n != 5 {
		t.Fatalf("expected residual 5, got %d", n)
	}

	n2 := uint64(11)
	if fd.DivideIfDivisible(&n2) {
		t.Fatalf("expected DivideIfDivisible to fail for non-multiple")
	}
	if n2 != 11 {
		t.Fatalf("n2 should be unchanged, got %d", n2)
	}
}
