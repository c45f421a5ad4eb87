package ksmooth

import "testing"

func TestWindowScanFindsFirstRun(t *testing.T) {
	// k=3, positions (0-indexed) good at 2,3,4 -> s=2 is the first hit.
	k := uint32(3)
	startCount := 6
	winLen := startCount + int(k)
	words := (winLen + 63) / 64
	badBits := make([]uint64, words)
	good := map[int]bool{2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true}
	for i := 0; i < winLen; i++ {
		if good[i] {
			bitsetSet(badBits, i)
		}
	}

	s, ok := windowScan(k, badBits, startCount)
	if !ok || s != 2 {
		t.Fatalf("windowScan = (%d, %v), want (2, true)", s, ok)
	}
}

func TestWindowScanNoHit(t *testing.T) {
	k := uint32(5)
	startCount := 10
	winLen := startCount + int(k)
	words := (winLen + 63) / 64
	badBits := make([]uint64, words) // all zero: no run of k set bits anywhere
	_, ok := windowScan(k, badBits, startCount)
	if ok {
		t.Fatalf("expected no hit")
	}
}

func TestWindowScanLowestWins(t *testing.T) {
	k := uint32(2)
	startCount := 5
	winLen := startCount + int(k)
	words := (winLen + 63) / 64
	badBits := make([]uint64, words)
	// hits at s=1 (bits 1,2), s=2 (bits 2,3) and s=3 (bits 3,4); lowest
	// should win.
	for _, i := range []int{1, 2, 3, 4} {
		bitsetSet(badBits, i)
	}
	s, ok := windowScan(k, badBits, startCount)
	if !ok || s != 1 {
		t.Fatalf("windowScan = (%d, %v), want (1, true)", s, ok)
	}
}
