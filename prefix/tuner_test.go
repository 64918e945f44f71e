package prefix_test

import (
	"testing"

	"github.com/dvyukov-labs/bitpack/prefix"
)

// S4: a frequency map weighted toward small values favors a small k; a
// change in the distribution toward large values shifts the optimum to
// a larger k, and vice versa.
func TestTuneNaturalShiftsWithDistribution(t *testing.T) {
	small := map[int64]int64{0: 100, 1: 90, 2: 80, 3: 10}
	kSmall := prefix.TuneNatural(small, 0)
	if kSmall < 2 {
		t.Fatalf("TuneNatural(small) = %d, want >= 2", kSmall)
	}

	large := map[int64]int64{}
	for v := int64(0); v < 64; v++ {
		large[v*1000] = 1
	}
	kLarge := prefix.TuneNatural(large, 0)

	if kLarge <= kSmall {
		t.Fatalf("expected a wider-spread distribution to favor a larger k: kSmall=%d kLarge=%d", kSmall, kLarge)
	}
}

// S4's literal worked example: this exact frequency map selects k=5;
// raising freq[3] from 68 to 70 shifts the optimum to k=2.
func TestTuneNaturalS4Scenario(t *testing.T) {
	freq := map[int64]int64{1: 9, 2: 64, 3: 68, 4: 21, 5: 47, 6: 62, 7: 38, 8: 97, 9: 31}
	if k := prefix.TuneNatural(freq, 0); k != 5 {
		t.Fatalf("TuneNatural(S4) = %d, want 5", k)
	}
	freq[3] = 70
	if k := prefix.TuneNatural(freq, 0); k != 2 {
		t.Fatalf("TuneNatural(S4, freq[3]=70) = %d, want 2", k)
	}
}

func TestTuneNaturalDeterministicTieBreak(t *testing.T) {
	freq := map[int64]int64{0: 1}
	k1 := prefix.TuneNatural(freq, 5)
	k2 := prefix.TuneNatural(freq, 5)
	if k1 != k2 {
		t.Fatalf("TuneNatural is not deterministic: %d vs %d", k1, k2)
	}
	if k1 != 2 {
		t.Fatalf("a single small value should favor the smallest k, got %d", k1)
	}
}

func TestTuneIntegerHandlesSign(t *testing.T) {
	freq := map[int64]int64{-1000: 5, 1000: 5, 0: 50}
	k := prefix.TuneInteger(freq, 0)
	if k < 2 {
		t.Fatalf("TuneInteger = %d, want >= 2", k)
	}
}
