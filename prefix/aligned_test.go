package prefix_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/dvyukov-labs/bitpack"
	"github.com/dvyukov-labs/bitpack/prefix"
)

func TestNaturalRoundTrip(t *testing.T) {
	for _, k := range []int{2, 3, 4, 8} {
		nat, err := prefix.NewNatural(k)
		if err != nil {
			t.Fatalf("NewNatural(%d): %v", k, err)
		}
		for _, v := range []int64{0, 1, 2, 3, 7, 8, 255, 1024, 1 << 20, 2113664} {
			var buf bytes.Buffer
			bw := bitpack.NewWriter(&buf)
			want := big.NewInt(v)
			if err := nat.Encode(bw, want); err != nil {
				t.Fatalf("k=%d Encode(%d): %v", k, v, err)
			}
			bw.Close()
			br := bitpack.NewReader(&buf)
			got, err := nat.Decode(br)
			if err != nil {
				t.Fatalf("k=%d Decode: %v", k, err)
			}
			if got.Cmp(want) != 0 {
				t.Fatalf("k=%d round trip: got %s, want %s", k, got, want)
			}
		}
	}
}

func TestNaturalRejectsNegative(t *testing.T) {
	nat, _ := prefix.NewNatural(4)
	var buf bytes.Buffer
	bw := bitpack.NewWriter(&buf)
	if err := nat.Encode(bw, big.NewInt(-1)); err == nil {
		t.Fatal("expected error encoding a negative value with Natural")
	}
}

func TestNaturalRejectsSmallK(t *testing.T) {
	if _, err := prefix.NewNatural(1); err == nil {
		t.Fatal("expected error for k < 2")
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	for _, k := range []int{2, 3, 4, 8} {
		in, err := prefix.NewInteger(k)
		if err != nil {
			t.Fatalf("NewInteger(%d): %v", k, err)
		}
		for _, v := range []int64{0, 1, -1, 2, -2, 3, -3, 35, -36, 1000, -1000} {
			var buf bytes.Buffer
			bw := bitpack.NewWriter(&buf)
			want := big.NewInt(v)
			if err := in.Encode(bw, want); err != nil {
				t.Fatalf("k=%d Encode(%d): %v", k, v, err)
			}
			bw.Close()
			br := bitpack.NewReader(&buf)
			got, err := in.Decode(br)
			if err != nil {
				t.Fatalf("k=%d Decode: %v", k, err)
			}
			if got.Cmp(want) != 0 {
				t.Fatalf("k=%d round trip: got %s, want %s", k, got, want)
			}
		}
	}
}

// With k=4, level 1 holds {0,1,2,3,-4,-3,-2,-1} and level 2 holds
// {4..35, -36..-5}; this pins down the split-base recurrence at the
// level boundary.
func TestIntegerLevelBoundariesK4(t *testing.T) {
	in, _ := prefix.NewInteger(4)
	level1 := []int64{0, 1, 2, 3, -4, -3, -2, -1}
	level2Pos := []int64{4, 35}
	level2Neg := []int64{-36, -5}

	for _, v := range level1 {
		var buf bytes.Buffer
		bw := bitpack.NewWriter(&buf)
		in.Encode(bw, big.NewInt(v))
		bw.Close()
		br := bitpack.NewReader(bytes.NewReader(buf.Bytes()))
		bit, err := br.ReadBit()
		if err != nil || bit != 0 {
			t.Fatalf("level-1 value %d should have a 1-level (single 0) unary prefix", v)
		}
	}
	for _, v := range []int64{level2Pos[0], level2Pos[1], level2Neg[0], level2Neg[1]} {
		var buf bytes.Buffer
		bw := bitpack.NewWriter(&buf)
		in.Encode(bw, big.NewInt(v))
		bw.Close()
		br := bitpack.NewReader(bytes.NewReader(buf.Bytes()))
		first, _ := br.ReadBit()
		second, _ := br.ReadBit()
		if first != 1 || second != 0 {
			t.Fatalf("level-2 value %d should have a 2-level unary prefix (10), got %d%d", v, first, second)
		}
	}
}
