package collection_test

import (
	"bytes"
	"testing"

	"github.com/dvyukov-labs/bitpack"
	"github.com/dvyukov-labs/bitpack/collection"
)

func TestNaturalLengthRoundTrip(t *testing.T) {
	lenc, err := collection.NewNaturalLength(4)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range []int{0, 1, 7, 8, 300} {
		var buf bytes.Buffer
		bw := bitpack.NewWriter(&buf)
		if err := lenc.EncodeLength(bw, n); err != nil {
			t.Fatalf("EncodeLength(%d): %v", n, err)
		}
		bw.Close()
		br := bitpack.NewReader(&buf)
		got, err := lenc.DecodeLength(br)
		if err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Fatalf("DecodeLength = %d, want %d", got, n)
		}
	}
}

func TestRangedLengthRoundTrip(t *testing.T) {
	lenc, err := collection.NewRangedLength(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	for n := 0; n <= 10; n++ {
		var buf bytes.Buffer
		bw := bitpack.NewWriter(&buf)
		if err := lenc.EncodeLength(bw, n); err != nil {
			t.Fatal(err)
		}
		bw.Close()
		br := bitpack.NewReader(&buf)
		got, err := lenc.DecodeLength(br)
		if err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Fatalf("DecodeLength = %d, want %d", got, n)
		}
	}
}

func TestNaturalLengthRejectsNegative(t *testing.T) {
	lenc, _ := collection.NewNaturalLength(4)
	var buf bytes.Buffer
	bw := bitpack.NewWriter(&buf)
	if err := lenc.EncodeLength(bw, -1); err == nil {
		t.Fatal("expected error encoding a negative length")
	}
}
