// Package prefix implements the parametric and defined prefix-code
// table family: the ranged-integer code, the bit-aligned natural and
// integer codes, and the defined (Huffman) table, plus the bit-align
// tuner that picks a parameter k for the bit-aligned codes.
package prefix

import (
	"fmt"

	"github.com/dvyukov-labs/bitpack"
)

// Table is the minimal characterization a prefix code needs (spec §3):
// how many symbols sit at a given bit length, and which symbol occupies
// a given position within that length's block. Every concrete code
// table in this package — ranged, defined Huffman — is a tagged case of
// this single interface rather than a node in a class hierarchy; the
// bit-aligned natural and integer codes (unbounded domains) implement
// the same arithmetic directly instead of materializing count/sym,
// since their level sizes can exceed what an int can hold.
type Table[S any] interface {
	// Count reports how many symbols have the given bit length.
	Count(length int) int
	// Sym returns the index-th symbol (0-based) at the given bit
	// length, in canonical order.
	Sym(length, index int) S
}

// MaxLength returns the greatest length at which t has any symbols, or
// -1 if t is empty.
func MaxLength[S any](t Table[S], limit int) int {
	max := -1
	for b := 0; b <= limit; b++ {
		if t.Count(b) > 0 {
			max = b
		}
	}
	return max
}

// Exhaustive reports whether t's Kraft sum over lengths [0, maxLength]
// equals 2^maxLength, i.e. the code tiles the full binary tree of depth
// maxLength (spec §3).
func Exhaustive[S any](t Table[S], maxLength int) bool {
	if maxLength < 0 {
		return false
	}
	var sum uint64
	for b := 0; b <= maxLength; b++ {
		c := t.Count(b)
		if c == 0 {
			continue
		}
		sum += uint64(c) << uint(maxLength-b)
	}
	return sum == uint64(1)<<uint(maxLength)
}

func invalidArg(detail string) error {
	return fmt.Errorf("%s: %w", detail, bitpack.ErrInvalidArgument)
}
