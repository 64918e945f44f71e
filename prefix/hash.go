package prefix

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether t and other lay out the same symbols at the
// same lengths in the same order — the comparison a cache keyed on
// table identity needs before trusting a hash match.
func (t *Huffman[S]) Equal(other *Huffman[S]) bool {
	if len(t.offsets) != len(other.offsets) || len(t.symbols) != len(other.symbols) {
		return false
	}
	for i := range t.offsets {
		if t.offsets[i] != other.offsets[i] {
			return false
		}
	}
	for i := range t.symbols {
		if t.symbols[i] != other.symbols[i] {
			return false
		}
	}
	return true
}

// Hash derives a content hash of the table's symbol vector and length
// boundaries, for indexing tables by structural identity (e.g. to skip
// re-sending an unchanged table across a stream's successive frames).
func (t *Huffman[S]) Hash() uint64 {
	d := xxhash.New()
	for _, o := range t.offsets {
		fmt.Fprintf(d, "%d,", o)
	}
	for _, s := range t.symbols {
		fmt.Fprintf(d, "%v|", s)
	}
	return d.Sum64()
}
