package collection

import (
	"github.com/dvyukov-labs/bitpack"
	"github.com/dvyukov-labs/bitpack/prefix"
)

// WriteRangedIntegerSet writes elems — distinct integers from [min,
// max] given in ascending order — as a length prefix followed by one
// ranged code per element, each narrowed by how many elements remain
// and what the previous element was (component H, spec §4.7). This
// beats encoding each element independently over the full [min, max]
// range: the i-th element's range tightens on both ends as the
// position and remaining count rule out impossible values.
func WriteRangedIntegerSet(bw *bitpack.Writer, lenc LengthCoder, min, max int64, elems []int64) error {
	n := len(elems)
	if err := lenc.EncodeLength(bw, n); err != nil {
		return err
	}
	p := min - 1
	for i, v := range elems {
		lo := p + 1
		hi := max - int64(n-1-i)
		rt, err := prefix.NewRanged(lo, hi)
		if err != nil {
			return err
		}
		if err := rt.Encode(bw, v); err != nil {
			return err
		}
		p = v
	}
	return nil
}

// ReadRangedIntegerSet reads a set previously written by
// WriteRangedIntegerSet.
func ReadRangedIntegerSet(br *bitpack.Reader, lenc LengthCoder, min, max int64) ([]int64, error) {
	n, err := lenc.DecodeLength(br)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, invalidArg("ranged set: negative length")
	}
	elems := make([]int64, n)
	p := min - 1
	for i := 0; i < n; i++ {
		lo := p + 1
		hi := max - int64(n-1-i)
		rt, err := prefix.NewRanged(lo, hi)
		if err != nil {
			return nil, err
		}
		v, err := rt.Decode(br)
		if err != nil {
			return nil, err
		}
		elems[i] = v
		p = v
	}
	return elems, nil
}
