package prefix

import (
	"math/bits"

	"github.com/dvyukov-labs/bitpack"
)

// Ranged is the uniform prefix code over a closed integer interval
// [Min, Max] (component B, spec §4.2): a near-optimal encoding for a
// value known to lie in a bounded range, using either L-1 or L bits
// per value where L = ceil(log2(Max-Min+1)).
type Ranged struct {
	Min, Max int64
	n        uint64
	length   int // L
	short    uint64
}

// NewRanged returns the ranged code over [min, max].
func NewRanged(min, max int64) (*Ranged, error) {
	if min > max {
		return nil, invalidArg("ranged code: min greater than max")
	}
	n := uint64(max-min) + 1
	l := 0
	if n > 1 {
		l = bits.Len64(n - 1)
	}
	short := uint64(0)
	if l > 0 {
		short = (uint64(1) << uint(l)) - n
	}
	t := &Ranged{Min: min, Max: max, n: n, length: l, short: short}
	if !Exhaustive[int64](t, MaxLength[int64](t, l)) {
		return nil, invalidArg("ranged code: constructed table is not exhaustive")
	}
	return t, nil
}

// Encode writes v, which must lie in [t.Min, t.Max].
func (t *Ranged) Encode(bw *bitpack.Writer, v int64) error {
	if v < t.Min || v > t.Max {
		return invalidArg("ranged code: value out of range")
	}
	if t.n == 1 {
		return nil
	}
	u := uint64(v - t.Min)
	if u < t.short {
		return bw.WriteBits(u, uint(t.length-1))
	}
	return bw.WriteBits(u+t.short, uint(t.length))
}

// Decode reads a value previously written by Encode.
func (t *Ranged) Decode(br *bitpack.Reader) (int64, error) {
	if t.n == 1 {
		return t.Min, nil
	}
	r, err := br.ReadBits(uint(t.length - 1))
	if err != nil {
		return 0, err
	}
	if t.short > 0 && r >= t.short {
		b, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		r = (r << 1) | uint64(b)
		return t.Min + int64(r-t.short), nil
	}
	return t.Min + int64(r), nil
}

// Count implements Table[int64]: for a singleton range (n==1) the one
// symbol sits at length 0; otherwise length L-1 holds t.short symbols
// and length L holds the remaining n-short.
func (t *Ranged) Count(length int) int {
	if t.n == 1 {
		if length == 0 {
			return 1
		}
		return 0
	}
	switch length {
	case t.length - 1:
		return int(t.short)
	case t.length:
		return int(t.n - t.short)
	default:
		return 0
	}
}

// Sym implements Table[int64].
func (t *Ranged) Sym(length, index int) int64 {
	if t.n == 1 {
		return t.Min
	}
	if length == t.length-1 {
		return t.Min + int64(index)
	}
	return t.Min + int64(t.short) + int64(index)
}

var _ Table[int64] = (*Ranged)(nil)
