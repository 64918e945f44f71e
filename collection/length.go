package collection

import (
	"math/big"

	"github.com/dvyukov-labs/bitpack"
	"github.com/dvyukov-labs/bitpack/prefix"
)

// NaturalLength is a LengthCoder backed by the bit-aligned natural code
// at a fixed alignment — a good default when collection lengths are
// unbounded or span several orders of magnitude.
type NaturalLength struct {
	code *prefix.Natural
}

// NewNaturalLength returns a NaturalLength at alignment k.
func NewNaturalLength(k int) (*NaturalLength, error) {
	c, err := prefix.NewNatural(k)
	if err != nil {
		return nil, err
	}
	return &NaturalLength{code: c}, nil
}

func (n *NaturalLength) EncodeLength(bw *bitpack.Writer, v int) error {
	if v < 0 {
		return invalidArg("length: negative value")
	}
	return n.code.Encode(bw, big.NewInt(int64(v)))
}

func (n *NaturalLength) DecodeLength(br *bitpack.Reader) (int, error) {
	v, err := n.code.Decode(br)
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// RangedLength is a LengthCoder backed by the ranged-integer code — the
// right choice when a collection's length is known to fall in a
// bounded interval.
type RangedLength struct {
	code *prefix.Ranged
}

// NewRangedLength returns a RangedLength over [min, max].
func NewRangedLength(min, max int) (*RangedLength, error) {
	c, err := prefix.NewRanged(int64(min), int64(max))
	if err != nil {
		return nil, err
	}
	return &RangedLength{code: c}, nil
}

func (r *RangedLength) EncodeLength(bw *bitpack.Writer, v int) error {
	return r.code.Encode(bw, int64(v))
}

func (r *RangedLength) DecodeLength(br *bitpack.Reader) (int, error) {
	v, err := r.code.Decode(br)
	return int(v), err
}

var (
	_ LengthCoder = (*NaturalLength)(nil)
	_ LengthCoder = (*RangedLength)(nil)
)
