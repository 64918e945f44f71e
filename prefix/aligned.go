package prefix

import (
	"math/big"

	"github.com/dvyukov-labs/bitpack"
)

var bigOne = big.NewInt(1)

// writeBigBits writes v as nbits bits, most significant bit first. v
// must be representable in nbits bits.
func writeBigBits(bw *bitpack.Writer, v *big.Int, nbits int) error {
	for i := nbits - 1; i >= 0; i-- {
		if err := bw.WriteBit(uint(v.Bit(i))); err != nil {
			return err
		}
	}
	return nil
}

func readBigBits(br *bitpack.Reader, nbits int) (*big.Int, error) {
	v := new(big.Int)
	for i := 0; i < nbits; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return nil, err
		}
		v.Lsh(v, 1)
		if bit != 0 {
			v.SetBit(v, 0, 1)
		}
	}
	return v, nil
}

// Natural is the bit-aligned prefix code for non-negative integers,
// parameterized by an alignment K (component C, spec §4.3). Level m has
// bit length m*K and holds 2^(m*(K-1)) values; the code is a unary
// prefix of m-1 ones and a terminating zero, followed by the level's
// payload. Levels are unbounded, so Count/Sym are not implemented here
// (see Table's doc comment) — Encode/Decode compute the level directly.
type Natural struct {
	K int
}

// NewNatural returns the natural code with alignment k.
func NewNatural(k int) (*Natural, error) {
	if k < 2 {
		return nil, invalidArg("natural code: k must be at least 2")
	}
	return &Natural{K: k}, nil
}

func (c *Natural) span(m int) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(m*(c.K-1)))
}

// Encode writes v, which must be non-negative.
func (c *Natural) Encode(bw *bitpack.Writer, v *big.Int) error {
	if v.Sign() < 0 {
		return invalidArg("natural code: value must be non-negative")
	}
	m := 1
	base := new(big.Int)
	span := c.span(1)
	for {
		next := new(big.Int).Add(base, span)
		if v.Cmp(next) < 0 {
			break
		}
		base = next
		m++
		span = c.span(m)
	}
	for i := 1; i < m; i++ {
		if err := bw.WriteBit(1); err != nil {
			return err
		}
	}
	if err := bw.WriteBit(0); err != nil {
		return err
	}
	offset := new(big.Int).Sub(v, base)
	return writeBigBits(bw, offset, m*(c.K-1))
}

// Decode reads a value previously written by Encode.
func (c *Natural) Decode(br *bitpack.Reader) (*big.Int, error) {
	m := 1
	for {
		b, err := br.ReadBit()
		if err != nil {
			return nil, err
		}
		if b == 0 {
			break
		}
		m++
	}
	base := new(big.Int)
	for i := 1; i < m; i++ {
		base.Add(base, c.span(i))
	}
	offset, err := readBigBits(br, m*(c.K-1))
	if err != nil {
		return nil, err
	}
	return base.Add(base, offset), nil
}

// Integer is the bit-aligned prefix code for signed integers, sharing
// C's level ladder but splitting each level's span evenly between a
// non-negative and a negative half (component D, spec §4.3).
type Integer struct {
	K int
}

// NewInteger returns the integer code with alignment k.
func NewInteger(k int) (*Integer, error) {
	if k < 2 {
		return nil, invalidArg("integer code: k must be at least 2")
	}
	return &Integer{K: k}, nil
}

// half returns s(m)/2, the size of one sign's half of level m.
func (c *Integer) half(m int) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(m*(c.K-1)-1))
}

func (c *Integer) posBase(m int) *big.Int {
	sum := new(big.Int)
	for j := 1; j < m; j++ {
		sum.Add(sum, c.half(j))
	}
	return sum
}

func (c *Integer) negBase(m int) *big.Int {
	sum := new(big.Int)
	for j := 1; j <= m; j++ {
		sum.Add(sum, c.half(j))
	}
	return sum.Neg(sum)
}

// Encode writes v, which may be of either sign.
func (c *Integer) Encode(bw *bitpack.Writer, v *big.Int) error {
	var m int
	var idx *big.Int
	if v.Sign() >= 0 {
		base := new(big.Int)
		m = 1
		h := c.half(1)
		for {
			next := new(big.Int).Add(base, h)
			if v.Cmp(next) < 0 {
				break
			}
			base = next
			m++
			h = c.half(m)
		}
		idx = new(big.Int).Sub(v, base)
	} else {
		base := new(big.Int).Neg(c.half(1))
		m = 1
		h := c.half(1)
		for v.Cmp(base) < 0 {
			m++
			h = c.half(m)
			base = new(big.Int).Sub(base, h)
		}
		idx = new(big.Int).Sub(v, base)
		idx.Add(idx, h)
	}
	for i := 1; i < m; i++ {
		if err := bw.WriteBit(1); err != nil {
			return err
		}
	}
	if err := bw.WriteBit(0); err != nil {
		return err
	}
	return writeBigBits(bw, idx, m*(c.K-1))
}

// Decode reads a value previously written by Encode.
func (c *Integer) Decode(br *bitpack.Reader) (*big.Int, error) {
	m := 1
	for {
		b, err := br.ReadBit()
		if err != nil {
			return nil, err
		}
		if b == 0 {
			break
		}
		m++
	}
	h := c.half(m)
	idx, err := readBigBits(br, m*(c.K-1))
	if err != nil {
		return nil, err
	}
	if idx.Cmp(h) < 0 {
		base := c.posBase(m)
		return base.Add(base, idx), nil
	}
	base := c.negBase(m)
	off := new(big.Int).Sub(idx, h)
	return base.Add(base, off), nil
}
