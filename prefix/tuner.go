package prefix

import "math/bits"

// TuneNatural searches k in [2, kMax] for the alignment minimizing the
// total bit cost of encoding freq with the Natural code (component I,
// spec §4.3). kMax <= 0 selects ceil(log2(max|v|))+1, the spec's
// default bound. Ties favor the smaller k.
func TuneNatural(freq map[int64]int64, kMax int) int {
	var maxV int64
	for v := range freq {
		if v > maxV {
			maxV = v
		}
	}
	if kMax <= 0 {
		kMax = kMaxFor(maxV)
	}
	bestK := 2
	var bestCost int64 = -1
	for k := 2; k <= kMax; k++ {
		var cost int64
		for v, f := range freq {
			cost += f * int64(k) * int64(naturalLevel(v, k))
		}
		if bestCost < 0 || cost < bestCost {
			bestCost, bestK = cost, k
		}
	}
	return bestK
}

// TuneInteger is TuneNatural's counterpart for the signed Integer code.
func TuneInteger(freq map[int64]int64, kMax int) int {
	var maxAbs int64
	for v := range freq {
		a := v
		if a < 0 {
			a = -a
		}
		if a > maxAbs {
			maxAbs = a
		}
	}
	if kMax <= 0 {
		kMax = kMaxFor(maxAbs)
	}
	bestK := 2
	var bestCost int64 = -1
	for k := 2; k <= kMax; k++ {
		var cost int64
		for v, f := range freq {
			cost += f * int64(k) * int64(integerLevel(v, k))
		}
		if bestCost < 0 || cost < bestCost {
			bestCost, bestK = cost, k
		}
	}
	return bestK
}

// kMaxFor returns spec §4.3's bound ceil(log2(maxV))+1: beyond this k,
// increasing k only adds payload bits without reducing the level index.
func kMaxFor(maxV int64) int {
	if maxV < 1 {
		maxV = 1
	}
	return bits.Len64(uint64(maxV-1)) + 1
}

// naturalLevel returns the level m a non-negative v would occupy under
// the Natural code at alignment k, without constructing a big.Int.
func naturalLevel(v int64, k int) int {
	m := 1
	var base int64
	for {
		span := int64(1) << uint(m*(k-1))
		if v < base+span {
			return m
		}
		base += span
		m++
	}
}

// integerLevel is naturalLevel's counterpart for the signed Integer
// code: level m holds 2^(m*(k-1)) values split evenly by sign.
func integerLevel(v int64, k int) int {
	if v >= 0 {
		m := 1
		var base int64
		for {
			h := int64(1) << uint(m*(k-1)-1)
			if v < base+h {
				return m
			}
			base += h
			m++
		}
	}
	m := 1
	base := -(int64(1) << uint(k-1-1))
	for v < base {
		m++
		base -= int64(1) << uint(m*(k-1)-1)
	}
	return m
}
