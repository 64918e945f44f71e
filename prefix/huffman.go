package prefix

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/dvyukov-labs/bitpack"
)

// Huffman is a canonically laid out, exhaustive prefix-code table over
// a finite symbol domain (component E, spec §4.4): classical
// frequency-weighted tree construction, then symbols regrouped by code
// length and ordered within each length by a caller-supplied
// comparator. A table with exactly one symbol is a special case: its
// code length is zero, so Encode/Decode consume no bits for it.
type Huffman[S comparable] struct {
	symbols []S
	offsets []int // offsets[b]..offsets[b+1] is the block of symbols at length b
}

type huffmanNode[S any] struct {
	freq        int
	seq         int // construction order, the tie-break for equal frequencies
	leaf        bool
	sym         S
	left, right *huffmanNode[S]
}

type nodeHeap[S any] []*huffmanNode[S]

func (h nodeHeap[S]) Len() int { return len(h) }
func (h nodeHeap[S]) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap[S]) Push(x any)   { *h = append(*h, x.(*huffmanNode[S])) }
func (h *nodeHeap[S]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// BuildHuffman constructs a canonical Huffman table from freq. less
// must impose a strict total order over S; it both breaks ties at a
// shared code length and fixes construction order ahead of the tree
// merge, so two calls with the same freq and less produce a
// bit-identical table regardless of the map's iteration order (spec.md
// §8, determinism invariant).
func BuildHuffman[S comparable](freq map[S]int, less func(a, b S) bool) (*Huffman[S], error) {
	if len(freq) == 0 {
		return nil, invalidArg("huffman table: empty frequency map")
	}
	syms := make([]S, 0, len(freq))
	for s := range freq {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool { return less(syms[i], syms[j]) })

	if len(syms) == 1 {
		return finishTable(syms, nil)
	}

	h := make(nodeHeap[S], 0, len(syms))
	for i, s := range syms {
		h = append(h, &huffmanNode[S]{freq: freq[s], seq: i, leaf: true, sym: s})
	}
	heap.Init(&h)
	seq := len(syms)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*huffmanNode[S])
		b := heap.Pop(&h).(*huffmanNode[S])
		heap.Push(&h, &huffmanNode[S]{freq: a.freq + b.freq, seq: seq, left: a, right: b})
		seq++
	}
	root := h[0]

	depths := make(map[S]int, len(syms))
	var walk func(n *huffmanNode[S], depth int)
	walk = func(n *huffmanNode[S], depth int) {
		if n.leaf {
			depths[n.sym] = depth
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(root, 0)

	type pair struct {
		sym    S
		length int
	}
	pairs := make([]pair, len(syms))
	maxLen := 0
	for i, s := range syms {
		d := depths[s]
		pairs[i] = pair{s, d}
		if d > maxLen {
			maxLen = d
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].length != pairs[j].length {
			return pairs[i].length < pairs[j].length
		}
		return less(pairs[i].sym, pairs[j].sym)
	})

	counts := make([]int, maxLen+1)
	flat := make([]S, len(pairs))
	for i, p := range pairs {
		flat[i] = p.sym
		counts[p.length]++
	}

	return finishTable(flat, counts)
}

// finishTable validates the over-specified and exhaustive invariants
// and builds the offsets index shared by Count/Sym.
func finishTable[S comparable](symbols []S, counts []int) (*Huffman[S], error) {
	if len(symbols) == 1 {
		return &Huffman[S]{symbols: symbols, offsets: []int{0, 1}}, nil
	}
	if len(counts) > 0 && counts[0] > 0 {
		return nil, bitpack.ErrOverSpecified
	}
	offsets := make([]int, len(counts)+1)
	for b, c := range counts {
		offsets[b+1] = offsets[b] + c
	}
	if offsets[len(offsets)-1] != len(symbols) {
		return nil, invalidArg("huffman table: symbol count does not match length counts")
	}
	t := &Huffman[S]{symbols: symbols, offsets: offsets}
	if !Exhaustive[S](t, MaxLength[S](t, len(counts)-1)) {
		return nil, bitpack.ErrNonExhaustiveTable
	}
	return t, nil
}

// MaxLength returns the table's greatest populated code length.
func (t *Huffman[S]) MaxLength() int { return len(t.offsets) - 2 }

// Count implements Table[S].
func (t *Huffman[S]) Count(length int) int {
	if length < 0 || length+1 >= len(t.offsets) {
		return 0
	}
	return t.offsets[length+1] - t.offsets[length]
}

// Sym implements Table[S].
func (t *Huffman[S]) Sym(length, index int) S {
	return t.symbols[t.offsets[length]+index]
}

var _ Table[int] = (*Huffman[int])(nil)

// Encode writes sym's code (component F, spec §4.4): a linear scan in
// canonical order, incrementing an accumulator per symbol skipped and
// shifting it at each length boundary.
func (t *Huffman[S]) Encode(bw *bitpack.Writer, sym S) error {
	if len(t.symbols) == 1 {
		if t.symbols[0] != sym {
			return fmt.Errorf("%v: %w", sym, bitpack.ErrUnknownSymbol)
		}
		return nil
	}
	maxLen := t.MaxLength()
	acc := uint64(0)
	idx := 0
	for b := 0; b <= maxLen; b++ {
		count := t.Count(b)
		for i := 0; i < count; i++ {
			if t.symbols[idx] == sym {
				return bw.WriteBits(acc, uint(b))
			}
			acc++
			idx++
		}
		acc <<= 1
	}
	return fmt.Errorf("%v: %w", sym, bitpack.ErrUnknownSymbol)
}

// Decode reads a symbol previously written by Encode.
func (t *Huffman[S]) Decode(br *bitpack.Reader) (S, error) {
	var zero S
	if len(t.symbols) == 1 {
		return t.symbols[0], nil
	}
	maxLen := t.MaxLength()
	v, base := uint64(0), uint64(0)
	for b := 1; b <= maxLen; b++ {
		bit, err := br.ReadBit()
		if err != nil {
			return zero, err
		}
		v = (v << 1) | uint64(bit)
		base <<= 1
		count := uint64(t.Count(b))
		if v-base < count {
			return t.Sym(b, int(v-base)), nil
		}
		base += count
	}
	return zero, bitpack.ErrPrematureEnd
}

// WriteTable self-encodes t (spec §4.4): the count sequence via ranged
// codes over a shrinking headroom, then the symbol vector in table
// order. If diffWrite is non-nil, every symbol after the first within a
// length level is written as a delta against the previous symbol at
// that level instead of via writeSym.
func (t *Huffman[S]) WriteTable(bw *bitpack.Writer, writeSym func(*bitpack.Writer, S) error, diffWrite func(*bitpack.Writer, S, S) error) error {
	max := 1
	for b := 0; ; b++ {
		count := t.Count(b)
		rt, err := NewRanged(0, int64(max))
		if err != nil {
			return err
		}
		if err := rt.Encode(bw, int64(count)); err != nil {
			return err
		}
		max = (max - count) << 1
		if max == 0 {
			break
		}
	}
	for b := 0; b <= t.MaxLength(); b++ {
		count := t.Count(b)
		var prev S
		for i := 0; i < count; i++ {
			sym := t.Sym(b, i)
			var err error
			if i == 0 || diffWrite == nil {
				err = writeSym(bw, sym)
			} else {
				err = diffWrite(bw, prev, sym)
			}
			if err != nil {
				return err
			}
			prev = sym
		}
	}
	return nil
}

// ReadHuffmanTable reconstructs a table self-encoded by WriteTable.
func ReadHuffmanTable[S comparable](br *bitpack.Reader, readSym func(*bitpack.Reader) (S, error), diffRead func(*bitpack.Reader, S) (S, error)) (*Huffman[S], error) {
	var counts []int
	max := 1
	for {
		rt, err := NewRanged(0, int64(max))
		if err != nil {
			return nil, err
		}
		c, err := rt.Decode(br)
		if err != nil {
			return nil, err
		}
		counts = append(counts, int(c))
		max = (max - int(c)) << 1
		if max == 0 {
			break
		}
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	symbols := make([]S, 0, total)
	for _, count := range counts {
		var prev S
		for i := 0; i < count; i++ {
			var sym S
			var err error
			if i == 0 || diffRead == nil {
				sym, err = readSym(br)
			} else {
				sym, err = diffRead(br, prev)
			}
			if err != nil {
				return nil, err
			}
			symbols = append(symbols, sym)
			prev = sym
		}
	}
	return finishTable(symbols, counts)
}
