// Package collection implements the length-prefixed collection codecs
// built on top of bitpack/prefix: lists, maps, and sets, plus a
// specialized codec for sets of ranged integers (components G and H,
// spec.md §4.6-4.7).
package collection

import (
	"fmt"
	"sort"

	"github.com/dvyukov-labs/bitpack"
)

// LengthCoder encodes and decodes a collection's element count. Callers
// supply whichever code fits the expected length distribution — a
// NaturalLength, a RangedLength, or a Huffman table over plausible
// lengths — so the same list/map/set codec serves every case (spec §9,
// "length encoders as strategy objects").
type LengthCoder interface {
	EncodeLength(bw *bitpack.Writer, n int) error
	DecodeLength(br *bitpack.Reader) (int, error)
}

// WriteList writes list as a length prefix followed by each element in
// order (component G).
func WriteList[T any](bw *bitpack.Writer, lenc LengthCoder, writeElem func(*bitpack.Writer, T) error, list []T) error {
	if err := lenc.EncodeLength(bw, len(list)); err != nil {
		return err
	}
	for _, v := range list {
		if err := writeElem(bw, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadList reads a list previously written by WriteList.
func ReadList[T any](br *bitpack.Reader, lenc LengthCoder, readElem func(*bitpack.Reader) (T, error)) ([]T, error) {
	n, err := lenc.DecodeLength(br)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, invalidArg("list: negative length")
	}
	list := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := readElem(br)
		if err != nil {
			return nil, err
		}
		list[i] = v
	}
	return list, nil
}

// WriteMap writes m's entries sorted by less, a length prefix followed
// by (key, value) pairs. The source map is copied into a sorted buffer
// first and never iterated directly, so encoding is independent of
// Go's randomized map iteration order (spec §9). If diffWriteKey is
// non-nil, every key after the first is written as a delta against the
// previous key instead of via writeKey (component G).
func WriteMap[K comparable, V any](bw *bitpack.Writer, lenc LengthCoder, writeKey func(*bitpack.Writer, K) error, diffWriteKey func(bw *bitpack.Writer, prev, cur K) error, less func(a, b K) bool, writeVal func(*bitpack.Writer, V) error, m map[K]V) error {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })

	if err := lenc.EncodeLength(bw, len(keys)); err != nil {
		return err
	}
	var prev K
	for i, k := range keys {
		var err error
		if i == 0 || diffWriteKey == nil {
			err = writeKey(bw, k)
		} else {
			err = diffWriteKey(bw, prev, k)
		}
		if err != nil {
			return err
		}
		if err := writeVal(bw, m[k]); err != nil {
			return err
		}
		prev = k
	}
	return nil
}

// ReadMap reads a map previously written by WriteMap.
func ReadMap[K comparable, V any](br *bitpack.Reader, lenc LengthCoder, readKey func(*bitpack.Reader) (K, error), diffReadKey func(br *bitpack.Reader, prev K) (K, error), readVal func(*bitpack.Reader) (V, error)) (map[K]V, error) {
	n, err := lenc.DecodeLength(br)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, invalidArg("map: negative length")
	}
	m := make(map[K]V, n)
	var prev K
	for i := 0; i < n; i++ {
		var k K
		var err error
		if i == 0 || diffReadKey == nil {
			k, err = readKey(br)
		} else {
			k, err = diffReadKey(br, prev)
		}
		if err != nil {
			return nil, err
		}
		v, err := readVal(br)
		if err != nil {
			return nil, err
		}
		m[k] = v
		prev = k
	}
	return m, nil
}

// WriteSet writes set (represented as a map to a unit value) using
// WriteMap with a no-op value codec (spec §4.6: "a set is a map with a
// unit value type").
func WriteSet[T comparable](bw *bitpack.Writer, lenc LengthCoder, writeElem func(*bitpack.Writer, T) error, diffWriteElem func(bw *bitpack.Writer, prev, cur T) error, less func(a, b T) bool, set map[T]struct{}) error {
	return WriteMap(bw, lenc, writeElem, diffWriteElem, less, writeUnit, set)
}

// ReadSet reads a set previously written by WriteSet.
func ReadSet[T comparable](br *bitpack.Reader, lenc LengthCoder, readElem func(*bitpack.Reader) (T, error), diffReadElem func(br *bitpack.Reader, prev T) (T, error)) (map[T]struct{}, error) {
	return ReadMap(br, lenc, readElem, diffReadElem, readUnit)
}

func writeUnit(_ *bitpack.Writer, _ struct{}) error { return nil }
func readUnit(_ *bitpack.Reader) (struct{}, error)  { return struct{}{}, nil }

func invalidArg(detail string) error {
	return fmt.Errorf("%s: %w", detail, bitpack.ErrInvalidArgument)
}
