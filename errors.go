// Package bitpack implements bit-granular serialization of structured
// data: booleans, bounded integers, arbitrary-precision naturals and
// integers, Huffman-coded symbols, and ordered collections, packed into
// an octet stream with no element rounded up to a byte boundary.
package bitpack

import "errors"

// Sentinel errors for the failure kinds a stream or code table can
// report. Use errors.Is to test for a specific kind; wrapped errors
// carry detail via fmt.Errorf("%s: %w", detail, ErrX).
var (
	// ErrInvalidArgument is returned when a value lies outside a table's
	// domain, a parameter is malformed (k < 2, min > max), or a defined
	// table fails a construction invariant.
	ErrInvalidArgument = errors.New("bitpack: invalid argument")
	// ErrStreamClosed is returned by any operation on a stream after
	// Close has already been called on it.
	ErrStreamClosed = errors.New("bitpack: stream closed")
	// ErrPrematureEnd is returned by a reader that needs another bit but
	// finds the underlying byte source exhausted.
	ErrPrematureEnd = errors.New("bitpack: premature end of stream")
	// ErrUnknownSymbol is returned when asked to encode a symbol absent
	// from the table in use.
	ErrUnknownSymbol = errors.New("bitpack: unknown symbol")
	// ErrNonExhaustiveTable is returned when a defined Huffman table is
	// constructed from lengths whose Kraft sum does not reach 1.
	ErrNonExhaustiveTable = errors.New("bitpack: non-exhaustive table")
	// ErrOverSpecified is returned when a single-symbol table declares
	// more than one length-0 entry.
	ErrOverSpecified = errors.New("bitpack: over-specified table")
)
