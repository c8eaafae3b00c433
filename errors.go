package prefixcode

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by every error that ReadPayload and UnmarshalBinary
// return for malformed input.
var ErrCorrupt = errors.New("corrupt payload")

// EncodingError is returned when a sequence contains a Symbol that has no
// Code in the CodeTable it is being encoded with.
type EncodingError struct {
	// Symbol is the offending symbol.
	Symbol Symbol

	// Index is its position in the input sequence.
	Index int
}

func (err *EncodingError) Error() string {
	return fmt.Sprintf("cannot encode symbol %d at index %d: symbol is not in the code table", err.Symbol, err.Index)
}

// DecodingError is returned when an encoded bit sequence cannot be inverted
// with the given CodeTable.
type DecodingError struct {
	// Offset is the bit offset at which the failing code begins.
	Offset uint64

	// Pending holds the bits read since Offset.
	Pending Code

	// Reason briefly describes the failure.
	Reason string
}

func (err *DecodingError) Error() string {
	return fmt.Sprintf("cannot decode bits at offset %d (pending %s): %s", err.Offset, err.Pending, err.Reason)
}

const (
	reasonTruncated = "input ends in the middle of a code"
	reasonNoMatch   = "no code in the table matches"
)

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, args...))
}

var (
	_ error = (*EncodingError)(nil)
	_ error = (*DecodingError)(nil)
)
