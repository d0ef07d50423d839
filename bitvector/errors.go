// Package bitvector: sentinel error set.
// This file defines ONLY package-level sentinel errors. All exported
// operations MUST return these sentinels (never an ad-hoc fmt.Errorf) so
// that callers can match with errors.Is. Do not wrap with fmt.Errorf where
// a sentinel suffices.
package bitvector

import "errors"

var (
	// ErrSizeMismatch is returned by the aligned (non-safe) logical ops when
	// the operands do not share the same bit length. Callers that need to
	// combine vectors of different lengths must use the *Safe variants.
	ErrSizeMismatch = errors.New("bitvector: size mismatch")

	// ErrNegativeLength is returned when a negative bit count is requested
	// from New or Resize.
	ErrNegativeLength = errors.New("bitvector: negative length")

	// ErrIndexOutOfRange is returned by Set/Get when an index falls outside
	// [0, Len()), and by FirstSet when its start index is negative.
	ErrIndexOutOfRange = errors.New("bitvector: index out of range")

	// ErrTruncatedData is returned by UnmarshalBinary when the supplied byte
	// slice is shorter than the header, or its length does not match the
	// word count the header's bit length implies.
	ErrTruncatedData = errors.New("bitvector: truncated binary data")
)
