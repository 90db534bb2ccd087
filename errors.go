package algospectral

import "errors"

// Sentinel errors returned by transform operations. All validation happens
// before any element is written; a failing call leaves its buffers in their
// pre-call state.
var (
	// ErrInvalidLength is returned when a transform length is not a positive
	// power of 2, or when a buffer is nil or empty where a created buffer is
	// required.
	ErrInvalidLength = errors.New("algospectral: invalid transform length")

	// ErrDimensionMismatch is returned when width*height does not equal the
	// buffer length, or when two buffers that must have equal lengths do not.
	ErrDimensionMismatch = errors.New("algospectral: dimension mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid for the
	// given data layout (stride < 1 or one that overflows index computation).
	ErrInvalidStride = errors.New("algospectral: invalid stride")
)
