package utf

import "errors"

// Errors returned by codec operations.
var (
	// ErrInvalidScalarValue indicates an attempt to encode a surrogate
	// or a value beyond U+10FFFF.
	ErrInvalidScalarValue = errors.New("invalid scalar value")

	// ErrMalformedInput indicates an ill-formed code unit sequence.
	ErrMalformedInput = errors.New("malformed input")

	// ErrShortBuffer indicates the destination cannot hold the encoded
	// sequence.
	ErrShortBuffer = errors.New("short buffer")
)
