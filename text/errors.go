package text

import "errors"

// Errors returned by iterator comparisons.
var (
	// ErrIncompatibleIterators indicates a comparison between character
	// iterators of different concrete types.
	ErrIncompatibleIterators = errors.New("incompatible character iterators")

	// ErrNoSuchElement indicates an exhausted iterator or navigation
	// past the last element.
	ErrNoSuchElement = errors.New("no such element")
)
