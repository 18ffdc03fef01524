package kernel

import (
	"errors"

	"github.com/exeal/ascent/text"
)

// Errors returned by document operations.
var (
	// ErrDocumentDisposed indicates an operation on a document that has
	// been disposed.
	ErrDocumentDisposed = errors.New("document disposed")

	// ErrReadOnly indicates a write attempted on a read-only document.
	ErrReadOnly = errors.New("document is read-only")

	// ErrDocumentAccessViolation indicates a position outside the
	// accessible (narrowed) region.
	ErrDocumentAccessViolation = errors.New("position outside accessible region")

	// ErrBadPosition indicates a position outside the raw document.
	ErrBadPosition = errors.New("position outside document")

	// ErrChangeRejected indicates the input collaborator vetoed the
	// change, or a reentrant replace was attempted from a listener.
	ErrChangeRejected = errors.New("change rejected")

	// ErrNoSuchElement indicates an exhausted iterator or navigation
	// past the last element.
	ErrNoSuchElement = text.ErrNoSuchElement

	// ErrPointVetoed indicates a point's move hook refused the
	// destination.
	ErrPointVetoed = errors.New("point move vetoed")
)
