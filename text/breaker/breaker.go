package breaker

import "github.com/exeal/ascent/text"

// BoundaryIterator is the shape shared by the three iterators.
type BoundaryIterator interface {
	// Next advances the wrapped iterator by n boundaries. If fewer
	// exist the iterator parks at the end and text.ErrNoSuchElement is
	// returned.
	Next(n int) error
	// Previous retreats by n boundaries under the same contract.
	Previous(n int) error
	// IsBoundary reports whether the wrapped iterator sits on a
	// boundary.
	IsBoundary() bool
	// Base returns the wrapped character iterator.
	Base() text.CharacterIterator
}

// atStart reports whether it cannot retreat.
func atStart(it text.CharacterIterator) bool {
	c := it.Clone()
	before := c.Offset()
	c.Previous()
	return c.Offset() == before
}

// atEnd reports whether it is past the last character.
func atEnd(it text.CharacterIterator) bool {
	return it.Current() == text.Done
}

// previousCP returns the scalar before it, or text.Done at the start.
func previousCP(it text.CharacterIterator) text.CodePoint {
	c := it.Clone()
	before := c.Offset()
	c.Previous()
	if c.Offset() == before {
		return text.Done
	}
	return c.Current()
}

// advance moves base forward by n boundaries of isBoundary. Running off
// the end without finding one (a masked iterator may reject the
// end-of-text position) parks the iterator there and reports
// text.ErrNoSuchElement.
func advance(base text.CharacterIterator, isBoundary func() bool, n int) error {
	for ; n > 0; n-- {
		if atEnd(base) {
			return text.ErrNoSuchElement
		}
		base.Next()
		for !atEnd(base) && !isBoundary() {
			base.Next()
		}
		if atEnd(base) && !isBoundary() {
			return text.ErrNoSuchElement
		}
	}
	return nil
}

// retreat moves base backward by n boundaries of isBoundary.
func retreat(base text.CharacterIterator, isBoundary func() bool, n int) error {
	for ; n > 0; n-- {
		if atStart(base) {
			return text.ErrNoSuchElement
		}
		base.Previous()
		for !atStart(base) && !isBoundary() {
			base.Previous()
		}
		if atStart(base) && !isBoundary() {
			return text.ErrNoSuchElement
		}
	}
	return nil
}
