package breaker

import "github.com/exeal/ascent/text"

// GraphemeIterator iterates grapheme cluster boundaries (rules GB1..GB10).
type GraphemeIterator struct {
	base text.CharacterIterator
}

// NewGraphemeIterator wraps it.
func NewGraphemeIterator(it text.CharacterIterator) *GraphemeIterator {
	return &GraphemeIterator{base: it}
}

// Base returns the wrapped character iterator.
func (g *GraphemeIterator) Base() text.CharacterIterator { return g.base }

// IsBoundary reports whether the wrapped iterator sits on a grapheme
// cluster boundary.
func (g *GraphemeIterator) IsBoundary() bool {
	if atStart(g.base) || atEnd(g.base) {
		return true
	}
	before := graphemeClassOf(previousCP(g.base))
	after := graphemeClassOf(g.base.Current())
	return graphemeBoundary(before, after)
}

// Next advances by n grapheme cluster boundaries.
func (g *GraphemeIterator) Next(n int) error {
	return advance(g.base, g.IsBoundary, n)
}

// Previous retreats by n grapheme cluster boundaries.
func (g *GraphemeIterator) Previous(n int) error {
	return retreat(g.base, g.IsBoundary, n)
}

// graphemeBoundary decides a break between two adjacent classes. The
// grapheme rules are strictly pairwise, so no further context is needed.
func graphemeBoundary(before, after graphemeClass) bool {
	switch {
	case before == gcbCR && after == gcbLF: // GB3
		return false
	case before == gcbControl || before == gcbCR || before == gcbLF: // GB4
		return true
	case after == gcbControl || after == gcbCR || after == gcbLF: // GB5
		return true
	case before == gcbL &&
		(after == gcbL || after == gcbV || after == gcbLV || after == gcbLVT): // GB6
		return false
	case (before == gcbLV || before == gcbV) &&
		(after == gcbV || after == gcbT): // GB7
		return false
	case (before == gcbLVT || before == gcbT) && after == gcbT: // GB8
		return false
	case after == gcbExtend: // GB9
		return false
	case after == gcbSpacingMark: // GB9a
		return false
	case before == gcbPrepend: // GB9b
		return false
	}
	return true // GB10
}
