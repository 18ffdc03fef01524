package kernel

import "github.com/exeal/ascent/text"

// CharacterIterator is a bidirectional scalar iterator over a region of
// a document. It knows how to step across line terminators: at the end
// of a non-final line it yields the terminator's code points before
// moving to the next line. While inside a two-unit terminator (CRLF) the
// reported position carries an offset past the line length.
//
// The iterator reads the document it was created on; it must not be
// used across edits of that document.
type CharacterIterator struct {
	doc    *Document
	region Region
	pos    Position
	offset int
}

var _ text.CharacterIterator = (*CharacterIterator)(nil)

// NewCharacterIterator returns an iterator over the accessible region of
// doc, positioned at start (clamped to the region).
func NewCharacterIterator(doc *Document, start Position) *CharacterIterator {
	return NewCharacterIteratorInRegion(doc, doc.AccessibleRegion(), start)
}

// NewCharacterIteratorInRegion returns an iterator over region,
// positioned at start (clamped to the region).
func NewCharacterIteratorInRegion(doc *Document, region Region, start Position) *CharacterIterator {
	region = region.Normalize()
	start = doc.Clamp(start)
	if start.Before(region.First) {
		start = region.First
	}
	if start.After(region.Second) {
		start = region.Second
	}
	return &CharacterIterator{doc: doc, region: region, pos: start}
}

// Document returns the iterated document.
func (it *CharacterIterator) Document() *Document { return it.doc }

// Region returns the iterated region.
func (it *CharacterIterator) Region() Region { return it.region }

// Tell returns the current position.
func (it *CharacterIterator) Tell() Position { return it.pos }

// Current returns the scalar at the iterator position, or text.Done at
// the region end.
func (it *CharacterIterator) Current() text.CodePoint {
	if !it.pos.Before(it.region.Second) {
		return text.Done
	}
	ln := it.doc.store.line(it.pos.Line)
	if it.pos.Offset < len(ln.text) {
		limit := len(ln.text)
		if it.region.Second.Line == it.pos.Line && it.region.Second.Offset < limit {
			limit = it.region.Second.Offset
		}
		cp, _ := text.DecodeChar(ln.text[it.pos.Offset:limit])
		return cp
	}
	seq := ln.newline.Sequence()
	k := it.pos.Offset - len(ln.text)
	if k >= len(seq) {
		return text.Done
	}
	return text.CodePoint(seq[k])
}

// Next advances by one scalar, stepping over a surrogate pair at once
// and through terminator code units one by one.
func (it *CharacterIterator) Next() {
	if !it.pos.Before(it.region.Second) {
		return
	}
	ln := it.doc.store.line(it.pos.Line)
	if it.pos.Offset < len(ln.text) {
		_, n := text.DecodeChar(ln.text[it.pos.Offset:])
		it.pos.Offset += n
	} else {
		k := it.pos.Offset - len(ln.text)
		if k+1 < ln.newline.Width() {
			it.pos.Offset++
		} else {
			it.pos = Position{Line: it.pos.Line + 1}
		}
	}
	if it.pos.After(it.region.Second) {
		it.pos = it.region.Second
	}
	it.offset++
}

// Previous retreats by one scalar.
func (it *CharacterIterator) Previous() {
	if !it.region.First.Before(it.pos) {
		return
	}
	if it.pos.Offset > 0 {
		ln := it.doc.store.line(it.pos.Line)
		if it.pos.Offset <= len(ln.text) {
			_, n := text.DecodeLastChar(ln.text[:it.pos.Offset])
			it.pos.Offset -= n
		} else {
			// Inside a terminator.
			it.pos.Offset--
		}
	} else {
		prev := it.doc.store.line(it.pos.Line - 1)
		width := prev.newline.Width()
		it.pos = Position{Line: it.pos.Line - 1, Offset: len(prev.text) + width - 1}
	}
	if it.pos.Before(it.region.First) {
		it.pos = it.region.First
	}
	it.offset--
}

// First moves to the beginning of the region.
func (it *CharacterIterator) First() {
	for it.region.First.Before(it.pos) {
		it.Previous()
	}
}

// Last moves to the end of the region.
func (it *CharacterIterator) Last() {
	for it.pos.Before(it.region.Second) {
		it.Next()
	}
}

// Offset is the signed scalar distance from the construction point.
func (it *CharacterIterator) Offset() int { return it.offset }

// Ordinal returns the absolute raw code-unit offset for comparisons.
func (it *CharacterIterator) Ordinal() int {
	return it.doc.store.positionToOffset(it.pos, text.Raw)
}

// Clone returns an independent iterator at the same position.
func (it *CharacterIterator) Clone() text.CharacterIterator {
	c := *it
	return &c
}
