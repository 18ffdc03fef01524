package breaker

import "github.com/exeal/ascent/text"

// WordComponent selects which word boundaries an iterator stops at.
type WordComponent uint8

const (
	// StartOfSegment stops at positions that begin a segment.
	StartOfSegment WordComponent = 1 << iota
	// EndOfSegment stops at positions that end a segment.
	EndOfSegment
	// AlphaNumeric restricts the segments to alphanumeric ones (words
	// rather than spaces and punctuation runs).
	AlphaNumeric

	// AnyBoundary stops at every word boundary.
	AnyBoundary = StartOfSegment | EndOfSegment
)

// WordIterator iterates word boundaries (rules WB1..WB14) with up to two
// base characters of look-ahead and look-behind, skipping Extend and
// Format characters as the annex requires.
type WordIterator struct {
	base   text.CharacterIterator
	mask   WordComponent
	syntax *text.IdentifierSyntax
}

// NewWordIterator wraps it, stopping at the boundaries mask selects. The
// identifier syntax widens the letter class; pass nil for the default
// classification.
func NewWordIterator(it text.CharacterIterator, mask WordComponent, syntax *text.IdentifierSyntax) *WordIterator {
	if mask&(StartOfSegment|EndOfSegment) == 0 {
		mask |= AnyBoundary
	}
	return &WordIterator{base: it, mask: mask, syntax: syntax}
}

// Base returns the wrapped character iterator.
func (w *WordIterator) Base() text.CharacterIterator { return w.base }

// Next advances by n boundaries matching the component mask.
func (w *WordIterator) Next(n int) error {
	return advance(w.base, w.IsBoundary, n)
}

// Previous retreats by n boundaries matching the component mask.
func (w *WordIterator) Previous(n int) error {
	return retreat(w.base, w.IsBoundary, n)
}

// IsBoundary reports whether the wrapped iterator sits on a word
// boundary matching the component mask.
func (w *WordIterator) IsBoundary() bool {
	brk, startsWord, endsWord := w.boundary()
	if !brk {
		return false
	}
	if w.mask&AlphaNumeric != 0 {
		return (w.mask&StartOfSegment != 0 && startsWord) ||
			(w.mask&EndOfSegment != 0 && endsWord)
	}
	return true
}

func (w *WordIterator) class(cp text.CodePoint) wordClass {
	return wordClassOf(cp, w.syntax)
}

func isWordAlnum(c wordClass) bool {
	switch c {
	case wbALetter, wbNumeric, wbKatakana, wbExtendNumLet:
		return true
	}
	return false
}

func isWordSkip(c wordClass) bool { return c == wbExtend || c == wbFormat }

// prevBases returns the classes of the two base characters before the
// current position, most recent first. Absent characters are wbOther.
func (w *WordIterator) prevBases() (p1, p2 wordClass, c1 text.CodePoint) {
	p1, p2 = wbOther, wbOther
	c1 = text.Done
	it := w.base.Clone()
	for n := 0; n < 2; {
		before := it.Offset()
		it.Previous()
		if it.Offset() == before {
			return
		}
		cp := it.Current()
		c := w.class(cp)
		if isWordSkip(c) {
			continue
		}
		if n == 0 {
			p1, c1 = c, cp
		} else {
			p2 = c
		}
		n++
		// Newline-ish classes stop the scan; WB4 does not cross them.
		if c == wbCR || c == wbLF || c == wbNewline {
			return
		}
	}
	return
}

// nextBases returns the classes of the two base characters at and after
// the current position.
func (w *WordIterator) nextBases() (n1, n2 wordClass, c1 text.CodePoint) {
	n1, n2 = wbOther, wbOther
	c1 = text.Done
	it := w.base.Clone()
	for n := 0; n < 2; {
		cp := it.Current()
		if cp == text.Done {
			return
		}
		c := w.class(cp)
		if n > 0 && isWordSkip(c) {
			it.Next()
			continue
		}
		if n == 0 {
			n1, c1 = c, cp
		} else {
			n2 = c
		}
		n++
		if c == wbCR || c == wbLF || c == wbNewline {
			return
		}
		it.Next()
	}
	return
}

// boundary evaluates the word rules at the current position. It reports
// whether the position is a break at all, and whether it starts or ends
// an alphanumeric segment (a word).
func (w *WordIterator) boundary() (brk, startsWord, endsWord bool) {
	if atStart(w.base) { // WB1
		s, _ := w.segments()
		return true, s, false
	}
	if atEnd(w.base) { // WB2
		_, e := w.segments()
		return true, false, e
	}

	prevCP := previousCP(w.base)
	curCP := w.base.Current()
	a := w.class(prevCP)
	b := w.class(curCP)

	if a == wbCR && b == wbLF { // WB3
		return false, false, false
	}
	if a == wbCR || a == wbLF || a == wbNewline { // WB3a
		s, e := w.segments()
		return true, s, e
	}
	if b == wbCR || b == wbLF || b == wbNewline { // WB3b
		s, e := w.segments()
		return true, s, e
	}
	if isWordSkip(b) { // WB4
		return false, false, false
	}

	p1, p2, pcp := w.prevBases()
	n1, n2, _ := w.nextBases()

	switch {
	case p1 == wbALetter && n1 == wbALetter: // WB5
		return false, false, false
	case p1 == wbALetter && (n1 == wbMidLetter || n1 == wbMidNumLet) &&
		n2 == wbALetter: // WB6
		return false, false, false
	case p2 == wbALetter && (p1 == wbMidLetter || p1 == wbMidNumLet) &&
		n1 == wbALetter: // WB7
		return false, false, false
	case p1 == wbNumeric && n1 == wbNumeric: // WB8
		return false, false, false
	case p1 == wbALetter && n1 == wbNumeric: // WB9
		return false, false, false
	case p1 == wbNumeric && n1 == wbALetter: // WB10
		return false, false, false
	case p2 == wbNumeric && (p1 == wbMidNum || p1 == wbMidNumLet) &&
		n1 == wbNumeric: // WB11
		return false, false, false
	case p1 == wbNumeric && (n1 == wbMidNum || n1 == wbMidNumLet) &&
		n2 == wbNumeric: // WB12
		return false, false, false
	case p1 == wbKatakana && n1 == wbKatakana: // WB13
		return false, false, false
	case isWordAlnum(p1) && n1 == wbExtendNumLet: // WB13a
		return false, false, false
	case p1 == wbExtendNumLet && isWordAlnum(n1): // WB13b
		return false, false, false
	}
	// A Hiragana run continued by the prolonged sound mark stays one
	// word even though the mark is Katakana.
	if curCP == 0x30FC && pcp != text.Done && isHiragana(pcp) {
		return false, false, false
	}
	return true, isWordAlnum(n1), isWordAlnum(p1) // WB14
}

// segments classifies the position by the alphanumericity of its two
// sides.
func (w *WordIterator) segments() (startsWord, endsWord bool) {
	p1, _, _ := w.prevBases()
	n1, _, _ := w.nextBases()
	return isWordAlnum(n1), isWordAlnum(p1)
}

func isHiragana(cp text.CodePoint) bool {
	return cp >= 0x3041 && cp <= 0x309F && cp != 0x309B && cp != 0x309C
}
