package breaker

import "github.com/exeal/ascent/text"

// SentenceIterator iterates sentence boundaries (rules SB1..SB12). The
// decisive context is the look-back through Close* Sp* to a terminator
// and the look-ahead across non-letters to the next cased letter.
type SentenceIterator struct {
	base text.CharacterIterator
}

// NewSentenceIterator wraps it.
func NewSentenceIterator(it text.CharacterIterator) *SentenceIterator {
	return &SentenceIterator{base: it}
}

// Base returns the wrapped character iterator.
func (s *SentenceIterator) Base() text.CharacterIterator { return s.base }

// Next advances by n sentence boundaries.
func (s *SentenceIterator) Next(n int) error {
	return advance(s.base, s.IsBoundary, n)
}

// Previous retreats by n sentence boundaries.
func (s *SentenceIterator) Previous(n int) error {
	return retreat(s.base, s.IsBoundary, n)
}

func isSentenceSkip(c sentenceClass) bool { return c == sbExtend || c == sbFormat }

func isParaSep(c sentenceClass) bool {
	return c == sbSep || c == sbCR || c == sbLF
}

// IsBoundary reports whether the wrapped iterator sits on a sentence
// boundary.
func (s *SentenceIterator) IsBoundary() bool {
	if atStart(s.base) || atEnd(s.base) { // SB1, SB2
		return true
	}

	prev := sentenceClassOf(previousCP(s.base))
	cur := sentenceClassOf(s.base.Current())

	if prev == sbCR && cur == sbLF { // SB3
		return false
	}
	if isParaSep(prev) { // SB4
		return true
	}
	if isSentenceSkip(cur) { // SB5
		return false
	}

	// Look back through Sp* Close* (skipping Extend and Format) for the
	// terminator that would make this a boundary.
	term, beforeTerm, spSeen, closeSeen := s.lookBack()
	if term != sbATerm && term != sbSTerm {
		return false // SB12: no terminator sequence behind us.
	}

	// Continuations of the terminator sequence never break before
	// themselves (SB8a, SB9, SB10).
	switch cur {
	case sbClose:
		if !spSeen { // SB9
			return false
		}
	case sbSp: // SB10
		return false
	case sbATerm, sbSTerm: // SB8a
		return false
	}
	if isParaSep(cur) { // SB10..SB11: break after the separator instead.
		return false
	}

	if term == sbATerm {
		if !spSeen && !closeSeen {
			if cur == sbNumeric { // SB6
				return false
			}
			if (beforeTerm == sbUpper || beforeTerm == sbLower) &&
				cur == sbUpper { // SB7
				return false
			}
		}
		if s.lowerAhead() { // SB8
			return false
		}
	}
	return true // SB11
}

// lookBack scans backward from the current position through Sp* then
// Close* to a terminator. It returns the terminator class (sbOther if
// none), the class of the base character before the terminator, and
// whether spaces or closers were crossed.
func (s *SentenceIterator) lookBack() (term, beforeTerm sentenceClass, spSeen, closeSeen bool) {
	term, beforeTerm = sbOther, sbOther
	it := s.base.Clone()
	state := 0 // 0 = in Sp*, 1 = in Close*, 2 = want terminator
	for {
		before := it.Offset()
		it.Previous()
		if it.Offset() == before {
			return
		}
		c := sentenceClassOf(it.Current())
		if isSentenceSkip(c) {
			continue
		}
		switch state {
		case 0:
			if c == sbSp {
				spSeen = true
				continue
			}
			state = 1
			fallthrough
		case 1:
			if c == sbClose {
				closeSeen = true
				continue
			}
			state = 2
			fallthrough
		default:
			if c == sbATerm || c == sbSTerm {
				term = c
				beforeTerm = s.baseBefore(it)
			}
			return
		}
	}
}

// baseBefore returns the class of the base character before it.
func (s *SentenceIterator) baseBefore(it text.CharacterIterator) sentenceClass {
	c := it.Clone()
	for {
		before := c.Offset()
		c.Previous()
		if c.Offset() == before {
			return sbOther
		}
		cls := sentenceClassOf(c.Current())
		if isSentenceSkip(cls) {
			continue
		}
		return cls
	}
}

// lowerAhead implements the SB8 look-ahead: from the current position,
// scan across characters that cannot start a sentence; finding a
// lowercase letter first means the terminator did not end the sentence.
func (s *SentenceIterator) lowerAhead() bool {
	it := s.base.Clone()
	for {
		cp := it.Current()
		if cp == text.Done {
			return false
		}
		c := sentenceClassOf(cp)
		if isSentenceSkip(c) {
			it.Next()
			continue
		}
		switch c {
		case sbLower:
			return true
		case sbOLetter, sbUpper, sbATerm, sbSTerm:
			return false
		}
		if isParaSep(c) {
			return false
		}
		it.Next()
	}
}
