package searcher

import "github.com/exeal/ascent/text"

// LiteralPattern is a literal search pattern with optional case folding
// and optional collation. Searching uses the bad-character rule of
// Boyer–Moore–Horspool with one sparse shift table per direction; a
// unit absent from the table shifts by the whole pattern length.
type LiteralPattern struct {
	pattern       text.String
	caseSensitive bool
	collator      Collator

	// units is the pattern as comparison units: collation elements if a
	// collator is present (ignorables dropped), case-folded code points
	// otherwise.
	units []int64

	forwardShift  map[int64]int
	backwardShift map[int64]int
}

// NewLiteralPattern compiles pattern. With caseSensitive false, matching
// folds case; with a collator, matching compares collation elements and
// skips ignorable characters on both sides.
func NewLiteralPattern(pattern text.String, caseSensitive bool, collator Collator) *LiteralPattern {
	p := &LiteralPattern{
		pattern:       pattern.Clone(),
		caseSensitive: caseSensitive,
		collator:      collator,
	}
	for i := 0; i < len(pattern); {
		cp, n := text.DecodeChar(pattern[i:])
		i += n
		if u, ok := p.unitOf(cp); ok {
			p.units = append(p.units, u)
		}
	}
	p.makeShiftTables()
	return p
}

// Pattern returns the pattern string.
func (p *LiteralPattern) Pattern() text.String { return p.pattern }

// IsCaseSensitive reports whether matching distinguishes case.
func (p *LiteralPattern) IsCaseSensitive() bool { return p.caseSensitive }

// unitOf maps a scalar to its comparison unit. The second result is
// false for characters the collator ignores.
func (p *LiteralPattern) unitOf(cp text.CodePoint) (int64, bool) {
	if p.collator != nil {
		w := p.collator.Weight(cp)
		if w == 0 {
			return 0, false
		}
		return int64(w), true
	}
	if !p.caseSensitive {
		cp = text.FoldCase(cp)
	}
	return int64(cp), true
}

func (p *LiteralPattern) makeShiftTables() {
	m := len(p.units)
	p.forwardShift = make(map[int64]int, m)
	p.backwardShift = make(map[int64]int, m)
	for i := 0; i < m-1; i++ {
		p.forwardShift[p.units[i]] = m - 1 - i
	}
	for i := m - 1; i > 0; i-- {
		p.backwardShift[p.units[i]] = i
	}
}

func (p *LiteralPattern) shift(direction text.Direction, unit int64) int {
	var table map[int64]int
	if direction == text.Forward {
		table = p.forwardShift
	} else {
		table = p.backwardShift
	}
	if s, ok := table[unit]; ok {
		return s
	}
	return len(p.units)
}

// nextUnit reads the comparison unit at it, skipping ignorables, and
// leaves it past the consumed characters. The second result is false at
// the region end.
func (p *LiteralPattern) nextUnit(it text.CharacterIterator) (int64, bool) {
	for {
		cp := it.Current()
		if cp == text.Done {
			return 0, false
		}
		it.Next()
		if u, ok := p.unitOf(cp); ok {
			return u, true
		}
	}
}

// prevUnit reads the comparison unit before it, skipping ignorables, and
// leaves it before the consumed characters.
func (p *LiteralPattern) prevUnit(it text.CharacterIterator) (int64, bool) {
	for {
		before := it.Offset()
		it.Previous()
		if it.Offset() == before {
			return 0, false
		}
		if u, ok := p.unitOf(it.Current()); ok {
			return u, true
		}
	}
}

// Matches reports whether the pattern matches at the position of target.
// The iterator is not moved.
func (p *LiteralPattern) Matches(target text.CharacterIterator) bool {
	_, ok := p.matchAt(target)
	return ok
}

// matchAt compares the pattern anchored at s and returns the iterator
// just past the match.
func (p *LiteralPattern) matchAt(s text.CharacterIterator) (text.CharacterIterator, bool) {
	it := s.Clone()
	for _, u := range p.units {
		tu, ok := p.nextUnit(it)
		if !ok || tu != u {
			return nil, false
		}
	}
	return it, true
}

// Search scans from the position of target: forward over the rest of the
// iterator's region, backward over the part before the position (the
// match must end at or before it). On success the returned iterators
// delimit the matched characters.
func (p *LiteralPattern) Search(target text.CharacterIterator, direction text.Direction) (first, last text.CharacterIterator, ok bool) {
	if len(p.units) == 0 {
		c := target.Clone()
		return c, c.Clone(), true
	}
	if direction == text.Forward {
		return p.searchForward(target)
	}
	return p.searchBackward(target)
}

// alignSignificant parks it on the next character the pattern compares,
// so a reported match never starts on an ignorable.
func (p *LiteralPattern) alignSignificant(it text.CharacterIterator) {
	for {
		cp := it.Current()
		if cp == text.Done {
			return
		}
		if _, ok := p.unitOf(cp); ok {
			return
		}
		it.Next()
	}
}

func (p *LiteralPattern) searchForward(target text.CharacterIterator) (text.CharacterIterator, text.CharacterIterator, bool) {
	m := len(p.units)
	s := target.Clone()
	for {
		p.alignSignificant(s)
		if end, ok := p.matchAt(s); ok {
			return s, end, true
		}
		// Bad-character shift keyed on the unit at the window's last
		// position.
		probe := s.Clone()
		var lastUnit int64
		found := true
		for i := 0; i < m; i++ {
			u, ok := p.nextUnit(probe)
			if !ok {
				found = false
				break
			}
			lastUnit = u
		}
		if !found {
			return nil, nil, false
		}
		for n := p.shift(text.Forward, lastUnit); n > 0; n-- {
			if _, ok := p.nextUnit(s); !ok {
				return nil, nil, false
			}
		}
	}
}

func (p *LiteralPattern) searchBackward(target text.CharacterIterator) (text.CharacterIterator, text.CharacterIterator, bool) {
	m := len(p.units)
	// Position the window so it ends at the target position.
	s := target.Clone()
	for i := 0; i < m; i++ {
		if _, ok := p.prevUnit(s); !ok {
			return nil, nil, false
		}
	}
	for {
		if end, ok := p.matchAt(s); ok {
			return s, end, true
		}
		// Mirrored bad-character shift keyed on the window's first unit.
		probe := s.Clone()
		firstUnit, _ := p.nextUnit(probe)
		for n := p.shift(text.Backward, firstUnit); n > 0; n-- {
			if _, ok := p.prevUnit(s); !ok {
				return nil, nil, false
			}
		}
	}
}
