package kernel

import (
	"github.com/exeal/ascent/gapvec"
	"github.com/exeal/ascent/text"
)

// Line is one line record of the document: its text (never containing a
// newline character), its terminator, and the document revision at which
// it last changed.
type Line struct {
	text     text.String
	newline  text.Newline
	revision uint64
}

// Text returns the line content without the terminator. The returned
// slice is the document's storage; callers must not mutate it.
func (l Line) Text() text.String { return l.text }

// Newline returns the line terminator. Only the last line of a document
// carries text.None.
func (l Line) Newline() text.Newline { return l.newline }

// Revision returns the document revision at which this line last
// changed.
func (l Line) Revision() uint64 { return l.revision }

// Length returns the line length in code units, without the terminator.
func (l Line) Length() int { return len(l.text) }

// lineStore holds the ordered line records in a gap vector, so edits
// clustered around one spot move few records.
type lineStore struct {
	lines *gapvec.Vector[Line]
}

func newLineStore() *lineStore {
	s := &lineStore{lines: gapvec.New[Line](4)}
	s.lines.Insert(0, Line{newline: text.None})
	return s
}

func (s *lineStore) lineCount() int { return s.lines.Len() }

func (s *lineStore) line(i int) Line { return s.lines.At(i) }

// length returns the document length in code units under a terminator
// policy: text.Raw counts each line's own terminator, any literal
// newline counts every terminator as that style.
func (s *lineStore) length(nl text.Newline) int {
	total := 0
	last := s.lines.Len() - 1
	for i := 0; i <= last; i++ {
		ln := s.lines.At(i)
		total += len(ln.text)
		if i < last {
			if nl == text.Raw {
				total += ln.newline.Width()
			} else {
				total += nl.Width()
			}
		}
	}
	return total
}

// lineSeg is one line of an insertion split by the newline set.
type lineSeg struct {
	text    text.String
	newline text.Newline
}

// splitLines divides t at every terminator. The final segment carries
// text.None. CR immediately followed by LF is one terminator.
func splitLines(t text.String) []lineSeg {
	var segs []lineSeg
	start := 0
	for i := 0; i < len(t); {
		nl, w := text.EatNewline(t, i)
		if w == 0 {
			i++
			continue
		}
		segs = append(segs, lineSeg{text: t[start:i].Clone(), newline: nl})
		i += w
		start = i
	}
	return append(segs, lineSeg{text: t[start:].Clone(), newline: text.None})
}

// splice replaces the text in r (normalized, valid) with t and stamps
// every touched line with newRevision. It returns the change record; the
// inserted region ends just past the last inserted code unit.
func (s *lineStore) splice(r Region, t text.String, newRevision uint64) Change {
	b, e := r.Beginning(), r.End()

	first := s.lines.At(b.Line)
	last := s.lines.At(e.Line)
	head := first.text[:b.Offset].Clone()
	tail := last.text[e.Offset:].Clone()
	tailNewline := last.newline

	segs := splitLines(t)
	k := len(segs)

	var insertedEnd Position
	if k == 1 {
		joined := make(text.String, 0, len(head)+len(segs[0].text)+len(tail))
		joined = append(joined, head...)
		joined = append(joined, segs[0].text...)
		joined = append(joined, tail...)
		s.lines.Set(b.Line, Line{text: joined, newline: tailNewline, revision: newRevision})
		if e.Line > b.Line {
			s.lines.Erase(b.Line+1, e.Line+1)
		}
		insertedEnd = Position{Line: b.Line, Offset: b.Offset + len(segs[0].text)}
	} else {
		newLines := make([]Line, 0, k)
		firstText := make(text.String, 0, len(head)+len(segs[0].text))
		firstText = append(firstText, head...)
		firstText = append(firstText, segs[0].text...)
		newLines = append(newLines, Line{text: firstText, newline: segs[0].newline, revision: newRevision})
		for i := 1; i < k-1; i++ {
			newLines = append(newLines, Line{text: segs[i].text, newline: segs[i].newline, revision: newRevision})
		}
		lastText := make(text.String, 0, len(segs[k-1].text)+len(tail))
		lastText = append(lastText, segs[k-1].text...)
		lastText = append(lastText, tail...)
		newLines = append(newLines, Line{text: lastText, newline: tailNewline, revision: newRevision})

		s.lines.Erase(b.Line, e.Line+1)
		s.lines.Insert(b.Line, newLines...)
		insertedEnd = Position{Line: b.Line + k - 1, Offset: len(segs[k-1].text)}
	}

	return Change{
		Erased:   Region{First: b, Second: e},
		Inserted: Region{First: b, Second: insertedEnd},
	}
}

// textInRegion extracts the text of r under a terminator policy.
func (s *lineStore) textInRegion(r Region, nl text.Newline) text.String {
	b, e := r.Beginning(), r.End()
	if b.Line == e.Line {
		return s.lines.At(b.Line).text[b.Offset:e.Offset].Clone()
	}
	var out text.String
	for i := b.Line; i <= e.Line; i++ {
		ln := s.lines.At(i)
		switch i {
		case b.Line:
			out = append(out, ln.text[b.Offset:]...)
		case e.Line:
			out = append(out, ln.text[:e.Offset]...)
			continue
		default:
			out = append(out, ln.text...)
		}
		if nl == text.Raw {
			out = append(out, ln.newline.Sequence()...)
		} else {
			out = append(out, nl.Sequence()...)
		}
	}
	return out
}

// positionToOffset converts p to a code-unit offset from the document
// start under a terminator policy.
func (s *lineStore) positionToOffset(p Position, nl text.Newline) int {
	off := 0
	for i := 0; i < p.Line; i++ {
		ln := s.lines.At(i)
		off += len(ln.text)
		if nl == text.Raw {
			off += ln.newline.Width()
		} else {
			off += nl.Width()
		}
	}
	return off + p.Offset
}

// offsetToPosition converts a code-unit offset back to a position under
// the same policy. Offsets inside a terminator resolve to the end of the
// terminated line.
func (s *lineStore) offsetToPosition(off int, nl text.Newline) Position {
	last := s.lines.Len() - 1
	for i := 0; i <= last; i++ {
		ln := s.lines.At(i)
		if off <= len(ln.text) || i == last {
			if off > len(ln.text) {
				off = len(ln.text)
			}
			return Position{Line: i, Offset: off}
		}
		off -= len(ln.text)
		if nl == text.Raw {
			off -= ln.newline.Width()
		} else {
			off -= nl.Width()
		}
		if off < 0 {
			return Position{Line: i, Offset: len(ln.text)}
		}
	}
	return Position{Line: last, Offset: len(s.lines.At(last).text)}
}

// reset replaces all lines with a single empty line.
func (s *lineStore) reset() {
	s.lines.Clear()
	s.lines.Insert(0, Line{newline: text.None})
}

// endPosition returns the position past the last character.
func (s *lineStore) endPosition() Position {
	last := s.lines.Len() - 1
	return Position{Line: last, Offset: len(s.lines.At(last).text)}
}
