package kernel

import (
	"github.com/exeal/ascent/gapvec"
	"github.com/exeal/ascent/text"
)

// BookmarkListener observes the marked-line set.
type BookmarkListener interface {
	// BookmarkChanged is sent when the mark on a line was set, removed
	// or moved.
	BookmarkChanged(line int)
	// BookmarkCleared is sent when all marks were removed at once.
	BookmarkCleared()
}

// Bookmarker maintains the set of marked lines of one document. The set
// is kept sorted in a gap vector and follows line insertions and
// deletions. Obtain it with Document.Bookmarker; it cannot be
// constructed directly.
type Bookmarker struct {
	doc       *Document
	marks     *gapvec.Vector[int]
	listeners []BookmarkListener
}

func newBookmarker(doc *Document) *Bookmarker {
	return &Bookmarker{doc: doc, marks: gapvec.New[int](0)}
}

// AddListener subscribes l to bookmark notifications.
func (b *Bookmarker) AddListener(l BookmarkListener) {
	b.listeners = append(b.listeners, l)
}

// RemoveListener unsubscribes l.
func (b *Bookmarker) RemoveListener(l BookmarkListener) {
	for i, x := range b.listeners {
		if x == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// find returns the index of the first mark ≥ line.
func (b *Bookmarker) find(line int) int {
	lo, hi := 0, b.marks.Len()
	for lo < hi {
		mid := (lo + hi) / 2
		if b.marks.At(mid) < line {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// IsMarked reports whether line carries a bookmark.
func (b *Bookmarker) IsMarked(line int) bool {
	i := b.find(line)
	return i < b.marks.Len() && b.marks.At(i) == line
}

// Mark sets or removes the bookmark on line.
func (b *Bookmarker) Mark(line int, set bool) {
	if set == b.IsMarked(line) {
		return
	}
	i := b.find(line)
	if set {
		b.marks.Insert(i, line)
	} else {
		b.marks.Erase(i, i+1)
	}
	b.fireChanged(line)
}

// Toggle flips the bookmark on line.
func (b *Bookmarker) Toggle(line int) {
	b.Mark(line, !b.IsMarked(line))
}

// Clear removes all bookmarks.
func (b *Bookmarker) Clear() {
	if b.marks.Len() == 0 {
		return
	}
	b.marks.Clear()
	for _, l := range append([]BookmarkListener(nil), b.listeners...) {
		l.BookmarkCleared()
	}
}

// Count returns the number of marked lines.
func (b *Bookmarker) Count() int { return b.marks.Len() }

// Lines returns the marked lines in ascending order.
func (b *Bookmarker) Lines() []int { return b.marks.All() }

// Next returns the marks-th bookmark from the line from, excluded, in
// the given direction. With wrap the search continues from the other
// end of the document; without it, running off the end fails with
// ErrNoSuchElement.
func (b *Bookmarker) Next(from int, direction text.Direction, wrap bool, marks int) (int, error) {
	n := b.marks.Len()
	if n == 0 || marks <= 0 {
		return 0, ErrNoSuchElement
	}
	var i int
	if direction == text.Forward {
		i = b.find(from + 1)
		i += marks - 1
		if i >= n {
			if !wrap {
				return 0, ErrNoSuchElement
			}
			i %= n
		}
	} else {
		i = b.find(from) - 1
		i -= marks - 1
		if i < 0 {
			if !wrap {
				return 0, ErrNoSuchElement
			}
			i = ((i % n) + n) % n
		}
	}
	return b.marks.At(i), nil
}

// fireChanged notifies listeners about one line's mark.
func (b *Bookmarker) fireChanged(line int) {
	// Iterate a copy; a listener may unsubscribe itself mid-notification.
	for _, l := range append([]BookmarkListener(nil), b.listeners...) {
		l.BookmarkChanged(line)
	}
}

// documentChanged adjusts the set for a document mutation: marks on
// removed lines collapse onto the change's first line, marks past the
// change shift by the line delta.
func (b *Bookmarker) documentChanged(change Change) {
	first := change.Erased.Beginning().Line
	erasedEnd := change.Erased.End().Line
	delta := change.LineDelta()
	if erasedEnd == first && delta == 0 {
		return
	}
	old := b.marks.All()
	rebuilt := make([]int, 0, len(old))
	changed := false
	for _, line := range old {
		switch {
		case line <= first:
			// Unaffected.
		case line <= erasedEnd:
			// The marked line was merged away; the mark collapses onto
			// the change's first line.
			line = first
			changed = true
		default:
			line += delta
			changed = true
		}
		if len(rebuilt) > 0 && rebuilt[len(rebuilt)-1] == line {
			continue
		}
		rebuilt = append(rebuilt, line)
	}
	if changed {
		b.marks = gapvec.FromSlice(rebuilt)
		b.fireChanged(first)
	}
}
