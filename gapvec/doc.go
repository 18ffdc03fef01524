// Package gapvec implements a generic gap-buffered vector: a
// random-access sequence with a movable gap of unused capacity, making
// insertion and deletion near the gap O(1) element moves.
//
// The vector stores its elements in a single buffer. The gap is a
// sub-range of that buffer excluded from the logical sequence; Insert
// moves the gap to the insertion offset and fills it, Erase extends the
// gap over the erased range. Logical offsets are stable across gap
// movement, so an Iterator stores an offset rather than a pointer and
// stays valid across edits that do not remove the element it points at.
// Iterators are invalidated by Erase calls that span their offset, and
// offsets past an edit shift with the sequence as usual.
//
// Basic usage:
//
//	v := gapvec.New[int](0)
//	v.Insert(0, 1, 2, 3)
//	v.Erase(1, 2)      // [1 3]
//	x := v.At(1)       // 3
//
// The zero capacity grows on demand; growth doubles the buffer or fits
// the pending insertion, whichever is larger.
package gapvec
