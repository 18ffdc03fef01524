package gapvec

// Iterator walks a Vector by logical offset. Because it stores an
// offset, not a buffer pointer, it survives gap movement and buffer
// growth; it is invalidated by an Erase spanning its offset, and an
// edit before it shifts the element it observes like any other offset.
type Iterator[T any] struct {
	v   *Vector[T]
	off int
}

// Iter returns an iterator positioned at offset i.
func (v *Vector[T]) Iter(i int) Iterator[T] {
	return Iterator[T]{v: v, off: i}
}

// Valid reports whether the iterator points at an element.
func (it Iterator[T]) Valid() bool {
	return it.off >= 0 && it.off < it.v.Len()
}

// Value returns the element at the iterator position.
func (it Iterator[T]) Value() T {
	return it.v.At(it.off)
}

// Offset returns the logical offset.
func (it Iterator[T]) Offset() int { return it.off }

// Next returns an iterator advanced by one.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{v: it.v, off: it.off + 1}
}

// Prev returns an iterator retreated by one.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{v: it.v, off: it.off - 1}
}
