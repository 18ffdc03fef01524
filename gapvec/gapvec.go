package gapvec

// Vector is a gap-buffered sequence of T. The zero value is not usable;
// call New.
type Vector[T any] struct {
	buf      []T
	gapFirst int
	gapLast  int // exclusive
}

// New returns an empty vector with room for capacity elements.
func New[T any](capacity int) *Vector[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vector[T]{
		buf:      make([]T, capacity),
		gapFirst: 0,
		gapLast:  capacity,
	}
}

// FromSlice returns a vector holding a copy of xs.
func FromSlice[T any](xs []T) *Vector[T] {
	v := New[T](len(xs))
	v.Insert(0, xs...)
	return v
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.buf) - (v.gapLast - v.gapFirst)
}

// gapSize returns the unused capacity.
func (v *Vector[T]) gapSize() int { return v.gapLast - v.gapFirst }

// index maps a logical offset to a buffer index.
func (v *Vector[T]) index(i int) int {
	if i < v.gapFirst {
		return i
	}
	return i + v.gapSize()
}

// At returns the element at offset i. It panics if i is out of range.
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.Len() {
		panic("gapvec: offset out of range")
	}
	return v.buf[v.index(i)]
}

// Ptr returns a pointer to the element at offset i. The pointer is
// invalidated by any subsequent insertion or erasure.
func (v *Vector[T]) Ptr(i int) *T {
	if i < 0 || i >= v.Len() {
		panic("gapvec: offset out of range")
	}
	return &v.buf[v.index(i)]
}

// Set replaces the element at offset i.
func (v *Vector[T]) Set(i int, x T) {
	*v.Ptr(i) = x
}

// moveGap relocates the gap so that it starts at logical offset i.
func (v *Vector[T]) moveGap(i int) {
	if i == v.gapFirst {
		return
	}
	if i < v.gapFirst {
		// Shift [i, gapFirst) right to the end of the gap.
		n := v.gapFirst - i
		copy(v.buf[v.gapLast-n:v.gapLast], v.buf[i:v.gapFirst])
		v.gapFirst = i
		v.gapLast -= n
	} else {
		// Shift [gapLast, gapLast+(i-gapFirst)) left over the gap.
		n := i - v.gapFirst
		copy(v.buf[v.gapFirst:v.gapFirst+n], v.buf[v.gapLast:v.gapLast+n])
		v.gapFirst = i
		v.gapLast += n
	}
}

// grow reallocates so at least need more elements fit in the gap,
// keeping the gap at its current logical position.
func (v *Vector[T]) grow(need int) {
	size := v.Len()
	newCap := 2 * len(v.buf)
	if newCap < size+need+1 {
		newCap = size + need + 1
	}
	buf := make([]T, newCap)
	copy(buf[:v.gapFirst], v.buf[:v.gapFirst])
	tail := len(v.buf) - v.gapLast
	copy(buf[newCap-tail:], v.buf[v.gapLast:])
	v.buf = buf
	v.gapLast = newCap - tail
}

// Insert places xs before offset i. It panics if i is out of range.
func (v *Vector[T]) Insert(i int, xs ...T) {
	if i < 0 || i > v.Len() {
		panic("gapvec: offset out of range")
	}
	if len(xs) == 0 {
		return
	}
	if v.gapSize() < len(xs) {
		v.grow(len(xs))
	}
	v.moveGap(i)
	copy(v.buf[v.gapFirst:], xs)
	v.gapFirst += len(xs)
}

// Erase removes the elements in [first, last). It panics if the range is
// invalid.
func (v *Vector[T]) Erase(first, last int) {
	if first < 0 || last < first || last > v.Len() {
		panic("gapvec: range out of range")
	}
	if first == last {
		return
	}
	v.moveGap(first)
	var zero T
	for i := 0; i < last-first; i++ {
		// Release references held by erased elements.
		v.buf[v.gapLast+i] = zero
	}
	v.gapLast += last - first
}

// Clear removes all elements, keeping capacity.
func (v *Vector[T]) Clear() {
	v.Erase(0, v.Len())
}

// Slice copies the elements in [first, last) out of the vector.
func (v *Vector[T]) Slice(first, last int) []T {
	if first < 0 || last < first || last > v.Len() {
		panic("gapvec: range out of range")
	}
	out := make([]T, 0, last-first)
	for i := first; i < last; i++ {
		out = append(out, v.buf[v.index(i)])
	}
	return out
}

// All copies the whole sequence out of the vector.
func (v *Vector[T]) All() []T {
	return v.Slice(0, v.Len())
}

// Compare orders v against other lexicographically using cmp, which
// must return a negative, zero or positive value.
func (v *Vector[T]) Compare(other *Vector[T], cmp func(a, b T) int) int {
	n := v.Len()
	if m := other.Len(); m < n {
		n = m
	}
	for i := 0; i < n; i++ {
		if c := cmp(v.At(i), other.At(i)); c != 0 {
			return c
		}
	}
	switch {
	case v.Len() < other.Len():
		return -1
	case v.Len() > other.Len():
		return 1
	}
	return 0
}
