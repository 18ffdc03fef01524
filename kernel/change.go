package kernel

// Change describes one atomic document mutation. Both regions are
// normalized and share their beginning, the edit point. An empty Erased
// region means a pure insertion; an empty Inserted region means a pure
// deletion.
//
// Erased is expressed in pre-change coordinates and Inserted in
// post-change coordinates.
type Change struct {
	Erased   Region
	Inserted Region
}

// IsInsertion reports whether nothing was erased.
func (c Change) IsInsertion() bool { return c.Erased.IsEmpty() }

// IsDeletion reports whether nothing was inserted.
func (c Change) IsDeletion() bool { return c.Inserted.IsEmpty() }

// LineDelta returns the change in document line count.
func (c Change) LineDelta() int {
	return (c.Inserted.End().Line - c.Inserted.Beginning().Line) -
		(c.Erased.End().Line - c.Erased.Beginning().Line)
}
