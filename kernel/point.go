package kernel

import (
	"fmt"

	"github.com/exeal/ascent/text"
)

// Gravity selects where a point goes when text is inserted exactly at
// its position: text.Forward moves the point past the inserted text,
// text.Backward keeps it before.
type Gravity = text.Direction

// PointHooks receives movement notifications for one point. Layout-aware
// points implement it to track (or refuse) destinations; the document
// knows only this interface.
type PointHooks interface {
	// AboutToMove is called with the proposed destination before the
	// point moves. Returning an error vetoes the move and leaves the
	// point where it was. The destination may be adjusted in place.
	AboutToMove(p *Point, to *Position) error
	// Moved is called after the point moved, with its previous position.
	Moved(p *Point, from Position)
}

// Point is a position that adjusts itself as the document changes. A
// point registers with its document on construction and must be closed
// when no longer needed; operations on a point whose document has been
// disposed fail with ErrDocumentDisposed.
type Point struct {
	doc      *Document
	position Position
	gravity  Gravity
	adapting bool
	closed   bool
	hooks    PointHooks
}

// NewPoint creates a point at p, clamped to the document, with forward
// gravity.
func NewPoint(doc *Document, p Position) (*Point, error) {
	if doc == nil || doc.disposed {
		return nil, ErrDocumentDisposed
	}
	pt := &Point{
		doc:      doc,
		position: doc.Clamp(p),
		gravity:  text.Forward,
		adapting: true,
	}
	doc.registerPoint(pt)
	return pt, nil
}

// Close detaches the point from its document. Closing twice is a no-op.
func (p *Point) Close() {
	if p.closed {
		return
	}
	p.closed = true
	if p.doc != nil && !p.doc.disposed {
		p.doc.unregisterPoint(p)
	}
}

// Document returns the owning document.
func (p *Point) Document() *Document { return p.doc }

// Position returns the current position.
func (p *Point) Position() (Position, error) {
	if err := p.check(); err != nil {
		return Position{}, err
	}
	return p.position, nil
}

// Gravity returns the insertion gravity.
func (p *Point) Gravity() Gravity { return p.gravity }

// SetGravity changes the insertion gravity.
func (p *Point) SetGravity(g Gravity) { p.gravity = g }

// IsAdapting reports whether the point follows document changes.
func (p *Point) IsAdapting() bool { return p.adapting }

// SetAdapting toggles whether the point follows document changes.
func (p *Point) SetAdapting(adapting bool) { p.adapting = adapting }

// SetHooks installs movement hooks. Pass nil to remove them.
func (p *Point) SetHooks(h PointHooks) { p.hooks = h }

// MoveTo moves the point to pos, clamped to the document. The move hook
// may veto, in which case ErrPointVetoed wraps the hook's error.
func (p *Point) MoveTo(pos Position) error {
	if err := p.check(); err != nil {
		return err
	}
	return p.moveTo(p.doc.Clamp(pos))
}

func (p *Point) check() error {
	if p.doc == nil || p.doc.disposed {
		return ErrDocumentDisposed
	}
	if p.closed {
		return ErrNoSuchElement
	}
	return nil
}

// moveTo runs the hook protocol around a position change.
func (p *Point) moveTo(pos Position) error {
	if pos == p.position {
		return nil
	}
	if p.hooks != nil {
		if err := p.hooks.AboutToMove(p, &pos); err != nil {
			return fmt.Errorf("%w: %w", ErrPointVetoed, err)
		}
	}
	from := p.position
	p.position = pos
	if p.hooks != nil {
		p.hooks.Moved(p, from)
	}
	return nil
}

// update adjusts the point for a document change under the gravity
// rules. A veto from the hooks leaves the point at its old position.
func (p *Point) update(change Change) {
	if !p.adapting {
		return
	}
	next := updatePosition(p.position, change, p.gravity)
	_ = p.moveTo(next)
}

// updatePosition computes where a position lands after a change.
func updatePosition(pos Position, change Change, gravity Gravity) Position {
	b := change.Erased.Beginning()
	e := change.Erased.End()
	ins := change.Inserted.End()

	switch {
	case pos.Before(b):
		return pos
	case pos == b:
		if gravity == text.Forward {
			return ins
		}
		return pos
	case pos.Before(e):
		// Inside the erased region: collapse to the edit point, then
		// apply gravity as if the insertion happened at the point.
		if gravity == text.Forward {
			return ins
		}
		return b
	default:
		// At or past the erased end: translate.
		if pos.Line == e.Line {
			pos.Offset += ins.Offset - e.Offset
		}
		pos.Line += ins.Line - e.Line
		return pos
	}
}
