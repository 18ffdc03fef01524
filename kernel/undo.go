package kernel

import "github.com/exeal/ascent/text"

// atomicInverse reverses one replace: erase the region the replace
// inserted, put back the text it erased.
type atomicInverse struct {
	region Region
	text   text.String
}

// undoUnit is an ordered list of atomic inverses making up one
// user-visible undo step. Application order is the reverse of the
// recording order.
type undoUnit struct {
	atomics []atomicInverse
}

// undoManager keeps the undo and redo stacks of a document.
type undoManager struct {
	doc           *Document
	undoStack     []*undoUnit
	redoStack     []*undoUnit
	pending       *undoUnit
	compoundDepth int
	recording     bool
}

func newUndoManager(doc *Document) *undoManager {
	return &undoManager{doc: doc, recording: true}
}

// record captures the inverse of a just-applied change. Called from the
// edit pipeline; never from history replays.
func (m *undoManager) record(change Change, erased text.String) {
	if !m.recording {
		return
	}
	if m.pending == nil {
		m.pending = &undoUnit{}
	}
	m.pending.atomics = append(m.pending.atomics, atomicInverse{
		region: change.Inserted,
		text:   erased,
	})
	m.redoStack = nil
	if m.compoundDepth == 0 {
		m.seal()
	}
}

// seal closes the pending unit onto the undo stack.
func (m *undoManager) seal() {
	if m.pending == nil || len(m.pending.atomics) == 0 {
		m.pending = nil
		return
	}
	m.undoStack = append(m.undoStack, m.pending)
	m.pending = nil
}

func (m *undoManager) beginCompound() {
	if m.compoundDepth == 0 {
		m.seal()
	}
	m.compoundDepth++
}

func (m *undoManager) endCompound() {
	if m.compoundDepth == 0 {
		return
	}
	m.compoundDepth--
	if m.compoundDepth == 0 {
		m.seal()
	}
}

// insertBoundary forces subsequent edits into a new unit.
func (m *undoManager) insertBoundary() {
	m.seal()
}

// setRecording toggles recording; disabling clears both stacks.
func (m *undoManager) setRecording(record bool) {
	m.recording = record
	if !record {
		m.undoStack = nil
		m.redoStack = nil
		m.pending = nil
	}
}

func (m *undoManager) numberOfUndoable() int {
	n := len(m.undoStack)
	if m.pending != nil && len(m.pending.atomics) > 0 {
		n++
	}
	return n
}

func (m *undoManager) numberOfRedoable() int { return len(m.redoStack) }

// undo pops and applies up to n units. It reports whether all n were
// applied. A unit that fails midway (narrowing breach, rejection) is
// rolled back and both stacks are left intact.
func (m *undoManager) undo(n int) (bool, error) {
	m.seal()
	for ; n > 0; n-- {
		if len(m.undoStack) == 0 {
			return false, nil
		}
		unit := m.undoStack[len(m.undoStack)-1]
		inverse, err := m.applyUnit(unit)
		if err != nil {
			return false, err
		}
		m.undoStack = m.undoStack[:len(m.undoStack)-1]
		m.redoStack = append(m.redoStack, inverse)
	}
	return true, nil
}

// redo pops and applies up to n redo units.
func (m *undoManager) redo(n int) (bool, error) {
	m.seal()
	for ; n > 0; n-- {
		if len(m.redoStack) == 0 {
			return false, nil
		}
		unit := m.redoStack[len(m.redoStack)-1]
		inverse, err := m.applyUnit(unit)
		if err != nil {
			return false, err
		}
		m.redoStack = m.redoStack[:len(m.redoStack)-1]
		m.undoStack = append(m.undoStack, inverse)
	}
	return true, nil
}

// applyUnit replays a unit's atomics in reverse recording order and
// returns the unit that reverses the replay. On failure the partial
// progress is undone before returning.
func (m *undoManager) applyUnit(unit *undoUnit) (*undoUnit, error) {
	inverse := &undoUnit{}
	for i := len(unit.atomics) - 1; i >= 0; i-- {
		a := unit.atomics[i]
		change, erased, err := m.doc.replace(a.region, a.text, replaceOpts{viaHistory: true})
		if err != nil {
			m.rollback(inverse)
			return nil, err
		}
		inverse.atomics = append(inverse.atomics, atomicInverse{
			region: change.Inserted,
			text:   erased,
		})
	}
	return inverse, nil
}

// rollback reverses a partially applied unit. Runs with the rollbacking
// flag so read-only and narrowing cannot block the restoration.
func (m *undoManager) rollback(partial *undoUnit) {
	for i := len(partial.atomics) - 1; i >= 0; i-- {
		a := partial.atomics[i]
		_, _, _ = m.doc.replace(a.region, a.text, replaceOpts{viaHistory: true, rollbacking: true})
	}
}

// clear drops all recorded units.
func (m *undoManager) clear() {
	m.undoStack = nil
	m.redoStack = nil
	m.pending = nil
	m.compoundDepth = 0
}
