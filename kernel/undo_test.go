package kernel

import (
	"errors"
	"testing"

	"github.com/exeal/ascent/text"
)

func TestUndoSingleEdit(t *testing.T) {
	doc := newDocumentFromString(t, "hello")
	if _, err := doc.Replace(NewRegion(Position{0, 1}, Position{0, 3}), text.S("XY")); err != nil {
		t.Fatal(err)
	}
	if got := docText(doc); got != "hXYlo" {
		t.Fatalf("expected %q, got %q", "hXYlo", got)
	}
	ok, err := doc.Undo(1)
	if err != nil || !ok {
		t.Fatalf("undo failed: %v %v", ok, err)
	}
	if got := docText(doc); got != "hello" {
		t.Errorf("expected %q after undo, got %q", "hello", got)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	doc := newDocumentFromString(t, "hello")
	if _, err := doc.Replace(CollapsedRegion(Position{0, 5}), text.S(" world")); err != nil {
		t.Fatal(err)
	}
	after := docText(doc)
	if _, err := doc.Undo(1); err != nil {
		t.Fatal(err)
	}
	ok, err := doc.Redo(1)
	if err != nil || !ok {
		t.Fatalf("redo failed: %v %v", ok, err)
	}
	if got := docText(doc); got != after {
		t.Errorf("undo;redo must restore the post-edit state: expected %q, got %q", after, got)
	}
}

func TestUndoRevisionStillIncreases(t *testing.T) {
	doc := newDocumentFromString(t, "abc")
	if _, err := doc.Replace(CollapsedRegion(Position{}), text.S("x")); err != nil {
		t.Fatal(err)
	}
	rev := doc.Revision()
	if _, err := doc.Undo(1); err != nil {
		t.Fatal(err)
	}
	if doc.Revision() <= rev {
		t.Error("undo is still a change; the revision must increase")
	}
}

func TestCompoundChangeUndoesAsOne(t *testing.T) {
	doc := newDocumentFromString(t, "")
	doc.BeginCompoundChange()
	if _, err := doc.Replace(CollapsedRegion(Position{}), text.S("x")); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Replace(CollapsedRegion(Position{0, 1}), text.S("y")); err != nil {
		t.Fatal(err)
	}
	doc.EndCompoundChange()
	if got := docText(doc); got != "xy" {
		t.Fatalf("expected %q, got %q", "xy", got)
	}
	if n := doc.NumberOfUndoableChanges(); n != 1 {
		t.Fatalf("expected one compound unit, got %d", n)
	}
	if ok, err := doc.Undo(1); err != nil || !ok {
		t.Fatalf("undo failed: %v %v", ok, err)
	}
	if got := docText(doc); got != "" {
		t.Errorf("expected both edits reverted, got %q", got)
	}
	if n := doc.NumberOfUndoableChanges(); n != 0 {
		t.Errorf("expected numberOfUndoable 0, got %d", n)
	}
}

func TestNestedCompoundChange(t *testing.T) {
	doc := newDocumentFromString(t, "")
	doc.BeginCompoundChange()
	if _, err := doc.Replace(CollapsedRegion(Position{}), text.S("a")); err != nil {
		t.Fatal(err)
	}
	doc.BeginCompoundChange()
	if _, err := doc.Replace(CollapsedRegion(Position{0, 1}), text.S("b")); err != nil {
		t.Fatal(err)
	}
	doc.EndCompoundChange()
	if _, err := doc.Replace(CollapsedRegion(Position{0, 2}), text.S("c")); err != nil {
		t.Fatal(err)
	}
	doc.EndCompoundChange()
	if n := doc.NumberOfUndoableChanges(); n != 1 {
		t.Errorf("nesting joins into the outermost unit: expected 1, got %d", n)
	}
	if _, err := doc.Undo(1); err != nil {
		t.Fatal(err)
	}
	if got := docText(doc); got != "" {
		t.Errorf("expected everything reverted, got %q", got)
	}
}

func TestUndoBoundarySplitsUnits(t *testing.T) {
	doc := newDocumentFromString(t, "")
	doc.BeginCompoundChange()
	if _, err := doc.Replace(CollapsedRegion(Position{}), text.S("a")); err != nil {
		t.Fatal(err)
	}
	doc.InsertUndoBoundary()
	if _, err := doc.Replace(CollapsedRegion(Position{0, 1}), text.S("b")); err != nil {
		t.Fatal(err)
	}
	doc.EndCompoundChange()
	if n := doc.NumberOfUndoableChanges(); n != 2 {
		t.Fatalf("expected 2 units split by the boundary, got %d", n)
	}
	if _, err := doc.Undo(1); err != nil {
		t.Fatal(err)
	}
	if got := docText(doc); got != "a" {
		t.Errorf("expected only the second unit reverted, got %q", got)
	}
}

func TestEditInvalidatesRedo(t *testing.T) {
	doc := newDocumentFromString(t, "")
	if _, err := doc.Replace(CollapsedRegion(Position{}), text.S("a")); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Undo(1); err != nil {
		t.Fatal(err)
	}
	if n := doc.NumberOfRedoableChanges(); n != 1 {
		t.Fatalf("expected one redoable, got %d", n)
	}
	if _, err := doc.Replace(CollapsedRegion(Position{}), text.S("b")); err != nil {
		t.Fatal(err)
	}
	if n := doc.NumberOfRedoableChanges(); n != 0 {
		t.Errorf("a recorded edit must clear the redo stack, got %d", n)
	}
}

func TestRecordChangesFalseClearsStacks(t *testing.T) {
	doc := newDocumentFromString(t, "")
	if _, err := doc.Replace(CollapsedRegion(Position{}), text.S("a")); err != nil {
		t.Fatal(err)
	}
	doc.RecordChanges(false)
	if doc.NumberOfUndoableChanges() != 0 || doc.NumberOfRedoableChanges() != 0 {
		t.Error("disabling recording must clear both stacks")
	}
	if _, err := doc.Replace(CollapsedRegion(Position{}), text.S("b")); err != nil {
		t.Fatal(err)
	}
	if doc.NumberOfUndoableChanges() != 0 {
		t.Error("edits while recording is off must not be recorded")
	}
}

func TestUndoOnEmptyStack(t *testing.T) {
	doc := newDocumentFromString(t, "abc")
	ok, err := doc.Undo(1)
	if err != nil {
		t.Fatalf("undo on empty stack must not error, got %v", err)
	}
	if ok {
		t.Error("expected ok=false on empty stack")
	}
}

func TestUndoRespectsReadOnly(t *testing.T) {
	doc := newDocumentFromString(t, "")
	if _, err := doc.Replace(CollapsedRegion(Position{}), text.S("a")); err != nil {
		t.Fatal(err)
	}
	doc.SetReadOnly(true)
	if _, err := doc.Undo(1); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	if doc.NumberOfUndoableChanges() != 1 {
		t.Error("a failed undo must leave the stacks intact")
	}
}

func TestUndoBreachingNarrowingFails(t *testing.T) {
	doc := newDocumentFromString(t, "one\ntwo")
	if _, err := doc.Replace(CollapsedRegion(Position{0, 3}), text.S("!")); err != nil {
		t.Fatal(err)
	}
	if err := doc.NarrowTo(NewRegion(Position{1, 0}, Position{1, 3})); err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Undo(1); !errors.Is(err, ErrDocumentAccessViolation) {
		t.Errorf("expected ErrDocumentAccessViolation, got %v", err)
	}
	if doc.NumberOfUndoableChanges() != 1 {
		t.Error("stacks must stay intact after a narrowing breach")
	}
	doc.Widen()
	if got := docText(doc); got != "one!\ntwo" {
		t.Errorf("document must be unchanged after the failed undo, got %q", got)
	}
}

func TestUndoMultipleUnits(t *testing.T) {
	doc := newDocumentFromString(t, "")
	for _, s := range []string{"a", "b", "c"} {
		end := doc.Region().End()
		if _, err := doc.Replace(CollapsedRegion(end), text.S(s)); err != nil {
			t.Fatal(err)
		}
	}
	if ok, err := doc.Undo(2); err != nil || !ok {
		t.Fatalf("undo(2) failed: %v %v", ok, err)
	}
	if got := docText(doc); got != "a" {
		t.Errorf("expected %q, got %q", "a", got)
	}
	if n := doc.NumberOfRedoableChanges(); n != 2 {
		t.Errorf("expected 2 redoable units, got %d", n)
	}
}
