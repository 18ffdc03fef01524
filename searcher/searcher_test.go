package searcher

import (
	"errors"
	"testing"

	"github.com/exeal/ascent/kernel"
	"github.com/exeal/ascent/text"
)

func newDoc(t *testing.T, s string) *kernel.Document {
	t.Helper()
	doc := kernel.New()
	if _, err := doc.Replace(kernel.CollapsedRegion(kernel.Position{}), text.S(s)); err != nil {
		t.Fatalf("seeding document failed: %v", err)
	}
	return doc
}

func literalSearcher(pattern string, caseSensitive bool) *TextSearcher {
	s := NewTextSearcher()
	s.SetLiteralPattern(NewLiteralPattern(text.S(pattern), caseSensitive, nil), false)
	return s
}

func TestSearchFindsFirstAndNext(t *testing.T) {
	doc := newDoc(t, "foo bar foo")
	s := literalSearcher("foo", false)

	matched, found, err := s.Search(doc, kernel.Position{}, doc.Region(), text.Forward)
	if err != nil || !found {
		t.Fatalf("search failed: %v %v", found, err)
	}
	want := kernel.NewRegion(kernel.Position{0, 0}, kernel.Position{0, 3})
	if matched != want {
		t.Errorf("expected %v, got %v", want, matched)
	}
	matched, found, err = s.Search(doc, matched.End(), doc.Region(), text.Forward)
	if err != nil || !found {
		t.Fatalf("second search failed: %v %v", found, err)
	}
	want = kernel.NewRegion(kernel.Position{0, 8}, kernel.Position{0, 11})
	if matched != want {
		t.Errorf("expected %v, got %v", want, matched)
	}
	if !s.IsLastPatternMatched() {
		t.Error("expected the last search recorded as matched")
	}
}

func TestSearchAcrossLines(t *testing.T) {
	doc := newDoc(t, "one\ntarget\nthree")
	s := literalSearcher("target", true)
	matched, found, err := s.Search(doc, kernel.Position{}, doc.Region(), text.Forward)
	if err != nil || !found {
		t.Fatalf("search failed: %v %v", found, err)
	}
	want := kernel.NewRegion(kernel.Position{1, 0}, kernel.Position{1, 6})
	if matched != want {
		t.Errorf("expected %v, got %v", want, matched)
	}
}

func TestSearchBackward(t *testing.T) {
	doc := newDoc(t, "foo bar foo")
	s := literalSearcher("foo", true)
	matched, found, err := s.Search(doc, doc.Region().End(), doc.Region(), text.Backward)
	if err != nil || !found {
		t.Fatalf("search failed: %v %v", found, err)
	}
	want := kernel.NewRegion(kernel.Position{0, 8}, kernel.Position{0, 11})
	if matched != want {
		t.Errorf("expected %v, got %v", want, matched)
	}
}

func TestSearchNoPattern(t *testing.T) {
	doc := newDoc(t, "abc")
	s := NewTextSearcher()
	if _, _, err := s.Search(doc, kernel.Position{}, doc.Region(), text.Forward); !errors.Is(err, ErrNoPattern) {
		t.Errorf("expected ErrNoPattern, got %v", err)
	}
}

func TestSearchCacheInvalidatedByEdit(t *testing.T) {
	doc := newDoc(t, "foo")
	s := literalSearcher("foo", true)
	if _, found, _ := s.Search(doc, kernel.Position{}, doc.Region(), text.Forward); !found {
		t.Fatal("expected a match")
	}
	if !s.IsLastPatternMatched() {
		t.Fatal("cache should hold the match")
	}
	if _, err := doc.Replace(kernel.CollapsedRegion(kernel.Position{}), text.S("x")); err != nil {
		t.Fatal(err)
	}
	// The next search sees the new revision and refreshes the cache.
	matched, found, _ := s.Search(doc, kernel.Position{}, doc.Region(), text.Forward)
	if !found || matched.Beginning() != (kernel.Position{0, 1}) {
		t.Errorf("expected the shifted occurrence at (0,1), got %v found=%v", matched, found)
	}
}

func TestWholeWordMatch(t *testing.T) {
	doc := newDoc(t, "scat cat concat")
	s := literalSearcher("cat", true)
	s.SetWholeMatch(MatchWord)
	matched, found, err := s.Search(doc, kernel.Position{}, doc.Region(), text.Forward)
	if err != nil || !found {
		t.Fatalf("search failed: %v %v", found, err)
	}
	want := kernel.NewRegion(kernel.Position{0, 5}, kernel.Position{0, 8})
	if matched != want {
		t.Errorf("expected the standalone word at %v, got %v", want, matched)
	}
}

func TestHistoryBounds(t *testing.T) {
	s := NewTextSearcher()
	s.SetMaximumNumberOfStoredStrings(2)
	if s.MaximumNumberOfStoredStrings() != MinimumStoredStrings {
		t.Errorf("expected clamping to %d, got %d", MinimumStoredStrings, s.MaximumNumberOfStoredStrings())
	}
	for _, p := range []string{"a", "b", "c", "d", "e"} {
		s.SetLiteralPattern(NewLiteralPattern(text.S(p), true, nil), false)
	}
	got := s.StoredPatterns()
	if len(got) != MinimumStoredStrings {
		t.Fatalf("expected %d stored patterns, got %d", MinimumStoredStrings, len(got))
	}
	if got[0] != "e" {
		t.Errorf("expected the most recent pattern first, got %v", got)
	}
	// Re-setting an old pattern moves it to the front without duplication.
	s.SetLiteralPattern(NewLiteralPattern(text.S("d"), true, nil), false)
	got = s.StoredPatterns()
	if got[0] != "d" || len(got) != MinimumStoredStrings {
		t.Errorf("expected d promoted to the front, got %v", got)
	}
}

func TestReplaceAllSilent(t *testing.T) {
	doc := newDoc(t, "a cat, a cat, a cat")
	s := literalSearcher("cat", true)
	n, err := s.ReplaceAll(doc, doc.Region(), text.S("dog"), nil)
	if err != nil {
		t.Fatalf("replaceAll failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 replacements, got %d", n)
	}
	got, _ := doc.Text(doc.Region(), text.Raw)
	if got.String() != "a dog, a dog, a dog" {
		t.Errorf("expected %q, got %q", "a dog, a dog, a dog", got.String())
	}
}

// scriptedCallback replays a fixed list of actions.
type scriptedCallback struct {
	actions []ReplacementAction
	queried int
	started bool
	ended   bool
	matches int
	repls   int
}

func (c *scriptedCallback) ReplacementStarted(*kernel.Document, kernel.Region) { c.started = true }

func (c *scriptedCallback) QueryReplacementAction(kernel.Region, bool) ReplacementAction {
	if c.queried >= len(c.actions) {
		return ExitAction
	}
	a := c.actions[c.queried]
	c.queried++
	return a
}

func (c *scriptedCallback) ReplacementEnded(matches, replacements int) {
	c.ended = true
	c.matches = matches
	c.repls = replacements
}

func TestReplaceAllInteractive(t *testing.T) {
	doc := newDoc(t, "x x x x")
	s := literalSearcher("x", true)
	cb := &scriptedCallback{actions: []ReplacementAction{
		ReplaceAction, SkipAction, ReplaceAction, ExitAction,
	}}
	n, err := s.ReplaceAll(doc, doc.Region(), text.S("y"), cb)
	if err != nil {
		t.Fatalf("replaceAll failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 replacements, got %d", n)
	}
	got, _ := doc.Text(doc.Region(), text.Raw)
	if got.String() != "y x y x" {
		t.Errorf("expected %q, got %q", "y x y x", got.String())
	}
	if !cb.started || !cb.ended {
		t.Error("lifecycle callbacks must fire")
	}
	if cb.repls != 2 {
		t.Errorf("ReplacementEnded saw %d replacements, expected 2", cb.repls)
	}
}

func TestReplaceAllUndoAction(t *testing.T) {
	doc := newDoc(t, "a a")
	s := literalSearcher("a", true)
	cb := &scriptedCallback{actions: []ReplacementAction{
		ReplaceAction, UndoAction, SkipAction, ReplaceAction, ExitAction,
	}}
	n, err := s.ReplaceAll(doc, doc.Region(), text.S("b"), cb)
	if err != nil {
		t.Fatalf("replaceAll failed: %v", err)
	}
	got, _ := doc.Text(doc.Region(), text.Raw)
	if got.String() != "a b" {
		t.Errorf("expected the first replacement undone and skipped: %q, got %q", "a b", got.String())
	}
	if n != 1 {
		t.Errorf("expected net 1 replacement, got %d", n)
	}
}

func TestReplaceAllReplaceAllAction(t *testing.T) {
	doc := newDoc(t, "q q q")
	s := literalSearcher("q", true)
	cb := &scriptedCallback{actions: []ReplacementAction{ReplaceAllAction}}
	n, err := s.ReplaceAll(doc, doc.Region(), text.S("r"), cb)
	if err != nil {
		t.Fatalf("replaceAll failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 replacements, got %d", n)
	}
	if cb.queried != 1 {
		t.Errorf("after ReplaceAllAction the callback must not be asked again, asked %d times", cb.queried)
	}
}

func TestReplaceAllInterrupted(t *testing.T) {
	doc := newDoc(t, "m m m")
	doc.SetInput(rejectingInput{})
	s := literalSearcher("m", true)
	_, err := s.ReplaceAll(doc, doc.Region(), text.S("n"), nil)
	var interrupted *ReplacementInterruptedError
	if !errors.As(err, &interrupted) {
		t.Fatalf("expected ReplacementInterruptedError, got %v", err)
	}
	if interrupted.Replacements != 0 {
		t.Errorf("expected 0 completed replacements, got %d", interrupted.Replacements)
	}
}

type rejectingInput struct{}

func (rejectingInput) Encoding() string                         { return "UTF-8" }
func (rejectingInput) Location() string                         { return "<memory>" }
func (rejectingInput) Newline() text.Newline                    { return text.LineFeed }
func (rejectingInput) IsChangeable(*kernel.Document) bool       { return false }
func (rejectingInput) PostFirstDocumentChange(*kernel.Document) {}
