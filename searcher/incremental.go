package searcher

import (
	"github.com/exeal/ascent/kernel"
	"github.com/exeal/ascent/text"
)

// IncrementalSearchResult reports the outcome of a pattern change.
type IncrementalSearchResult int

const (
	// EmptyPattern means the pattern is empty.
	EmptyPattern IncrementalSearchResult = iota
	// Found means the pattern matched.
	Found
	// NotFound means the pattern did not match.
	NotFound
	// BadRegex means the pattern does not compile.
	BadRegex
	// ComplexRegex means the engine gave up on the pattern.
	ComplexRegex
)

// WrappingStatus reports whether a search passed the scope end.
type WrappingStatus int

const (
	// NoWrap means the match lies between the start and the scope end.
	NoWrap WrappingStatus = iota
	// Wrapped means the search continued from the other end.
	Wrapped
	// Overwrapped means the wrapped search passed the start position.
	Overwrapped
)

// IncrementalSearchCallback observes an incremental search session.
type IncrementalSearchCallback interface {
	// SearchStarted is sent when the session starts.
	SearchStarted(doc *kernel.Document)
	// PatternChanged is sent after every keystroke with the result.
	PatternChanged(result IncrementalSearchResult, wrapping WrappingStatus)
	// SearchCompleted is sent when the session ends normally.
	SearchCompleted()
	// SearchAborted is sent when the session aborts; the caret should
	// return to the initial position.
	SearchAborted(initial kernel.Position)
}

// searchState is one keystroke snapshot: the pattern so far and where
// it matched.
type searchState struct {
	pattern   string
	matched   kernel.Region
	found     bool
	direction text.Direction
	wrapped   bool
}

// IncrementalSearcher runs one interactive search session bound to a
// document and a TextSearcher. Every pattern change re-evaluates the
// search and reports through the callback; a document change or a
// bookmark change aborts the session.
type IncrementalSearcher struct {
	doc      *kernel.Document
	searcher *TextSearcher
	callback IncrementalSearchCallback
	typ      Type

	initial kernel.Position
	states  []searchState
	running bool
}

// NewIncrementalSearcher returns an idle session object.
func NewIncrementalSearcher() *IncrementalSearcher {
	return &IncrementalSearcher{}
}

// IsRunning reports whether a session is active.
func (s *IncrementalSearcher) IsRunning() bool { return s.running }

// Pattern returns the pattern typed so far.
func (s *IncrementalSearcher) Pattern() (string, error) {
	if !s.running {
		return "", ErrSessionNotRunning
	}
	return s.top().pattern, nil
}

// CanUndo reports whether a keystroke can be reverted.
func (s *IncrementalSearcher) CanUndo() bool {
	return s.running && len(s.states) > 1
}

// MatchedRegion returns the current match.
func (s *IncrementalSearcher) MatchedRegion() (kernel.Region, bool, error) {
	if !s.running {
		return kernel.Region{}, false, ErrSessionNotRunning
	}
	return s.top().matched, s.top().found, nil
}

// Start begins a session on doc from the given position.
func (s *IncrementalSearcher) Start(doc *kernel.Document, from kernel.Position, searcher *TextSearcher, typ Type, direction text.Direction, callback IncrementalSearchCallback) error {
	if s.running {
		return ErrSessionRunning
	}
	if doc == nil || doc.IsDisposed() {
		return kernel.ErrDocumentDisposed
	}
	s.doc = doc
	s.searcher = searcher
	s.callback = callback
	s.typ = typ
	s.initial = doc.Clamp(from)
	s.states = []searchState{{
		matched:   kernel.CollapsedRegion(s.initial),
		direction: direction,
	}}
	s.running = true
	doc.AddListener(s)
	doc.Bookmarker().AddListener(s)
	if callback != nil {
		callback.SearchStarted(doc)
	}
	if callback != nil {
		callback.PatternChanged(EmptyPattern, NoWrap)
	}
	return nil
}

// AddCharacter appends one UTF-16 code unit to the pattern.
func (s *IncrementalSearcher) AddCharacter(c text.Char) error {
	return s.AddString(text.String{c})
}

// AddCodePoint appends one scalar to the pattern.
func (s *IncrementalSearcher) AddCodePoint(cp text.CodePoint) error {
	if text.IsSupplemental(cp) {
		return s.AddString(text.String{text.HighSurrogate(cp), text.LowSurrogate(cp)})
	}
	return s.AddString(text.String{text.Char(cp)})
}

// AddString appends t to the pattern and re-evaluates the search.
func (s *IncrementalSearcher) AddString(t text.String) error {
	if !s.running {
		return ErrSessionNotRunning
	}
	prev := s.top()
	next := searchState{
		pattern:   prev.pattern + t.String(),
		direction: prev.direction,
	}
	s.states = append(s.states, next)
	s.evaluate()
	return nil
}

// Next jumps to the following match in the given direction.
func (s *IncrementalSearcher) Next(direction text.Direction) error {
	if !s.running {
		return ErrSessionNotRunning
	}
	prev := s.top()
	if prev.pattern == "" {
		// Direction change on the empty pattern re-anchors the session.
		s.states[len(s.states)-1].direction = direction
		if s.callback != nil {
			s.callback.PatternChanged(EmptyPattern, NoWrap)
		}
		return nil
	}
	next := *prev
	next.direction = direction
	s.states = append(s.states, next)
	s.evaluate()
	return nil
}

// Undo reverts the session by one keystroke.
func (s *IncrementalSearcher) Undo() error {
	if !s.running {
		return ErrSessionNotRunning
	}
	if len(s.states) <= 1 {
		return text.ErrNoSuchElement
	}
	s.states = s.states[:len(s.states)-1]
	top := s.top()
	if s.callback != nil {
		result := NotFound
		switch {
		case top.pattern == "":
			result = EmptyPattern
		case top.found:
			result = Found
		}
		s.callback.PatternChanged(result, NoWrap)
	}
	return nil
}

// End commits the session: the pattern goes to the searcher's history.
func (s *IncrementalSearcher) End() error {
	if !s.running {
		return ErrSessionNotRunning
	}
	if top := s.top(); top.pattern != "" {
		_ = s.setPattern(top.pattern)
	}
	cb := s.callback
	s.teardown()
	if cb != nil {
		cb.SearchCompleted()
	}
	return nil
}

// Abort cancels the session; the caller should restore the caret to the
// reported initial position.
func (s *IncrementalSearcher) Abort() error {
	if !s.running {
		return ErrSessionNotRunning
	}
	s.abort()
	return nil
}

func (s *IncrementalSearcher) abort() {
	initial := s.initial
	cb := s.callback
	s.teardown()
	if cb != nil {
		cb.SearchAborted(initial)
	}
}

func (s *IncrementalSearcher) teardown() {
	s.doc.RemoveListener(s)
	s.doc.Bookmarker().RemoveListener(s)
	s.running = false
	s.states = nil
	s.callback = nil
}

func (s *IncrementalSearcher) top() *searchState {
	return &s.states[len(s.states)-1]
}

// under returns the state the current evaluation searches from.
func (s *IncrementalSearcher) under() searchState {
	if len(s.states) >= 2 {
		return s.states[len(s.states)-2]
	}
	return searchState{matched: kernel.CollapsedRegion(s.initial)}
}

// setPattern pushes the session pattern into the TextSearcher.
func (s *IncrementalSearcher) setPattern(pattern string) error {
	if s.typ == RegularExpression {
		p, err := NewRegexPattern(pattern, 0)
		if err != nil {
			return err
		}
		s.searcher.SetRegexPattern(p, false)
		return nil
	}
	s.searcher.SetLiteralPattern(NewLiteralPattern(text.S(pattern), s.searcher.IsCaseSensitive(), nil), false)
	return nil
}

// evaluate runs the search for the freshly pushed top state and reports
// the outcome.
func (s *IncrementalSearcher) evaluate() {
	top := s.top()
	if top.pattern == "" {
		if s.callback != nil {
			s.callback.PatternChanged(EmptyPattern, NoWrap)
		}
		return
	}
	if err := s.setPatternQuiet(top.pattern); err != nil {
		if s.callback != nil {
			s.callback.PatternChanged(BadRegex, NoWrap)
		}
		return
	}

	// A longer pattern re-checks from the previous match start; a
	// find-next starts past the previous match.
	base := s.under()
	from := base.matched.Beginning()
	if base.found && top.pattern == base.pattern {
		if top.direction == text.Forward {
			from = base.matched.End()
		} else {
			from = base.matched.Beginning()
		}
	}

	scope := s.doc.AccessibleRegion()
	matched, found, err := s.searcher.Search(s.doc, from, scope, top.direction)
	if err != nil {
		if s.callback != nil {
			s.callback.PatternChanged(ComplexRegex, NoWrap)
		}
		return
	}
	wrapping := NoWrap
	if !found {
		// Wrap to the other end of the scope.
		wrapFrom := scope.Beginning()
		if top.direction == text.Backward {
			wrapFrom = scope.End()
		}
		matched, found, err = s.searcher.Search(s.doc, wrapFrom, scope, top.direction)
		if err != nil {
			if s.callback != nil {
				s.callback.PatternChanged(ComplexRegex, NoWrap)
			}
			return
		}
		if found {
			wrapping = Wrapped
			if base.wrapped {
				wrapping = Overwrapped
			}
			top.wrapped = true
		}
	} else {
		top.wrapped = base.wrapped
	}
	top.matched, top.found = matched, found
	if s.callback != nil {
		if found {
			s.callback.PatternChanged(Found, wrapping)
		} else {
			s.callback.PatternChanged(NotFound, NoWrap)
		}
	}
}

// setPatternQuiet activates the pattern without touching the history;
// the history entry is pushed when the session ends.
func (s *IncrementalSearcher) setPatternQuiet(pattern string) error {
	if s.typ == RegularExpression {
		p, err := NewRegexPattern(pattern, 0)
		if err != nil {
			return err
		}
		s.searcher.SetRegexPattern(p, true)
		return nil
	}
	s.searcher.SetLiteralPattern(NewLiteralPattern(text.S(pattern), s.searcher.IsCaseSensitive(), nil), true)
	return nil
}

// DocumentAboutToBeChanged implements kernel.DocumentListener.
func (s *IncrementalSearcher) DocumentAboutToBeChanged(*kernel.Document) {}

// DocumentChanged aborts the session: the snapshots no longer describe
// the document.
func (s *IncrementalSearcher) DocumentChanged(*kernel.Document, kernel.Change) {
	if s.running {
		s.abort()
	}
}

// BookmarkChanged aborts the session.
func (s *IncrementalSearcher) BookmarkChanged(int) {
	if s.running {
		s.abort()
	}
}

// BookmarkCleared aborts the session.
func (s *IncrementalSearcher) BookmarkCleared() {
	if s.running {
		s.abort()
	}
}
