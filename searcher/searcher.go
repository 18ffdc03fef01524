package searcher

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/exeal/ascent/kernel"
	"github.com/exeal/ascent/text"
	"github.com/exeal/ascent/text/breaker"
)

// Type identifies the active pattern kind.
type Type int

const (
	// LiteralType is literal string matching.
	LiteralType Type = iota
	// RegularExpression is regexp matching.
	RegularExpression
)

// WholeMatch constrains where matches may start and end.
type WholeMatch int

const (
	// MatchCodeUnit accepts a match anywhere.
	MatchCodeUnit WholeMatch = iota
	// MatchGrapheme requires matches to cover whole grapheme clusters.
	MatchGrapheme
	// MatchWord requires matches to cover whole words.
	MatchWord
)

// History bounds for the stored pattern and replacement lists.
const (
	DefaultMaximumStoredStrings = 16
	MinimumStoredStrings        = 4
)

// ReplacementAction is a callback's verdict on one match.
type ReplacementAction int

const (
	// ReplaceAction replaces this match and continues.
	ReplaceAction ReplacementAction = iota
	// SkipAction leaves this match and continues.
	SkipAction
	// ReplaceAllAction replaces this and all further matches silently.
	ReplaceAllAction
	// ReplaceAndExitAction replaces this match and stops.
	ReplaceAndExitAction
	// UndoAction reverts the most recent replacement and revisits it.
	UndoAction
	// ExitAction stops without touching this match.
	ExitAction
)

// InteractiveReplacementCallback steers ReplaceAll match by match.
type InteractiveReplacementCallback interface {
	// ReplacementStarted is called once before the walk.
	ReplacementStarted(doc *kernel.Document, scope kernel.Region)
	// QueryReplacementAction is called on every match.
	QueryReplacementAction(matched kernel.Region, canUndo bool) ReplacementAction
	// ReplacementEnded is called once after the walk.
	ReplacementEnded(numberOfMatches, numberOfReplacements int)
}

// TextSearcher owns one active pattern, bounded history lists of recent
// patterns and replacements, the whole-match mode, and the cache that
// lets a find-next continue cheaply.
type TextSearcher struct {
	typ     Type
	literal *LiteralPattern
	regex   *RegexPattern

	wholeMatch WholeMatch

	storedPatterns     []string
	storedReplacements []string
	maxStored          int

	lastResult struct {
		doc       *kernel.Document
		revision  uint64
		matched   *kernel.Region
		direction text.Direction
	}

	abortRequested bool
	log            logrus.FieldLogger
}

// NewTextSearcher returns a searcher with no pattern and default
// history bounds.
func NewTextSearcher() *TextSearcher {
	return &TextSearcher{
		maxStored: DefaultMaximumStoredStrings,
		log:       logrus.StandardLogger(),
	}
}

// SetLogger replaces the diagnostics logger.
func (s *TextSearcher) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		s.log = log
	}
}

// HasPattern reports whether a pattern is active.
func (s *TextSearcher) HasPattern() bool {
	return s.literal != nil || s.regex != nil
}

// Type returns the active pattern kind.
func (s *TextSearcher) Type() Type { return s.typ }

// SetLiteralPattern activates a literal pattern. Unless dontRemember is
// set the pattern source is pushed onto the history.
func (s *TextSearcher) SetLiteralPattern(p *LiteralPattern, dontRemember bool) {
	s.literal, s.regex, s.typ = p, nil, LiteralType
	s.invalidateCache()
	if !dontRemember {
		s.pushHistory(p.Pattern().String(), false)
	}
}

// SetRegexPattern activates a regular expression pattern.
func (s *TextSearcher) SetRegexPattern(p *RegexPattern, dontRemember bool) {
	s.regex, s.literal, s.typ = p, nil, RegularExpression
	s.invalidateCache()
	if !dontRemember {
		s.pushHistory(p.Pattern(), false)
	}
}

// IsCaseSensitive reports the active pattern's case sensitivity.
func (s *TextSearcher) IsCaseSensitive() bool {
	switch s.typ {
	case RegularExpression:
		if s.regex != nil {
			return s.regex.IsCaseSensitive()
		}
	default:
		if s.literal != nil {
			return s.literal.IsCaseSensitive()
		}
	}
	return true
}

// WholeMatch returns the whole-match mode.
func (s *TextSearcher) WholeMatch() WholeMatch { return s.wholeMatch }

// SetWholeMatch sets the whole-match mode.
func (s *TextSearcher) SetWholeMatch(m WholeMatch) {
	s.wholeMatch = m
	s.invalidateCache()
}

// Pattern returns the index-th most recent stored pattern (0 is the
// current one).
func (s *TextSearcher) Pattern(index int) (string, error) {
	if index < 0 || index >= len(s.storedPatterns) {
		return "", text.ErrNoSuchElement
	}
	return s.storedPatterns[index], nil
}

// StoredPatterns returns the pattern history, most recent first.
func (s *TextSearcher) StoredPatterns() []string {
	return append([]string(nil), s.storedPatterns...)
}

// StoredReplacements returns the replacement history, most recent first.
func (s *TextSearcher) StoredReplacements() []string {
	return append([]string(nil), s.storedReplacements...)
}

// SetStoredStrings replaces one of the history lists, trimmed to the
// bound.
func (s *TextSearcher) SetStoredStrings(strings []string, forReplacements bool) {
	list := append([]string(nil), strings...)
	if len(list) > s.maxStored {
		list = list[:s.maxStored]
	}
	if forReplacements {
		s.storedReplacements = list
	} else {
		s.storedPatterns = list
	}
}

// MaximumNumberOfStoredStrings returns the history bound.
func (s *TextSearcher) MaximumNumberOfStoredStrings() int { return s.maxStored }

// SetMaximumNumberOfStoredStrings adjusts the history bound, clamped to
// the minimum.
func (s *TextSearcher) SetMaximumNumberOfStoredStrings(n int) {
	if n < MinimumStoredStrings {
		n = MinimumStoredStrings
	}
	s.maxStored = n
	if len(s.storedPatterns) > n {
		s.storedPatterns = s.storedPatterns[:n]
	}
	if len(s.storedReplacements) > n {
		s.storedReplacements = s.storedReplacements[:n]
	}
}

// PushReplacementHistory remembers a replacement string.
func (s *TextSearcher) PushReplacementHistory(replacement string) {
	s.pushHistory(replacement, true)
}

func (s *TextSearcher) pushHistory(entry string, forReplacements bool) {
	list := &s.storedPatterns
	if forReplacements {
		list = &s.storedReplacements
	}
	out := make([]string, 0, len(*list)+1)
	out = append(out, entry)
	for _, e := range *list {
		if e != entry {
			out = append(out, e)
		}
	}
	if len(out) > s.maxStored {
		out = out[:s.maxStored]
	}
	*list = out
}

func (s *TextSearcher) invalidateCache() {
	s.lastResult.doc = nil
	s.lastResult.matched = nil
}

// IsLastPatternMatched reports whether the most recent search matched.
func (s *TextSearcher) IsLastPatternMatched() bool {
	return s.lastResult.matched != nil
}

// Search looks for the active pattern in scope, from the given position
// in the given direction, and returns the matched region. A match is
// accepted only if it satisfies the whole-match mode. The result is
// cached keyed on the document revision, so a find-next from the end of
// the previous match does no redundant bookkeeping; any document change
// invalidates the cache.
func (s *TextSearcher) Search(doc *kernel.Document, from kernel.Position, scope kernel.Region, direction text.Direction) (kernel.Region, bool, error) {
	if !s.HasPattern() {
		return kernel.Region{}, false, ErrNoPattern
	}
	if s.lastResult.doc == doc && s.lastResult.revision != doc.Revision() {
		s.invalidateCache()
	}
	scope = scope.Normalize()
	from = doc.Clamp(from)
	if from.Before(scope.Beginning()) {
		from = scope.Beginning()
	}
	if from.After(scope.End()) {
		from = scope.End()
	}

	matched, found, err := s.searchOnce(doc, from, scope, direction)
	if err != nil {
		return kernel.Region{}, false, err
	}

	s.lastResult.doc = doc
	s.lastResult.revision = doc.Revision()
	s.lastResult.direction = direction
	if found {
		m := matched
		s.lastResult.matched = &m
	} else {
		s.lastResult.matched = nil
	}
	return matched, found, nil
}

// searchOnce finds the nearest raw match satisfying the whole-match
// mode, stepping past rejected candidates.
func (s *TextSearcher) searchOnce(doc *kernel.Document, from kernel.Position, scope kernel.Region, direction text.Direction) (kernel.Region, bool, error) {
	var matcher *RegexMatcher
	if s.typ == RegularExpression {
		matcher = NewRegexMatcher(s.regex, doc, scope)
	}
	for {
		var matched kernel.Region
		var found bool
		var err error
		if s.typ == RegularExpression {
			idx := matcher.IndexOf(from)
			if idx < 0 {
				return kernel.Region{}, false, nil
			}
			matched, found, err = matcher.Find(idx, direction)
			if err != nil {
				return kernel.Region{}, false, err
			}
		} else {
			it := kernel.NewCharacterIteratorInRegion(doc, scope, from)
			firstIt, lastIt, ok := s.literal.Search(it, direction)
			if ok {
				matched = kernel.NewRegion(
					firstIt.(*kernel.CharacterIterator).Tell(),
					lastIt.(*kernel.CharacterIterator).Tell(),
				)
			}
			found = ok
		}
		if !found {
			return kernel.Region{}, false, nil
		}
		if s.checkWholeMatch(doc, matched) {
			return matched, true, nil
		}
		// Step one scalar past the rejected candidate and retry.
		it := kernel.NewCharacterIteratorInRegion(doc, scope, matched.Beginning())
		if direction == text.Forward {
			it.Next()
		} else {
			it.Previous()
		}
		next := it.Tell()
		if next == from {
			return kernel.Region{}, false, nil
		}
		from = next
	}
}

// checkWholeMatch verifies the match boundaries under the whole-match
// mode.
func (s *TextSearcher) checkWholeMatch(doc *kernel.Document, matched kernel.Region) bool {
	switch s.wholeMatch {
	case MatchGrapheme:
		return isGraphemeBoundary(doc, matched.Beginning()) &&
			isGraphemeBoundary(doc, matched.End())
	case MatchWord:
		syntax := doc.ContentTypeInformation().
			IdentifierSyntax(doc.Partition(matched.Beginning()).ContentType)
		return isWordBoundary(doc, matched.Beginning(), &syntax) &&
			isWordBoundary(doc, matched.End(), &syntax)
	}
	return true
}

func isGraphemeBoundary(doc *kernel.Document, pos kernel.Position) bool {
	it := breaker.NewGraphemeIterator(kernel.NewCharacterIteratorInRegion(doc, doc.Region(), pos))
	return it.IsBoundary()
}

func isWordBoundary(doc *kernel.Document, pos kernel.Position, syntax *text.IdentifierSyntax) bool {
	it := breaker.NewWordIterator(
		kernel.NewCharacterIteratorInRegion(doc, doc.Region(), pos),
		breaker.AnyBoundary, syntax)
	return it.IsBoundary()
}

// AbortInteractiveReplacement requests that a running ReplaceAll stop
// between matches. In-flight atomic changes complete first.
func (s *TextSearcher) AbortInteractiveReplacement() {
	s.abortRequested = true
}

// ReplaceAll walks the matches in scope forward, replacing them with
// replacement under the callback's control, and returns the number of
// replacements done. Every replacement is its own atomic change, so an
// UndoAction from the callback pops exactly the last one. A rejected
// change aborts with *ReplacementInterruptedError carrying the count.
func (s *TextSearcher) ReplaceAll(doc *kernel.Document, scope kernel.Region, replacement text.String, callback InteractiveReplacementCallback) (int, error) {
	if !s.HasPattern() {
		return 0, ErrNoPattern
	}
	s.abortRequested = false
	scope = scope.Normalize()

	// The scope follows the edits through a pair of anchors.
	startPt, err := kernel.NewPoint(doc, scope.Beginning())
	if err != nil {
		return 0, err
	}
	defer startPt.Close()
	startPt.SetGravity(text.Backward)
	endPt, err := kernel.NewPoint(doc, scope.End())
	if err != nil {
		return 0, err
	}
	defer endPt.Close()
	endPt.SetGravity(text.Forward)

	if callback != nil {
		callback.ReplacementStarted(doc, scope)
	}

	numberOfMatches, replacements := 0, 0
	silent := callback == nil
	// Each done replacement remembers where it started so UndoAction
	// can revisit it.
	type done struct{ start kernel.Position }
	var undoable []done

	pos := scope.Beginning()
	finish := func(err error) (int, error) {
		if callback != nil {
			callback.ReplacementEnded(numberOfMatches, replacements)
		}
		return replacements, err
	}

	for {
		if s.abortRequested {
			s.log.WithField("replacements", replacements).
				Debug("interactive replacement aborted")
			return finish(nil)
		}
		endPos, _ := endPt.Position()
		startPos, _ := startPt.Position()
		curScope := kernel.NewRegion(startPos, endPos)
		matched, found, err := s.Search(doc, pos, curScope, text.Forward)
		if err != nil {
			return finish(err)
		}
		if !found {
			return finish(nil)
		}
		numberOfMatches++

		action := ReplaceAction
		if !silent {
			action = callback.QueryReplacementAction(matched, len(undoable) > 0)
		}
		switch action {
		case ExitAction:
			return finish(nil)
		case SkipAction:
			it := kernel.NewCharacterIteratorInRegion(doc, curScope, matched.Beginning())
			it.Next()
			pos = it.Tell()
			continue
		case UndoAction:
			numberOfMatches--
			if len(undoable) == 0 {
				continue
			}
			if _, err := doc.Undo(1); err != nil {
				return finish(err)
			}
			last := undoable[len(undoable)-1]
			undoable = undoable[:len(undoable)-1]
			replacements--
			pos = last.start
			continue
		case ReplaceAllAction:
			silent = true
			fallthrough
		default: // ReplaceAction, ReplaceAndExitAction
			end, err := doc.Replace(matched, replacement)
			if err != nil {
				if errors.Is(err, kernel.ErrChangeRejected) {
					return finish(&ReplacementInterruptedError{Replacements: replacements, Err: err})
				}
				return finish(err)
			}
			undoable = append(undoable, done{start: matched.Beginning()})
			replacements++
			pos = end
			if action == ReplaceAndExitAction {
				return finish(nil)
			}
		}
	}
}
