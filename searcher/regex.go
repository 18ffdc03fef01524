package searcher

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/exeal/ascent/kernel"
	"github.com/exeal/ascent/text"
)

// RegexFlags adjust regular expression compilation.
type RegexFlags int

const (
	// CaseInsensitive enables case-insensitive matching.
	CaseInsensitive RegexFlags = 1 << iota
	// Multiline makes ^ and $ match at line boundaries.
	Multiline
	// DotAll makes . match line terminators.
	DotAll
	// UnicodeCase applies Unicode-aware case folding.
	UnicodeCase
	// CanonEq requests canonical-equivalence matching. Reserved: the
	// flag is recorded but not applied.
	CanonEq
	// Comments permits whitespace and #-comments in the pattern.
	Comments
	// Literal treats the whole expression as a literal string.
	Literal
	// UnixLines restricts the line terminators of Multiline matching to
	// line feed only.
	UnixLines
)

// RegexPattern is a compiled regular expression in regexp2's default
// (.NET-style) syntax with Unicode property support, plus a
// right-to-left twin for backward search. The engine's ECMAScript mode
// is not enabled.
type RegexPattern struct {
	expr     string
	flags    RegexFlags
	forward  *regexp2.Regexp
	backward *regexp2.Regexp
}

// NewRegexPattern compiles expr under flags. Compilation failures are
// reported as *PatternSyntaxError.
func NewRegexPattern(expr string, flags RegexFlags) (*RegexPattern, error) {
	source := expr
	if flags&Literal != 0 {
		source = regexp2.Escape(source)
	}
	opts := regexp2.RegexOptions(0)
	if flags&CaseInsensitive != 0 {
		opts |= regexp2.IgnoreCase
	}
	if flags&Multiline != 0 {
		opts |= regexp2.Multiline
	}
	if flags&DotAll != 0 {
		opts |= regexp2.Singleline
	}
	if flags&Comments != 0 {
		opts |= regexp2.IgnorePatternWhitespace
	}
	if flags&UnicodeCase != 0 {
		opts |= regexp2.Unicode
	}
	forward, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, &PatternSyntaxError{Code: classifySyntaxError(err), Pattern: expr, Err: err}
	}
	backward, err := regexp2.Compile(source, opts|regexp2.RightToLeft)
	if err != nil {
		return nil, &PatternSyntaxError{Code: classifySyntaxError(err), Pattern: expr, Err: err}
	}
	return &RegexPattern{expr: expr, flags: flags, forward: forward, backward: backward}, nil
}

// Pattern returns the expression source.
func (p *RegexPattern) Pattern() string { return p.expr }

// Flags returns the compilation flags.
func (p *RegexPattern) Flags() RegexFlags { return p.flags }

// IsCaseSensitive reports whether matching distinguishes case.
func (p *RegexPattern) IsCaseSensitive() bool { return p.flags&CaseInsensitive == 0 }

// classifySyntaxError maps a backend compile error onto the syntax
// error codes. The backend reports positions and phrasing of its own,
// so the mapping goes by message content.
func classifySyntaxError(err error) SyntaxErrorCode {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unterminated [] set"),
		strings.Contains(msg, "unterminated character class"):
		return UnmatchedBracket
	case strings.Contains(msg, "too many )"),
		strings.Contains(msg, "not enough )"),
		strings.Contains(msg, "unrecognized grouping construct"):
		return UnmatchedParen
	case strings.Contains(msg, "illegal {x,y}"),
		strings.Contains(msg, "unterminated {"):
		return UnmatchedBrace
	case strings.Contains(msg, "malformed {x,y}"):
		return InvalidContentOfBraces
	case strings.Contains(msg, "illegal \\ at end"),
		strings.Contains(msg, "illegal backslash"):
		return TrailingBackslash
	case strings.Contains(msg, "reference to undefined group"),
		strings.Contains(msg, "backreference"):
		return InvalidBackReference
	case strings.Contains(msg, "[x-y] range in reverse order"):
		return InvalidRangeEnd
	case strings.Contains(msg, "unknown unicode category"),
		strings.Contains(msg, "incomplete \\p{x} character escape"),
		strings.Contains(msg, "unrecognized character class"):
		return InvalidCharacterClassName
	case strings.Contains(msg, "quantifier"),
		strings.Contains(msg, "nested quantifier"),
		strings.Contains(msg, "dangling metacharacter"):
		return InvalidRepetition
	case strings.Contains(msg, "too complex"),
		strings.Contains(msg, "loop exceeds"):
		return TooComplex
	case strings.Contains(msg, "stack"):
		return StackOverflow
	}
	return UnknownError
}

// RegexMatcher scopes a pattern to a document region. The region's
// scalars are materialized once with a parallel position index, so
// every match maps back to document positions; the matcher must be
// rebuilt after the document changes.
type RegexMatcher struct {
	pattern   *RegexPattern
	runes     []rune
	positions []kernel.Position // positions[i] addresses runes[i]; one extra for the end
}

// NewRegexMatcher reads the scope region of doc into a matcher.
func NewRegexMatcher(p *RegexPattern, doc *kernel.Document, scope kernel.Region) *RegexMatcher {
	m := &RegexMatcher{pattern: p}
	it := kernel.NewCharacterIteratorInRegion(doc, scope, scope.Beginning())
	for {
		cp := it.Current()
		if cp == text.Done {
			break
		}
		m.positions = append(m.positions, it.Tell())
		if !text.IsScalarValue(cp) {
			cp = text.Replacement
		}
		m.runes = append(m.runes, rune(cp))
		it.Next()
	}
	m.positions = append(m.positions, it.Tell())
	return m
}

// Find locates the nearest match from the scalar index from in the given
// direction. It returns the matched region and whether one was found;
// an engine runtime failure (such as a timeout on a pathological
// pattern) is returned as an error.
func (m *RegexMatcher) Find(from int, direction text.Direction) (kernel.Region, bool, error) {
	re := m.pattern.forward
	if direction == text.Backward {
		re = m.pattern.backward
	}
	if from < 0 {
		from = 0
	}
	if from > len(m.runes) {
		from = len(m.runes)
	}
	match, err := re.FindRunesMatchStartingAt(m.runes, from)
	if err != nil {
		return kernel.Region{}, false, err
	}
	if match == nil {
		return kernel.Region{}, false, nil
	}
	start := match.Index
	end := start + match.Length
	return kernel.NewRegion(m.positions[start], m.positions[end]), true, nil
}

// Length returns the scope length in scalars.
func (m *RegexMatcher) Length() int { return len(m.runes) }

// IndexOf returns the scalar index of pos inside the scope. A position
// that is not indexed maps to the next indexed one; -1 is returned only
// for a position past the scope end.
func (m *RegexMatcher) IndexOf(pos kernel.Position) int {
	lo, hi := 0, len(m.positions)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch c := m.positions[mid].Compare(pos); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	if lo < len(m.positions) {
		return lo
	}
	return -1
}
