package text

// Newline identifies a line terminator, or the policy used when document
// text is reassembled from its lines.
type Newline uint8

const (
	// LineFeed is U+000A (Unix).
	LineFeed Newline = iota
	// CarriageReturn is U+000D (classic Mac OS).
	CarriageReturn
	// CarriageReturnLineFeed is U+000D U+000A (Windows). The pair counts
	// as one terminator.
	CarriageReturnLineFeed
	// NextLine is U+0085.
	NextLine
	// LineSeparator is U+2028.
	LineSeparator
	// ParagraphSeparator is U+2029.
	ParagraphSeparator
	// None marks the absence of a terminator. Only the last line of a
	// document carries it.
	None
	// Raw is a reassembly policy, not a terminator: each line keeps its
	// own terminator.
	Raw
)

// Newline code points.
const (
	charLF  Char = 0x000A
	charCR  Char = 0x000D
	charNEL Char = 0x0085
	charLS  Char = 0x2028
	charPS  Char = 0x2029
)

// IsLiteral reports whether nl denotes an actual terminator sequence.
func (nl Newline) IsLiteral() bool { return nl <= ParagraphSeparator }

// Width returns the terminator length in code units (0 for None and Raw).
func (nl Newline) Width() int {
	switch nl {
	case CarriageReturnLineFeed:
		return 2
	case None, Raw:
		return 0
	default:
		return 1
	}
}

// Sequence returns the terminator code units. None and Raw yield nil.
func (nl Newline) Sequence() String {
	switch nl {
	case LineFeed:
		return String{charLF}
	case CarriageReturn:
		return String{charCR}
	case CarriageReturnLineFeed:
		return String{charCR, charLF}
	case NextLine:
		return String{charNEL}
	case LineSeparator:
		return String{charLS}
	case ParagraphSeparator:
		return String{charPS}
	default:
		return nil
	}
}

// String returns a printable name for diagnostics.
func (nl Newline) String() string {
	switch nl {
	case LineFeed:
		return "LF"
	case CarriageReturn:
		return "CR"
	case CarriageReturnLineFeed:
		return "CRLF"
	case NextLine:
		return "NEL"
	case LineSeparator:
		return "LS"
	case ParagraphSeparator:
		return "PS"
	case None:
		return "NONE"
	default:
		return "RAW"
	}
}

// IsNewlineChar reports whether c begins or constitutes a terminator.
func IsNewlineChar(c Char) bool {
	switch c {
	case charLF, charCR, charNEL, charLS, charPS:
		return true
	}
	return false
}

// EatNewline identifies the terminator starting at s[i]. It returns None
// with width 0 if s[i] does not start one. CR immediately followed by LF
// is reported as the single terminator CRLF.
func EatNewline(s String, i int) (Newline, int) {
	if i < 0 || i >= len(s) {
		return None, 0
	}
	switch s[i] {
	case charLF:
		return LineFeed, 1
	case charCR:
		if i+1 < len(s) && s[i+1] == charLF {
			return CarriageReturnLineFeed, 2
		}
		return CarriageReturn, 1
	case charNEL:
		return NextLine, 1
	case charLS:
		return LineSeparator, 1
	case charPS:
		return ParagraphSeparator, 1
	}
	return None, 0
}

// DetectNewline returns the first terminator appearing in s, or None if
// s contains no terminator.
func DetectNewline(s String) Newline {
	for i := 0; i < len(s); i++ {
		if nl, w := EatNewline(s, i); w > 0 {
			return nl
		}
	}
	return None
}
