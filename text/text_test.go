package text

import "testing"

func TestSRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"héllo wörld",
		"日本語のテキスト",
		"astral \U0001D11E clef",
	}
	for _, c := range cases {
		s := S(c)
		if got := s.String(); got != c {
			t.Errorf("round trip of %q: got %q", c, got)
		}
	}
}

func TestSEncodesSurrogatePairs(t *testing.T) {
	s := S("\U0001D11E")
	if s.Len() != 2 {
		t.Fatalf("expected 2 code units, got %d", s.Len())
	}
	if !IsHighSurrogate(s[0]) || !IsLowSurrogate(s[1]) {
		t.Errorf("expected a surrogate pair, got %04X %04X", s[0], s[1])
	}
	cp, n := DecodeChar(s)
	if cp != 0x1D11E || n != 2 {
		t.Errorf("expected (1D11E, 2), got (%X, %d)", cp, n)
	}
}

func TestDecodeLastChar(t *testing.T) {
	s := S("a\U0001D11E")
	cp, n := DecodeLastChar(s)
	if cp != 0x1D11E || n != 2 {
		t.Errorf("expected (1D11E, 2), got (%X, %d)", cp, n)
	}
	cp, n = DecodeLastChar(s[:1])
	if cp != 'a' || n != 1 {
		t.Errorf("expected (61, 1), got (%X, %d)", cp, n)
	}
}

func TestDecodeCharUnpairedSurrogate(t *testing.T) {
	s := String{0xD834}
	cp, n := DecodeChar(s)
	if cp != 0xD834 || n != 1 {
		t.Errorf("expected the lone surrogate itself, got (%X, %d)", cp, n)
	}
}

func TestScalarValueClassification(t *testing.T) {
	if !IsScalarValue('A') {
		t.Error("'A' should be a scalar value")
	}
	if IsScalarValue(0xD800) {
		t.Error("a surrogate is not a scalar value")
	}
	if IsScalarValue(0x110000) {
		t.Error("0x110000 is outside the codespace")
	}
	if !IsScalarValue(MaxCodePoint) {
		t.Error("U+10FFFF is a scalar value")
	}
}

func TestSurrogatePairMath(t *testing.T) {
	for _, cp := range []CodePoint{0x10000, 0x1D11E, 0x10FFFF} {
		h, l := HighSurrogate(cp), LowSurrogate(cp)
		if got := SurrogatePairToCodePoint(h, l); got != cp {
			t.Errorf("pair of %X decodes to %X", cp, got)
		}
	}
}

func TestEatNewline(t *testing.T) {
	cases := []struct {
		text  string
		at    int
		nl    Newline
		width int
	}{
		{"a\nb", 1, LineFeed, 1},
		{"a\rb", 1, CarriageReturn, 1},
		{"a\r\nb", 1, CarriageReturnLineFeed, 2},
		{"a\u0085b", 1, NextLine, 1},
		{"a\u2028b", 1, LineSeparator, 1},
		{"a\u2029b", 1, ParagraphSeparator, 1},
		{"ab", 1, None, 0},
	}
	for _, c := range cases {
		nl, w := EatNewline(S(c.text), c.at)
		if nl != c.nl || w != c.width {
			t.Errorf("EatNewline(%q, %d): expected (%v, %d), got (%v, %d)",
				c.text, c.at, c.nl, c.width, nl, w)
		}
	}
}

func TestDetectNewline(t *testing.T) {
	if nl := DetectNewline(S("abc\r\ndef\n")); nl != CarriageReturnLineFeed {
		t.Errorf("expected CRLF, got %v", nl)
	}
	if nl := DetectNewline(S("abc")); nl != None {
		t.Errorf("expected NONE, got %v", nl)
	}
}

func TestNewlineWidths(t *testing.T) {
	if CarriageReturnLineFeed.Width() != 2 {
		t.Error("CRLF is two code units")
	}
	if LineFeed.Width() != 1 {
		t.Error("LF is one code unit")
	}
	if None.Width() != 0 || Raw.Width() != 0 {
		t.Error("NONE and RAW have no width")
	}
}

func TestFoldCase(t *testing.T) {
	if FoldCase('A') != FoldCase('a') {
		t.Error("'A' and 'a' should fold together")
	}
	if FoldCase('K') != FoldCase(0x212A) { // KELVIN SIGN
		t.Error("'K' and the Kelvin sign should fold together")
	}
	if FoldCase('a') == FoldCase('b') {
		t.Error("'a' and 'b' must not fold together")
	}
}

func TestStringIndex(t *testing.T) {
	s := S("hello world")
	if i := s.Index(S("world")); i != 6 {
		t.Errorf("expected 6, got %d", i)
	}
	if i := s.Index(S("xyz")); i != -1 {
		t.Errorf("expected -1, got %d", i)
	}
}

func TestIdentifierSyntax(t *testing.T) {
	syntax := DefaultIdentifierSyntax()
	if !syntax.IsIdentifierStart('a') || !syntax.IsIdentifierStart('_') {
		t.Error("letters and underscore start identifiers")
	}
	if syntax.IsIdentifierStart('1') {
		t.Error("digits do not start identifiers")
	}
	if !syntax.IsIdentifierContinue('1') {
		t.Error("digits continue identifiers")
	}
	syntax.AddStart('-')
	if !syntax.IsIdentifierStart('-') {
		t.Error("added start character not recognized")
	}
}
