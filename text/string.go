package text

import "strings"

// String is a sequence of UTF-16 code units. Offsets into document lines
// count these units, so String is the storage type for all kernel text.
type String []Char

// S converts a native Go string to a String. Code points outside the BMP
// become surrogate pairs.
func S(s string) String {
	out := make(String, 0, len(s))
	for _, r := range s {
		cp := CodePoint(r)
		if IsSupplemental(cp) {
			out = append(out, HighSurrogate(cp), LowSurrogate(cp))
		} else {
			out = append(out, Char(cp))
		}
	}
	return out
}

// Len returns the length in code units.
func (s String) Len() int { return len(s) }

// String converts back to a native Go string. Unpaired surrogates become
// U+FFFD.
func (s String) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		cp, n := DecodeChar(s[i:])
		if IsSurrogate(cp) {
			cp = Replacement
		}
		b.WriteRune(rune(cp))
		i += n
	}
	return b.String()
}

// Clone returns an independent copy of s.
func (s String) Clone() String {
	if s == nil {
		return nil
	}
	out := make(String, len(s))
	copy(out, s)
	return out
}

// Equal reports whether s and t are identical code-unit sequences.
func (s String) Equal(t String) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}
	return true
}

// Index returns the lowest code-unit offset of sub in s, or -1.
func (s String) Index(sub String) int {
	if len(sub) == 0 {
		return 0
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		if String(s[i : i+len(sub)]).Equal(sub) {
			return i
		}
	}
	return -1
}

// ScalarCount returns the number of Unicode scalars in s, counting each
// well-formed surrogate pair once.
func (s String) ScalarCount() int {
	n := 0
	for i := 0; i < len(s); {
		_, w := DecodeChar(s[i:])
		i += w
		n++
	}
	return n
}
