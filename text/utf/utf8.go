package utf

import "github.com/exeal/ascent/text"

// leadLengths maps a lead byte to the length of the sequence it starts,
// or 0 for bytes that never lead a well-formed sequence (continuation
// bytes, 0xC0, 0xC1 and 0xF5..0xFF).
var leadLengths = [256]uint8{}

func init() {
	for b := 0x00; b <= 0x7F; b++ {
		leadLengths[b] = 1
	}
	for b := 0xC2; b <= 0xDF; b++ {
		leadLengths[b] = 2
	}
	for b := 0xE0; b <= 0xEF; b++ {
		leadLengths[b] = 3
	}
	for b := 0xF0; b <= 0xF4; b++ {
		leadLengths[b] = 4
	}
}

// Length8 returns the sequence length a lead byte announces, or 0 if the
// byte cannot lead a well-formed sequence.
func Length8(lead byte) int { return int(leadLengths[lead]) }

// IsLeadingByte reports whether b can start a well-formed sequence.
func IsLeadingByte(b byte) bool { return leadLengths[b] != 0 }

// MaybeTrailingByte reports whether b has the continuation-byte shape
// 10xxxxxx. Whether it is actually valid depends on the lead byte.
func MaybeTrailingByte(b byte) bool { return b&0xC0 == 0x80 }

// IsValidByte reports whether b can appear anywhere in well-formed
// UTF-8. 0xC0, 0xC1 and 0xF5..0xFF cannot.
func IsValidByte(b byte) bool { return IsLeadingByte(b) || MaybeTrailingByte(b) }

// trailRange returns the inclusive bounds of the first continuation byte
// for a given lead, per the well-formed sequence table. Later
// continuation bytes are always 0x80..0xBF.
func trailRange(lead byte) (lo, hi byte) {
	switch lead {
	case 0xE0:
		return 0xA0, 0xBF
	case 0xED:
		return 0x80, 0x9F
	case 0xF0:
		return 0x90, 0xBF
	case 0xF4:
		return 0x80, 0x8F
	default:
		return 0x80, 0xBF
	}
}

// Encode8 writes the UTF-8 form of cp into dst and returns the number of
// bytes written (1..4).
func Encode8(cp text.CodePoint, dst []byte) (int, error) {
	if !text.IsScalarValue(cp) {
		return 0, ErrInvalidScalarValue
	}
	switch {
	case cp < 0x80:
		if len(dst) < 1 {
			return 0, ErrShortBuffer
		}
		dst[0] = byte(cp)
		return 1, nil
	case cp < 0x800:
		if len(dst) < 2 {
			return 0, ErrShortBuffer
		}
		dst[0] = 0xC0 | byte(cp>>6)
		dst[1] = 0x80 | byte(cp&0x3F)
		return 2, nil
	case cp < 0x10000:
		if len(dst) < 3 {
			return 0, ErrShortBuffer
		}
		dst[0] = 0xE0 | byte(cp>>12)
		dst[1] = 0x80 | byte((cp>>6)&0x3F)
		dst[2] = 0x80 | byte(cp&0x3F)
		return 3, nil
	default:
		if len(dst) < 4 {
			return 0, ErrShortBuffer
		}
		dst[0] = 0xF0 | byte(cp>>18)
		dst[1] = 0x80 | byte((cp>>12)&0x3F)
		dst[2] = 0x80 | byte((cp>>6)&0x3F)
		dst[3] = 0x80 | byte(cp&0x3F)
		return 4, nil
	}
}

// DecodeFirst8 decodes the sequence starting at src[0] without
// validation beyond what is needed to make progress. It returns the code
// point and the number of bytes consumed; ill-formed input yields
// (text.Replacement, 1).
func DecodeFirst8(src []byte) (text.CodePoint, int) {
	cp, n, err := DecodeFirst8Checked(src)
	if err != nil {
		return text.Replacement, 1
	}
	return cp, n
}

// DecodeFirst8Checked decodes the sequence starting at src[0], reporting
// ErrMalformedInput on over-long forms, surrogates, truncation and
// invalid bytes.
func DecodeFirst8Checked(src []byte) (text.CodePoint, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrMalformedInput
	}
	lead := src[0]
	n := Length8(lead)
	if n == 0 {
		return 0, 0, ErrMalformedInput
	}
	if n == 1 {
		return text.CodePoint(lead), 1, nil
	}
	if len(src) < n {
		return 0, 0, ErrMalformedInput
	}
	lo, hi := trailRange(lead)
	if src[1] < lo || src[1] > hi {
		return 0, 0, ErrMalformedInput
	}
	for i := 2; i < n; i++ {
		if !MaybeTrailingByte(src[i]) {
			return 0, 0, ErrMalformedInput
		}
	}
	var cp text.CodePoint
	switch n {
	case 2:
		cp = text.CodePoint(lead&0x1F)<<6 | text.CodePoint(src[1]&0x3F)
	case 3:
		cp = text.CodePoint(lead&0x0F)<<12 | text.CodePoint(src[1]&0x3F)<<6 |
			text.CodePoint(src[2]&0x3F)
	default:
		cp = text.CodePoint(lead&0x07)<<18 | text.CodePoint(src[1]&0x3F)<<12 |
			text.CodePoint(src[2]&0x3F)<<6 | text.CodePoint(src[3]&0x3F)
	}
	return cp, n, nil
}

// DecodeLast8 decodes the sequence ending at the end of src. Ill-formed
// input yields (text.Replacement, 1).
func DecodeLast8(src []byte) (text.CodePoint, int) {
	cp, n, err := DecodeLast8Checked(src)
	if err != nil {
		return text.Replacement, 1
	}
	return cp, n
}

// DecodeLast8Checked decodes the sequence ending at the end of src.
func DecodeLast8Checked(src []byte) (text.CodePoint, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrMalformedInput
	}
	// Scan back over at most 3 continuation bytes to the lead.
	start := len(src) - 1
	for i := 0; i < 3 && start >= 0 && MaybeTrailingByte(src[start]); i++ {
		start--
	}
	if start < 0 || !IsLeadingByte(src[start]) {
		return 0, 0, ErrMalformedInput
	}
	cp, n, err := DecodeFirst8Checked(src[start:])
	if err != nil {
		return 0, 0, err
	}
	if start+n != len(src) {
		return 0, 0, ErrMalformedInput
	}
	return cp, n, nil
}
