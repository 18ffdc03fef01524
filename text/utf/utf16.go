package utf

import "github.com/exeal/ascent/text"

// Encode16 writes the UTF-16 form of cp into dst and returns the number
// of code units written (1 or 2).
func Encode16(cp text.CodePoint, dst []text.Char) (int, error) {
	if !text.IsScalarValue(cp) {
		return 0, ErrInvalidScalarValue
	}
	if text.IsSupplemental(cp) {
		if len(dst) < 2 {
			return 0, ErrShortBuffer
		}
		dst[0] = text.HighSurrogate(cp)
		dst[1] = text.LowSurrogate(cp)
		return 2, nil
	}
	if len(dst) < 1 {
		return 0, ErrShortBuffer
	}
	dst[0] = text.Char(cp)
	return 1, nil
}

// DecodeFirst16 decodes the scalar starting at src[0]. An unpaired
// surrogate yields (text.Replacement, 1).
func DecodeFirst16(src []text.Char) (text.CodePoint, int) {
	cp, n, err := DecodeFirst16Checked(src)
	if err != nil {
		return text.Replacement, 1
	}
	return cp, n
}

// DecodeFirst16Checked decodes the scalar starting at src[0], reporting
// ErrMalformedInput on unpaired surrogates and empty input.
func DecodeFirst16Checked(src []text.Char) (text.CodePoint, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrMalformedInput
	}
	c := src[0]
	if text.IsHighSurrogate(c) {
		if len(src) < 2 || !text.IsLowSurrogate(src[1]) {
			return 0, 0, ErrMalformedInput
		}
		return text.SurrogatePairToCodePoint(c, src[1]), 2, nil
	}
	if text.IsLowSurrogate(c) {
		return 0, 0, ErrMalformedInput
	}
	return text.CodePoint(c), 1, nil
}

// DecodeLast16 decodes the scalar ending at the end of src. An unpaired
// surrogate yields (text.Replacement, 1).
func DecodeLast16(src []text.Char) (text.CodePoint, int) {
	cp, n, err := DecodeLast16Checked(src)
	if err != nil {
		return text.Replacement, 1
	}
	return cp, n
}

// DecodeLast16Checked decodes the scalar ending at the end of src.
func DecodeLast16Checked(src []text.Char) (text.CodePoint, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrMalformedInput
	}
	c := src[len(src)-1]
	if text.IsLowSurrogate(c) {
		if len(src) < 2 || !text.IsHighSurrogate(src[len(src)-2]) {
			return 0, 0, ErrMalformedInput
		}
		return text.SurrogatePairToCodePoint(src[len(src)-2], c), 2, nil
	}
	if text.IsHighSurrogate(c) {
		return 0, 0, ErrMalformedInput
	}
	return text.CodePoint(c), 1, nil
}
