package utf

import "github.com/exeal/ascent/text"

// Encode32 writes cp into dst and returns 1.
func Encode32(cp text.CodePoint, dst []uint32) (int, error) {
	if !text.IsScalarValue(cp) {
		return 0, ErrInvalidScalarValue
	}
	if len(dst) < 1 {
		return 0, ErrShortBuffer
	}
	dst[0] = cp
	return 1, nil
}

// DecodeFirst32 decodes the scalar at src[0]. An invalid unit yields
// (text.Replacement, 1).
func DecodeFirst32(src []uint32) (text.CodePoint, int) {
	cp, n, err := DecodeFirst32Checked(src)
	if err != nil {
		return text.Replacement, 1
	}
	return cp, n
}

// DecodeFirst32Checked decodes the scalar at src[0], reporting
// ErrMalformedInput on surrogates, out-of-range values and empty input.
func DecodeFirst32Checked(src []uint32) (text.CodePoint, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrMalformedInput
	}
	cp := text.CodePoint(src[0])
	if !text.IsScalarValue(cp) {
		return 0, 0, ErrMalformedInput
	}
	return cp, 1, nil
}

// DecodeLast32 decodes the scalar ending at the end of src.
func DecodeLast32(src []uint32) (text.CodePoint, int) {
	if len(src) == 0 {
		return text.Replacement, 1
	}
	return DecodeFirst32(src[len(src)-1:])
}

// DecodeLast32Checked decodes the scalar ending at the end of src.
func DecodeLast32Checked(src []uint32) (text.CodePoint, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrMalformedInput
	}
	return DecodeFirst32Checked(src[len(src)-1:])
}
