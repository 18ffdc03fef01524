package utf

import (
	"testing"

	"github.com/exeal/ascent/text"
)

func TestEncode8Lengths(t *testing.T) {
	cases := []struct {
		cp  text.CodePoint
		len int
	}{
		{0x24, 1},     // $
		{0xA2, 2},     // ¢
		{0x20AC, 3},   // €
		{0x10348, 4},  // hwair
		{0x10FFFF, 4}, // last scalar
	}
	var buf [4]byte
	for _, c := range cases {
		n, err := Encode8(c.cp, buf[:])
		if err != nil {
			t.Fatalf("Encode8(%X) failed: %v", c.cp, err)
		}
		if n != c.len {
			t.Errorf("Encode8(%X): expected %d bytes, got %d", c.cp, c.len, n)
		}
		cp, m, err := DecodeFirst8Checked(buf[:n])
		if err != nil || cp != c.cp || m != n {
			t.Errorf("decode of encoded %X: got (%X, %d, %v)", c.cp, cp, m, err)
		}
	}
}

func TestEncodeRejectsInvalidScalars(t *testing.T) {
	var b8 [4]byte
	var b16 [2]text.Char
	var b32 [1]uint32
	for _, cp := range []text.CodePoint{0xD800, 0xDFFF, 0x110000} {
		if _, err := Encode8(cp, b8[:]); err != ErrInvalidScalarValue {
			t.Errorf("Encode8(%X): expected ErrInvalidScalarValue, got %v", cp, err)
		}
		if _, err := Encode16(cp, b16[:]); err != ErrInvalidScalarValue {
			t.Errorf("Encode16(%X): expected ErrInvalidScalarValue, got %v", cp, err)
		}
		if _, err := Encode32(cp, b32[:]); err != ErrInvalidScalarValue {
			t.Errorf("Encode32(%X): expected ErrInvalidScalarValue, got %v", cp, err)
		}
	}
}

func TestDecode8Malformed(t *testing.T) {
	cases := [][]byte{
		{0xC0, 0xAF},       // over-long form
		{0xC1, 0xBF},       // over-long form
		{0xE0, 0x80, 0x80}, // over-long form
		{0xED, 0xA0, 0x80}, // encoded surrogate
		{0xF4, 0x90, 0x80, 0x80}, // past U+10FFFF
		{0xF5, 0x80, 0x80, 0x80}, // invalid lead
		{0x80},             // continuation as lead
		{0xE2, 0x82},       // truncated trailer
	}
	for _, c := range cases {
		if _, _, err := DecodeFirst8Checked(c); err != ErrMalformedInput {
			t.Errorf("DecodeFirst8Checked(% X): expected ErrMalformedInput, got %v", c, err)
		}
	}
}

func TestByteClassifiers(t *testing.T) {
	for _, b := range []byte{0xC0, 0xC1, 0xF5, 0xFF} {
		if IsValidByte(b) {
			t.Errorf("byte %02X must be invalid", b)
		}
	}
	if !IsLeadingByte(0x41) || !IsLeadingByte(0xC2) || !IsLeadingByte(0xF4) {
		t.Error("valid lead bytes misclassified")
	}
	if IsLeadingByte(0x80) {
		t.Error("a continuation byte cannot lead")
	}
	if !MaybeTrailingByte(0xBF) || MaybeTrailingByte(0x41) {
		t.Error("trailing-byte shape misclassified")
	}
	if Length8(0xE2) != 3 || Length8(0xF0) != 4 || Length8(0x00) != 1 || Length8(0xC0) != 0 {
		t.Error("Length8 table wrong")
	}
}

func TestDecodeLast8(t *testing.T) {
	b := []byte("a€")
	cp, n, err := DecodeLast8Checked(b)
	if err != nil || cp != 0x20AC || n != 3 {
		t.Errorf("expected (20AC, 3), got (%X, %d, %v)", cp, n, err)
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	var buf [2]text.Char
	for _, cp := range []text.CodePoint{0x41, 0xFFFD, 0x10000, 0x1D11E, 0x10FFFF} {
		n, err := Encode16(cp, buf[:])
		if err != nil {
			t.Fatalf("Encode16(%X): %v", cp, err)
		}
		got, m, err := DecodeFirst16Checked(buf[:n])
		if err != nil || got != cp || m != n {
			t.Errorf("UTF-16 round trip of %X: got (%X, %d, %v)", cp, got, m, err)
		}
		got, m, err = DecodeLast16Checked(buf[:n])
		if err != nil || got != cp || m != n {
			t.Errorf("UTF-16 last-decode of %X: got (%X, %d, %v)", cp, got, m, err)
		}
	}
}

func TestUTF16UnpairedSurrogates(t *testing.T) {
	if _, _, err := DecodeFirst16Checked([]text.Char{0xD800}); err != ErrMalformedInput {
		t.Errorf("lone high surrogate: expected ErrMalformedInput, got %v", err)
	}
	if _, _, err := DecodeFirst16Checked([]text.Char{0xDC00, 0x41}); err != ErrMalformedInput {
		t.Errorf("lone low surrogate: expected ErrMalformedInput, got %v", err)
	}
	if cp, n := DecodeFirst16([]text.Char{0xD800}); cp != text.Replacement || n != 1 {
		t.Errorf("unchecked decode: expected (FFFD, 1), got (%X, %d)", cp, n)
	}
}

func TestUTF32(t *testing.T) {
	var buf [1]uint32
	if _, err := Encode32(0x1D11E, buf[:]); err != nil || buf[0] != 0x1D11E {
		t.Fatalf("Encode32 failed: %v", err)
	}
	cp, n, err := DecodeFirst32Checked(buf[:])
	if err != nil || cp != 0x1D11E || n != 1 {
		t.Errorf("expected (1D11E, 1), got (%X, %d, %v)", cp, n, err)
	}
	if _, _, err := DecodeFirst32Checked([]uint32{0xD800}); err != ErrMalformedInput {
		t.Errorf("surrogate in UTF-32: expected ErrMalformedInput, got %v", err)
	}
	if _, _, err := DecodeFirst32Checked([]uint32{0x110000}); err != ErrMalformedInput {
		t.Errorf("out of range in UTF-32: expected ErrMalformedInput, got %v", err)
	}
}
