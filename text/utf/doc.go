// Package utf provides stateless encode and decode primitives for the
// UTF-8, UTF-16 and UTF-32 encoding forms, with well-formedness checks.
//
// Every function is allocation-free. The unchecked Decode* variants
// assume well-formed input and substitute U+FFFD only where a result
// must be produced; the *Checked variants report ErrMalformedInput on
// over-long forms, isolated surrogates, truncated trailers and values
// outside the codespace. Encoding a surrogate or an out-of-range value
// fails with ErrInvalidScalarValue.
//
// The UTF-8 first-byte classification is derived from the well-formed
// byte sequence table of the Unicode standard (UAX: Table 3-7): bytes
// 0xC0, 0xC1 and 0xF5..0xFF never appear in well-formed UTF-8, and the
// valid range of the first continuation byte depends on the lead byte.
package utf
