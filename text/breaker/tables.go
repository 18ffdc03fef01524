package breaker

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/exeal/ascent/text"
)

// graphemeClass is the Grapheme_Cluster_Break property.
type graphemeClass uint8

const (
	gcbOther graphemeClass = iota
	gcbCR
	gcbLF
	gcbControl
	gcbExtend
	gcbPrepend
	gcbSpacingMark
	gcbL
	gcbV
	gcbT
	gcbLV
	gcbLVT
)

// wordClass is the Word_Break property.
type wordClass uint8

const (
	wbOther wordClass = iota
	wbCR
	wbLF
	wbNewline
	wbExtend
	wbFormat
	wbKatakana
	wbALetter
	wbMidLetter
	wbMidNum
	wbMidNumLet
	wbNumeric
	wbExtendNumLet
)

// sentenceClass is the Sentence_Break property.
type sentenceClass uint8

const (
	sbOther sentenceClass = iota
	sbCR
	sbLF
	sbSep
	sbSp
	sbExtend
	sbFormat
	sbLower
	sbUpper
	sbOLetter
	sbNumeric
	sbATerm
	sbSTerm
	sbClose
)

// Exception tables merged from the segmentation annex data. Extend and
// the mark categories come from the standard library; only the members
// not derivable from a general category are listed here.
var (
	extendExtra = rangetable.New(0x200C, 0x200D, 0xFF9E, 0xFF9F)

	prependTable = rangetable.New(
		0x0E40, 0x0E41, 0x0E42, 0x0E43, 0x0E44,
		0x0EC0, 0x0EC1, 0x0EC2, 0x0EC3, 0x0EC4,
	)

	katakanaExtra = rangetable.New(
		0x3031, 0x3032, 0x3033, 0x3034, 0x3035,
		0x309B, 0x309C, 0x30A0, 0x30FC, 0xFF70,
	)

	midLetterTable = rangetable.New(
		0x003A, // the Swedish colon
		0x00B7, 0x0387, 0x05F4, 0x2027, 0xFE13, 0xFE55, 0xFF1A,
	)

	midNumLetTable = rangetable.New(
		0x0027, 0x002E, 0x2018, 0x2019, 0x2024, 0xFE52, 0xFF07, 0xFF0E,
	)

	midNumTable = rangetable.New(
		0x002C, 0x003B, 0x037E, 0x0589, 0x060C, 0x060D, 0x066C, 0x07F8,
		0x2044, 0xFE10, 0xFE14, 0xFE50, 0xFE54, 0xFF0C, 0xFF1B,
	)

	wordNewlineTable = rangetable.New(0x000B, 0x000C, 0x0085, 0x2028, 0x2029)

	// Scripts whose letters segment by dictionary or cluster, excluded
	// from ALetter.
	aLetterExcluded = rangetable.Merge(
		unicode.Hiragana, unicode.Katakana, unicode.Han,
		unicode.Thai, unicode.Lao, unicode.Khmer, unicode.Myanmar,
	)

	aTermTable = rangetable.New(0x002E, 0x2024, 0xFE52, 0xFF0E)

	sTermTable = rangetable.New(
		0x0021, 0x003F, 0x061F, 0x06D4, 0x0700, 0x0701, 0x0702,
		0x0964, 0x0965, 0x1362, 0x1367, 0x1368, 0x104A, 0x104B,
		0x166E, 0x1803, 0x1809, 0x1944, 0x1945,
		0x203C, 0x203D, 0x2047, 0x2048, 0x2049,
		0x3002, 0xFE56, 0xFE57, 0xFF01, 0xFF1F, 0xFF61,
	)

	sepTable = rangetable.New(0x0085, 0x2028, 0x2029)
)

func isRune(t *unicode.RangeTable, cp text.CodePoint) bool {
	return text.IsScalarValue(cp) && unicode.Is(t, rune(cp))
}

// isExtendCP is the Grapheme_Extend approximation: the nonspacing and
// enclosing marks plus the join controls and the kana voicing marks.
func isExtendCP(cp text.CodePoint) bool {
	if !text.IsScalarValue(cp) {
		return false
	}
	r := rune(cp)
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) ||
		unicode.Is(extendExtra, r)
}

func graphemeClassOf(cp text.CodePoint) graphemeClass {
	switch cp {
	case 0x000D:
		return gcbCR
	case 0x000A:
		return gcbLF
	}
	if !text.IsScalarValue(cp) {
		return gcbControl
	}
	r := rune(cp)
	switch {
	case cp >= 0x1100 && cp <= 0x115F:
		return gcbL
	case cp >= 0x1160 && cp <= 0x11A7:
		return gcbV
	case cp >= 0x11A8 && cp <= 0x11FF:
		return gcbT
	case cp >= 0xAC00 && cp <= 0xD7A3:
		if (cp-0xAC00)%28 == 0 {
			return gcbLV
		}
		return gcbLVT
	}
	switch {
	case isExtendCP(cp):
		return gcbExtend
	case unicode.Is(unicode.Mc, r):
		return gcbSpacingMark
	case isRune(prependTable, cp):
		return gcbPrepend
	case unicode.Is(unicode.Cc, r), unicode.Is(unicode.Cf, r),
		unicode.Is(unicode.Zl, r), unicode.Is(unicode.Zp, r):
		return gcbControl
	}
	return gcbOther
}

func wordClassOf(cp text.CodePoint, syntax *text.IdentifierSyntax) wordClass {
	switch cp {
	case 0x000D:
		return wbCR
	case 0x000A:
		return wbLF
	}
	if !text.IsScalarValue(cp) {
		return wbOther
	}
	r := rune(cp)
	switch {
	case unicode.Is(wordNewlineTable, r):
		return wbNewline
	case isExtendCP(cp), unicode.Is(unicode.Mc, r):
		return wbExtend
	case unicode.Is(unicode.Cf, r):
		return wbFormat
	case unicode.Is(unicode.Katakana, r), unicode.Is(katakanaExtra, r):
		return wbKatakana
	case isRune(midNumLetTable, cp):
		return wbMidNumLet
	case isRune(midLetterTable, cp):
		return wbMidLetter
	case isRune(midNumTable, cp):
		return wbMidNum
	case unicode.Is(unicode.Nd, r):
		return wbNumeric
	case unicode.Is(unicode.Pc, r):
		return wbExtendNumLet
	case (unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)) &&
		!unicode.Is(aLetterExcluded, r):
		return wbALetter
	}
	// The content type's identifier syntax widens the letter class.
	if syntax != nil && syntax.IsIdentifierStart(cp) {
		return wbALetter
	}
	return wbOther
}

func sentenceClassOf(cp text.CodePoint) sentenceClass {
	switch cp {
	case 0x000D:
		return sbCR
	case 0x000A:
		return sbLF
	}
	if !text.IsScalarValue(cp) {
		return sbOther
	}
	r := rune(cp)
	switch {
	case unicode.Is(sepTable, r):
		return sbSep
	case isExtendCP(cp), unicode.Is(unicode.Mc, r):
		return sbExtend
	case unicode.Is(unicode.Cf, r):
		return sbFormat
	case unicode.IsSpace(r), cp == 0x0009:
		return sbSp
	case isRune(aTermTable, cp):
		return sbATerm
	case isRune(sTermTable, cp):
		return sbSTerm
	case unicode.Is(unicode.Ps, r), unicode.Is(unicode.Pe, r),
		unicode.Is(unicode.Pi, r), unicode.Is(unicode.Pf, r),
		cp == 0x0022, cp == 0x0027:
		return sbClose
	case unicode.Is(unicode.Ll, r), unicode.IsLower(r):
		return sbLower
	case unicode.Is(unicode.Lu, r), unicode.Is(unicode.Lt, r):
		return sbUpper
	case unicode.IsLetter(r), unicode.Is(unicode.Nl, r):
		return sbOLetter
	case unicode.Is(unicode.Nd, r):
		return sbNumeric
	}
	return sbOther
}
