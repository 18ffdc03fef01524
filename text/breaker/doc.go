// Package breaker implements the text segmentation boundary iterators
// of UAX #29: grapheme cluster, word and sentence breaks.
//
// Each iterator wraps a text.CharacterIterator and moves it by whole
// boundaries:
//
//	it := breaker.NewGraphemeIterator(text.NewStringCharacterIterator(s))
//	err := it.Next(1) // advance one grapheme cluster
//
// The word iterator accepts a component mask selecting which boundaries
// it stops at (segment starts, segment ends, only alphanumeric
// segments) and an identifier syntax that widens the letter class, so a
// content type can make '_' or '-' part of words.
//
// The property classification is built from the general category and
// script tables of the standard library merged with the exception lists
// of the segmentation annex; the rules are evaluated directly. Each
// boundary test clones the wrapped iterator for its look-behind and
// look-ahead, so the iterators allocate while they move, not only at
// construction.
package breaker
