// Package text provides the character-level data model for the editor
// kernel: UTF-16 code units and strings, Unicode scalar values, the
// recognized newline set, simple case folding, identifier syntax, and a
// bidirectional code-point iterator abstraction.
//
// The package provides:
//
//   - Char (UTF-16 code unit) and CodePoint (21-bit Unicode scalar)
//   - String, a UTF-16 code-unit sequence with Go string conversion
//   - Newline, the recognized line terminator set with detection
//   - FoldCase, simple case folding for case-insensitive comparison
//   - IdentifierSyntax, a configurable identifier character classifier
//   - CharacterIterator, a bidirectional iterator whose unit is a whole
//     Unicode scalar (surrogate pairs are never split)
//
// Positions in the kernel count UTF-16 code units, so String is the
// storage type for all document text. Conversion to and from native Go
// strings happens only at the API boundary via S and String.String.
//
// Basic usage:
//
//	s := text.S("café")
//	for i := 0; i < s.Len(); {
//	    cp, n := text.DecodeChar(s[i:])
//	    // process cp...
//	    i += n
//	}
//
// None of the types in this package are safe for concurrent mutation;
// the kernel is designed to be driven from a single owning goroutine.
package text
