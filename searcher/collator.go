package searcher

import "github.com/exeal/ascent/text"

// Collator maps code points to collation elements for collation-aware
// literal matching. A weight of zero marks an ignorable character; two
// code points with the same nonzero weight compare equal.
type Collator interface {
	// Weight returns the collation element of cp, or 0 if cp is
	// ignorable at the collator's strength.
	Weight(cp text.CodePoint) int
	// HasVariable reports whether cp is a variable element (punctuation
	// and symbols that alternate handling may ignore).
	HasVariable(cp text.CodePoint) bool
}
