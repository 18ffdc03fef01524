package breaker

import (
	"testing"

	"github.com/rivo/uniseg"

	"github.com/exeal/ascent/text"
)

func graphemeAt(s string, pos int) *GraphemeIterator {
	str := text.S(s)
	return NewGraphemeIterator(text.NewStringCharacterIteratorAt(str, 0, len(str), pos))
}

func position(g *GraphemeIterator) int {
	return g.Base().(*text.StringCharacterIterator).Position()
}

func TestGraphemeSkipsCombiningMark(t *testing.T) {
	g := graphemeAt("áb", 0)
	if err := g.Next(1); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if got := position(g); got != 2 {
		t.Errorf("expected the cluster boundary at 2, got %d", got)
	}
}

func TestGraphemeCRLFIsOneCluster(t *testing.T) {
	g := graphemeAt("a\r\nb", 1)
	if !g.IsBoundary() {
		t.Fatal("expected a boundary before CR")
	}
	if err := g.Next(1); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if got := position(g); got != 3 {
		t.Errorf("expected CRLF consumed as one cluster, boundary at 3, got %d", got)
	}
}

func TestGraphemeHangulComposition(t *testing.T) {
	// Conjoining jamo L + V + T compose into one cluster.
	g := graphemeAt("\u1100\u1161\u11a8x", 0)
	if err := g.Next(1); err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if got := position(g); got != 3 {
		t.Errorf("expected the jamo sequence as one cluster, boundary at 3, got %d", got)
	}
}

func TestGraphemeIsBoundaryInsideCluster(t *testing.T) {
	g := graphemeAt("á", 1)
	if g.IsBoundary() {
		t.Error("before a combining mark is not a boundary")
	}
}

func TestGraphemePrevious(t *testing.T) {
	g := graphemeAt("áb", 3)
	if err := g.Previous(1); err != nil {
		t.Fatalf("Previous failed: %v", err)
	}
	if got := position(g); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if err := g.Previous(1); err != nil {
		t.Fatalf("Previous failed: %v", err)
	}
	if got := position(g); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if err := g.Previous(1); err != text.ErrNoSuchElement {
		t.Errorf("expected ErrNoSuchElement at the start, got %v", err)
	}
}

func TestGraphemeExhaustion(t *testing.T) {
	g := graphemeAt("ab", 0)
	if err := g.Next(2); err != nil {
		t.Fatalf("Next(2) failed: %v", err)
	}
	if err := g.Next(1); err != text.ErrNoSuchElement {
		t.Errorf("expected ErrNoSuchElement at the end, got %v", err)
	}
}

// TestGraphemeAgainstUniseg cross-checks the iterator against the
// uniseg segmenter on samples inside the rule set both implement
// identically.
func TestGraphemeAgainstUniseg(t *testing.T) {
	samples := []string{
		"hello world",
		"áêï",
		"각가힣",
		"tabs\tand\r\nlines\n",
		"mixé́",
	}
	for _, sample := range samples {
		want := unisegBoundaries(sample)
		got := iteratorBoundaries(sample)
		if len(want) != len(got) {
			t.Errorf("%q: expected boundaries %v, got %v", sample, want, got)
			continue
		}
		for i := range want {
			if want[i] != got[i] {
				t.Errorf("%q: expected boundaries %v, got %v", sample, want, got)
				break
			}
		}
	}
}

// unisegBoundaries returns the cluster boundaries as scalar counts.
func unisegBoundaries(s string) []int {
	var out []int
	n := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		n += len(gr.Runes())
		out = append(out, n)
	}
	return out
}

// iteratorBoundaries returns our boundaries as scalar counts.
func iteratorBoundaries(s string) []int {
	str := text.S(s)
	g := NewGraphemeIterator(text.NewStringCharacterIterator(str))
	var out []int
	for g.Next(1) == nil {
		out = append(out, g.Base().Offset())
	}
	return out
}
