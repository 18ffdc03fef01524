// Package searcher implements text search over kernel documents:
// literal patterns (a Boyer–Moore–Horspool variant with optional
// collation elements), regular expression patterns backed by the
// regexp2 engine, the TextSearcher session object with pattern history
// and interactive replace-all, and the IncrementalSearcher keystroke
// session.
//
// Basic usage:
//
//	s := searcher.NewTextSearcher()
//	p := searcher.NewLiteralPattern(text.S("foo"), false, nil)
//	s.SetLiteralPattern(p, false)
//	region, found, _ := s.Search(doc, kernel.Position{}, doc.Region(), text.Forward)
//
// Searching reads the document through its character iterator; the
// TextSearcher caches the last result keyed by document revision so a
// find-next call does no redundant bookkeeping. All of the package
// follows the kernel's single-goroutine model.
package searcher
