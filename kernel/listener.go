package kernel

import "github.com/exeal/ascent/text"

// DocumentListener observes document changes. Both notifications run
// synchronously inside the edit pipeline, on the calling goroutine.
type DocumentListener interface {
	// DocumentAboutToBeChanged is sent before the document mutates.
	DocumentAboutToBeChanged(doc *Document)
	// DocumentChanged is sent after the document mutated, anchors were
	// updated and the change was recorded.
	DocumentChanged(doc *Document, change Change)
}

// DocumentStateListener observes non-textual state transitions.
type DocumentStateListener interface {
	// DocumentModificationSignChanged is sent when IsModified flips.
	DocumentModificationSignChanged(doc *Document)
	// DocumentReadOnlySignChanged is sent when the read-only flag flips.
	DocumentReadOnlySignChanged(doc *Document)
	// DocumentAccessibleRegionChanged is sent on narrowing and widening.
	DocumentAccessibleRegionChanged(doc *Document)
	// DocumentPropertyChanged is sent when a property value changes.
	DocumentPropertyChanged(doc *Document, key PropertyKey)
}

// DocumentInput is the collaborator the document was opened from. It can
// veto edits and learns about the first change after load.
type DocumentInput interface {
	// Encoding returns the MIME charset name of the input.
	Encoding() string
	// Location returns a human-readable origin (a path, a URL).
	Location() string
	// Newline returns the terminator style of the input.
	Newline() text.Newline
	// IsChangeable is consulted before every edit; returning false
	// rejects the change.
	IsChangeable(doc *Document) bool
	// PostFirstDocumentChange is called after the first successful edit
	// since the document was loaded or marked unmodified.
	PostFirstDocumentChange(doc *Document)
}

// PartitioningListener observes partitioning recomputation.
type PartitioningListener interface {
	// DocumentPartitioningChanged is sent with the region whose
	// partitioning is no longer valid.
	DocumentPartitioningChanged(doc *Document, region Region)
}

// ContentTypeInformation supplies per-content-type syntax tables.
type ContentTypeInformation interface {
	// IdentifierSyntax returns the identifier classification for a
	// content type.
	IdentifierSyntax(contentType string) text.IdentifierSyntax
}

// defaultContentTypeInformation answers every content type with the
// default identifier syntax.
type defaultContentTypeInformation struct {
	syntax text.IdentifierSyntax
}

func (d defaultContentTypeInformation) IdentifierSyntax(string) text.IdentifierSyntax {
	return d.syntax
}
