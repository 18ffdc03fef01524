// Package kernel implements the text-storage core of the editor engine:
// a mutable document of Unicode text edited at arbitrary positions,
// with self-adjusting points, undo/redo, bookmarks, partitioning and
// change notification.
//
// The package provides:
//
//   - Document, an ordered sequence of line records edited through
//     Replace and observed through listener interfaces
//   - Position and Region, line/code-unit coordinates
//   - Point, a position that follows document changes under gravity
//     rules and supports movement hooks
//   - Undo/Redo with atomic and compound change units
//   - Bookmarker, the marked-line set with navigation
//   - DocumentPartitioner, the content-type partitioning contract
//   - CharacterIterator, a bidirectional scalar iterator over a
//     document region
//
// Edit pipeline:
//
// A call to Replace runs, in order: precondition checks, the
// about-to-change notification (during which the input collaborator may
// veto), the line-store splice, the revision increment, point updates,
// undo recording, partitioner revalidation, and the changed
// notification. Listener panics during the changed notification are
// logged and suppressed because committed state cannot unwind; a change
// that fails during undo replay is rolled back with the internal
// rollbacking flag set, which bypasses the read-only flag and the
// narrowing and notifies the rollback listener list instead of the
// regular ones.
//
// Basic usage:
//
//	doc := kernel.New()
//	end, err := doc.Replace(kernel.CollapsedRegion(kernel.Position{}), text.S("hello\nworld"))
//	// end == (1,5)
//
// Thread safety:
//
// A Document and everything attached to it (points, bookmarker,
// partitioner, undo stacks) must be driven from a single owning
// goroutine; there is no internal locking. Listener callbacks run
// synchronously inside the edit pipeline on the calling goroutine.
package kernel
