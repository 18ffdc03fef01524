package kernel

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/exeal/ascent/text"
)

// PropertyKey identifies an entry of the document's opaque property map.
type PropertyKey string

// Document is a mutable Unicode text: an ordered sequence of lines edited
// through Replace, observed by listeners, tracked by points, recorded by
// the undo manager and annotated by the bookmarker and the partitioner.
//
// A document and everything attached to it must be driven from a single
// owning goroutine. There is no internal locking; sharing a document
// across goroutines requires external synchronization.
type Document struct {
	id    uuid.UUID
	store *lineStore

	revision               uint64
	lastUnmodifiedRevision uint64
	readOnly               bool
	narrowing              *Region

	properties      map[PropertyKey]string
	contentTypeInfo ContentTypeInformation
	input           DocumentInput
	partitioner     DocumentPartitioner

	listeners             []DocumentListener
	prenotifiedListeners  []DocumentListener
	rollbackListeners     []DocumentListener
	stateListeners        []DocumentStateListener
	partitioningListeners []PartitioningListener

	points     []*Point
	undo       *undoManager
	bookmarker *Bookmarker

	changing        bool
	rollbacking     bool
	firstChangeDone bool
	disposed        bool

	log logrus.FieldLogger
}

// New creates an empty document: a single empty line, revision zero.
func New(opts ...Option) *Document {
	d := &Document{
		id:         uuid.New(),
		store:      newLineStore(),
		properties: make(map[PropertyKey]string),
		contentTypeInfo: defaultContentTypeInformation{
			syntax: text.DefaultIdentifierSyntax(),
		},
		log: logrus.StandardLogger(),
	}
	d.undo = newUndoManager(d)
	d.bookmarker = newBookmarker(d)
	partitioner := &NullPartitioner{}
	partitioner.Install(d)
	d.partitioner = partitioner
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID returns the identity of this document instance.
func (d *Document) ID() uuid.UUID { return d.id }

// Dispose releases the document. Afterwards Replace, ReplaceFromReader,
// ResetContent, NarrowTo, Undo, Redo and NewPoint fail with
// ErrDocumentDisposed, as do Position and MoveTo on a point attached to
// it. The other methods do not report disposal: Widen, SetReadOnly,
// SetProperty, MarkUnmodified, the compound-change and undo-boundary
// calls and RecordChanges do nothing, and the accessors keep answering.
func (d *Document) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.points = nil
	d.listeners = nil
	d.prenotifiedListeners = nil
	d.rollbackListeners = nil
	d.stateListeners = nil
	d.partitioningListeners = nil
}

// IsDisposed reports whether Dispose was called.
func (d *Document) IsDisposed() bool { return d.disposed }

// Accessors

// Revision returns the monotonic change counter.
func (d *Document) Revision() uint64 { return d.revision }

// IsModified reports whether the document changed since it was last
// marked unmodified.
func (d *Document) IsModified() bool {
	return d.revision != d.lastUnmodifiedRevision
}

// MarkUnmodified records the current revision as the unmodified state.
func (d *Document) MarkUnmodified() {
	if d.disposed || !d.IsModified() {
		return
	}
	d.lastUnmodifiedRevision = d.revision
	d.firstChangeDone = false
	d.fireModificationSignChanged()
}

// IsReadOnly reports whether edits are rejected.
func (d *Document) IsReadOnly() bool { return d.readOnly }

// SetReadOnly toggles the read-only flag. Subsequent edits fail with
// ErrReadOnly.
func (d *Document) SetReadOnly(readOnly bool) {
	if d.disposed || d.readOnly == readOnly {
		return
	}
	d.readOnly = readOnly
	for _, l := range d.stateListeners {
		l.DocumentReadOnlySignChanged(d)
	}
}

// IsChanging reports whether the document is inside the edit pipeline.
func (d *Document) IsChanging() bool { return d.changing }

// Property returns the value stored under key, or the empty string.
func (d *Document) Property(key PropertyKey) string { return d.properties[key] }

// SetProperty stores an opaque string under key.
func (d *Document) SetProperty(key PropertyKey, value string) {
	if d.disposed || d.properties[key] == value {
		return
	}
	d.properties[key] = value
	for _, l := range d.stateListeners {
		l.DocumentPropertyChanged(d, key)
	}
}

// Input returns the input collaborator, or nil.
func (d *Document) Input() DocumentInput { return d.input }

// SetInput binds the input collaborator the document was opened from.
func (d *Document) SetInput(input DocumentInput) { d.input = input }

// ContentTypeInformation returns the identifier-syntax provider.
func (d *Document) ContentTypeInformation() ContentTypeInformation {
	return d.contentTypeInfo
}

// SetContentTypeInformation installs the identifier-syntax provider.
// A nil provider restores the default.
func (d *Document) SetContentTypeInformation(info ContentTypeInformation) {
	if info == nil {
		info = defaultContentTypeInformation{syntax: text.DefaultIdentifierSyntax()}
	}
	d.contentTypeInfo = info
}

// Bookmarker returns the marked-line set of this document.
func (d *Document) Bookmarker() *Bookmarker { return d.bookmarker }

// Partitioner returns the installed partitioner.
func (d *Document) Partitioner() DocumentPartitioner { return d.partitioner }

// SetPartitioner installs a partitioner. A nil partitioner restores the
// null partitioner.
func (d *Document) SetPartitioner(p DocumentPartitioner) {
	if p == nil {
		null := &NullPartitioner{}
		p = null
	}
	p.Install(d)
	d.partitioner = p
}

// Partition returns the partition containing pos.
func (d *Document) Partition(pos Position) Partition {
	return d.partitioner.Partition(d.Clamp(pos))
}

// NotifyPartitioningChanged is called by the installed partitioner to
// announce that the partitioning of region changed.
func (d *Document) NotifyPartitioningChanged(region Region) {
	for _, l := range d.partitioningListeners {
		l.DocumentPartitioningChanged(d, region)
	}
}

// Geometry

// LineCount returns the number of lines; a document has at least one.
func (d *Document) LineCount() int { return d.store.lineCount() }

// Line returns the line record at index i.
func (d *Document) Line(i int) (Line, error) {
	if i < 0 || i >= d.store.lineCount() {
		return Line{}, ErrBadPosition
	}
	return d.store.line(i), nil
}

// LineText returns the text of line i without its terminator. The
// returned slice is the document's storage; callers must not mutate it.
func (d *Document) LineText(i int) (text.String, error) {
	ln, err := d.Line(i)
	if err != nil {
		return nil, err
	}
	return ln.Text(), nil
}

// LineLength returns the length of line i in code units.
func (d *Document) LineLength(i int) (int, error) {
	ln, err := d.Line(i)
	if err != nil {
		return 0, err
	}
	return ln.Length(), nil
}

// Length returns the document length in code units under a terminator
// policy (text.Raw counts each line's own terminator).
func (d *Document) Length(nl text.Newline) int { return d.store.length(nl) }

// Region returns the region spanning the raw document.
func (d *Document) Region() Region {
	return Region{First: Position{}, Second: d.store.endPosition()}
}

// AccessibleRegion returns the narrowing if set, the whole document
// otherwise.
func (d *Document) AccessibleRegion() Region {
	if d.narrowing != nil {
		return *d.narrowing
	}
	return d.Region()
}

// IsNarrowed reports whether a narrowing is active.
func (d *Document) IsNarrowed() bool { return d.narrowing != nil }

// Text extracts the text of region under a terminator policy.
func (d *Document) Text(region Region, nl text.Newline) (text.String, error) {
	region = region.Normalize()
	if err := d.ValidatePosition(region.First, false); err != nil {
		return nil, err
	}
	if err := d.ValidatePosition(region.Second, false); err != nil {
		return nil, err
	}
	return d.store.textInRegion(region, nl), nil
}

// PositionToOffset converts p to a code-unit offset from the document
// start under a terminator policy.
func (d *Document) PositionToOffset(p Position, nl text.Newline) (int, error) {
	if err := d.ValidatePosition(p, false); err != nil {
		return 0, err
	}
	return d.store.positionToOffset(p, nl), nil
}

// OffsetToPosition converts a code-unit offset back to a position under
// the same policy.
func (d *Document) OffsetToPosition(off int, nl text.Newline) Position {
	if off < 0 {
		off = 0
	}
	return d.store.offsetToPosition(off, nl)
}

// Clamp shrinks p onto the raw document: the line is clamped to the last
// line and the offset to the line length. Invalid input is silently
// clipped; callers that need validation use ValidatePosition.
func (d *Document) Clamp(p Position) Position {
	if p.Line < 0 {
		return Position{}
	}
	if last := d.store.lineCount() - 1; p.Line > last {
		p.Line = last
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if max := len(d.store.line(p.Line).text); p.Offset > max {
		p.Offset = max
	}
	return p
}

// ClampToAccessible shrinks p onto the accessible region.
func (d *Document) ClampToAccessible(p Position) Position {
	p = d.Clamp(p)
	acc := d.AccessibleRegion()
	if p.Before(acc.Beginning()) {
		return acc.Beginning()
	}
	if p.After(acc.End()) {
		return acc.End()
	}
	return p
}

// ValidatePosition checks that p is a position of the raw document, and,
// if accessible is set, that it lies within the accessible region.
func (d *Document) ValidatePosition(p Position, accessible bool) error {
	if p.Line < 0 || p.Line >= d.store.lineCount() ||
		p.Offset < 0 || p.Offset > len(d.store.line(p.Line).text) {
		return ErrBadPosition
	}
	if accessible && d.narrowing != nil && !d.narrowing.Includes(p) {
		return ErrDocumentAccessViolation
	}
	return nil
}

// Narrowing

// NarrowTo restricts the accessible region to region. Edits outside it
// fail with ErrDocumentAccessViolation.
func (d *Document) NarrowTo(region Region) error {
	if d.disposed {
		return ErrDocumentDisposed
	}
	region = region.Normalize()
	if err := d.ValidatePosition(region.First, false); err != nil {
		return err
	}
	if err := d.ValidatePosition(region.Second, false); err != nil {
		return err
	}
	r := region
	d.narrowing = &r
	d.fireAccessibleRegionChanged()
	return nil
}

// Widen removes the narrowing.
func (d *Document) Widen() {
	if d.disposed || d.narrowing == nil {
		return
	}
	d.narrowing = nil
	d.fireAccessibleRegionChanged()
}

// Listeners

// AddListener subscribes l to change notifications.
func (d *Document) AddListener(l DocumentListener) {
	d.listeners = append(d.listeners, l)
}

// AddPrenotifiedListener subscribes l ahead of the regular listeners.
// Internal consumers (the partitioner's clients, the viewer) use this
// slot so they observe changes before user code.
func (d *Document) AddPrenotifiedListener(l DocumentListener) {
	d.prenotifiedListeners = append(d.prenotifiedListeners, l)
}

// AddRollbackListener subscribes l to the notifications sent while a
// failed change is being rolled back, in place of the regular lists.
func (d *Document) AddRollbackListener(l DocumentListener) {
	d.rollbackListeners = append(d.rollbackListeners, l)
}

// RemoveListener unsubscribes l from every change-notification list.
func (d *Document) RemoveListener(l DocumentListener) {
	d.listeners = removeListener(d.listeners, l)
	d.prenotifiedListeners = removeListener(d.prenotifiedListeners, l)
	d.rollbackListeners = removeListener(d.rollbackListeners, l)
}

// AddStateListener subscribes l to non-textual state notifications.
func (d *Document) AddStateListener(l DocumentStateListener) {
	d.stateListeners = append(d.stateListeners, l)
}

// RemoveStateListener unsubscribes l.
func (d *Document) RemoveStateListener(l DocumentStateListener) {
	for i, x := range d.stateListeners {
		if x == l {
			d.stateListeners = append(d.stateListeners[:i], d.stateListeners[i+1:]...)
			return
		}
	}
}

// AddPartitioningListener subscribes l to partitioning notifications.
func (d *Document) AddPartitioningListener(l PartitioningListener) {
	d.partitioningListeners = append(d.partitioningListeners, l)
}

// RemovePartitioningListener unsubscribes l.
func (d *Document) RemovePartitioningListener(l PartitioningListener) {
	for i, x := range d.partitioningListeners {
		if x == l {
			d.partitioningListeners = append(d.partitioningListeners[:i], d.partitioningListeners[i+1:]...)
			return
		}
	}
}

func removeListener(list []DocumentListener, l DocumentListener) []DocumentListener {
	for i, x := range list {
		if x == l {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Points

func (d *Document) registerPoint(p *Point) {
	d.points = append(d.points, p)
}

func (d *Document) unregisterPoint(p *Point) {
	for i, x := range d.points {
		if x == p {
			d.points = append(d.points[:i], d.points[i+1:]...)
			return
		}
	}
}

// PointCount returns the number of registered points.
func (d *Document) PointCount() int { return len(d.points) }

// Editing

// Replace atomically substitutes the text in region with t and returns
// the position just past the inserted text. The full pipeline runs: pre-
// notification, splice, anchor update, undo recording, partitioner
// revalidation, post-notification.
func (d *Document) Replace(region Region, t text.String) (Position, error) {
	change, _, err := d.replace(region, t, replaceOpts{})
	if err != nil {
		return Position{}, err
	}
	return change.Inserted.End(), nil
}

// ReplaceFromReader is Replace with streaming input: rd is drained as
// UTF-8 before the substitution. The document stays in the changing
// state while reading, so reentrant edits are rejected for the duration.
func (d *Document) ReplaceFromReader(region Region, rd io.Reader) (Position, error) {
	if d.disposed {
		return Position{}, ErrDocumentDisposed
	}
	if d.changing {
		return Position{}, ErrChangeRejected
	}
	d.changing = true
	data, err := io.ReadAll(rd)
	if err != nil {
		d.changing = false
		return Position{}, fmt.Errorf("read input: %w", err)
	}
	change, _, err := d.replace(region, text.S(string(data)), replaceOpts{changingPreset: true})
	if err != nil {
		return Position{}, err
	}
	return change.Inserted.End(), nil
}

// replaceOpts selects the internal pipeline variants.
type replaceOpts struct {
	// viaHistory suppresses undo recording (the undo manager drives
	// this replace and collects the inverse itself).
	viaHistory bool
	// rollbacking restores a prior state: read-only and narrowing do
	// not apply, recording stays off, and the rollback listener list is
	// notified in place of the regular lists.
	rollbacking bool
	// changingPreset marks that the caller already holds the changing
	// state (streaming input).
	changingPreset bool
}

// replace is the edit pipeline: preconditions, pre-notification and
// veto, splice, revision, anchor update, recording, partitioner
// revalidation, post-notification, wrap-up.
func (d *Document) replace(region Region, t text.String, o replaceOpts) (Change, text.String, error) {
	// 1. Preconditions.
	if d.disposed {
		return Change{}, nil, ErrDocumentDisposed
	}
	if d.changing && !o.changingPreset {
		return Change{}, nil, ErrChangeRejected
	}
	if d.readOnly && !o.rollbacking {
		if o.changingPreset {
			d.changing = false
		}
		return Change{}, nil, ErrReadOnly
	}
	region = region.Normalize()
	if err := d.ValidatePosition(region.First, false); err != nil {
		if o.changingPreset {
			d.changing = false
		}
		return Change{}, nil, err
	}
	if err := d.ValidatePosition(region.Second, false); err != nil {
		if o.changingPreset {
			d.changing = false
		}
		return Change{}, nil, err
	}
	if !o.rollbacking && d.narrowing != nil && !d.narrowing.Encompasses(region) {
		if o.changingPreset {
			d.changing = false
		}
		return Change{}, nil, ErrDocumentAccessViolation
	}

	// 2. Pre-notification; the input collaborator may veto.
	d.changing = true
	d.rollbacking = o.rollbacking
	defer func() {
		d.changing = false
		d.rollbacking = false
	}()
	for _, l := range d.aboutToChangeLists(o.rollbacking) {
		l.DocumentAboutToBeChanged(d)
	}
	if d.input != nil && !d.input.IsChangeable(d) {
		return Change{}, nil, ErrChangeRejected
	}

	// 3. Splice.
	erased := d.store.textInRegion(region, text.Raw)
	change := d.store.splice(region, t, d.revision+1)

	// 4. Revision.
	wasModified := d.IsModified()
	d.revision++

	// 5. Anchors, then the structures that follow positions.
	for _, p := range d.points {
		p.update(change)
	}
	if d.narrowing != nil {
		first := updatePosition(d.narrowing.First, change, text.Backward)
		second := updatePosition(d.narrowing.Second, change, text.Forward)
		d.narrowing = &Region{First: first, Second: second}
	}
	d.bookmarker.documentChanged(change)

	// 6. Undo recording.
	if !o.viaHistory && !o.rollbacking {
		d.undo.record(change, erased)
	}

	// 7. Partitioner revalidation.
	d.notifyPartitioner(change)

	// 8. Post-notification; panics are logged and suppressed, committed
	// state cannot unwind.
	for _, l := range d.changedLists(o.rollbacking) {
		d.notifyChanged(l, change)
	}

	// 9. Wrap-up.
	if !wasModified {
		d.fireModificationSignChanged()
	}
	if !d.firstChangeDone {
		d.firstChangeDone = true
		if d.input != nil {
			d.input.PostFirstDocumentChange(d)
		}
	}
	return change, erased, nil
}

func (d *Document) aboutToChangeLists(rollbacking bool) []DocumentListener {
	if rollbacking {
		return d.rollbackListeners
	}
	out := make([]DocumentListener, 0, len(d.prenotifiedListeners)+len(d.listeners))
	out = append(out, d.prenotifiedListeners...)
	return append(out, d.listeners...)
}

func (d *Document) changedLists(rollbacking bool) []DocumentListener {
	return d.aboutToChangeLists(rollbacking)
}

func (d *Document) notifyChanged(l DocumentListener, change Change) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithField("document", d.id).
				Errorf("document listener panicked in DocumentChanged: %v", r)
		}
	}()
	l.DocumentChanged(d, change)
}

func (d *Document) notifyPartitioner(change Change) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithField("document", d.id).
				Errorf("partitioner panicked in DocumentChanged: %v", r)
		}
	}()
	d.partitioner.DocumentChanged(change)
}

// ResetContent clears the document to a single empty line. All points
// move to the beginning, the bookmarks and the undo stacks are cleared,
// and the revision still advances.
func (d *Document) ResetContent() error {
	if d.disposed {
		return ErrDocumentDisposed
	}
	if d.changing {
		return ErrChangeRejected
	}
	d.changing = true
	defer func() { d.changing = false }()

	for _, l := range d.aboutToChangeLists(false) {
		l.DocumentAboutToBeChanged(d)
	}
	whole := d.Region()
	d.store.reset()
	wasModified := d.IsModified()
	d.revision++
	for _, p := range d.points {
		_ = p.moveTo(Position{})
	}
	d.narrowing = nil
	d.bookmarker.Clear()
	d.undo.clear()

	change := Change{Erased: whole, Inserted: CollapsedRegion(Position{})}
	d.notifyPartitioner(change)
	for _, l := range d.changedLists(false) {
		d.notifyChanged(l, change)
	}
	if !wasModified {
		d.fireModificationSignChanged()
	}
	return nil
}

// Undo and compound changes

// BeginCompoundChange opens a compound change. Calls nest; the outermost
// pair fences one user-visible undo unit.
func (d *Document) BeginCompoundChange() {
	if d.disposed {
		return
	}
	d.undo.beginCompound()
}

// EndCompoundChange closes the innermost compound change.
func (d *Document) EndCompoundChange() {
	if d.disposed {
		return
	}
	d.undo.endCompound()
}

// CompoundChange runs fn inside a compound change pair.
func (d *Document) CompoundChange(fn func() error) error {
	d.BeginCompoundChange()
	defer d.EndCompoundChange()
	return fn()
}

// InsertUndoBoundary forces subsequent edits into a new undo unit.
func (d *Document) InsertUndoBoundary() {
	if d.disposed {
		return
	}
	d.undo.insertBoundary()
}

// RecordsChanges reports whether edits are recorded for undo.
func (d *Document) RecordsChanges() bool { return d.undo.recording }

// RecordChanges toggles undo recording. Disabling clears both stacks.
func (d *Document) RecordChanges(record bool) {
	if d.disposed {
		return
	}
	d.undo.setRecording(record)
}

// NumberOfUndoableChanges returns the undo stack depth.
func (d *Document) NumberOfUndoableChanges() int { return d.undo.numberOfUndoable() }

// NumberOfRedoableChanges returns the redo stack depth.
func (d *Document) NumberOfRedoableChanges() int { return d.undo.numberOfRedoable() }

// Undo reverses up to n undo units. It reports whether all n applied; a
// unit that cannot apply (read-only document, narrowing breach,
// rejection) aborts with its error after rolling back partial progress.
func (d *Document) Undo(n int) (bool, error) {
	if d.disposed {
		return false, ErrDocumentDisposed
	}
	if d.changing {
		return false, ErrChangeRejected
	}
	return d.undo.undo(n)
}

// Redo reapplies up to n undone units.
func (d *Document) Redo(n int) (bool, error) {
	if d.disposed {
		return false, ErrDocumentDisposed
	}
	if d.changing {
		return false, ErrChangeRejected
	}
	return d.undo.redo(n)
}

// State notifications

func (d *Document) fireModificationSignChanged() {
	for _, l := range d.stateListeners {
		l.DocumentModificationSignChanged(d)
	}
}

func (d *Document) fireAccessibleRegionChanged() {
	for _, l := range d.stateListeners {
		l.DocumentAccessibleRegionChanged(d)
	}
}
