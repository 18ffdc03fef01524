package kernel

// DefaultContentType is the content type of unpartitioned text.
const DefaultContentType = "text"

// Partition tags a contiguous region of the document with a content
// type. The partitions of a document are disjoint and cover it.
type Partition struct {
	ContentType string
	Region      Region
}

// DocumentPartitioner computes the partitioning of a document. A
// partitioner is installed into exactly one document at a time and is
// notified of every change before the regular listeners, so listeners
// always observe a consistent partitioning.
type DocumentPartitioner interface {
	// Install binds the partitioner to doc.
	Install(doc *Document)
	// DocumentChanged is sent after each mutation. The partitioner
	// revalidates and may announce the damage through
	// Document.NotifyPartitioningChanged.
	DocumentChanged(change Change)
	// Partition returns the partition containing pos.
	Partition(pos Position) Partition
}

// NullPartitioner is the default partitioner: one partition of the
// default content type spanning the whole document.
type NullPartitioner struct {
	doc *Document
}

// Install binds the partitioner to doc.
func (p *NullPartitioner) Install(doc *Document) { p.doc = doc }

// DocumentChanged does nothing; the single partition is always valid.
func (p *NullPartitioner) DocumentChanged(Change) {}

// Partition returns the whole document tagged with DefaultContentType.
func (p *NullPartitioner) Partition(Position) Partition {
	return Partition{
		ContentType: DefaultContentType,
		Region:      p.doc.Region(),
	}
}
