// Package dirty tracks which byte ranges of the header buffer have been
// modified since the last flush, and knows how to push them to durable
// storage in the right order.
//
// Unlike a design that mmaps its data read-write and msyncs pages, this
// engine's mapped region is always read-only (see package file): mutations
// only ever touch the small in-memory header buffer, and reach disk through
// an explicit positioned write followed by fsync/fdatasync. Tracker exists
// so header-touching code (prepare_for_update) doesn't need to know
// which bytes changed — it just calls Add and lets the tracker coalesce and
// write the minimal set of ranges.
package dirty

// DirtyTracker is the minimal interface for recording modified byte ranges.
type DirtyTracker interface {
	// Add marks a byte range as dirty. off is relative to the start of the
	// header buffer, length is the number of bytes.
	Add(off, length int)
}

// FlushableTracker extends DirtyTracker with the ability to push dirty
// regions to disk. Only the commit path (slab's PrepareForUpdate) needs this.
type FlushableTracker interface {
	DirtyTracker

	// FlushDataOnly writes every dirty range to the backing file without
	// forcing durability.
	FlushDataOnly() error

	// FlushHeaderAndMeta writes the header range and applies the durability
	// policy described by mode.
	FlushHeaderAndMeta(mode FlushMode) error
}

// Source is what a Tracker needs from its backing file: the current header
// bytes, a positioned write, and the descriptor to fsync.
type Source interface {
	Bytes() []byte
	WriteAt(off int64, p []byte) error
	FD() int
}
