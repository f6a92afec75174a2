package slab

import (
	"github.com/nvellum/slabdb/dirty"
	"github.com/nvellum/slabdb/file"
)

// Store is the reference-space allocator. Zero value is not usable; create
// one with NewStore and attach it before calling Alloc/Free/Translate.
type Store struct {
	probe SegmentProbe

	mode AttachMode
	f    file.File
	hb   *file.HeaderBuffer
	dt   *dirty.Tracker

	data     []byte // current read-only mapping (or owned/borrowed buffer)
	ownedBuf []byte // set only in OwnedBuffer mode; may differ from data by growth

	baseline   int64
	fileFormat uint8
	selectSlot int
	streaming  bool
	shared     bool

	slabs        []Slab
	mutableFree  []Chunk
	readOnlyFree []Chunk
	state        FreeSpaceState
}

// NewStore creates a detached store. probe must not be nil: it is the
// injected collaborator that knows how to read the byte-size and capacity of
// an allocated region's header, a concern this package deliberately does not
// implement itself.
func NewStore(probe SegmentProbe) *Store {
	return &Store{probe: probe, mode: None, state: StateInvalid}
}

// IsAttached reports whether the store currently owns a mapping or buffer.
func (s *Store) IsAttached() bool {
	return s.mode != None
}

// GetBaseline returns the size, in bytes, of the currently-mapped or
// currently-owned region — the boundary between read-only and mutable refs.
func (s *Store) GetBaseline() int64 {
	return s.baseline
}

// GetTotalSize returns baseline plus the size of every slab: the full extent
// of the reference space currently in use.
func (s *Store) GetTotalSize() int64 {
	total := s.baseline
	for _, sl := range s.slabs {
		total = int64(sl.RefEnd)
	}
	return total
}

// GetCommittedFileFormat returns the file-format version selected by the
// header's select bit.
func (s *Store) GetCommittedFileFormat() uint8 {
	return s.fileFormat
}

// IsReadOnly reports whether ref addresses the mapped file rather than a slab.
func (s *Store) IsReadOnly(ref Ref) bool {
	return int64(ref) < s.baseline
}

// HeaderBytes exposes the current in-memory header contents, for tests that
// assert on select-bit and top_ref state after PrepareForUpdate. Returns nil
// when the store isn't file-attached.
func (s *Store) HeaderBytes() []byte {
	if s.hb == nil {
		return nil
	}
	return s.hb.Bytes()
}
