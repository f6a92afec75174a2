package slab

import (
	"fmt"

	"github.com/nvellum/slabdb/internal/buf"
)

// growthRounding is the multiple every new slab's payload is rounded up to.
const growthRounding = 256

// Alloc reserves size bytes and returns their address and reference. size
// must be positive and a multiple of 8.
func (s *Store) Alloc(size int64) ([]byte, Ref, error) {
	if !s.IsAttached() {
		return nil, 0, ErrNotAttached
	}
	if size <= 0 || buf.CheckAligned8("alloc size", size) != nil {
		return nil, 0, fmt.Errorf("slab: alloc size %d: %w", size, ErrMisaligned)
	}
	if s.state == StateInvalid {
		return nil, 0, ErrInvalidFreeSpace
	}
	s.state = StateDirty

	if ref, ok := s.reuseFromFreeList(size); ok {
		addr, err := s.Translate(ref)
		if err != nil {
			return nil, 0, err
		}
		addr = addr[:size]
		if zeroFillOnAlloc.Load() {
			for i := range addr {
				addr[i] = 0
			}
		}
		tracef("alloc reuse size=%d ref=%d", size, ref)
		return addr, ref, nil
	}

	return s.growAndAlloc(size)
}

// reuseFromFreeList scans the mutable free list in reverse — the tail is
// biased toward recently freed, contiguous chunks — and takes the first
// chunk large enough to satisfy size. Consuming a chunk exactly removes it
// with swap-and-pop; a larger chunk is shrunk from the front so any
// remaining tail bytes stay a valid, contiguous chunk.
func (s *Store) reuseFromFreeList(size int64) (Ref, bool) {
	for i := len(s.mutableFree) - 1; i >= 0; i-- {
		c := s.mutableFree[i]
		if c.Size < size {
			continue
		}
		ref := c.Ref
		if c.Size == size {
			s.swapRemoveChunk(&s.mutableFree, i)
		} else {
			s.mutableFree[i] = Chunk{Ref: c.Ref + Ref(size), Size: c.Size - size}
		}
		return ref, true
	}
	return 0, false
}

// growAndAlloc appends a new slab sized to satisfy size (respecting the
// geometric growth floor) and carves the requested region from its start.
func (s *Store) growAndAlloc(size int64) ([]byte, Ref, error) {
	rounded := ((size - 1) | (growthRounding - 1)) + 1

	currRefEnd := s.baseline
	if n := len(s.slabs); n > 0 {
		currRefEnd = int64(s.slabs[n-1].RefEnd)
	}
	prevRefEnd := s.baseline
	if n := len(s.slabs); n >= 2 {
		prevRefEnd = int64(s.slabs[n-2].RefEnd)
	}
	floor := 2 * (currRefEnd - prevRefEnd)
	newSize := rounded
	if floor > newSize {
		newSize = floor
	}

	addr := make([]byte, newSize)
	start := Ref(currRefEnd)
	end := start + Ref(newSize)
	s.slabs = append(s.slabs, Slab{Addr: addr, RefEnd: end})

	if newSize > size {
		s.mutableFree = append(s.mutableFree, Chunk{Ref: start + Ref(size), Size: newSize - size})
	}

	tracef("alloc grow size=%d newSlabSize=%d ref=%d", size, newSize, start)
	return addr[:size], start, nil
}
