package slab

import "fmt"

// Free returns the region at ref, previously returned by Alloc, to its free
// list. addr must be the same slice Translate(ref) would return; the caller
// passes it explicitly because it has usually already resolved it.
func (s *Store) Free(ref Ref, addr []byte) error {
	if !s.IsAttached() {
		return ErrNotAttached
	}

	readOnly := s.IsReadOnly(ref)
	size, err := s.segmentSize(addr, readOnly)
	if err != nil {
		return fmt.Errorf("slab: free: %w", err)
	}

	if s.state == StateInvalid {
		// Bookkeeping is already lost; the memory itself needs no action.
		return nil
	}
	if !readOnly && s.state != StateDirty {
		panic("slab: free of a mutable region outside an active allocation cycle")
	}
	s.state = StateDirty

	list := &s.mutableFree
	if readOnly {
		list = &s.readOnlyFree
	}

	if err := s.coalesceFree(list, ref, size); err != nil {
		s.state = StateInvalid
		return fmt.Errorf("slab: free: %w", err)
	}
	tracef("free ref=%d size=%d readOnly=%v", ref, size, readOnly)
	return nil
}

// segmentSize asks the injected SegmentProbe for a region's size: the
// on-disk byte size for read-only regions, the (possibly larger) physical
// capacity for mutable ones, since a mutable free chunk must cover the
// region's whole footprint or later reuse would corrupt a neighbor.
func (s *Store) segmentSize(addr []byte, readOnly bool) (int64, error) {
	if readOnly {
		return s.probe.ByteSize(addr)
	}
	return s.probe.Capacity(addr)
}

// coalesceFree merges the newly-freed [ref, ref+size) region into list,
// respecting slab boundaries: a chunk may never be extended across the edge
// between two slabs (or between the file and the first slab), because slabs
// are independently freed at Detach and free-space accounting per slab
// depends on chunks staying within exactly one.
func (s *Store) coalesceFree(list *[]Chunk, ref Ref, size int64) error {
	end := ref + Ref(size)

	succIdx := -1
	for i, c := range *list {
		if c.Ref == end {
			succIdx = i
			break
		}
	}
	mergeSucc := succIdx >= 0 && !s.isSlabBoundary(end)

	predIdx := -1
	if !s.isSlabBoundary(ref) {
		for i, c := range *list {
			if c.end() == ref {
				predIdx = i
				break
			}
		}
	}

	switch {
	case predIdx >= 0 && mergeSucc:
		(*list)[predIdx].Size += size + (*list)[succIdx].Size
		s.swapRemoveChunk(list, succIdx)
	case predIdx >= 0:
		(*list)[predIdx].Size += size
	case mergeSucc:
		(*list)[succIdx].Ref = ref
		(*list)[succIdx].Size += size
	default:
		*list = append(*list, Chunk{Ref: ref, Size: size})
	}
	return nil
}

// isSlabBoundary reports whether r lands exactly on the start of the slab
// chain (baseline) or the end of some slab — the set of edges a free chunk
// must never cross.
func (s *Store) isSlabBoundary(r Ref) bool {
	if int64(r) == s.baseline {
		return true
	}
	for _, sl := range s.slabs {
		if sl.RefEnd == r {
			return true
		}
	}
	return false
}

// swapRemoveChunk removes list[idx] in O(1); order within the free list is
// never meaningful, only membership.
func (s *Store) swapRemoveChunk(list *[]Chunk, idx int) {
	last := len(*list) - 1
	(*list)[idx] = (*list)[last]
	*list = (*list)[:last]
}
