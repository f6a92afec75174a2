package slab

// ResetFreeSpaceTracking rebuilds the mutable free list to exactly one chunk
// per slab (covering it entirely) and clears the read-only free list. Called
// after an external writer has persisted mutable content into the file, so
// the allocator's bookkeeping matches the freshly-committed slab chain
// again. A no-op when already Clean.
func (s *Store) ResetFreeSpaceTracking() error {
	if !s.IsAttached() {
		return ErrNotAttached
	}
	if s.state == StateClean {
		return nil
	}

	s.mutableFree = s.mutableFree[:0]
	s.readOnlyFree = s.readOnlyFree[:0]

	start := Ref(s.baseline)
	for _, sl := range s.slabs {
		s.mutableFree = append(s.mutableFree, Chunk{Ref: start, Size: int64(sl.RefEnd - start)})
		start = sl.RefEnd
	}
	s.state = StateClean
	return nil
}

// GetFreeReadOnly returns the total bytes currently sitting in the read-only
// free list.
func (s *Store) GetFreeReadOnly() (int64, error) {
	if s.state == StateInvalid {
		return 0, ErrInvalidFreeSpace
	}
	var total int64
	for _, c := range s.readOnlyFree {
		total += c.Size
	}
	return total, nil
}

// IsFullyFree reports whether every slab is entirely covered by exactly one
// free chunk — the state ResetFreeSpaceTracking produces, and what a
// round-trip alloc/free cycle should return to.
func (s *Store) IsFullyFree() bool {
	if len(s.mutableFree) != len(s.slabs) {
		return false
	}
	covered := 0
	for i, sl := range s.slabs {
		for _, c := range s.mutableFree {
			if c.Ref == s.slabStart(i) && c.end() == sl.RefEnd {
				covered++
				break
			}
		}
	}
	return covered == len(s.slabs)
}
