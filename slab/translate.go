package slab

import (
	"sort"

	"github.com/nvellum/slabdb/internal/buf"
)

// Translate resolves ref to the underlying bytes: a view into the mapped
// file when ref < baseline, or into the owning slab otherwise.
func (s *Store) Translate(ref Ref) ([]byte, error) {
	if !s.IsAttached() {
		return nil, ErrNotAttached
	}
	if int64(ref) < 0 || buf.CheckAligned8("ref", int64(ref)) != nil {
		return nil, ErrMisaligned
	}
	if int64(ref) < s.baseline {
		if int64(ref) >= int64(len(s.data)) {
			return nil, ErrBadRef
		}
		view, ok := buf.Slice(s.data, int(ref), len(s.data)-int(ref))
		if !ok {
			return nil, ErrBadRef
		}
		return view, nil
	}
	return s.translateSlab(ref)
}

// translateSlab locates the first slab whose RefEnd exceeds ref (an
// upper-bound search, since slabs are kept sorted by RefEnd) and returns a
// view into it at the corresponding local offset.
func (s *Store) translateSlab(ref Ref) ([]byte, error) {
	idx := sort.Search(len(s.slabs), func(i int) bool { return s.slabs[i].RefEnd > ref })
	if idx == len(s.slabs) {
		return nil, ErrBadRef
	}
	sl := s.slabs[idx]
	start := s.slabStart(idx)
	local := int64(ref - start)
	if local < 0 || local >= int64(len(sl.Addr)) {
		return nil, ErrBadRef
	}
	return sl.Addr[local:], nil
}

// slabStart returns the reference-space offset where slabs[idx] begins:
// baseline for the first slab, or the previous slab's RefEnd otherwise.
func (s *Store) slabStart(idx int) Ref {
	if idx == 0 {
		return Ref(s.baseline)
	}
	return s.slabs[idx-1].RefEnd
}
