package slab

import (
	"fmt"

	"github.com/nvellum/slabdb/internal/buf"
)

// Realloc grows or shrinks a region by allocating fresh space, copying the
// first oldSize bytes across, and freeing the original. There is no in-place
// extension path: even when the physical capacity behind ref happens to have
// room, Realloc always moves.
func (s *Store) Realloc(ref Ref, addr []byte, oldSize, newSize int64) ([]byte, Ref, error) {
	if newSize <= 0 || buf.CheckAligned8("realloc size", newSize) != nil {
		return nil, 0, fmt.Errorf("slab: realloc size %d: %w", newSize, ErrMisaligned)
	}
	newAddr, newRef, err := s.Alloc(newSize)
	if err != nil {
		return nil, 0, err
	}
	n := oldSize
	if n > newSize {
		n = newSize
	}
	copy(newAddr, addr[:n])
	if err := s.Free(ref, addr); err != nil {
		return nil, 0, fmt.Errorf("slab: realloc: free old region: %w", err)
	}
	return newAddr, newRef, nil
}
