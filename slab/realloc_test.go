package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReallocCopiesContentAndFreesOldRegion(t *testing.T) {
	s := newAttachedEmptyStore(t)

	addr, ref, err := s.Alloc(64)
	require.NoError(t, err)
	copy(addr, []byte("hello, world"))

	newAddr, newRef, err := s.Realloc(ref, addr, 64, 256)
	require.NoError(t, err)
	assert.NotEqual(t, ref, newRef, "realloc always moves")
	assert.Equal(t, "hello, world", string(newAddr[:12]))

	freed := false
	for _, c := range s.mutableFree {
		if c.Ref == ref {
			freed = true
		}
	}
	assert.True(t, freed, "the original region must land back in the free list")
}

func TestReallocShrinkTruncatesCopy(t *testing.T) {
	s := newAttachedEmptyStore(t)

	addr, ref, err := s.Alloc(64)
	require.NoError(t, err)
	copy(addr, []byte("0123456789ABCDEF"))

	newAddr, _, err := s.Realloc(ref, addr, 64, 8)
	require.NoError(t, err)
	assert.Equal(t, "01234567", string(newAddr[:8]))
}

func TestReallocRejectsMisalignedNewSize(t *testing.T) {
	s := newAttachedEmptyStore(t)
	addr, ref, err := s.Alloc(64)
	require.NoError(t, err)

	_, _, err = s.Realloc(ref, addr, 64, 5)
	assert.ErrorIs(t, err, ErrMisaligned)
}
