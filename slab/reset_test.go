package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetFreeSpaceTrackingProducesOneChunkPerSlab(t *testing.T) {
	s := newAttachedEmptyStore(t)

	_, _, err := s.Alloc(256)
	require.NoError(t, err)
	_, _, err = s.Alloc(256)
	require.NoError(t, err)
	require.Len(t, s.slabs, 2)

	require.NoError(t, s.ResetFreeSpaceTracking())
	assert.Equal(t, StateClean, s.state)
	assert.Len(t, s.mutableFree, len(s.slabs))
	assert.Empty(t, s.readOnlyFree)

	for i, sl := range s.slabs {
		start := s.slabStart(i)
		assert.Equal(t, start, s.mutableFree[i].Ref)
		assert.EqualValues(t, sl.RefEnd-start, s.mutableFree[i].Size)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := newAttachedEmptyStore(t)
	_, _, err := s.Alloc(256)
	require.NoError(t, err)

	require.NoError(t, s.ResetFreeSpaceTracking())
	first := append([]Chunk(nil), s.mutableFree...)

	require.NoError(t, s.ResetFreeSpaceTracking())
	assert.Equal(t, first, s.mutableFree)
}

func TestAllocFreeResetRoundTripIsFullyFree(t *testing.T) {
	s := newAttachedEmptyStore(t)

	addr, ref, err := s.Alloc(256)
	require.NoError(t, err)
	require.NoError(t, s.Free(ref, addr))
	require.NoError(t, s.ResetFreeSpaceTracking())

	assert.True(t, s.IsFullyFree())
}

func TestGetFreeReadOnlyRequiresValidState(t *testing.T) {
	s := newAttachedEmptyStore(t)
	total, err := s.GetFreeReadOnly()
	require.NoError(t, err)
	assert.Zero(t, total)

	s.state = StateInvalid
	_, err = s.GetFreeReadOnly()
	assert.ErrorIs(t, err, ErrInvalidFreeSpace)
}
