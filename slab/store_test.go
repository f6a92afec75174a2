package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTotalSizeTracksSlabGrowth(t *testing.T) {
	s := newAttachedEmptyStore(t)
	assert.Equal(t, s.GetBaseline(), s.GetTotalSize(), "no slabs yet: total size is just the baseline")

	_, _, err := s.Alloc(64)
	require.NoError(t, err)
	assert.Greater(t, s.GetTotalSize(), s.GetBaseline())
	assert.EqualValues(t, s.slabs[len(s.slabs)-1].RefEnd, s.GetTotalSize())
}

func TestIsAttachedReflectsLifecycle(t *testing.T) {
	s := NewStore(fixedProbe{})
	assert.False(t, s.IsAttached())
	require.NoError(t, s.AttachEmpty())
	assert.True(t, s.IsAttached())
	require.NoError(t, s.Detach())
	assert.False(t, s.IsAttached())
}

func TestHeaderBytesNilWithoutFileAttachment(t *testing.T) {
	s := newAttachedEmptyStore(t)
	assert.Nil(t, s.HeaderBytes())
}
