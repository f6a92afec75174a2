package slab

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapRebasesSlabsAndChunksPreservingSizes(t *testing.T) {
	s, _ := newAttachedFileStore(t)

	_, _, err := s.Alloc(256)
	require.NoError(t, err)
	_, _, err = s.Alloc(64)
	require.NoError(t, err)
	require.Len(t, s.slabs, 2)

	require.NoError(t, s.ResetFreeSpaceTracking())
	oldBaseline := s.GetBaseline()
	oldSizes := make([]int64, len(s.slabs))
	start := oldBaseline
	for i, sl := range s.slabs {
		oldSizes[i] = int64(sl.RefEnd) - start
		start = int64(sl.RefEnd)
	}

	newSize := oldBaseline + 8192
	require.NoError(t, s.f.Prealloc(newSize))

	_, err = s.Remap(newSize)
	require.NoError(t, err)

	assert.EqualValues(t, newSize, s.GetBaseline())
	expectedStart := int64(newSize)
	for i, sl := range s.slabs {
		assert.Equal(t, expectedStart, int64(s.mutableFree[i].Ref))
		assert.EqualValues(t, oldSizes[i], sl.RefEnd-Ref(expectedStart))
		assert.EqualValues(t, oldSizes[i], s.mutableFree[i].Size)
		expectedStart = int64(sl.RefEnd)
	}
}

func TestRemapRejectsWhenNotClean(t *testing.T) {
	s, _ := newAttachedFileStore(t)
	_, _, err := s.Alloc(256)
	require.NoError(t, err)
	require.Equal(t, StateDirty, s.state)

	_, err = s.Remap(s.GetBaseline() + 4096)
	assert.ErrorIs(t, err, ErrRemapPrecondition)
}

func TestRemapRejectsShrinkAndMisalignment(t *testing.T) {
	s, _ := newAttachedFileStore(t)

	_, err := s.Remap(s.GetBaseline() - 8)
	assert.ErrorIs(t, err, ErrRemapPrecondition)

	_, err = s.Remap(s.GetBaseline() + 3)
	assert.ErrorIs(t, err, ErrRemapPrecondition)
}

func TestRemapRejectsNonFileAttachment(t *testing.T) {
	s := newAttachedEmptyStore(t)
	_, err := s.Remap(s.GetBaseline() + 4096)
	assert.ErrorIs(t, err, ErrRemapPrecondition)
}

func TestRemapRequiresAttachment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")
	s := NewStore(fixedProbe{})
	_, err := s.AttachFile(path, AttachFileOptions{})
	require.NoError(t, err)
	require.NoError(t, s.Detach())

	_, err = s.Remap(8192)
	assert.ErrorIs(t, err, ErrNotAttached)
}
