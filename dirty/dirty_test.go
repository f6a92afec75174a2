package dirty

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a Source backed by a real temporary file, so
// FlushHeaderAndMeta's fdatasync call has a live descriptor to operate on.
type fakeSource struct {
	buf    []byte
	f      *os.File
	writes []Range
}

func newFakeSource(t *testing.T, size int) *fakeSource {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "dirty-source"))
	require.NoError(t, err)
	require.NoError(t, f.Truncate(int64(size)))
	t.Cleanup(func() { _ = f.Close() })
	return &fakeSource{buf: make([]byte, size), f: f}
}

func (f *fakeSource) Bytes() []byte { return f.buf }

func (f *fakeSource) WriteAt(off int64, p []byte) error {
	copy(f.buf[off:], p)
	f.writes = append(f.writes, Range{Off: off, Len: int64(len(p))})
	_, err := f.f.WriteAt(p, off)
	return err
}

func (f *fakeSource) FD() int { return int(f.f.Fd()) }

func TestTrackerFlushDataOnlyWritesCoalescedRanges(t *testing.T) {
	src := newFakeSource(t, 32)
	copy(src.buf, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	tr := NewTracker(src)

	tr.Add(0, 4)
	tr.Add(4, 4) // adjacent, should coalesce with the range above
	tr.Add(20, 2)

	require.NoError(t, tr.FlushDataOnly())
	require.Len(t, src.writes, 2, "adjacent ranges must coalesce into one write")
	assert.Equal(t, Range{Off: 0, Len: 8}, src.writes[0])
	assert.Equal(t, Range{Off: 20, Len: 2}, src.writes[1])
	assert.Empty(t, tr.DebugRanges(), "flushing clears tracked ranges")
}

func TestTrackerAddIgnoresNonPositiveLength(t *testing.T) {
	tr := NewTracker(newFakeSource(t, 8))
	tr.Add(0, 0)
	tr.Add(0, -1)
	assert.Empty(t, tr.DebugRanges())
}

func TestTrackerFlushHeaderAndMetaModes(t *testing.T) {
	src := newFakeSource(t, 8)
	tr := NewTracker(src)

	tr.Add(0, 8)
	require.NoError(t, tr.FlushHeaderAndMeta(FlushDataOnly))
	assert.Len(t, src.writes, 1, "FlushDataOnly mode still writes, just skips the sync call")

	tr.Add(0, 8)
	require.NoError(t, tr.FlushHeaderAndMeta(FlushAuto))
	assert.Len(t, src.writes, 2)
}

func TestTrackerResetDiscardsWithoutFlushing(t *testing.T) {
	src := newFakeSource(t, 8)
	tr := NewTracker(src)
	tr.Add(0, 8)
	tr.Reset()
	assert.Empty(t, tr.DebugRanges())
	require.NoError(t, tr.FlushDataOnly())
	assert.Empty(t, src.writes)
}

func TestTrackerCoalesceOverlapping(t *testing.T) {
	src := newFakeSource(t, 16)
	tr := NewTracker(src)
	tr.Add(0, 5)
	tr.Add(3, 5) // overlaps [0,5) -> merges to [0,8)

	require.NoError(t, tr.FlushDataOnly())
	require.Len(t, src.writes, 1)
	assert.Equal(t, Range{Off: 0, Len: 8}, src.writes[0])
}
