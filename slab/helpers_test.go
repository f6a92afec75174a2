package slab

import (
	"os"
	"testing"

	"github.com/nvellum/slabdb/internal/buf"
	"github.com/nvellum/slabdb/internal/format"
)

// putSentinel overwrites data's top_ref[0] with the streaming-form sentinel,
// leaving everything else (magic, file_format, flags) as written.
func putSentinel(data []byte) {
	buf.PutU64LE(data[format.TopRef0Offset:], format.StreamingTopRefSentinel)
}

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// fixedProbe reports every region's byte size and capacity as len(addr),
// which is exactly what Alloc hands back — enough to exercise coalescing and
// growth without a real object-format layer above this package.
type fixedProbe struct{}

func (fixedProbe) ByteSize(addr []byte) (int64, error) { return int64(len(addr)), nil }
func (fixedProbe) Capacity(addr []byte) (int64, error) { return int64(len(addr)), nil }

func newAttachedEmptyStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(fixedProbe{})
	if err := s.AttachEmpty(); err != nil {
		t.Fatalf("attach_empty: %v", err)
	}
	return s
}
