package file

import "github.com/nvellum/slabdb/internal/format"

// HeaderBuffer is the small in-memory mirror of the on-disk header that
// attach/prepare_for_update mutate directly. It satisfies dirty.Source so a
// dirty.Tracker can batch and flush header writes without knowing the header
// layout itself.
type HeaderBuffer struct {
	buf [format.HeaderSize]byte
	f   File
}

// NewHeaderBuffer wraps f, whose first HeaderSize bytes back the buffer.
func NewHeaderBuffer(f File) *HeaderBuffer {
	return &HeaderBuffer{f: f}
}

// Bytes returns the current in-memory header contents.
func (hb *HeaderBuffer) Bytes() []byte { return hb.buf[:] }

// LoadFrom copies the header out of an already-mapped region (the same
// mapping attach_file establishes over the whole committed file), so the
// buffer never needs a mapping of its own.
func (hb *HeaderBuffer) LoadFrom(mapped []byte) error {
	if len(mapped) < format.HeaderSize {
		return format.ErrTruncated
	}
	copy(hb.buf[:], mapped[:format.HeaderSize])
	return nil
}

// WriteAt updates the in-memory buffer and mirrors the write to the file.
func (hb *HeaderBuffer) WriteAt(off int64, p []byte) error {
	copy(hb.buf[off:], p)
	return hb.f.Write(off, p)
}

// FD proxies to the underlying file's descriptor.
func (hb *HeaderBuffer) FD() int { return hb.f.FD() }
