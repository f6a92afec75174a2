//go:build unix

package file

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/nvellum/slabdb/internal/mmfile"
)

// unixFile is the default File collaborator on Linux and Darwin: a real
// descriptor, grown with Ftruncate/Fallocate, mapped read-only with mmap.
// Grounded on the mmap-open/close/append/truncate cycle used to load and
// grow a database file, generalized to the map-then-remap-then-rebase
// contract the allocator's remap() operation depends on.
type unixFile struct {
	f    *os.File
	data []byte // current read-only mapping, nil if unmapped
}

// Open opens path per mode. ReadWrite creates the file if absent.
func Open(path string, mode AccessMode) (File, error) {
	flags := os.O_RDWR
	if mode == ReadOnly {
		flags = os.O_RDONLY
	} else {
		flags |= os.O_CREATE
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file: open %s: %w", path, err)
	}
	return &unixFile{f: f}, nil
}

func (uf *unixFile) Size() (int64, error) {
	info, err := uf.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (uf *unixFile) Write(off int64, p []byte) error {
	_, err := uf.f.WriteAt(p, off)
	return err
}

func (uf *unixFile) Prealloc(size int64) error {
	cur, err := uf.Size()
	if err != nil {
		return err
	}
	if cur >= size {
		return nil
	}
	if err := unix.Fallocate(int(uf.f.Fd()), 0, 0, size); err != nil {
		// Fallocate isn't available on every filesystem (e.g. some network
		// mounts); fall back to a plain truncate, which still extends the
		// file with zero bytes on every platform this build targets.
		if err := uf.f.Truncate(size); err != nil {
			return fmt.Errorf("file: prealloc to %d: %w", size, err)
		}
	}
	return nil
}

func (uf *unixFile) Sync() error {
	if SyncDisabled() {
		return nil
	}
	return uf.f.Sync()
}

func (uf *unixFile) Map(size int64) ([]byte, error) {
	if uf.data != nil {
		if err := mmfile.Unmap(uf.data); err != nil {
			return nil, err
		}
		uf.data = nil
	}
	data, err := mmfile.Map(int(uf.f.Fd()), size)
	if err != nil {
		return nil, err
	}
	uf.data = data
	return data, nil
}

// Remap grows the file's mapping to newSize. On platforms where tryMremap
// can resize in place (Linux), the base address usually stays stable; where
// it can't (Darwin, or when the kernel declines), we fall back to
// unmap-then-remap, which always changes the address.
func (uf *unixFile) Remap(oldSize, newSize int64) ([]byte, bool, error) {
	if newSize < oldSize {
		return nil, false, fmt.Errorf("file: remap shrink %d -> %d not supported", oldSize, newSize)
	}
	if uf.data == nil {
		data, err := uf.Map(newSize)
		return data, true, err
	}
	if data, moved, ok := tryMremap(uf.data, newSize); ok {
		uf.data = data
		return data, moved, nil
	}
	if err := mmfile.Unmap(uf.data); err != nil {
		return nil, false, err
	}
	uf.data = nil
	data, err := uf.Map(newSize)
	return data, true, err
}

func (uf *unixFile) Unmap() error {
	if uf.data == nil {
		return nil
	}
	err := mmfile.Unmap(uf.data)
	uf.data = nil
	return err
}

func (uf *unixFile) Close() error {
	if err := uf.Unmap(); err != nil {
		return err
	}
	return uf.f.Close()
}

func (uf *unixFile) SetEncryptionKey(key []byte) error {
	if key == nil {
		return nil
	}
	return ErrDecryptionFailed
}

func (uf *unixFile) FD() int {
	return int(uf.f.Fd())
}

var _ File = (*unixFile)(nil)
