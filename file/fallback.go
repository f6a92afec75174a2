//go:build !unix

package file

import (
	"fmt"
	"os"
)

// fallbackFile backs File with a whole-file read when mmap isn't available.
// Map and Remap hand out a fresh copy of the file contents rather than a
// real mapping; this is slower but behaviorally equivalent for a read-only
// view, which is all this engine ever asks of the mapping.
type fallbackFile struct {
	f *os.File
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
	return &fallbackFile{f: f}, nil
}

func (ff *fallbackFile) Size() (int64, error) {
	info, err := ff.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (ff *fallbackFile) Write(off int64, p []byte) error {
	_, err := ff.f.WriteAt(p, off)
	return err
}

func (ff *fallbackFile) Prealloc(size int64) error {
	cur, err := ff.Size()
	if err != nil {
		return err
	}
	if cur >= size {
		return nil
	}
	return ff.f.Truncate(size)
}

func (ff *fallbackFile) Sync() error {
	if SyncDisabled() {
		return nil
	}
	return ff.f.Sync()
}

func (ff *fallbackFile) Map(size int64) ([]byte, error) {
	data := make([]byte, size)
	if _, err := ff.f.ReadAt(data, 0); err != nil && size > 0 {
		return nil, fmt.Errorf("file: read %d bytes: %w", size, err)
	}
	return data, nil
}

func (ff *fallbackFile) Remap(oldSize, newSize int64) ([]byte, bool, error) {
	data, err := ff.Map(newSize)
	return data, true, err
}

func (ff *fallbackFile) Unmap() error { return nil }

func (ff *fallbackFile) Close() error { return ff.f.Close() }

func (ff *fallbackFile) SetEncryptionKey(key []byte) error {
	if key == nil {
		return nil
	}
	return ErrDecryptionFailed
}

func (ff *fallbackFile) FD() int { return int(ff.f.Fd()) }

var _ File = (*fallbackFile)(nil)
