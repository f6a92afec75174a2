//go:build unix

// Package mmfile provides the platform-specific primitive the file
// collaborator builds on: mapping a file descriptor read-only into memory,
// and tearing that mapping down again. Everything else (growth, remap
// strategy, fsync policy) lives one layer up in package file.
package mmfile

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Map maps size bytes of fd read-only, shared, starting at offset 0.
// size == 0 is rejected: mapping zero bytes is not portable across kernels
// and callers should special-case an empty file themselves.
func Map(fd int, size int64) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmfile: cannot map %d bytes", size)
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmfile: mmap: %w", err)
	}
	return data, nil
}

// Unmap releases a mapping previously returned by Map. Unmapping an already
// unmapped region is treated as a no-op, matching the idempotent detach
// semantics callers expect.
func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}
