// Package file is the concrete default implementation of the file
// collaborator the allocator's attach/detach/remap operations depend on. It
// is deliberately narrow: open, size, positioned write, preallocate, sync,
// map (always read-only), remap, unmap, close. Callers that need something
// different (a virtual filesystem, an encrypted backend) can supply their
// own type satisfying File instead.
package file

import "errors"

// ErrDecryptionFailed is returned by SetEncryptionKey when a non-nil key is
// supplied: page encryption is outside this engine's scope, so a caller that
// actually needs it must swap in a File implementation that provides a
// cipher, not rely on this default one to silently ignore the key.
var ErrDecryptionFailed = errors.New("file: decryption not supported by the default file collaborator")

// AccessMode selects how File.Open treats the underlying path.
type AccessMode int

const (
	// ReadOnly opens an existing file and refuses to create or extend it.
	ReadOnly AccessMode = iota
	// ReadWrite opens (creating if needed) a file that attach_file may grow.
	ReadWrite
)

// File is the collaborator contract described by the external interfaces
// section: everything the allocator's attachment lifecycle needs from a
// backing store, and nothing more.
type File interface {
	// Size returns the current file size in bytes.
	Size() (int64, error)

	// Write performs a positioned write of p at byte offset off, growing the
	// file if necessary is NOT implied — callers must Prealloc first.
	Write(off int64, p []byte) error

	// Prealloc grows the file to exactly size bytes, zero-filling the
	// extension. A no-op if the file is already that size or larger.
	Prealloc(size int64) error

	// Sync forces previously written bytes to durable storage. Honors the
	// package-level DisableSyncToDisk toggle.
	Sync() error

	// Map establishes a read-only mapping covering the first size bytes of
	// the file. The allocator never writes through this mapping.
	Map(size int64) ([]byte, error)

	// Remap replaces the current mapping (of oldSize bytes) with one
	// covering newSize bytes, returning the new mapping and whether its base
	// address changed. newSize must be >= oldSize.
	Remap(oldSize, newSize int64) (data []byte, addrChanged bool, err error)

	// Unmap releases the current mapping, if any. Idempotent.
	Unmap() error

	// Close releases the underlying descriptor. Implicitly unmaps first.
	Close() error

	// SetEncryptionKey records an encryption key for future pages. The
	// default implementation only accepts nil (no encryption).
	SetEncryptionKey(key []byte) error

	// FD returns the OS file descriptor, for fdatasync/F_FULLFSYNC calls made
	// by package dirty. Implementations backed by an in-memory buffer (no
	// real descriptor) may return -1.
	FD() int
}
