package slab

import "errors"

var (
	// ErrInvalidDatabase covers every header/footer/magic/version/size/ref
	// bounds failure encountered while validating a file or buffer.
	ErrInvalidDatabase = errors.New("slab: invalid database")

	// ErrDecryptionFailed wraps a page-decryption failure from the file
	// collaborator; re-raised to callers as ErrInvalidDatabase per the
	// documented disposition.
	ErrDecryptionFailed = errors.New("slab: decryption failed")

	// ErrInvalidFreeSpace is returned by Alloc and GetFreeReadOnly while the
	// free-space state is Invalid.
	ErrInvalidFreeSpace = errors.New("slab: free-space tracking is invalid, reset required")

	// ErrAlreadyAttached is returned by attach_* when the store is already attached.
	ErrAlreadyAttached = errors.New("slab: already attached")

	// ErrNotAttached is returned by operations that require an attachment.
	ErrNotAttached = errors.New("slab: not attached")

	// ErrBadRef is returned by Translate when ref cannot be resolved to any
	// slab or the mapped file, and by PrepareForUpdate for a top_ref that is
	// misaligned or past the end of the reference space.
	ErrBadRef = errors.New("slab: ref out of range")

	// ErrMisaligned is returned when a size or ref fails the 8-byte alignment
	// invariant.
	ErrMisaligned = errors.New("slab: value not 8-byte aligned")

	// ErrRemapPrecondition is returned by Remap when the free-space state is
	// not Clean, or the new size is smaller than the current baseline.
	ErrRemapPrecondition = errors.New("slab: remap precondition not met")
)
