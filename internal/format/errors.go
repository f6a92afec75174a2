package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrSignatureMismatch indicates the magic bytes did not match.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrUnsupportedVersion indicates a file_format byte this build cannot open.
	ErrUnsupportedVersion = errors.New("format: unsupported file format version")
	// ErrBadTopRef indicates a top_ref failed the alignment or bounds check.
	ErrBadTopRef = errors.New("format: top_ref out of bounds")
	// ErrBadFooter indicates the streaming footer's magic cookie did not match.
	ErrBadFooter = errors.New("format: bad streaming footer")
	// ErrServerSyncModeMismatch indicates the file's server-sync-mode flag disagreed with the caller.
	ErrServerSyncModeMismatch = errors.New("format: server-sync-mode mismatch")
)
