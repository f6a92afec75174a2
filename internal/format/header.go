package format

import (
	"bytes"
	"fmt"

	"github.com/nvellum/slabdb/internal/buf"
)

// Header is the decoded form of the 24-byte on-disk header.
type Header struct {
	TopRef     [2]uint64
	FileFormat [2]uint8
	Flags      uint8
}

// Select reports which (top_ref, file_format) slot is currently authoritative.
func (h Header) Select() int {
	if h.Flags&FlagSelect != 0 {
		return 1
	}
	return 0
}

// ServerSyncMode reports whether the server-sync-mode bit is set.
func (h Header) ServerSyncMode() bool {
	return h.Flags&FlagServerSyncMode != 0
}

// ParseHeader decodes the first HeaderSize bytes of b. It performs no
// validation beyond "is there enough data and does the magic match" —
// semantic validation (ref bounds, format gating, streaming detection)
// is Validate's job.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[MagicOffset:MagicOffset+MagicSize], Magic[:]) {
		return Header{}, fmt.Errorf("header: %w", ErrSignatureMismatch)
	}
	return Header{
		TopRef:     [2]uint64{buf.U64LE(b[TopRef0Offset:]), buf.U64LE(b[TopRef1Offset:])},
		FileFormat: [2]uint8{b[FileFormat0Offset], b[FileFormat1Offset]},
		Flags:      b[FlagsOffset],
	}, nil
}

// PutEmptyHeader writes the canonical "brand new database file" header into
// b[:HeaderSize]: slot 0 selected, top_ref 0 (nothing allocated yet), both
// file_format slots set to the current version. This is full header form,
// not streaming form — streaming form only ever arises when an external
// writer dumps an in-memory database straight to a file with a trailing
// footer instead of going through this header at all; see ParseFooter.
func PutEmptyHeader(b []byte, serverSyncMode bool) {
	buf.PutU64LE(b[TopRef0Offset:], 0)
	buf.PutU64LE(b[TopRef1Offset:], 0)
	copy(b[MagicOffset:MagicOffset+MagicSize], Magic[:])
	b[FileFormat0Offset] = CurrentFileFormat
	b[FileFormat1Offset] = CurrentFileFormat
	b[ReservedOffset] = 0
	var flags uint8
	if serverSyncMode {
		flags |= FlagServerSyncMode
	}
	b[FlagsOffset] = flags
}

// PutTopRef writes ref into slot i's top_ref field, leaving everything else untouched.
func PutTopRef(b []byte, slot int, ref uint64) {
	if slot == 0 {
		buf.PutU64LE(b[TopRef0Offset:], ref)
	} else {
		buf.PutU64LE(b[TopRef1Offset:], ref)
	}
}

// SetSelect flips the select bit to slot, preserving every other flag bit.
func SetSelect(b []byte, slot int) {
	if slot == 1 {
		b[FlagsOffset] |= FlagSelect
	} else {
		b[FlagsOffset] &^= FlagSelect
	}
}

// Footer is the decoded form of the 16-byte streaming footer.
type Footer struct {
	TopRef      uint64
	MagicCookie uint64
}

// ParseFooter decodes the trailing FooterSize bytes of a file on streaming form.
func ParseFooter(fileTail []byte) (Footer, error) {
	if len(fileTail) < FooterSize {
		return Footer{}, fmt.Errorf("footer: %w", ErrTruncated)
	}
	f := Footer{
		TopRef:      buf.U64LE(fileTail[FooterTopRefOffset:]),
		MagicCookie: buf.U64LE(fileTail[FooterMagicCookieOffset:]),
	}
	if f.MagicCookie != FooterMagicCookie {
		return Footer{}, fmt.Errorf("footer: %w", ErrBadFooter)
	}
	return f, nil
}

// PutFooter encodes a footer with the given top_ref into b, which must be
// exactly FooterSize bytes.
func PutFooter(b []byte, topRef uint64) {
	buf.PutU64LE(b[FooterTopRefOffset:], topRef)
	buf.PutU64LE(b[FooterMagicCookieOffset:], FooterMagicCookie)
}
