// Package format defines the on-disk byte layout of the database header and
// streaming footer, and the pure encode/decode routines around them. It knows
// nothing about slabs, free lists, or attachment — only bytes.
package format

// Header layout (24 bytes, little-endian):
//
//	Offset  Size  Field
//	------  ----  ---------------------------------------------
//	 0x00     8   top_ref[0]
//	 0x08     8   top_ref[1]
//	 0x10     4   magic "T-DB"
//	 0x14     1   file_format[0]
//	 0x15     1   file_format[1]
//	 0x16     1   reserved (zero)
//	 0x17     1   flags (bit 0 = select, bit 1 = server-sync-mode)
const (
	TopRef0Offset     = 0x00
	TopRef1Offset     = 0x08
	MagicOffset       = 0x10
	MagicSize         = 4
	FileFormat0Offset = 0x14
	FileFormat1Offset = 0x15
	ReservedOffset    = 0x16
	FlagsOffset       = 0x17

	HeaderSize = 0x18
)

// TopRefOffset returns the byte offset of top_ref[slot].
func TopRefOffset(slot int) int {
	if slot == 0 {
		return TopRef0Offset
	}
	return TopRef1Offset
}

// Magic is the 4-byte signature every header must carry at MagicOffset.
var Magic = [MagicSize]byte{'T', '-', 'D', 'B'}

const (
	// FlagSelect chooses which of the two (top_ref, file_format) slots is authoritative.
	FlagSelect = 1 << 0
	// FlagServerSyncMode records whether the file was created for server-sync-mode use.
	FlagServerSyncMode = 1 << 1
)

// Footer layout (16 bytes, little-endian), present as the final 16 bytes of a
// file on streaming form:
//
//	Offset  Size  Field
//	------  ----  ---------------------------------------------
//	 0x00     8   top_ref
//	 0x08     8   magic_cookie
const (
	FooterTopRefOffset      = 0x00
	FooterMagicCookieOffset = 0x08

	FooterSize = 0x10
)

// FooterMagicCookie is the sentinel written into the streaming footer.
const FooterMagicCookie uint64 = 0x5A54533054584554 // "TEXT0STZ" style constant, unique to this format

// StreamingTopRefSentinel marks top_ref[0] as "look in the trailing footer instead".
const StreamingTopRefSentinel uint64 = 0xFFFFFFFFFFFFFFFF

// CurrentFileFormat is the file-format version this build writes and expects.
// Format 2 may additionally be opened (read) when the caller requests shared access;
// see the upgrade rule in Validate (validate.go).
const CurrentFileFormat = 3

// PreviousUpgradableFileFormat is the older format this build will transparently
// treat as CurrentFileFormat when opened in shared mode.
const PreviousUpgradableFileFormat = 2

// InitialFileSize is the size, in bytes, a brand-new empty database file is
// preallocated to.
const InitialFileSize = 4096
