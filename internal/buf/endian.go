// Package buf contains small endian-safe encode/decode helpers shared by the
// header and footer parsers, plus the bounds-checking helpers translate.go
// and validate.go use to keep ref/size arithmetic honest.
package buf

import "encoding/binary"

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// PutU64LE writes v into b as little-endian.
func PutU64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
