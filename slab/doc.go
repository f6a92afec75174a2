// Package slab implements the reference-space allocator at the heart of the
// database engine: translation between opaque integer references and either
// a memory-mapped read-only file region or heap-allocated slabs, free-space
// tracking split between mutable and read-only regions, and the on-disk
// dual-top-ref header format used to commit a new root reference atomically.
//
// A Store is single-threaded: callers serialize their own access, typically
// from a higher-level transaction coordinator (see package tx).
package slab
