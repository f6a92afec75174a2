//go:build !unix

package mmfile

// Map is unavailable on non-unix targets; the file collaborator falls back
// to a whole-file read instead of calling this package at all. It is kept as
// a stub so callers that reference mmfile.Map behind a build-tagged switch
// still compile.
func Map(fd int, size int64) ([]byte, error) {
	return nil, errUnsupported
}

// Unmap mirrors Map's stub status.
func Unmap(data []byte) error {
	return nil
}
