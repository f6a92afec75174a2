//go:build unix && !linux

package file

// tryMremap is unavailable outside Linux (Darwin/BSD have no mremap(2)
// analogue exposed by golang.org/x/sys/unix); callers always fall back to
// unmap-then-remap.
func tryMremap(old []byte, newSize int64) (data []byte, moved bool, ok bool) {
	return nil, false, false
}
