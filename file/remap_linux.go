//go:build linux

package file

import "golang.org/x/sys/unix"

// tryMremap attempts an in-place resize via the Linux-only mremap syscall.
// ok is false if the kernel declined and the caller should fall back to
// unmap-then-remap instead.
func tryMremap(old []byte, newSize int64) (data []byte, moved bool, ok bool) {
	resized, err := unix.Mremap(old, int(newSize), unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, false, false
	}
	moved = len(resized) == 0 || len(old) == 0 || &resized[0] != &old[0]
	return resized, moved, true
}
