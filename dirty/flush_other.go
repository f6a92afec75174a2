//go:build !linux && !freebsd && !darwin

package dirty

import "os"

// fdatasync falls back to a plain os.File Sync on platforms without a
// distinct data-only sync syscall wired up here.
func fdatasync(fd int, _ bool) error {
	// os.NewFile wraps fd without duplicating it: the wrapper must not be
	// closed here, or the caller's descriptor goes with it.
	f := os.NewFile(uintptr(fd), "")
	if f == nil {
		return nil
	}
	return f.Sync()
}
