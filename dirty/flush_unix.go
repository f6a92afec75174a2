//go:build linux || freebsd

package dirty

import "golang.org/x/sys/unix"

// fdatasync flushes fd's data to disk. On Linux/FreeBSD fdatasync provides
// sufficient guarantees; the fullfsync parameter has no effect here.
func fdatasync(fd int, _ bool) error {
	return unix.Fdatasync(fd)
}
