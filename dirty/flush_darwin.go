//go:build darwin

package dirty

import "golang.org/x/sys/unix"

// fdatasync flushes fd's data to disk. macOS has no fdatasync syscall;
// F_FULLFSYNC additionally forces the drive's write cache when fullfsync is
// requested, at a real latency cost, so it is opt-in via FlushFull.
func fdatasync(fd int, fullfsync bool) error {
	if fullfsync {
		_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(fd)
}
