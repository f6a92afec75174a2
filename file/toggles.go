package file

import "sync/atomic"

// disableSyncToDisk is the process-wide switch backing DisableSyncToDisk.
// Tests that create thousands of temporary databases flip this on to avoid
// paying for real fsyncs; production code should never touch it.
var disableSyncToDisk atomic.Bool

// SetDisableSyncToDisk toggles whether Sync (and the fdatasync/F_FULLFSYNC
// calls package dirty issues on the allocator's behalf) actually reach the
// disk. It is process-wide and takes effect immediately for every open File.
func SetDisableSyncToDisk(disabled bool) {
	disableSyncToDisk.Store(disabled)
}

// SyncDisabled reports the current value of the toggle.
func SyncDisabled() bool {
	return disableSyncToDisk.Load()
}
