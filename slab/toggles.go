package slab

import (
	"fmt"
	"os"
	"sync/atomic"
)

// zeroFillOnAlloc controls whether Alloc zero-fills the region it returns.
// Off by default: callers that always overwrite the full region (the common
// case for a freshly serialized object) don't pay for it.
var zeroFillOnAlloc atomic.Bool

// SetZeroFillOnAlloc toggles whether Alloc zero-fills returned regions.
func SetZeroFillOnAlloc(enabled bool) {
	zeroFillOnAlloc.Store(enabled)
}

// debugTrace is gated by the SLABDB_TRACE_ALLOC environment variable at
// process start, mirroring the allocator debug-logging convention of gating
// verbose stderr tracing behind an env var rather than a logging framework.
var debugTrace = os.Getenv("SLABDB_TRACE_ALLOC") != ""

func tracef(format string, args ...any) {
	if !debugTrace {
		return
	}
	fmt.Fprintf(os.Stderr, "slab: "+format+"\n", args...)
}
