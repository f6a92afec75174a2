package slab

import "testing"

func TestTracefNeverPanicsRegardlessOfToggle(t *testing.T) {
	tracef("probe %d", 1)

	prev := debugTrace
	debugTrace = true
	defer func() { debugTrace = prev }()
	tracef("probe %d", 2)
}

func TestSetZeroFillOnAllocDefaultsOff(t *testing.T) {
	if zeroFillOnAlloc.Load() {
		t.Fatal("zero-fill-on-alloc must default to off")
	}
}
