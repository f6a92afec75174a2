package dirty

import "sort"

const defaultRangeCapacity = 8

// FlushMode controls how much durability a commit buys.
type FlushMode int

const (
	// FlushAuto writes dirty ranges, then fdatasyncs once. The default for
	// prepare_for_update.
	FlushAuto FlushMode = iota

	// FlushDataOnly writes dirty ranges but does not fdatasync. The caller is
	// responsible for a later FlushHeaderAndMeta call.
	FlushDataOnly

	// FlushFull forces platform-specific maximum durability (F_FULLFSYNC on
	// Darwin) instead of the cheaper default.
	FlushFull
)

// Range is a dirty byte range, offsets relative to the header buffer's start.
type Range struct {
	Off int64
	Len int64
}

// Tracker accumulates dirty ranges over a small in-memory header buffer and
// writes them out through Source.WriteAt. Not safe for concurrent use — the
// allocator is single-threaded and so is its dirty tracker.
type Tracker struct {
	src    Source
	ranges []Range
}

// NewTracker creates a tracker over src.
func NewTracker(src Source) *Tracker {
	return &Tracker{src: src, ranges: make([]Range, 0, defaultRangeCapacity)}
}

// Add records a dirty range. Cheap: appends to a slice, no syscalls.
func (t *Tracker) Add(off, length int) {
	if length <= 0 {
		return
	}
	t.ranges = append(t.ranges, Range{Off: int64(off), Len: int64(length)})
}

// FlushDataOnly writes every coalesced dirty range to the backing file, then
// clears the tracked ranges. It does not force durability.
func (t *Tracker) FlushDataOnly() error {
	if len(t.ranges) == 0 {
		return nil
	}
	data := t.src.Bytes()
	for _, r := range t.coalesce() {
		start, end := r.Off, r.Off+r.Len
		if end > int64(len(data)) {
			end = int64(len(data))
		}
		if start >= end {
			continue
		}
		if err := t.src.WriteAt(start, data[start:end]); err != nil {
			return err
		}
	}
	t.ranges = t.ranges[:0]
	return nil
}

// FlushHeaderAndMeta writes any remaining dirty ranges and, depending on
// mode, fdatasyncs the underlying file descriptor.
func (t *Tracker) FlushHeaderAndMeta(mode FlushMode) error {
	if err := t.FlushDataOnly(); err != nil {
		return err
	}
	if mode == FlushDataOnly {
		return nil
	}
	return fdatasync(t.src.FD(), mode == FlushFull)
}

// Reset discards all tracked ranges without flushing them.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// DebugRanges returns a copy of the raw, uncoalesced dirty ranges.
func (t *Tracker) DebugRanges() []Range {
	out := make([]Range, len(t.ranges))
	copy(out, t.ranges)
	return out
}

// coalesce sorts and merges overlapping/adjacent ranges.
func (t *Tracker) coalesce() []Range {
	if len(t.ranges) == 0 {
		return nil
	}
	sorted := make([]Range, len(t.ranges))
	copy(sorted, t.ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Off < sorted[j].Off })

	merged := make([]Range, 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if next.Off <= cur.Off+cur.Len {
			if end := next.Off + next.Len; end > cur.Off+cur.Len {
				cur.Len = end - cur.Off
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	merged = append(merged, cur)
	return merged
}
