package slab

import (
	"fmt"

	"github.com/nvellum/slabdb/dirty"
	"github.com/nvellum/slabdb/file"
	"github.com/nvellum/slabdb/internal/buf"
	"github.com/nvellum/slabdb/internal/format"
)

// PrepareForUpdate durably commits topRef as the new root reference: it
// writes the ref into the currently-inactive header slot, fsyncs, and only
// then flips the select bit to make that slot authoritative. This ordering
// is the whole point of the dual-slot scheme — a crash on either side of the
// flip leaves the previously-committed slot intact and readable.
//
// It also implements tx.Committer, so a tx.Manager can drive it directly.
func (s *Store) PrepareForUpdate(topRef uint64) error {
	if !s.IsAttached() {
		return ErrNotAttached
	}
	if s.hb == nil || s.dt == nil {
		return fmt.Errorf("slab: prepare_for_update: %w: not attached to a file", ErrNotAttached)
	}
	if buf.CheckAligned8("top_ref", int64(topRef)) != nil || int64(topRef) >= s.GetTotalSize() {
		return fmt.Errorf("slab: prepare_for_update: ref=%d: %w", topRef, ErrBadRef)
	}

	inactive := 1 - s.selectSlot
	if s.streaming {
		// The streaming footer's slot is conceptually slot 0; the first
		// commit off of streaming form always lands in slot 1.
		inactive = 1
	}

	format.PutTopRef(s.hb.Bytes(), inactive, topRef)
	s.dt.Add(format.TopRefOffset(inactive), 8)
	if err := s.dt.FlushDataOnly(); err != nil {
		return fmt.Errorf("slab: prepare_for_update: write top_ref: %w", err)
	}
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("slab: prepare_for_update: sync before select flip: %w", err)
	}

	format.SetSelect(s.hb.Bytes(), inactive)
	s.dt.Add(format.FlagsOffset, 1)
	flushMode := dirty.FlushAuto
	if file.SyncDisabled() {
		flushMode = dirty.FlushDataOnly
	}
	if err := s.dt.FlushHeaderAndMeta(flushMode); err != nil {
		return fmt.Errorf("slab: prepare_for_update: flip select bit: %w", err)
	}

	s.selectSlot = inactive
	if inactive == 0 {
		s.fileFormat = s.hb.Bytes()[format.FileFormat0Offset]
	} else {
		s.fileFormat = s.hb.Bytes()[format.FileFormat1Offset]
	}
	s.streaming = false
	tracef("prepare_for_update top_ref=%d slot=%d", topRef, inactive)
	return nil
}
