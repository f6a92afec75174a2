// Package tx sequences the commit protocol around prepare_for_update: begin
// a logical transaction, commit it by handing the new top-ref to the
// allocator (which performs the actual fsync-then-flip-select-bit dance),
// or roll it back before anything has touched disk.
//
// This mirrors a transaction manager that owns sequence-number bookkeeping
// around a mutation cycle, adapted to a commit protocol with no sequence
// numbers: durability here comes entirely from the dual top-ref/select-bit
// scheme, so Manager's job shrinks to idempotent Begin/Commit/Rollback
// guarding a single Committer call.
package tx

import "fmt"

// Committer is the one allocator operation a transaction commits: writing
// and durably selecting a new top-ref. Implemented by the allocator's
// PrepareForUpdate.
type Committer interface {
	PrepareForUpdate(topRef uint64) error
}

// Manager sequences Begin/Commit/Rollback around a Committer. Not
// thread-safe — the allocator it wraps isn't either.
type Manager struct {
	c    Committer
	inTx bool
}

// NewManager creates a transaction manager over c.
func NewManager(c Committer) *Manager {
	return &Manager{c: c}
}

// Begin opens a transaction. Idempotent: calling Begin while already in one
// is a no-op, matching the allocator's own single-writer assumption.
func (m *Manager) Begin() {
	m.inTx = true
}

// Commit hands topRef to the underlying Committer and, on success, closes
// the transaction. A Commit with no open transaction is a no-op.
func (m *Manager) Commit(topRef uint64) error {
	if !m.inTx {
		return nil
	}
	if err := m.c.PrepareForUpdate(topRef); err != nil {
		return fmt.Errorf("tx: commit: %w", err)
	}
	m.inTx = false
	return nil
}

// Rollback abandons the transaction without touching disk: nothing durable
// has happened yet by construction, since Commit is the only operation that
// writes anything.
func (m *Manager) Rollback() {
	m.inTx = false
}

// InTransaction reports whether a transaction is currently open.
func (m *Manager) InTransaction() bool {
	return m.inTx
}
