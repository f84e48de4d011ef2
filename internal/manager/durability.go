package manager

import (
	"context"

	"github.com/ledgerdb/ledgerdb/internal/durability"
	"github.com/ledgerdb/ledgerdb/internal/wire"
)

// Writable advances the one-second housekeeping tick and reports whether a
// flush must be scheduled now, filling writeBuffer accordingly (§4.1).
// Rollover takes priority over a plain AOF append; Writable itself never
// returns true while a previous cycle's writeBuffer hasn't been cleared by
// Wrote — there are no overlapping durability cycles.
func (m *Manager) Writable() bool {
	if len(m.writeBuffer) > 0 {
		return false
	}

	m.seconds++

	m.logMu.Lock()
	seconds, writeCount, aofLen := m.seconds, m.writeCount, len(m.aofBuffer)
	m.logMu.Unlock()

	if durability.ShouldRollover(seconds, writeCount) {
		m.seconds = 0

		m.logMu.Lock()
		m.writeCount = 0
		m.aofBuffer = nil
		m.logMu.Unlock()

		m.writeBuffer = m.Serialize()
		m.rollingOver = true
		m.sawHeader = true
		m.snapshotsTaken.Inc(1)
		return true
	}

	if aofLen == 0 {
		return false
	}

	m.logMu.Lock()
	buf := m.aofBuffer
	m.aofBuffer = nil
	m.logMu.Unlock()

	if !m.sawHeader {
		buf = append(wire.AppendUint64(nil, 0), buf...)
		m.sawHeader = true
	}

	m.writeBuffer = buf
	m.rollingOver = false
	return true
}

// Truncatable reports whether the current cycle is a snapshot rollover —
// seconds reset to zero and a pending writeBuffer — as opposed to a plain
// AOF append, which never truncates the file (§4.1).
func (m *Manager) Truncatable() bool {
	return m.seconds == 0 && m.rollingOver && len(m.writeBuffer) > 0
}

// Truncate zeroes the on-disk log's length ahead of a full snapshot write.
func (m *Manager) Truncate(ctx context.Context) error {
	return m.ioEngine.Truncate(ctx)
}

// Write persists writeBuffer at the file's current append position.
func (m *Manager) Write(ctx context.Context) error {
	if err := m.ioEngine.Write(ctx, m.writeBuffer); err != nil {
		return err
	}
	m.recordsWritten.Inc(1)
	m.bytesWritten.Inc(int64(len(m.writeBuffer)))
	return nil
}

// Wrote clears writeBuffer, marking the durability cycle done (§4.1).
func (m *Manager) Wrote() {
	m.writeBuffer = nil
	m.rollingOver = false
}
