package manager

import "github.com/ledgerdb/ledgerdb/internal/wire"

// recordIfMutating appends frame's exact received bytes to the command log
// buffer if its command mutates (§4.3). The lock guarding aofBuffer and
// writeCount is taken only here and in writable() (§5).
func (m *Manager) recordIfMutating(frame wire.Frame) {
	if !frame.Command.Mutates() {
		return
	}
	if m.recovering {
		// the recovery replay loop re-invokes Query for every trailing AOF
		// record; recording those again would double the log on every
		// restart, so recovery short-circuits this step entirely.
		return
	}

	m.logMu.Lock()
	defer m.logMu.Unlock()

	m.aofBuffer = wire.AppendUint64(m.aofBuffer, uint64(len(frame.Raw)))
	m.aofBuffer = append(m.aofBuffer, frame.Raw...)
	m.writeCount++
}
