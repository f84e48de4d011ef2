package manager

import "github.com/ledgerdb/ledgerdb/internal/wire"

// Serialize builds a full snapshot: u64 db_count || Σ serialize(db) (§4.4).
// Construction takes the map's read lock for the duration of the capture,
// so the result reflects a single consistent instant — any mutation that
// completes afterward belongs to the next command log, never lost and
// never double-counted.
func (m *Manager) Serialize() []byte {
	m.dbMu.RLock()
	defer m.dbMu.RUnlock()

	out := wire.AppendUint64(nil, uint64(len(m.dbs)))
	for _, db := range m.dbs {
		out = append(out, db.Serialize()...)
	}
	return out
}
