package manager

// Metrics reports the live durability counters: total snapshots taken,
// total records flushed (plain appends and rollovers both count), and
// total bytes written through the IOEngine.
func (m *Manager) Metrics() (snapshotsTaken, recordsWritten, bytesWritten int64) {
	return m.snapshotsTaken.Count(), m.recordsWritten.Count(), m.bytesWritten.Count()
}
