package manager

import "github.com/ledgerdb/ledgerdb/internal/database"

// selectDB resolves a database id, creating it under a single write-lock
// acquisition if absent (§4 supplement: no separate check-then-create
// race — try the map once, and only take the write lock when the id is
// actually missing).
func (m *Manager) selectDB(id uint64) *database.Database {
	m.dbMu.RLock()
	db, ok := m.dbs[id]
	m.dbMu.RUnlock()
	if ok {
		return db
	}

	m.dbMu.Lock()
	defer m.dbMu.Unlock()

	if db, ok := m.dbs[id]; ok {
		return db
	}

	db = database.New(id)
	m.dbs[id] = db
	return db
}
