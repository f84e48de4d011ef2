// Package database implements a single logical keyspace: the String,
// Hash and List value variants, and the commands that read or mutate
// them (§3, §4.3 of the spec). A Database owns its own lock; the manager
// holds its map read lock across a Database call only for MOVE and for
// snapshot serialization.
package database

import (
	"sync"

	"github.com/ledgerdb/ledgerdb/internal/domain"
)

type value struct {
	kind domain.ValueKind
	str  []byte
	hash map[string][]byte
	list [][]byte
}

// Database is one logical keyspace, identified by an 8-byte id (§3).
type Database struct {
	id   uint64
	mu   sync.RWMutex
	data map[string]*value
}

// New creates an empty database with the given id.
func New(id uint64) *Database {
	return &Database{id: id, data: make(map[string]*value)}
}

// ID returns the database's identity.
func (d *Database) ID() uint64 {
	return d.id
}

// Len reports the number of keys currently stored, used by the admin
// introspection surface (SPEC_FULL §3).
func (d *Database) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.data)
}
