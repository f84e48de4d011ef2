// Package admin exposes a read-only RESP introspection listener alongside
// the core binary protocol: PING, DBSIZE and INFO, so an operator can
// point a plain redis-cli at the process without speaking the custom wire
// frame (§3's home for github.com/tidwall/redcon, kept out of the core
// protocol which is the spec's own frame and can't be expressed in RESP).
package admin

import (
	"github.com/tidwall/redcon"

	"github.com/ledgerdb/ledgerdb/internal/logger"
)

// Inspectable is the narrow slice of the manager the admin listener reads.
// It never mutates state.
type Inspectable interface {
	DatabaseCountLive() int
	Size(id uint64) int
}

type Config struct {
	Address string
}

type Server struct {
	rcon    *redcon.Server
	manager Inspectable
	stats   func() Snapshot
}

// Snapshot is a point-in-time read of the durability counters the
// rcrowley/go-metrics registry tracks, surfaced by INFO.
type Snapshot struct {
	SnapshotsTaken int64
	RecordsWritten int64
	BytesWritten   int64
}

// NewServer wires an Inspectable manager and a stats thunk that reads the
// live rcrowley/go-metrics counters at call time, so INFO never reports a
// frozen snapshot from construction.
func NewServer(manager Inspectable, stats func() Snapshot) *Server {
	return &Server{manager: manager, stats: stats}
}

func (s *Server) Start(config Config) error {
	s.rcon = redcon.NewServer(config.Address, s.handle, nil, nil)

	logger.Info("admin listener started", "address", config.Address)
	return s.rcon.ListenAndServe()
}

func (s *Server) Close() {
	if s.rcon != nil {
		s.rcon.Close()
		s.rcon = nil
	}
}
