package manager

import (
	"fmt"

	"github.com/ledgerdb/ledgerdb/internal/database"
	"github.com/ledgerdb/ledgerdb/internal/domain"
	"github.com/ledgerdb/ledgerdb/internal/wire"
)

// recover parses a full dump.aof image: a snapshot header followed by a
// trailing command log (§4.2). Every per-database record replaces that
// id's in-memory database wholesale; trailing records are replayed
// through Query with recording suppressed, so restarting never doubles
// the AOF before the next flush.
func (m *Manager) recover(blob []byte) error {
	count, rest, ok := wire.ReadUint64(blob)
	if !ok {
		return fmt.Errorf("%w: snapshot db_count", domain.ErrCorruptLog)
	}

	for i := uint64(0); i < count; i++ {
		id, r, ok := wire.ReadUint64(rest)
		if !ok {
			return fmt.Errorf("%w: snapshot record %d id", domain.ErrCorruptLog, i)
		}
		size, r, ok := wire.ReadUint64(r)
		if !ok || uint64(len(r)) < size {
			return fmt.Errorf("%w: snapshot record %d body", domain.ErrCorruptLog, i)
		}

		db, err := database.NewFromBody(id, r[:size])
		if err != nil {
			return err
		}

		m.dbs[id] = db
		rest = r[size:]
	}

	m.recovering = true
	defer func() { m.recovering = false }()

	for len(rest) > 0 {
		size, r, ok := wire.ReadUint64(rest)
		if !ok || uint64(len(r)) < size {
			return fmt.Errorf("%w: command log record", domain.ErrCorruptLog)
		}

		if _, err := m.Query(r[:size]); err != nil {
			return fmt.Errorf("%w: replaying command log record: %v", domain.ErrCorruptLog, err)
		}

		rest = r[size:]
	}

	return nil
}
