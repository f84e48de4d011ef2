package manager

import (
	"fmt"

	"github.com/ledgerdb/ledgerdb/internal/database"
	"github.com/ledgerdb/ledgerdb/internal/domain"
	"github.com/ledgerdb/ledgerdb/internal/wire"
)

// dbHandler is a single-database command: every command except SELECT
// (administrative, handled separately) and MOVE (needs two databases,
// handled separately).
type dbHandler func(*database.Database, [][]byte) *domain.Result

var dispatch = [wire.LLen + 1]dbHandler{
	wire.Get:      (*database.Database).Get,
	wire.Exists:   (*database.Database).Exists,
	wire.Type:     (*database.Database).Type,
	wire.Dump:     (*database.Database).Dump,
	wire.Strlen:   (*database.Database).Strlen,
	wire.GetRange: (*database.Database).GetRange,
	wire.MGet:     (*database.Database).MGet,
	wire.HGet:     (*database.Database).HGet,
	wire.HGetAll:  (*database.Database).HGetAll,
	wire.LIndex:   (*database.Database).LIndex,
	wire.LLen:     (*database.Database).LLen,

	wire.Set:      (*database.Database).Set,
	wire.Del:      (*database.Database).Del,
	wire.Rename:   (*database.Database).Rename,
	wire.RenameNX: (*database.Database).RenameNX,
	wire.SetNX:    (*database.Database).SetNX,
	wire.SetRange: (*database.Database).SetRange,
	wire.MSet:     (*database.Database).MSet,
	wire.MSetNX:   (*database.Database).MSetNX,
	wire.Incr:     (*database.Database).Incr,
	wire.IncrBy:   (*database.Database).IncrBy,
	wire.Decr:     (*database.Database).Decr,
	wire.DecrBy:   (*database.Database).DecrBy,
	wire.Append:   (*database.Database).Append,
	wire.HSet:     (*database.Database).HSet,
	wire.HDel:     (*database.Database).HDel,
	wire.HIncrBy:  (*database.Database).HIncrBy,
	wire.LPush:    (*database.Database).LPush,
	wire.LPushX:   (*database.Database).LPushX,
	wire.LPop:     (*database.Database).LPop,
}

// Query parses raw into a frame, dispatches it to the target database and,
// for mutating commands, records the exact frame bytes into the command
// log buffer after the mutation has returned (§4.1). A malformed frame or
// unknown command is a protocol error; an unknown db id is NoSuchDatabase
// for anything other than SELECT, which creates the id instead.
func (m *Manager) Query(raw []byte) ([]byte, error) {
	frame, err := wire.Parse(raw)
	if err != nil {
		return nil, err
	}

	if frame.Command == wire.Select {
		m.selectDB(frame.DBID)
		m.recordIfMutating(frame)
		return domain.OK, nil
	}

	args, err := database.DecodeArgs(frame.Statement)
	if err != nil {
		return nil, err
	}

	if frame.Command == wire.Move {
		return m.move(frame, args)
	}

	m.dbMu.RLock()
	db, ok := m.dbs[frame.DBID]
	m.dbMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: db %d", domain.ErrNoSuchDatabase, frame.DBID)
	}

	handler := dispatch[frame.Command]
	if handler == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCommand, frame.Command)
	}

	result := handler(db, args)
	if result.Err != nil {
		return nil, result.Err
	}

	m.recordIfMutating(frame)
	return result.Response, nil
}

// move holds the map's read lock for the duration of the cross-database
// operation (§5: "MOVE takes the read lock for the duration of the
// cross-database operation, then the per-database internal locks handle
// the actual mutation") and delegates the key transfer — and its own
// lower-id-first lock ordering — to database.Move. Both the source and
// the destination must already exist: like any other non-SELECT command,
// MOVE fails with NoSuchDatabase rather than creating a destination on
// the fly (§4.1).
func (m *Manager) move(frame wire.Frame, args [][]byte) ([]byte, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: MOVE requires key and destination db", domain.ErrMalformedFrame)
	}

	destID, _, ok := wire.ReadUint64(args[1])
	if !ok {
		return nil, fmt.Errorf("%w: MOVE destination id", domain.ErrMalformedFrame)
	}

	m.dbMu.RLock()
	defer m.dbMu.RUnlock()

	src, srcOK := m.dbs[frame.DBID]
	if !srcOK {
		return nil, fmt.Errorf("%w: db %d", domain.ErrNoSuchDatabase, frame.DBID)
	}
	dst, dstOK := m.dbs[destID]
	if !dstOK {
		return nil, fmt.Errorf("%w: db %d", domain.ErrNoSuchDatabase, destID)
	}

	result := database.Move(src, dst, args[:1])
	if result.Err != nil {
		return nil, result.Err
	}

	m.recordIfMutating(frame)
	return result.Response, nil
}
