package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Move transfers the key at args[0] from src to dst and responds "1".
// It responds "0" and changes nothing if the key is absent from src or
// already exists in dst (mirroring Redis's MOVE). The manager
// resolves both databases under its map read lock (§5) and calls Move
// with the per-database locks still to be taken here — lowest id first,
// so two concurrent opposite-direction MOVEs can never deadlock.
func Move(src, dst *Database, args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 1) {
		return res.SetError(domain.ErrMalformedFrame)
	}
	key := string(args[0])

	first, second := src, dst
	if dst.id < src.id {
		first, second = dst, src
	}

	if first == second {
		// Moving a key to the database it's already in is always a
		// no-op, matching Redis's own same-db MOVE behaviour.
		res.Response = formatUint64(0)
		return res
	}

	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	v, ok := src.data[key]
	if !ok {
		res.Response = formatUint64(0)
		return res
	}
	if _, exists := dst.data[key]; exists {
		res.Response = formatUint64(0)
		return res
	}

	delete(src.data, key)
	dst.data[key] = v

	res.Response = formatUint64(1)
	return res
}
