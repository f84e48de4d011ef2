package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// LPop removes and returns the first element of the list at args[0], or
// a nil response if the list is absent or empty. A list emptied by LPop
// is removed from the keyspace entirely.
func (d *Database) LPop(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 1) {
		return res.SetError(domain.ErrMalformedFrame)
	}
	key := string(args[0])

	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.data[key]
	if !ok {
		return res
	}
	if v.kind != domain.KindList {
		return res.SetError(domain.ErrWrongType)
	}
	if len(v.list) == 0 {
		return res
	}

	res.Response = v.list[0]
	v.list = v.list[1:]
	if len(v.list) == 0 {
		delete(d.data, key)
	}

	return res
}
