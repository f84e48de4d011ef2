package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Get returns the string value stored at args[0], or a nil response if the
// key is absent. Asking for a non-string key is WRONGTYPE.
func (d *Database) Get(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 1) {
		return res.SetError(domain.ErrMalformedFrame)
	}
	key := string(args[0])

	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.data[key]
	if !ok {
		return res
	}
	if v.kind != domain.KindString {
		return res.SetError(domain.ErrWrongType)
	}

	res.Response = v.str
	return res
}
