package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Type reports the kind of value stored at args[0] as one of "string",
// "hash", "list" or "none".
func (d *Database) Type(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 1) {
		return res.SetError(domain.ErrMalformedFrame)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.data[string(args[0])]
	if !ok {
		res.Response = []byte("none")
		return res
	}

	res.Response = []byte(v.kind.String())
	return res
}
