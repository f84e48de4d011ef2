package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Strlen returns the byte length of the string at args[0], or zero if
// absent. A non-string key is WRONGTYPE.
func (d *Database) Strlen(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 1) {
		return res.SetError(domain.ErrMalformedFrame)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.data[string(args[0])]
	if !ok {
		res.Response = formatUint64(0)
		return res
	}
	if v.kind != domain.KindString {
		return res.SetError(domain.ErrWrongType)
	}

	res.Response = formatUint64(uint64(len(v.str)))
	return res
}
