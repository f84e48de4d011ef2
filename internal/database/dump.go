package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Dump returns the on-disk encoding of the value at args[0] — u8 kind ||
// value body, the same per-value encoding Serialize uses for each entry —
// or an empty response if the key is absent. It never mutates state and
// is not recorded to the AOF (§4.3).
func (d *Database) Dump(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 1) {
		return res.SetError(domain.ErrMalformedFrame)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.data[string(args[0])]
	if !ok {
		return res
	}

	out := []byte{byte(v.kind)}
	res.Response = appendValueBody(out, v)
	return res
}
