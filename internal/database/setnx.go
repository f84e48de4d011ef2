package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// SetNX sets args[0] to args[1] only if the key does not already exist.
// Returns "1" if it set the value, "0" if the key already existed.
func (d *Database) SetNX(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 2) {
		return res.SetError(domain.ErrMalformedFrame)
	}
	key := string(args[0])

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.data[key]; exists {
		res.Response = formatUint64(0)
		return res
	}

	d.data[key] = newString(args[1])
	res.Response = formatUint64(1)
	return res
}
