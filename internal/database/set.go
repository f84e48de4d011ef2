package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Set unconditionally stores a string value at args[0], overwriting
// whatever kind of value (if any) previously lived there.
func (d *Database) Set(args [][]byte) *domain.Result {
	if !minArgs(args, 2) {
		return domain.NewResult().SetError(domain.ErrMalformedFrame)
	}
	key, val := string(args[0]), args[1]

	d.mu.Lock()
	defer d.mu.Unlock()

	d.data[key] = newString(val)
	return domain.NewResult().SetOK()
}
