package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// MSet sets every key/value pair in args (args must have even length).
func (d *Database) MSet(args [][]byte) *domain.Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := 0; i+1 < len(args); i += 2 {
		d.data[string(args[i])] = newString(args[i+1])
	}

	return domain.NewResult().SetOK()
}
