package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Exists counts how many of the given keys are currently present.
func (d *Database) Exists(args [][]byte) *domain.Result {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var count uint64
	for _, key := range args {
		if _, ok := d.data[string(key)]; ok {
			count++
		}
	}

	res := domain.NewResult()
	res.Response = formatUint64(count)
	return res
}
