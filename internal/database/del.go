package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Del removes every key in args that exists and returns how many were
// actually removed.
func (d *Database) Del(args [][]byte) *domain.Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	var removed uint64
	for _, key := range args {
		if _, ok := d.data[string(key)]; ok {
			delete(d.data, string(key))
			removed++
		}
	}

	res := domain.NewResult()
	res.Response = formatUint64(removed)
	return res
}
