package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// MSetNX sets every key/value pair in args only if none of the keys
// exist yet. Returns "1" if it set them, "0" if any key was already
// present (in which case nothing is modified).
func (d *Database) MSetNX(args [][]byte) *domain.Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := 0; i+1 < len(args); i += 2 {
		if _, exists := d.data[string(args[i])]; exists {
			res := domain.NewResult()
			res.Response = formatUint64(0)
			return res
		}
	}

	for i := 0; i+1 < len(args); i += 2 {
		d.data[string(args[i])] = newString(args[i+1])
	}

	res := domain.NewResult()
	res.Response = formatUint64(1)
	return res
}
