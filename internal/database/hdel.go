package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// HDel removes the given fields (args[1:]) from the hash at args[0] and
// returns how many fields were actually removed.
func (d *Database) HDel(args [][]byte) *domain.Result {
	if !minArgs(args, 1) {
		return domain.NewResult().SetError(domain.ErrMalformedFrame)
	}
	key := string(args[0])
	fields := args[1:]

	d.mu.Lock()
	defer d.mu.Unlock()

	res := domain.NewResult()
	v, ok := d.data[key]
	if !ok {
		res.Response = formatUint64(0)
		return res
	}
	if v.kind != domain.KindHash {
		return res.SetError(domain.ErrWrongType)
	}

	var removed uint64
	for _, f := range fields {
		field := string(f)
		if _, exists := v.hash[field]; exists {
			delete(v.hash, field)
			removed++
		}
	}
	if len(v.hash) == 0 {
		delete(d.data, key)
	}

	res.Response = formatUint64(removed)
	return res
}
