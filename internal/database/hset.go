package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// HSet sets field/value pairs (args[1:], in pairs) on the hash at args[0],
// creating the hash if absent. Returns the number of fields that were
// newly created (existing fields that were merely overwritten don't
// count, matching Redis's HSET return value).
func (d *Database) HSet(args [][]byte) *domain.Result {
	if !minArgs(args, 1) {
		return domain.NewResult().SetError(domain.ErrMalformedFrame)
	}
	key := string(args[0])
	pairs := args[1:]

	d.mu.Lock()
	defer d.mu.Unlock()

	res := domain.NewResult()
	v, ok := d.data[key]
	if !ok {
		v = &value{kind: domain.KindHash, hash: make(map[string][]byte)}
		d.data[key] = v
	} else if v.kind != domain.KindHash {
		return res.SetError(domain.ErrWrongType)
	}

	var created uint64
	for i := 0; i+1 < len(pairs); i += 2 {
		field := string(pairs[i])
		if _, exists := v.hash[field]; !exists {
			created++
		}
		v.hash[field] = append([]byte(nil), pairs[i+1]...)
	}

	res.Response = formatUint64(created)
	return res
}
