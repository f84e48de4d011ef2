package database

import (
	"strconv"

	"github.com/ledgerdb/ledgerdb/internal/domain"
)

// HIncrBy increments the hash field args[1] of the hash at args[0] by the
// decimal amount args[2], treating an absent field as 0.
func (d *Database) HIncrBy(args [][]byte) *domain.Result {
	if !minArgs(args, 3) {
		return domain.NewResult().SetError(domain.ErrMalformedFrame)
	}
	key, field := string(args[0]), string(args[1])

	delta, err := strconv.ParseInt(string(args[2]), 10, 64)
	if hasError(err) {
		return domain.NewResult().SetError(err)
	}

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

	var current int64
	if existing, ok := v.hash[field]; ok {
		current, err = strconv.ParseInt(string(existing), 10, 64)
		if hasError(err) {
			return res.SetError(domain.ErrWrongType)
		}
	}

	next := formatInt64(current + delta)
	v.hash[field] = next

	res.Response = next
	return res
}
