package database

import (
	"github.com/ledgerdb/ledgerdb/internal/domain"
	"github.com/ledgerdb/ledgerdb/internal/wire"
)

// HGet returns the value of the hash field args[1] on the hash at args[0],
// or a nil response if the hash or the field is absent.
func (d *Database) HGet(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 2) {
		return res.SetError(domain.ErrMalformedFrame)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.data[string(args[0])]
	if !ok {
		return res
	}
	if v.kind != domain.KindHash {
		return res.SetError(domain.ErrWrongType)
	}

	res.Response = v.hash[string(args[1])]
	return res
}

// HGetAll returns every field/value pair of the hash at args[0], encoded
// as u64 count || { u64 len; bytes[len] }* — field then value for each
// pair, in no particular order.
func (d *Database) HGetAll(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 1) {
		return res.SetError(domain.ErrMalformedFrame)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.data[string(args[0])]
	if !ok {
		res.Response = wire.AppendUint64(nil, 0)
		return res
	}
	if v.kind != domain.KindHash {
		return res.SetError(domain.ErrWrongType)
	}

	out := wire.AppendUint64(nil, uint64(len(v.hash)))
	for field, value := range v.hash {
		out = wire.AppendUint64(out, uint64(len(field)))
		out = append(out, field...)
		out = wire.AppendUint64(out, uint64(len(value)))
		out = append(out, value...)
	}

	res.Response = out
	return res
}
