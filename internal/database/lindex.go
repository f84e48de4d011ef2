package database

import (
	"strconv"

	"github.com/ledgerdb/ledgerdb/internal/domain"
)

// LIndex returns the element at the decimal index args[1] of the list at
// args[0], or a nil response if the list is absent or the index is out of
// range. Negative indices count from the end, as in Redis's LINDEX.
func (d *Database) LIndex(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 2) {
		return res.SetError(domain.ErrMalformedFrame)
	}

	index, err := strconv.ParseInt(string(args[1]), 10, 64)
	if hasError(err) {
		return res.SetError(err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.data[string(args[0])]
	if !ok {
		return res
	}
	if v.kind != domain.KindList {
		return res.SetError(domain.ErrWrongType)
	}

	if index < 0 {
		index += int64(len(v.list))
	}
	if index < 0 || index >= int64(len(v.list)) {
		return res
	}

	res.Response = v.list[index]
	return res
}

// LLen returns the length of the list at args[0], or zero if absent.
func (d *Database) LLen(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 1) {
		return res.SetError(domain.ErrMalformedFrame)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.data[string(args[0])]
	if !ok {
		res.Response = formatUint64(0)
		return res
	}
	if v.kind != domain.KindList {
		return res.SetError(domain.ErrWrongType)
	}

	res.Response = formatUint64(uint64(len(v.list)))
	return res
}
