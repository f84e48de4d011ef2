package database

import (
	"strconv"

	"github.com/ledgerdb/ledgerdb/internal/domain"
)

// addTo parses the string at key as a base-10 int64 (treating an absent
// key as 0), adds delta, stores the result back as text and returns it.
// A key holding a non-integer string or a non-string kind is WRONGTYPE.
func (d *Database) addTo(key string, delta int64) *domain.Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := domain.NewResult()

	v, ok := d.data[key]
	var current int64
	if ok {
		if v.kind != domain.KindString {
			return res.SetError(domain.ErrWrongType)
		}
		parsed, err := strconv.ParseInt(string(v.str), 10, 64)
		if hasError(err) {
			return res.SetError(domain.ErrWrongType)
		}
		current = parsed
	}

	next := current + delta
	encoded := formatInt64(next)

	if ok {
		v.str = encoded
	} else {
		d.data[key] = &value{kind: domain.KindString, str: encoded}
	}

	res.Response = encoded
	return res
}

// Incr increments the string at args[0] by one.
func (d *Database) Incr(args [][]byte) *domain.Result {
	if !minArgs(args, 1) {
		return domain.NewResult().SetError(domain.ErrMalformedFrame)
	}
	return d.addTo(string(args[0]), 1)
}

// Decr decrements the string at args[0] by one.
func (d *Database) Decr(args [][]byte) *domain.Result {
	if !minArgs(args, 1) {
		return domain.NewResult().SetError(domain.ErrMalformedFrame)
	}
	return d.addTo(string(args[0]), -1)
}
