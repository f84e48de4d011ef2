package database

import (
	"strconv"

	"github.com/ledgerdb/ledgerdb/internal/domain"
)

// SetRange overwrites the string at args[0] starting at the decimal
// offset args[1] with args[2], zero-padding if the offset is past the
// current end. Returns the new length.
func (d *Database) SetRange(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 3) {
		return res.SetError(domain.ErrMalformedFrame)
	}

	offset, err := strconv.ParseInt(string(args[1]), 10, 64)
	if hasError(err) || offset < 0 {
		return res.SetError(domain.ErrMalformedFrame)
	}
	patch := args[2]

	d.mu.Lock()
	defer d.mu.Unlock()

	key := string(args[0])
	v, ok := d.data[key]
	if !ok {
		v = newString(nil)
		d.data[key] = v
	} else if v.kind != domain.KindString {
		return res.SetError(domain.ErrWrongType)
	}

	needed := int(offset) + len(patch)
	if needed > len(v.str) {
		grown := make([]byte, needed)
		copy(grown, v.str)
		v.str = grown
	}
	copy(v.str[offset:], patch)

	res.Response = formatUint64(uint64(len(v.str)))
	return res
}
