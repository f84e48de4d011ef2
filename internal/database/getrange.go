package database

import (
	"strconv"

	"github.com/ledgerdb/ledgerdb/internal/domain"
)

// GetRange returns the substring of the string at args[0] between the
// (inclusive) decimal indices args[1] and args[2]. Negative indices count
// from the end, as in Redis's GETRANGE.
func (d *Database) GetRange(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 3) {
		return res.SetError(domain.ErrMalformedFrame)
	}

	start, err := strconv.ParseInt(string(args[1]), 10, 64)
	if hasError(err) {
		return res.SetError(err)
	}
	end, err := strconv.ParseInt(string(args[2]), 10, 64)
	if hasError(err) {
		return res.SetError(err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.data[string(args[0])]
	if !ok {
		return res
	}
	if v.kind != domain.KindString {
		return res.SetError(domain.ErrWrongType)
	}

	lo, hi := clampRange(start, end, len(v.str))
	if lo >= hi {
		return res
	}

	res.Response = append([]byte(nil), v.str[lo:hi]...)
	return res
}

func clampRange(start, end int64, length int) (lo, hi int) {
	n := int64(length)
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 {
		start = 0
	}
	if end >= n {
		end = n - 1
	}
	if start > end || start >= n || end < 0 {
		return 0, 0
	}
	return int(start), int(end) + 1
}
