package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Append adds args[1] to the end of the string at args[0], creating it if
// absent, and returns the new length.
func (d *Database) Append(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 2) {
		return res.SetError(domain.ErrMalformedFrame)
	}
	key := string(args[0])

	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.data[key]
	if !ok {
		v = newString(args[1])
		d.data[key] = v
	} else {
		if v.kind != domain.KindString {
			return res.SetError(domain.ErrWrongType)
		}
		v.str = append(v.str, args[1]...)
	}

	res.Response = formatUint64(uint64(len(v.str)))
	return res
}
