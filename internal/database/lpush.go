package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// LPush prepends args[1:] (in the order given) to the list at args[0],
// creating the list if absent, and returns its new length.
func (d *Database) LPush(args [][]byte) *domain.Result {
	if !minArgs(args, 1) {
		return domain.NewResult().SetError(domain.ErrMalformedFrame)
	}
	return d.push(string(args[0]), args[1:], false)
}

// LPushX is LPush but only if the key already exists as a list; returns
// 0 without creating the key otherwise.
func (d *Database) LPushX(args [][]byte) *domain.Result {
	if !minArgs(args, 1) {
		return domain.NewResult().SetError(domain.ErrMalformedFrame)
	}
	return d.push(string(args[0]), args[1:], true)
}

func (d *Database) push(key string, values [][]byte, requireExisting bool) *domain.Result {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := domain.NewResult()
	v, ok := d.data[key]
	if !ok {
		if requireExisting {
			res.Response = formatUint64(0)
			return res
		}
		v = &value{kind: domain.KindList}
		d.data[key] = v
	} else if v.kind != domain.KindList {
		return res.SetError(domain.ErrWrongType)
	}

	for _, val := range values {
		v.list = append([][]byte{append([]byte(nil), val...)}, v.list...)
	}

	res.Response = formatUint64(uint64(len(v.list)))
	return res
}
