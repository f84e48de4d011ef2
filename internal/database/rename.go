package database

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Rename moves the value at args[0] to args[1], overwriting whatever was
// at the destination. Fails with ErrKeyNotFound if the source is absent.
func (d *Database) Rename(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 2) {
		return res.SetError(domain.ErrMalformedFrame)
	}
	from, to := string(args[0]), string(args[1])

	d.mu.Lock()
	defer d.mu.Unlock()

	v, ok := d.data[from]
	if !ok {
		return res.SetError(domain.ErrKeyNotFound)
	}

	delete(d.data, from)
	d.data[to] = v
	return res.SetOK()
}

// RenameNX is Rename but only if the destination doesn't already exist.
// Returns "1" if renamed, "0" if the destination already existed.
func (d *Database) RenameNX(args [][]byte) *domain.Result {
	res := domain.NewResult()
	if !minArgs(args, 2) {
		return res.SetError(domain.ErrMalformedFrame)
	}
	from, to := string(args[0]), string(args[1])

	d.mu.Lock()
	defer d.mu.Unlock()

	v, ok := d.data[from]
	if !ok {
		return res.SetError(domain.ErrKeyNotFound)
	}
	if _, exists := d.data[to]; exists {
		res.Response = formatUint64(0)
		return res
	}

	delete(d.data, from)
	d.data[to] = v
	res.Response = formatUint64(1)
	return res
}
