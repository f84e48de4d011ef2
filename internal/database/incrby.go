package database

import (
	"strconv"

	"github.com/ledgerdb/ledgerdb/internal/domain"
)

// IncrBy increments the string at args[0] by the decimal amount args[1].
func (d *Database) IncrBy(args [][]byte) *domain.Result {
	if !minArgs(args, 2) {
		return domain.NewResult().SetError(domain.ErrMalformedFrame)
	}
	delta, err := strconv.ParseInt(string(args[1]), 10, 64)
	if hasError(err) {
		return domain.NewResult().SetError(err)
	}
	return d.addTo(string(args[0]), delta)
}

// DecrBy decrements the string at args[0] by the decimal amount args[1].
func (d *Database) DecrBy(args [][]byte) *domain.Result {
	if !minArgs(args, 2) {
		return domain.NewResult().SetError(domain.ErrMalformedFrame)
	}
	delta, err := strconv.ParseInt(string(args[1]), 10, 64)
	if hasError(err) {
		return domain.NewResult().SetError(err)
	}
	return d.addTo(string(args[0]), -delta)
}
