package database

import (
	"github.com/ledgerdb/ledgerdb/internal/domain"
	"github.com/ledgerdb/ledgerdb/internal/wire"
)

// MGet batches Get over args, encoding the response as
// u64 count || { u8 present; u64 len; bytes[len] }* — present==0 entries
// carry no length/bytes. A non-string key is treated the same as absent
// (present==0), matching Redis's MGET semantics rather than erroring the
// whole batch for one wrong-type key.
func (d *Database) MGet(args [][]byte) *domain.Result {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := wire.AppendUint64(nil, uint64(len(args)))
	for _, key := range args {
		v, ok := d.data[string(key)]
		if !ok || v.kind != domain.KindString {
			out = append(out, 0)
			continue
		}
		out = append(out, 1)
		out = wire.AppendUint64(out, uint64(len(v.str)))
		out = append(out, v.str...)
	}

	res := domain.NewResult()
	res.Response = out
	return res
}
