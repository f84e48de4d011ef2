package durability

import "context"

// IOEngine is the boundary between the manager's in-memory durability
// bookkeeping and whatever actually holds the bytes on disk. Truncate
// discards the on-disk log (called right before a full snapshot is
// written); Write appends a single already-framed record.
type IOEngine interface {
	Truncate(ctx context.Context) error
	Write(ctx context.Context, record []byte) error
}
