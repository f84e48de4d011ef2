// Package housekeeping drives the manager's durability state machine on a
// fixed cadence: the one task per process that calls
// Writable/Truncatable/Truncate/Write/Wrote (§5: "there is exactly one
// housekeeping task").
package housekeeping

import (
	"context"
	"time"

	"github.com/ledgerdb/ledgerdb/internal/logger"
)

// Durable is the subset of the manager the ticker drives. A named
// interface rather than *manager.Manager keeps this package testable
// without a real Manager.
type Durable interface {
	Writable() bool
	Truncatable() bool
	Truncate(ctx context.Context) error
	Write(ctx context.Context) error
	Wrote()
}

// Tick is the housekeeping interval; the spec's "housekeeping tick is one
// second" (§4.1) maps directly to this duration.
const Tick = time.Second

// Run drives one durability cycle per Tick until ctx is cancelled. Each
// cycle: ask Writable(); if it says yes, truncate first when this cycle is
// a snapshot rollover, then write, then acknowledge with Wrote().
func Run(ctx context.Context, d Durable) {
	ticker := time.NewTicker(Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			RunCycle(ctx, d)
		}
	}
}

// RunCycle runs a single durability cycle against d: ask Writable(); if it
// says yes, truncate first when this cycle is a snapshot rollover, then
// write, then acknowledge with Wrote(). Exported so tests can drive cycles
// deterministically without waiting on the real ticker.
func RunCycle(ctx context.Context, d Durable) {
	if !d.Writable() {
		return
	}

	if d.Truncatable() {
		if err := d.Truncate(ctx); err != nil {
			logger.Error("housekeeping truncate failed", "error", err)
			return
		}
	}

	if err := d.Write(ctx); err != nil {
		// a cancelled or failed write leaves writeBuffer populated; the
		// next tick retries the same cycle (§5: "best-effort-on-crash up
		// to the last completed write").
		logger.Error("housekeeping write failed", "error", err)
		return
	}

	d.Wrote()
}
