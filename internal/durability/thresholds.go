package durability

// threshold is one row of the snapshot rollover policy: rollover fires
// once seconds has reached minSeconds AND writeCount has exceeded
// minWrites. Rows are evaluated in order; the first match wins.
type threshold struct {
	minSeconds uint64
	minWrites  uint64
}

// Thresholds mirrors the well-known snapshot policy named in the design
// notes: rollover at 900s/1 write, 300s/10 writes, or 60s/10000 writes,
// whichever comes first.
var Thresholds = []threshold{
	{minSeconds: 900, minWrites: 1},
	{minSeconds: 300, minWrites: 10},
	{minSeconds: 60, minWrites: 10000},
}

// ShouldRollover reports whether the current (seconds, writeCount) pair
// crosses any row of Thresholds.
func ShouldRollover(seconds, writeCount uint64) bool {
	for _, t := range Thresholds {
		if seconds >= t.minSeconds && writeCount > t.minWrites {
			return true
		}
	}
	return false
}
