package database

import (
	"strconv"

	"github.com/ledgerdb/ledgerdb/internal/domain"
)

func hasError(err error) bool {
	return err != nil
}

// minArgs reports whether args carries at least n elements. Every command
// below checks this before indexing into args, since DecodeArgs only
// validates the statement's length-prefix encoding, not a given command's
// arity — a malformed-but-well-encoded statement must fail with
// ErrMalformedFrame, not panic.
func minArgs(args [][]byte, n int) bool {
	return len(args) >= n
}

func isEmpty(b []byte) bool {
	return len(b) == 0
}

func formatInt64(n int64) []byte {
	return []byte(strconv.FormatInt(n, 10))
}

func formatUint64(n uint64) []byte {
	return []byte(strconv.FormatUint(n, 10))
}

func newString(b []byte) *value {
	return &value{kind: domain.KindString, str: append([]byte(nil), b...)}
}
