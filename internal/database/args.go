package database

import (
	"fmt"

	"github.com/ledgerdb/ledgerdb/internal/domain"
	"github.com/ledgerdb/ledgerdb/internal/wire"
)

// DecodeArgs splits a command's statement bytes into its argument vector.
// The grammar is this package's own concern (§4.3: "their internal grammar
// is not part of the manager contract") — arguments are simply
// length-prefixed byte strings: u64 argc || { u64 len, bytes[len] }*.
func DecodeArgs(statement []byte) ([][]byte, error) {
	count, rest, ok := wire.ReadUint64(statement)
	if !ok {
		return nil, fmt.Errorf("%w: statement argument count", domain.ErrMalformedFrame)
	}

	args := make([][]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		n, r, ok := wire.ReadUint64(rest)
		if !ok || uint64(len(r)) < n {
			return nil, fmt.Errorf("%w: statement argument %d", domain.ErrMalformedFrame, i)
		}
		args = append(args, r[:n])
		rest = r[n:]
	}

	return args, nil
}

// EncodeArgs is the inverse of DecodeArgs, used by clients (and by tests
// building request frames) to build a statement from an argument vector.
func EncodeArgs(args ...[]byte) []byte {
	out := wire.AppendUint64(nil, uint64(len(args)))
	for _, a := range args {
		out = wire.AppendUint64(out, uint64(len(a)))
		out = append(out, a...)
	}
	return out
}
