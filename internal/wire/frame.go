package wire

import "github.com/ledgerdb/ledgerdb/internal/domain"

// Frame is a parsed request frame: u8 command || u64 db_id || statement
// (§6). Raw holds the exact bytes the frame was parsed from — the manager
// records Raw verbatim into the AOF buffer for mutating commands (§4.1),
// never a re-encoding of the parsed fields.
type Frame struct {
	Command   Command
	DBID      uint64
	Statement []byte
	Raw       []byte
}

// Build assembles a request frame from its parts: u8 command || u64 db_id
// || statement (§6). Clients and tests use this instead of hand-rolling
// the layout.
func Build(cmd Command, dbID uint64, statement []byte) []byte {
	raw := []byte{byte(cmd)}
	raw = AppendUint64(raw, dbID)
	return append(raw, statement...)
}

// Parse decodes a request frame. A frame shorter than command+id is
// ErrMalformedFrame; an out-of-range command byte is ErrUnknownCommand.
func Parse(raw []byte) (Frame, error) {
	if len(raw) < CommandSize+Uint64Size {
		return Frame{}, domain.ErrMalformedFrame
	}

	cmd := Command(raw[0])
	if !cmd.Valid() {
		return Frame{}, domain.ErrUnknownCommand
	}

	id, rest, ok := ReadUint64(raw[CommandSize:])
	if !ok {
		return Frame{}, domain.ErrMalformedFrame
	}

	return Frame{
		Command:   cmd,
		DBID:      id,
		Statement: rest,
		Raw:       raw,
	}, nil
}
