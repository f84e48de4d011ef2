package domain

import "errors"

var (
	// ErrMalformedFrame is returned when a request frame is too short to
	// contain a command byte and a database id.
	ErrMalformedFrame = errors.New("ledgerdb: malformed frame")

	// ErrUnknownCommand is returned when a frame's command byte does not
	// match any declared command ordinal.
	ErrUnknownCommand = errors.New("ledgerdb: unknown command")

	// ErrNoSuchDatabase is returned when a non-SELECT command addresses a
	// database id that has never been created.
	ErrNoSuchDatabase = errors.New("ledgerdb: no such database")

	// ErrCorruptLog is returned by recovery when the persistence file is
	// truncated inside a header or record.
	ErrCorruptLog = errors.New("ledgerdb: corrupt log")

	// ErrWrongType is a domain-level response error: the command's target
	// key holds a value of a different kind than the command requires.
	ErrWrongType = errors.New("WRONGTYPE Operation against a key holding the wrong kind of value")

	// ErrKeyNotFound is a domain-level response error for commands that
	// require an existing key (e.g. RENAME).
	ErrKeyNotFound = errors.New("ERR no such key")
)
