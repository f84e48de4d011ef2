package admin

import (
	"fmt"
	"strconv"

	"github.com/tidwall/redcon"
)

const (
	singleArg = 1
	twoArgs   = 2
	firstArg  = 1
)

func hasSingleArg(cmd redcon.Command) bool {
	return len(cmd.Args) == singleArg
}

func hasTwoArgs(cmd redcon.Command) bool {
	return len(cmd.Args) == twoArgs
}

func (s *Server) handle(conn redcon.Conn, cmd redcon.Command) {
	switch string(cmd.Args[0]) {
	case "ping", "PING":
		s.handlePing(conn, cmd)
	case "dbsize", "DBSIZE":
		s.handleDBSize(conn, cmd)
	case "info", "INFO":
		s.handleInfo(conn, cmd)
	default:
		conn.WriteError(fmt.Sprintf("ERR unknown command '%s'", cmd.Args[0]))
	}
}

func (s *Server) handlePing(conn redcon.Conn, cmd redcon.Command) {
	if hasSingleArg(cmd) {
		conn.WriteString("PONG")
		return
	}
	if hasTwoArgs(cmd) {
		conn.WriteBulk(cmd.Args[firstArg])
		return
	}
	conn.WriteError("ERR wrong number of arguments for 'ping' command")
}

func (s *Server) handleDBSize(conn redcon.Conn, cmd redcon.Command) {
	if !hasTwoArgs(cmd) {
		conn.WriteError("ERR wrong number of arguments for 'dbsize' command")
		return
	}

	id, err := strconv.ParseUint(string(cmd.Args[firstArg]), 10, 64)
	if err != nil {
		conn.WriteError("ERR invalid database id")
		return
	}

	conn.WriteInt(s.manager.Size(id))
}

func (s *Server) handleInfo(conn redcon.Conn, cmd redcon.Command) {
	if !hasSingleArg(cmd) {
		conn.WriteError("ERR wrong number of arguments for 'info' command")
		return
	}

	snapshot := s.stats()
	info := fmt.Sprintf(
		"# LedgerDB\r\ndatabases:%d\r\nsnapshots_taken:%d\r\nrecords_written:%d\r\nbytes_written:%d\r\n",
		s.manager.DatabaseCountLive(), snapshot.SnapshotsTaken, snapshot.RecordsWritten, snapshot.BytesWritten,
	)
	conn.WriteBulkString(info)
}
