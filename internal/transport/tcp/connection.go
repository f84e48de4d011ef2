package tcp

import (
	"encoding/binary"
	"io"
	"net"

	"github.com/ledgerdb/ledgerdb/internal/logger"
)

// maxFrameSize guards against a corrupt or hostile length prefix
// demanding an unbounded allocation.
const maxFrameSize = 64 << 20

func (s *Server) serve(conn net.Conn) {
	defer s.untrack(conn)
	defer conn.Close()

	for {
		frame, err := readFrame(conn)
		if err != nil {
			if err != io.EOF {
				logger.Debug("connection read failed", "error", err)
			}
			return
		}

		response, err := s.querier.Query(frame)
		if err != nil {
			response = []byte(err.Error())
		}

		if err := writeFrame(conn, response); err != nil {
			logger.Debug("connection write failed", "error", err)
			return
		}
	}
}

// readFrame reads one u64-length-prefixed frame from r.
func readFrame(r io.Reader) ([]byte, error) {
	var lenBuf [8]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}

	size := binary.LittleEndian.Uint64(lenBuf[:])
	if size > maxFrameSize {
		return nil, io.ErrShortBuffer
	}

	frame := make([]byte, size)
	if _, err := io.ReadFull(r, frame); err != nil {
		return nil, err
	}

	return frame, nil
}

// writeFrame writes payload prefixed with its u64 length.
func writeFrame(w io.Writer, payload []byte) error {
	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(payload)))

	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}
