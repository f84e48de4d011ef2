package wire

import "encoding/binary"

// Sizes of the fixed-width fields used throughout the wire frame and the
// on-disk format (§6). Everything is little-endian, 8-byte unsigned, as
// the spec's "native width assumed 8-byte unsigned" note requires.
const (
	Uint64Size = 8
	CommandSize = 1
)

// PutUint64 writes v little-endian into the front of dst and returns the
// remaining slice, mirroring the teacher's own binary.LittleEndian idiom
// (internal/storage/exists.go, incr.go) rather than unsafe pointer casts.
func PutUint64(dst []byte, v uint64) []byte {
	binary.LittleEndian.PutUint64(dst, v)
	return dst[Uint64Size:]
}

// AppendUint64 appends v little-endian to dst and returns the grown slice.
func AppendUint64(dst []byte, v uint64) []byte {
	var buf [Uint64Size]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(dst, buf[:]...)
}

// ReadUint64 reads a little-endian u64 from the front of src. It reports
// ok=false if src is shorter than Uint64Size — callers turn that into
// ErrCorruptLog or ErrMalformedFrame depending on context.
func ReadUint64(src []byte) (v uint64, rest []byte, ok bool) {
	if len(src) < Uint64Size {
		return 0, src, false
	}
	return binary.LittleEndian.Uint64(src), src[Uint64Size:], true
}
