package database

import (
	"fmt"

	"github.com/ledgerdb/ledgerdb/internal/domain"
	"github.com/ledgerdb/ledgerdb/internal/wire"
)

// Serialize emits u64 id || u64 body_size || body[body_size] (§4.4's
// per-database contract). body is this database's own encoding of its
// keyspace: u64 key_count || { u64 keylen, key, u8 kind, value }*.
func (d *Database) Serialize() []byte {
	d.mu.RLock()
	defer d.mu.RUnlock()

	body := wire.AppendUint64(nil, uint64(len(d.data)))
	for key, val := range d.data {
		body = wire.AppendUint64(body, uint64(len(key)))
		body = append(body, key...)
		body = append(body, byte(val.kind))
		body = appendValueBody(body, val)
	}

	out := wire.AppendUint64(nil, d.id)
	out = wire.AppendUint64(out, uint64(len(body)))
	return append(out, body...)
}

func appendValueBody(dst []byte, v *value) []byte {
	switch v.kind {
	case domain.KindString:
		dst = wire.AppendUint64(dst, uint64(len(v.str)))
		return append(dst, v.str...)
	case domain.KindHash:
		dst = wire.AppendUint64(dst, uint64(len(v.hash)))
		for field, fv := range v.hash {
			dst = wire.AppendUint64(dst, uint64(len(field)))
			dst = append(dst, field...)
			dst = wire.AppendUint64(dst, uint64(len(fv)))
			dst = append(dst, fv...)
		}
		return dst
	case domain.KindList:
		dst = wire.AppendUint64(dst, uint64(len(v.list)))
		for _, elem := range v.list {
			dst = wire.AppendUint64(dst, uint64(len(elem)))
			dst = append(dst, elem...)
		}
		return dst
	default:
		return dst
	}
}

// NewFromBody reconstructs a database from a body blob produced by
// Serialize (the part after id and body_size). It must round-trip:
// Serialize then NewFromBody yields an observationally identical database
// (§4.4).
func NewFromBody(id uint64, body []byte) (*Database, error) {
	d := New(id)

	count, rest, ok := wire.ReadUint64(body)
	if !ok {
		return nil, fmt.Errorf("%w: database %d key count", domain.ErrCorruptLog, id)
	}

	for i := uint64(0); i < count; i++ {
		keyLen, r, ok := wire.ReadUint64(rest)
		if !ok || uint64(len(r)) < keyLen+1 {
			return nil, fmt.Errorf("%w: database %d entry %d", domain.ErrCorruptLog, id, i)
		}
		key := string(r[:keyLen])
		kind := domain.ValueKind(r[keyLen])
		rest = r[keyLen+1:]

		v, remaining, err := readValueBody(kind, rest)
		if err != nil {
			return nil, fmt.Errorf("%w: database %d key %q: %v", domain.ErrCorruptLog, id, key, err)
		}
		rest = remaining

		d.data[key] = v
	}

	return d, nil
}

func readValueBody(kind domain.ValueKind, src []byte) (*value, []byte, error) {
	switch kind {
	case domain.KindString:
		n, rest, ok := wire.ReadUint64(src)
		if !ok || uint64(len(rest)) < n {
			return nil, nil, fmt.Errorf("truncated string body")
		}
		str := make([]byte, n)
		copy(str, rest[:n])
		return &value{kind: domain.KindString, str: str}, rest[n:], nil

	case domain.KindHash:
		fieldCount, rest, ok := wire.ReadUint64(src)
		if !ok {
			return nil, nil, fmt.Errorf("truncated hash header")
		}
		hash := make(map[string][]byte, fieldCount)
		for i := uint64(0); i < fieldCount; i++ {
			flen, r, ok := wire.ReadUint64(rest)
			if !ok || uint64(len(r)) < flen {
				return nil, nil, fmt.Errorf("truncated hash field")
			}
			field := string(r[:flen])
			r = r[flen:]

			vlen, r2, ok := wire.ReadUint64(r)
			if !ok || uint64(len(r2)) < vlen {
				return nil, nil, fmt.Errorf("truncated hash value")
			}
			fv := make([]byte, vlen)
			copy(fv, r2[:vlen])
			hash[field] = fv
			rest = r2[vlen:]
		}
		return &value{kind: domain.KindHash, hash: hash}, rest, nil

	case domain.KindList:
		elemCount, rest, ok := wire.ReadUint64(src)
		if !ok {
			return nil, nil, fmt.Errorf("truncated list header")
		}
		list := make([][]byte, 0, elemCount)
		for i := uint64(0); i < elemCount; i++ {
			elen, r, ok := wire.ReadUint64(rest)
			if !ok || uint64(len(r)) < elen {
				return nil, nil, fmt.Errorf("truncated list element")
			}
			elem := make([]byte, elen)
			copy(elem, r[:elen])
			list = append(list, elem)
			rest = r[elen:]
		}
		return &value{kind: domain.KindList, list: list}, rest, nil

	default:
		return nil, nil, fmt.Errorf("unknown value kind %d", kind)
	}
}
