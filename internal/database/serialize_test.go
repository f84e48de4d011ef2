package database_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ledgerdb/ledgerdb/internal/database"
	"github.com/ledgerdb/ledgerdb/internal/wire"
)

var _ = Describe("Serialize/NewFromBody round-trip", func() {
	It("reproduces an empty database", func() {
		db := database.New(3)

		blob := db.Serialize()

		id, body, rest, ok := splitRecord(blob)
		Expect(ok).To(BeTrue())
		Expect(rest).To(BeEmpty())
		Expect(id).To(Equal(uint64(3)))

		restored, err := database.NewFromBody(id, body)
		Expect(err).NotTo(HaveOccurred())
		Expect(restored.ID()).To(Equal(uint64(3)))
		Expect(restored.Len()).To(Equal(0))
	})

	It("reproduces strings, hashes and lists", func() {
		db := database.New(7)
		db.Set([][]byte{[]byte("s"), []byte("value")})
		db.HSet([][]byte{[]byte("h"), []byte("f1"), []byte("v1"), []byte("f2"), []byte("v2")})
		db.LPush([][]byte{[]byte("l"), []byte("a"), []byte("b"), []byte("c")})

		blob := db.Serialize()
		id, body, _, ok := splitRecord(blob)
		Expect(ok).To(BeTrue())

		restored, err := database.NewFromBody(id, body)
		Expect(err).NotTo(HaveOccurred())

		Expect(restored.Len()).To(Equal(3))
		Expect(restored.Get([][]byte{[]byte("s")}).Response).To(Equal([]byte("value")))
		Expect(restored.Type([][]byte{[]byte("h")}).Response).To(Equal([]byte("hash")))
		Expect(restored.Type([][]byte{[]byte("l")}).Response).To(Equal([]byte("list")))

		// the hash survives the round trip field by field, read back
		// without mutating anything.
		Expect(restored.HGet([][]byte{[]byte("h"), []byte("f1")}).Response).To(Equal([]byte("v1")))
		Expect(restored.HGet([][]byte{[]byte("h"), []byte("f2")}).Response).To(Equal([]byte("v2")))
		Expect(restored.HGet([][]byte{[]byte("h"), []byte("missing")}).Response).To(BeEmpty())

		// the list survives the round trip with order preserved, observed
		// read-only via LIndex/LLen rather than draining it with LPop.
		Expect(restored.LLen([][]byte{[]byte("l")}).Response).To(Equal([]byte("3")))
		Expect(restored.LIndex([][]byte{[]byte("l"), []byte("0")}).Response).To(Equal([]byte("c")))
		Expect(restored.LIndex([][]byte{[]byte("l"), []byte("1")}).Response).To(Equal([]byte("b")))
		Expect(restored.LIndex([][]byte{[]byte("l"), []byte("-1")}).Response).To(Equal([]byte("a")))
	})

	It("rejects a truncated body as corrupt", func() {
		db := database.New(1)
		db.Set([][]byte{[]byte("k"), []byte("v")})

		blob := db.Serialize()
		id, body, _, ok := splitRecord(blob)
		Expect(ok).To(BeTrue())

		_, err := database.NewFromBody(id, body[:len(body)-1])
		Expect(err).To(HaveOccurred())
	})
})

// splitRecord unpacks the u64 id || u64 body_size || body layout that
// Serialize produces, returning whatever trailed the record too.
func splitRecord(blob []byte) (id uint64, body, rest []byte, ok bool) {
	id, r, ok := wire.ReadUint64(blob)
	if !ok {
		return 0, nil, nil, false
	}
	size, r, ok := wire.ReadUint64(r)
	if !ok || uint64(len(r)) < size {
		return 0, nil, nil, false
	}
	return id, r[:size], r[size:], true
}
