package wire_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ledgerdb/ledgerdb/internal/domain"
	"github.com/ledgerdb/ledgerdb/internal/wire"
)

var _ = Describe("Parse", func() {
	It("decodes command, db id and statement", func() {
		raw := wire.Build(wire.Set, 3, []byte("k\x00v"))

		frame, err := wire.Parse(raw)

		Expect(err).NotTo(HaveOccurred())
		Expect(frame.Command).To(Equal(wire.Set))
		Expect(frame.DBID).To(Equal(uint64(3)))
		Expect(frame.Statement).To(Equal([]byte("k\x00v")))
		Expect(frame.Raw).To(Equal(raw))
	})

	It("rejects a frame shorter than command+id", func() {
		_, err := wire.Parse([]byte{byte(wire.Get), 1, 2, 3})

		Expect(err).To(MatchError(domain.ErrMalformedFrame))
	})

	It("rejects an out-of-range command byte", func() {
		raw := wire.Build(wire.Command(250), 0, nil)

		_, err := wire.Parse(raw)

		Expect(err).To(MatchError(domain.ErrUnknownCommand))
	})

	It("accepts an empty statement", func() {
		raw := wire.Build(wire.Select, 5, nil)

		frame, err := wire.Parse(raw)

		Expect(err).NotTo(HaveOccurred())
		Expect(frame.Statement).To(BeEmpty())
	})
})

var _ = Describe("Command", func() {
	It("knows which commands mutate state", func() {
		Expect(wire.Set.Mutates()).To(BeTrue())
		Expect(wire.LPop.Mutates()).To(BeTrue())
		Expect(wire.Get.Mutates()).To(BeFalse())
		Expect(wire.Select.Mutates()).To(BeFalse())
		Expect(wire.HGet.Mutates()).To(BeFalse())
		Expect(wire.LIndex.Mutates()).To(BeFalse())
	})

	It("rejects command ordinals beyond the declared set", func() {
		Expect(wire.Command(32).Valid()).To(BeFalse())
		Expect(wire.Command(31).Valid()).To(BeTrue())
	})

	It("round-trips every declared ordinal through String", func() {
		for c := wire.Select; c <= wire.LLen; c++ {
			Expect(c.String()).NotTo(Equal("UNKNOWN"))
		}
	})
})
