package domain_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ledgerdb/ledgerdb/internal/domain"
)

var _ = Describe("Result", func() {
	Describe("NewResult", func() {
		It("starts with no response and no error", func() {
			result := domain.NewResult()

			Expect(result.Response).To(BeNil())
			Expect(result.Err).To(BeNil())
		})
	})

	Describe("SetOK", func() {
		It("sets the fixed OK response and clears any error", func() {
			result := domain.NewResult().SetError(domain.ErrWrongType)

			returned := result.SetOK()

			Expect(returned).To(BeIdenticalTo(result))
			Expect(result.Response).To(Equal(domain.OK))
			Expect(result.Err).To(BeNil())
		})
	})

	Describe("SetError", func() {
		It("clears the response and records the error", func() {
			result := domain.NewResult()
			result.Response = []byte("stale")

			returned := result.SetError(domain.ErrKeyNotFound)

			Expect(returned).To(BeIdenticalTo(result))
			Expect(result.Response).To(BeNil())
			Expect(errors.Is(result.Err, domain.ErrKeyNotFound)).To(BeTrue())
		})
	})
})

var _ = Describe("ValueKind", func() {
	It("names the three value shapes", func() {
		Expect(domain.KindString.String()).To(Equal("string"))
		Expect(domain.KindHash.String()).To(Equal("hash"))
		Expect(domain.KindList.String()).To(Equal("list"))
	})
})
