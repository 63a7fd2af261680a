package ethereum_test

import (
	"math/big"

	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Wei conversion", func() {
	Describe("ToWei", func() {
		When("the amount is a whole number of ether", func() {
			It("should scale by 18 decimals", func() {
				wei, err := ethereum.ToWei("2")
				Expect(err).NotTo(HaveOccurred())
				Expect(wei.String()).To(Equal("2000000000000000000"))
			})
		})

		When("the amount has a fractional part", func() {
			It("should convert exactly", func() {
				wei, err := ethereum.ToWei("0.5")
				Expect(err).NotTo(HaveOccurred())
				Expect(wei.String()).To(Equal("500000000000000000"))
			})
		})

		When("the amount is one wei", func() {
			It("should convert the smallest unit", func() {
				wei, err := ethereum.ToWei("0.000000000000000001")
				Expect(err).NotTo(HaveOccurred())
				Expect(wei.String()).To(Equal("1"))
			})
		})

		When("the amount has more than 18 decimal places", func() {
			It("should return an invalid amount error", func() {
				_, err := ethereum.ToWei("0.0000000000000000001")
				Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
			})
		})

		When("the amount is not a number", func() {
			It("should return an invalid amount error", func() {
				_, err := ethereum.ToWei("a lot")
				Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
			})
		})

		When("the amount is zero", func() {
			It("should return an invalid amount error", func() {
				_, err := ethereum.ToWei("0")
				Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
			})
		})

		When("the amount is negative", func() {
			It("should return an invalid amount error", func() {
				_, err := ethereum.ToWei("-1")
				Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
			})
		})

		When("the amount is empty", func() {
			It("should return an invalid amount error", func() {
				_, err := ethereum.ToWei("   ")
				Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
			})
		})
	})

	Describe("FromWei", func() {
		It("should render whole ether without a fraction", func() {
			wei, ok := new(big.Int).SetString("3000000000000000000", 10)
			Expect(ok).To(BeTrue())
			Expect(ethereum.FromWei(wei)).To(Equal("3"))
		})

		It("should trim trailing zeros from fractions", func() {
			wei, ok := new(big.Int).SetString("1500000000000000000", 10)
			Expect(ok).To(BeTrue())
			Expect(ethereum.FromWei(wei)).To(Equal("1.5"))
		})

		It("should render a single wei", func() {
			Expect(ethereum.FromWei(big.NewInt(1))).To(Equal("0.000000000000000001"))
		})

		It("should render zero for nil", func() {
			Expect(ethereum.FromWei(nil)).To(Equal("0"))
		})

		It("should round trip a decimal amount", func() {
			wei, err := ethereum.ToWei("0.125")
			Expect(err).NotTo(HaveOccurred())
			Expect(ethereum.FromWei(wei)).To(Equal("0.125"))
		})
	})
})
