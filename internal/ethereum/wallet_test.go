package ethereum_test

import (
	"context"
	"math/big"

	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum"
	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Wallet", func() {
	var (
		wallet    *ethereum.Wallet
		fakeChain *fake.ChainBackend
		ctx       context.Context
	)

	BeforeEach(func() {
		fakeChain = new(fake.ChainBackend)
		ctx = context.Background()
	})

	AfterEach(func() {
		if wallet != nil {
			wallet.Close()
		}
	})

	Describe("RequestAccounts", func() {
		When("the keystore directory holds no accounts", func() {
			BeforeEach(func() {
				wallet = ethereum.NewWallet(GinkgoT().TempDir(), "", fakeChain, 0)
			})

			It("should report that no wallet is available", func() {
				_, err := wallet.RequestAccounts(ctx)
				Expect(err).To(MatchError(ethereum.ErrWalletNotFound))
			})
		})
	})

	Describe("ChainID", func() {
		BeforeEach(func() {
			wallet = ethereum.NewWallet(GinkgoT().TempDir(), "", fakeChain, 0)
			fakeChain.ChainIDReturns(big.NewInt(11155111), nil)
		})

		It("should report the connected network", func() {
			chainID, err := wallet.ChainID(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(chainID.Int64()).To(Equal(int64(11155111)))
		})
	})

	Describe("Events", func() {
		BeforeEach(func() {
			wallet = ethereum.NewWallet(GinkgoT().TempDir(), "", fakeChain, 0)
		})

		It("should close the channel when the wallet is closed", func() {
			events := wallet.Events()
			wallet.Close()
			Eventually(events).Should(BeClosed())
			wallet = nil
		})
	})
})
