package ethereum_test

import (
	"context"
	"errors"
	"math/big"

	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum"
	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum/fake"

	goeth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("VaultClient", func() {
	var (
		client    *ethereum.VaultClient
		fakeChain *fake.ChainBackend
		ctx       context.Context
		err       error
	)

	BeforeEach(func() {
		fakeChain = new(fake.ChainBackend)
		ctx = context.Background()

		client, err = ethereum.NewVaultClient(nil, fakeChain, nil, common.HexToAddress("0x00000000000000000000000000000000000000aa"))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("WaitMined", func() {
		var (
			txHash  string
			receipt *ethereum.Receipt
		)

		BeforeEach(func() {
			txHash = "0x00000000000000000000000000000000000000000000000000000000000000ff"
		})

		When("the receipt is already available", func() {
			BeforeEach(func() {
				fakeChain.TransactionReceiptReturns(&types.Receipt{
					Status:      types.ReceiptStatusSuccessful,
					BlockHash:   common.HexToHash("0xabc"),
					BlockNumber: big.NewInt(42),
				}, nil)
			})

			It("should return a successful receipt", func() {
				receipt, err = client.WaitMined(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.Status).To(Equal(types.ReceiptStatusSuccessful))
				Expect(receipt.TxHash).To(Equal(txHash))
				Expect(receipt.BlockNumber).To(Equal(uint64(42)))

				Expect(fakeChain.TransactionReceiptCallCount()).To(Equal(1))
				_, argHash := fakeChain.TransactionReceiptArgsForCall(0)
				Expect(argHash).To(Equal(common.HexToHash(txHash)))
			})
		})

		When("the transaction reverted", func() {
			BeforeEach(func() {
				fakeChain.TransactionReceiptReturns(&types.Receipt{
					Status:      types.ReceiptStatusFailed,
					BlockHash:   common.HexToHash("0xdef"),
					BlockNumber: big.NewInt(43),
				}, nil)
			})

			It("should surface the failure status without an error", func() {
				receipt, err = client.WaitMined(ctx, txHash)
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.Status).To(Equal(types.ReceiptStatusFailed))
			})
		})

		When("the backend returns an unexpected error", func() {
			BeforeEach(func() {
				fakeChain.TransactionReceiptReturns(nil, errors.New("rpc exploded"))
			})

			It("should stop polling and return the error", func() {
				receipt, err = client.WaitMined(ctx, txHash)
				Expect(err).To(MatchError(ContainSubstring("rpc exploded")))
				Expect(receipt).To(BeNil())
			})
		})

		When("the context ends before inclusion", func() {
			BeforeEach(func() {
				fakeChain.TransactionReceiptReturns(nil, goeth.NotFound)
			})

			It("should return the context error", func() {
				cancelled, cancel := context.WithCancel(ctx)
				cancel()

				receipt, err = client.WaitMined(cancelled, txHash)
				Expect(err).To(MatchError(context.Canceled))
				Expect(receipt).To(BeNil())
			})
		})
	})
})
