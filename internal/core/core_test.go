package core_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/emerice12-oss/Exit-Dapp/internal/core"
	"github.com/emerice12-oss/Exit-Dapp/internal/core/fake"
	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum"
	"github.com/emerice12-oss/Exit-Dapp/internal/metrics"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type providerError struct {
	code int
	msg  string
}

func (e *providerError) Error() string  { return e.msg }
func (e *providerError) ErrorCode() int { return e.code }

var _ = Describe("Vault", func() {
	var (
		vault      *core.Vault
		fakeWallet *fake.Wallet
		fakeClient *fake.VaultClient
		ctx        context.Context

		account common.Address
		txHash  string
		fakeErr error
	)

	BeforeEach(func() {
		fakeWallet = new(fake.Wallet)
		fakeClient = new(fake.VaultClient)
		ctx = context.Background()

		account = common.HexToAddress("0x00000000000000000000000000000000000000a1")
		txHash = "0x00000000000000000000000000000000000000000000000000000000000000f1"
		fakeErr = errors.New("fake error")

		vault = core.NewVault(zap.NewNop().Sugar(), fakeWallet, fakeClient, metrics.NewRegistry())
	})

	connect := func() {
		fakeWallet.RequestAccountsReturns([]common.Address{account}, nil)
		fakeWallet.ChainIDReturns(big.NewInt(11155111), nil)
		fakeClient.BalanceOfReturns(big.NewInt(0), nil)
		_, err := vault.Connect(ctx)
		Expect(err).NotTo(HaveOccurred())
	}

	Describe("Connect", func() {
		When("the wallet has an account", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns([]common.Address{account}, nil)
				fakeWallet.ChainIDReturns(big.NewInt(11155111), nil)
				oneEth, _ := ethereum.ToWei("1")
				fakeClient.BalanceOfReturns(oneEth, nil)
			})

			It("should open a session with the resolved explorer base", func() {
				session, err := vault.Connect(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Account).To(Equal(account))
				Expect(session.ExplorerBase).To(Equal("https://sepolia.etherscan.io"))

				state := vault.Snapshot()
				Expect(state.Connected).To(BeTrue())
				Expect(state.Account).To(Equal(account.Hex()))
				Expect(state.Balance).To(Equal("1"))

				Expect(fakeClient.BalanceOfCallCount()).To(Equal(1))
				_, argAccount := fakeClient.BalanceOfArgsForCall(0)
				Expect(argAccount).To(Equal(account))
			})
		})

		When("no wallet is available", func() {
			BeforeEach(func() {
				fakeWallet.RequestAccountsReturns(nil, ethereum.ErrWalletNotFound)
			})

			It("should return the wallet-not-found error and open no session", func() {
				_, err := vault.Connect(ctx)
				Expect(err).To(MatchError(ethereum.ErrWalletNotFound))
				Expect(vault.Snapshot().Connected).To(BeFalse())
			})
		})
	})

	Describe("Disconnect", func() {
		BeforeEach(func() {
			connect()
		})

		It("should clear the session, balance, and transaction state", func() {
			vault.Disconnect()

			state := vault.Snapshot()
			Expect(state.Connected).To(BeFalse())
			Expect(state.Account).To(BeEmpty())
			Expect(state.Balance).To(BeEmpty())
			Expect(state.Status).To(Equal(core.StatusNone))
			Expect(state.Message).To(Equal("Disconnected"))
		})
	})

	Describe("RefreshBalance", func() {
		When("there is no session", func() {
			It("should return the no-session error", func() {
				_, err := vault.RefreshBalance(ctx)
				Expect(err).To(MatchError(core.ErrNoSession))
			})
		})

		When("the balance read fails", func() {
			BeforeEach(func() {
				connect()
				fakeClient.BalanceOfReturns(nil, fakeErr)
			})

			It("should surface a message and keep the prior balance", func() {
				prior := vault.Snapshot().Balance

				_, err := vault.RefreshBalance(ctx)
				Expect(err).To(HaveOccurred())

				state := vault.Snapshot()
				Expect(state.Balance).To(Equal(prior))
				Expect(state.Message).To(Equal("Could not fetch balance"))
			})
		})
	})

	Describe("Invest", func() {
		BeforeEach(func() {
			connect()
		})

		When("submission and confirmation succeed", func() {
			BeforeEach(func() {
				fakeClient.InvestReturns(txHash, nil)
				fakeClient.WaitMinedReturns(&ethereum.Receipt{TxHash: txHash, Status: 1, BlockNumber: 7}, nil)
			})

			It("should confirm and re-fetch the balance exactly once", func() {
				baseline := fakeClient.BalanceOfCallCount()

				result, err := vault.Invest(ctx, "0.5")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusConfirmed))
				Expect(result.TxHash).To(Equal(txHash))
				Expect(result.ExplorerURL).To(Equal("https://sepolia.etherscan.io/tx/" + txHash))
				Expect(result.Message).To(ContainSubstring("confirmed"))

				Expect(fakeClient.InvestCallCount()).To(Equal(1))
				_, argFrom, argWei := fakeClient.InvestArgsForCall(0)
				Expect(argFrom).To(Equal(account))
				Expect(argWei.String()).To(Equal("500000000000000000"))

				Expect(fakeClient.BalanceOfCallCount()).To(Equal(baseline + 1))

				activity := vault.Activity()
				Expect(activity).To(HaveLen(2))
				Expect(activity[0].Note).To(ContainSubstring("confirmed"))
				Expect(activity[0].Key).To(Equal(txHash))
				Expect(activity[1].Note).To(ContainSubstring("submitted"))
			})
		})

		When("the receipt carries a failure status", func() {
			BeforeEach(func() {
				fakeClient.InvestReturns(txHash, nil)
				fakeClient.WaitMinedReturns(&ethereum.Receipt{TxHash: txHash, Status: 0, BlockNumber: 7}, nil)
			})

			It("should fail without re-fetching the balance", func() {
				baseline := fakeClient.BalanceOfCallCount()

				result, err := vault.Invest(ctx, "0.5")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusFailed))
				Expect(result.Message).To(ContainSubstring("reverted"))
				Expect(fakeClient.BalanceOfCallCount()).To(Equal(baseline))
				Expect(vault.Snapshot().Status).To(Equal(core.StatusFailed))
			})
		})

		When("the submission throws a generic provider error", func() {
			BeforeEach(func() {
				fakeClient.InvestReturns("", fakeErr)
			})

			It("should fail with the error message and log an activity entry", func() {
				result, err := vault.Invest(ctx, "0.5")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusFailed))
				Expect(result.Message).To(ContainSubstring("fake error"))
				Expect(fakeClient.WaitMinedCallCount()).To(Equal(0))

				activity := vault.Activity()
				Expect(activity).To(HaveLen(1))
				Expect(activity[0].Key).NotTo(BeEmpty())
				Expect(activity[0].Key).NotTo(Equal(txHash))
			})
		})

		When("the amount is invalid", func() {
			It("should return an invalid amount error without touching the client", func() {
				_, err := vault.Invest(ctx, "not-a-number")
				Expect(err).To(MatchError(ethereum.ErrInvalidAmount))
				Expect(fakeClient.InvestCallCount()).To(Equal(0))
			})
		})

		When("a previous action left a failed status", func() {
			BeforeEach(func() {
				fakeClient.InvestReturnsOnCall(0, "", fakeErr)
				fakeClient.InvestReturnsOnCall(1, txHash, nil)
				fakeClient.WaitMinedReturns(&ethereum.Receipt{TxHash: txHash, Status: 1}, nil)
			})

			It("should not leave the stale status on the next action", func() {
				result, err := vault.Invest(ctx, "1")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusFailed))

				result, err = vault.Invest(ctx, "1")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusConfirmed))
				Expect(vault.Snapshot().Status).To(Equal(core.StatusConfirmed))
			})
		})

		When("another action is already in flight", func() {
			var release chan struct{}

			BeforeEach(func() {
				release = make(chan struct{})
				fakeClient.InvestStub = func(context.Context, common.Address, *big.Int) (string, error) {
					<-release
					return txHash, nil
				}
				fakeClient.WaitMinedReturns(&ethereum.Receipt{TxHash: txHash, Status: 1}, nil)
			})

			It("should reject the second action", func() {
				done := make(chan struct{})
				go func() {
					defer GinkgoRecover()
					defer close(done)
					_, err := vault.Invest(ctx, "1")
					Expect(err).NotTo(HaveOccurred())
				}()

				Eventually(fakeClient.InvestCallCount).Should(Equal(1))

				_, err := vault.Withdraw(ctx, "1")
				Expect(err).To(MatchError(core.ErrActionInFlight))

				close(release)
				Eventually(done).Should(BeClosed())
			})
		})

		When("there is no session", func() {
			It("should return the no-session error", func() {
				vault.Disconnect()
				_, err := vault.Invest(ctx, "1")
				Expect(err).To(MatchError(core.ErrNoSession))
			})
		})
	})

	Describe("Withdraw", func() {
		BeforeEach(func() {
			connect()
		})

		When("the user rejects the signature", func() {
			BeforeEach(func() {
				fakeClient.WithdrawReturns("", &providerError{code: 4001, msg: "user denied transaction signature"})
			})

			It("should report the rejection without waiting or refreshing", func() {
				baseline := fakeClient.BalanceOfCallCount()

				result, err := vault.Withdraw(ctx, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusFailed))
				Expect(result.Message).To(Equal("Transaction rejected by user"))

				Expect(fakeClient.WaitMinedCallCount()).To(Equal(0))
				Expect(fakeClient.BalanceOfCallCount()).To(Equal(baseline))
			})
		})

		When("no amount is given", func() {
			BeforeEach(func() {
				fakeClient.WithdrawReturns(txHash, nil)
				fakeClient.WaitMinedReturns(&ethereum.Receipt{TxHash: txHash, Status: 1}, nil)
			})

			It("should withdraw everything", func() {
				result, err := vault.Withdraw(ctx, "")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Status).To(Equal(core.StatusConfirmed))

				Expect(fakeClient.WithdrawCallCount()).To(Equal(1))
				_, argFrom, argWei := fakeClient.WithdrawArgsForCall(0)
				Expect(argFrom).To(Equal(account))
				Expect(argWei).To(BeNil())
			})
		})

		When("an amount is given", func() {
			BeforeEach(func() {
				fakeClient.WithdrawReturns(txHash, nil)
				fakeClient.WaitMinedReturns(&ethereum.Receipt{TxHash: txHash, Status: 1}, nil)
			})

			It("should withdraw the converted amount", func() {
				_, err := vault.Withdraw(ctx, "0.25")
				Expect(err).NotTo(HaveOccurred())

				_, _, argWei := fakeClient.WithdrawArgsForCall(0)
				Expect(argWei.String()).To(Equal("250000000000000000"))
			})
		})
	})

	Describe("Activity", func() {
		BeforeEach(func() {
			connect()
			fakeClient.InvestReturns("", fakeErr)
		})

		It("should cap the log at 20 entries, newest first", func() {
			for i := 1; i <= 25; i++ {
				_, err := vault.Invest(ctx, fmt.Sprintf("%d", i))
				Expect(err).NotTo(HaveOccurred())
			}

			activity := vault.Activity()
			Expect(activity).To(HaveLen(20))
			Expect(activity[0].Note).To(ContainSubstring("Invest 25 ETH"))
			Expect(activity[19].Note).To(ContainSubstring("Invest 6 ETH"))

			for _, entry := range activity {
				Expect(entry.Note).NotTo(ContainSubstring("Invest 5 ETH"))
			}
		})
	})
})
