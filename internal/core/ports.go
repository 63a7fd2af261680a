package core

import (
	"context"
	"math/big"

	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name VaultClient . VaultClient
type VaultClient interface {
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	Invest(ctx context.Context, from common.Address, amountWei *big.Int) (string, error)
	Withdraw(ctx context.Context, from common.Address, amountWei *big.Int) (string, error)
	WaitMined(ctx context.Context, txHash string) (*ethereum.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name Wallet . Wallet
type Wallet interface {
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Events() <-chan ethereum.ProviderEvent
}
