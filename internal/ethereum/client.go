package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/emerice12-oss/Exit-Dapp/internal/contracts"

	goeth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const receiptPollInterval = 2 * time.Second

// VaultClient submits transactions to, and reads balances from, the deployed
// ExitVault contract.
type VaultClient struct {
	contract *bind.BoundContract
	chain    ChainBackend
	wallet   *Wallet
	address  common.Address

	mu      sync.Mutex
	chainID *big.Int
}

// NewVaultClient binds the ExitVault interface description to its deployed
// address. The contract backend and chain backend are usually the same
// ethclient connection.
func NewVaultClient(contractBackend bind.ContractBackend, chain ChainBackend, wallet *Wallet, contractAddr common.Address) (*VaultClient, error) {
	parsedABI, err := abi.JSON(strings.NewReader(contracts.ExitVaultABI))
	if err != nil {
		return nil, fmt.Errorf("parse abi: %w", err)
	}

	bound := bind.NewBoundContract(contractAddr, parsedABI, contractBackend, contractBackend, contractBackend)

	return &VaultClient{
		contract: bound,
		chain:    chain,
		wallet:   wallet,
		address:  contractAddr,
	}, nil
}

// BalanceOf reads the vault balance of an address in wei. The getBalance
// accessor is tried first with the public balances mapping as fallback.
func (c *VaultClient) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	opts := &bind.CallOpts{Context: ctx}

	var out []interface{}
	err := c.contract.Call(opts, &out, "getBalance", account)
	if err != nil {
		out = out[:0]
		if fallbackErr := c.contract.Call(opts, &out, "balances", account); fallbackErr != nil {
			return nil, fmt.Errorf("read balance: %w", errors.Join(err, fallbackErr))
		}
	}

	if len(out) == 0 {
		return nil, errors.New("read balance: empty result")
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("read balance: unexpected result type %T", out[0])
	}
	return balance, nil
}

// Invest deposits amountWei into the vault from the given account.
func (c *VaultClient) Invest(ctx context.Context, from common.Address, amountWei *big.Int) (string, error) {
	opts, err := c.transactOpts(ctx, from)
	if err != nil {
		return "", err
	}
	opts.Value = amountWei

	tx, err := c.contract.Transact(opts, "invest")
	if err != nil {
		return "", fmt.Errorf("invest tx: %w", err)
	}
	return tx.Hash().Hex(), nil
}

// Withdraw removes amountWei from the vault. A nil amount withdraws the
// account's entire vault balance.
func (c *VaultClient) Withdraw(ctx context.Context, from common.Address, amountWei *big.Int) (string, error) {
	if amountWei == nil {
		balance, err := c.BalanceOf(ctx, from)
		if err != nil {
			return "", err
		}
		amountWei = balance
	}

	opts, err := c.transactOpts(ctx, from)
	if err != nil {
		return "", err
	}

	tx, err := c.contract.Transact(opts, "withdraw", amountWei)
	if err != nil {
		return "", fmt.Errorf("withdraw tx: %w", err)
	}
	return tx.Hash().Hex(), nil
}

// WaitMined polls until the transaction is included or the context ends.
func (c *VaultClient) WaitMined(ctx context.Context, txHash string) (*Receipt, error) {
	hash := common.HexToHash(txHash)

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.chain.TransactionReceipt(ctx, hash)
		if receipt != nil {
			return &Receipt{
				TxHash:      txHash,
				Status:      receipt.Status,
				BlockHash:   receipt.BlockHash.Hex(),
				BlockNumber: receipt.BlockNumber.Uint64(),
			}, nil
		}
		if err != nil && !errors.Is(err, goeth.NotFound) {
			return nil, fmt.Errorf("transaction receipt: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *VaultClient) transactOpts(ctx context.Context, from common.Address) (*bind.TransactOpts, error) {
	chainID, err := c.resolveChainID(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := c.wallet.TransactorFor(from, chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

func (c *VaultClient) resolveChainID(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.chainID != nil {
		return c.chainID, nil
	}

	chainID, err := c.chain.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch chain id: %w", err)
	}
	c.chainID = chainID
	return chainID, nil
}
