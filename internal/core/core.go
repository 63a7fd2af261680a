package core

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum"
	"github.com/emerice12-oss/Exit-Dapp/internal/explorer"
	"github.com/emerice12-oss/Exit-Dapp/internal/metrics"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNoSession = errors.New("no wallet session")
var ErrActionInFlight = errors.New("another action is in flight")

// EIP-1193 userRejectedRequest.
const userRejectedCode = 4001

const activityCap = 20

const (
	msgRejected     = "Transaction rejected by user"
	msgDisconnected = "Disconnected"
)

const (
	actionInvest   = "invest"
	actionWithdraw = "withdraw"
)

// Vault owns the wallet session and the transaction-status lifecycle of the
// dashboard: none -> pending -> {confirmed, failed}, reset at the start of
// every action. A single-slot guard rejects a second action while one is
// outstanding.
type Vault struct {
	logs    *zap.SugaredLogger
	wallet  Wallet
	client  VaultClient
	metrics *metrics.Registry

	mu       sync.Mutex
	session  *Session
	status   TxStatus
	txHash   string
	balance  string
	message  string
	activity []ActivityEntry
	inFlight bool
}

func NewVault(logger *zap.SugaredLogger, wallet Wallet, client VaultClient, registry *metrics.Registry) *Vault {
	return &Vault{
		logs:    logger,
		wallet:  wallet,
		client:  client,
		metrics: registry,
		status:  StatusNone,
	}
}

// Connect authorizes the wallet, adopts its first account, resolves the
// explorer base for the connected network, and returns the new session.
func (v *Vault) Connect(ctx context.Context) (Session, error) {
	accounts, err := v.wallet.RequestAccounts(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("request accounts: %w", err)
	}
	if len(accounts) == 0 {
		return Session{}, ethereum.ErrWalletNotFound
	}

	chainID, err := v.wallet.ChainID(ctx)
	if err != nil {
		v.logs.Warnw("chain id lookup failed, assuming mainnet explorer", "error", err)
		chainID = nil
	}

	session := Session{
		Account:      accounts[0],
		ChainID:      chainID,
		ExplorerBase: explorer.BaseURL(chainID),
	}

	v.mu.Lock()
	v.session = &session
	v.status = StatusNone
	v.txHash = ""
	v.message = fmt.Sprintf("Connected as %s", session.Account.Hex())
	v.mu.Unlock()

	v.metrics.IncSession("connected")
	v.logs.Infow("wallet connected", "account", session.Account.Hex(), "chain_id", chainID)

	if _, err := v.RefreshBalance(ctx); err != nil {
		v.logs.Errorw("initial balance refresh failed", "error", err)
	}

	return session, nil
}

// Disconnect tears down the session. Displayed balance and transaction state
// are cleared with it.
func (v *Vault) Disconnect() {
	v.mu.Lock()
	hadSession := v.session != nil
	v.session = nil
	v.balance = ""
	v.status = StatusNone
	v.txHash = ""
	v.message = msgDisconnected
	v.mu.Unlock()

	if hadSession {
		v.metrics.IncSession("disconnected")
		v.logs.Infow("wallet disconnected")
	}
}

// RefreshBalance reads the vault balance of the session account and stores
// the ETH-denominated string. On failure the prior displayed balance is left
// unchanged.
func (v *Vault) RefreshBalance(ctx context.Context) (string, error) {
	v.mu.Lock()
	if v.session == nil {
		v.mu.Unlock()
		return "", ErrNoSession
	}
	account := v.session.Account
	v.mu.Unlock()

	wei, err := v.client.BalanceOf(ctx, account)
	if err != nil {
		v.metrics.IncBalanceRefresh("error")
		v.setMessage("Could not fetch balance")
		return "", fmt.Errorf("balance of: %w", err)
	}

	balance := ethereum.FromWei(wei)

	v.mu.Lock()
	v.balance = balance
	v.mu.Unlock()

	v.metrics.IncBalanceRefresh("ok")
	return balance, nil
}

// Invest deposits the decimal ETH amount into the vault and follows the
// transaction to its receipt.
func (v *Vault) Invest(ctx context.Context, amount string) (ActionResult, error) {
	wei, err := ethereum.ToWei(amount)
	if err != nil {
		return ActionResult{}, err
	}

	from, base, err := v.beginAction()
	if err != nil {
		return ActionResult{}, err
	}
	defer v.endAction()

	label := fmt.Sprintf("Invest %s ETH", amount)
	return v.runAction(ctx, actionInvest, from, base, wei, label), nil
}

// Withdraw removes the decimal ETH amount from the vault; an empty amount
// withdraws everything.
func (v *Vault) Withdraw(ctx context.Context, amount string) (ActionResult, error) {
	var wei *big.Int
	label := "Withdraw all"
	if amount != "" {
		parsed, err := ethereum.ToWei(amount)
		if err != nil {
			return ActionResult{}, err
		}
		wei = parsed
		label = fmt.Sprintf("Withdraw %s ETH", amount)
	}

	from, base, err := v.beginAction()
	if err != nil {
		return ActionResult{}, err
	}
	defer v.endAction()

	return v.runAction(ctx, actionWithdraw, from, base, wei, label), nil
}

// Activity returns the recent activity log, newest first.
func (v *Vault) Activity() []ActivityEntry {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]ActivityEntry, len(v.activity))
	copy(out, v.activity)
	return out
}

// Snapshot renders the current dashboard state.
func (v *Vault) Snapshot() DashboardState {
	v.mu.Lock()
	defer v.mu.Unlock()

	state := DashboardState{
		Status:  v.status,
		TxHash:  v.txHash,
		Balance: v.balance,
		Message: v.message,
	}
	if v.session != nil {
		state.Connected = true
		state.Account = v.session.Account.Hex()
		state.ExplorerBase = v.session.ExplorerBase
		if v.session.ChainID != nil {
			state.ChainID = v.session.ChainID.String()
		}
		if v.txHash != "" {
			state.ExplorerURL = explorer.TxURL(v.session.ExplorerBase, v.txHash)
		}
	}
	return state
}

func (v *Vault) beginAction() (common.Address, string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.session == nil {
		return common.Address{}, "", ErrNoSession
	}
	if v.inFlight {
		return common.Address{}, "", ErrActionInFlight
	}

	v.inFlight = true
	v.status = StatusNone
	v.txHash = ""
	v.message = "Working..."

	return v.session.Account, v.session.ExplorerBase, nil
}

func (v *Vault) endAction() {
	v.mu.Lock()
	v.inFlight = false
	v.mu.Unlock()
}

func (v *Vault) runAction(ctx context.Context, action string, from common.Address, base string, wei *big.Int, label string) ActionResult {
	hash, err := v.submit(ctx, action, from, wei)
	if err != nil {
		if isUserRejection(err) {
			v.setFailure("", msgRejected)
			v.appendActivity(uuid.NewString(), label+" rejected by user")
			v.metrics.IncAction(action, "rejected")
			v.logs.Infow("action rejected by user", "action", action)
			return ActionResult{Status: StatusFailed, Message: msgRejected}
		}

		msg := fmt.Sprintf("%s failed: %s", label, reasonOf(err))
		v.setFailure("", msg)
		v.appendActivity(uuid.NewString(), msg)
		v.metrics.IncAction(action, "error")
		v.logs.Errorw("action submission failed", "action", action, "error", err)
		return ActionResult{Status: StatusFailed, Message: msg}
	}

	v.mu.Lock()
	v.status = StatusPending
	v.txHash = hash
	v.message = label + " submitted"
	v.mu.Unlock()
	v.appendActivity(hash, label+" submitted")
	v.logs.Infow("transaction submitted", "action", action, "tx_hash", hash)

	link := explorer.TxURL(base, hash)

	receipt, err := v.client.WaitMined(ctx, hash)
	if err != nil {
		msg := fmt.Sprintf("Could not confirm %s: %s", label, reasonOf(err))
		v.setFailure(hash, msg)
		v.metrics.IncAction(action, "error")
		v.logs.Errorw("receipt wait failed", "action", action, "tx_hash", hash, "error", err)
		return ActionResult{Status: StatusFailed, TxHash: hash, ExplorerURL: link, Message: msg}
	}

	if receipt.Status != 1 {
		msg := label + " reverted on chain"
		v.setFailure(hash, msg)
		v.metrics.IncAction(action, "reverted")
		v.logs.Errorw("transaction reverted", "action", action, "tx_hash", hash, "block", receipt.BlockNumber)
		return ActionResult{Status: StatusFailed, TxHash: hash, ExplorerURL: link, Message: msg}
	}

	msg := label + " confirmed"
	v.mu.Lock()
	v.status = StatusConfirmed
	v.message = msg
	v.mu.Unlock()
	v.appendActivity(hash, msg)
	v.metrics.IncAction(action, "confirmed")
	v.logs.Infow("transaction confirmed", "action", action, "tx_hash", hash, "block", receipt.BlockNumber)

	if _, err := v.RefreshBalance(ctx); err != nil {
		v.logs.Errorw("balance refresh after confirmation failed", "error", err)
	}

	return ActionResult{Status: StatusConfirmed, TxHash: hash, ExplorerURL: link, Message: msg}
}

func (v *Vault) submit(ctx context.Context, action string, from common.Address, wei *big.Int) (string, error) {
	if action == actionInvest {
		return v.client.Invest(ctx, from, wei)
	}
	return v.client.Withdraw(ctx, from, wei)
}

func (v *Vault) setFailure(hash, message string) {
	v.mu.Lock()
	v.status = StatusFailed
	v.txHash = hash
	v.message = message
	v.mu.Unlock()
}

func (v *Vault) setMessage(message string) {
	v.mu.Lock()
	v.message = message
	v.mu.Unlock()
}

func (v *Vault) appendActivity(key, note string) {
	v.mu.Lock()
	entries := make([]ActivityEntry, 0, len(v.activity)+1)
	entries = append(entries, ActivityEntry{
		Key:       key,
		Note:      note,
		Timestamp: time.Now(),
	})
	entries = append(entries, v.activity...)
	if len(entries) > activityCap {
		entries = entries[:activityCap]
	}
	v.activity = entries
	depth := len(entries)
	v.mu.Unlock()

	v.metrics.SetActivityDepth(depth)
}

func isUserRejection(err error) bool {
	var coded rpc.Error
	if errors.As(err, &coded) {
		return coded.ErrorCode() == userRejectedCode
	}
	return false
}

// reasonOf prefers the provider error's data field over its message.
func reasonOf(err error) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := dataErr.ErrorData().(string); ok && reason != "" {
			return reason
		}
	}
	return err.Error()
}
