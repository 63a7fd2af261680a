package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
)

var ErrWalletNotFound = errors.New("no wallet available")

// Wallet is the provider capability backing the dashboard session: account
// authorization, transaction signing, and account/chain change notifications.
type Wallet struct {
	ks           *keystore.KeyStore
	chain        ChainBackend
	passphrase   string
	pollInterval time.Duration

	events       chan ProviderEvent
	walletEvents chan accounts.WalletEvent
	walletSub    event.Subscription
	done         chan struct{}
	closeOnce    sync.Once

	mu          sync.Mutex
	lastChainID *big.Int
}

// NewWallet opens the keystore directory and starts watching for wallet and
// network changes. The chain backend may be shared with the vault client.
func NewWallet(keystoreDir, passphrase string, chain ChainBackend, pollInterval time.Duration) *Wallet {
	ks := keystore.NewKeyStore(keystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)

	w := &Wallet{
		ks:           ks,
		chain:        chain,
		passphrase:   passphrase,
		pollInterval: pollInterval,
		events:       make(chan ProviderEvent, 8),
		walletEvents: make(chan accounts.WalletEvent, 8),
		done:         make(chan struct{}),
	}
	w.walletSub = ks.Subscribe(w.walletEvents)

	go w.watch()

	return w
}

// RequestAccounts authorizes the wallet for signing and returns the known
// addresses, first one active. An empty keystore blocks all actions.
func (w *Wallet) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	accts := w.ks.Accounts()
	if len(accts) == 0 {
		return nil, ErrWalletNotFound
	}

	if err := w.ks.TimedUnlock(accts[0], w.passphrase, 0); err != nil {
		return nil, fmt.Errorf("unlock account: %w", err)
	}

	addresses := make([]common.Address, len(accts))
	for i, acct := range accts {
		addresses[i] = acct.Address
	}
	return addresses, nil
}

// ChainID reports the connected network.
func (w *Wallet) ChainID(ctx context.Context) (*big.Int, error) {
	if w.chain == nil {
		return nil, errors.New("chain backend not configured")
	}
	return w.chain.ChainID(ctx)
}

// TransactorFor builds signing options bound to the given account and chain.
func (w *Wallet) TransactorFor(address common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyStoreTransactorWithChainID(w.ks, accounts.Account{Address: address}, chainID)
	if err != nil {
		return nil, fmt.Errorf("keystore transactor: %w", err)
	}
	return opts, nil
}

// Events exposes account-change and chain-change notifications. The channel
// is closed when the wallet is closed.
func (w *Wallet) Events() <-chan ProviderEvent {
	return w.events
}

// Close releases the keystore subscription and stops the chain watcher.
func (w *Wallet) Close() {
	w.closeOnce.Do(func() {
		w.walletSub.Unsubscribe()
		close(w.done)
	})
}

func (w *Wallet) watch() {
	defer close(w.events)

	var pollCh <-chan time.Time
	if w.chain != nil && w.pollInterval > 0 {
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		pollCh = ticker.C
	}

	for {
		select {
		case <-w.done:
			return
		case <-w.walletEvents:
			w.emit(ProviderEvent{
				Kind:     AccountsChanged,
				Accounts: w.addresses(),
			})
		case <-pollCh:
			w.pollChainID()
		}
	}
}

func (w *Wallet) pollChainID() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	chainID, err := w.chain.ChainID(ctx)
	if err != nil {
		return
	}

	w.mu.Lock()
	changed := w.lastChainID != nil && w.lastChainID.Cmp(chainID) != 0
	w.lastChainID = chainID
	w.mu.Unlock()

	if changed {
		w.emit(ProviderEvent{Kind: ChainChanged, ChainID: chainID})
	}
}

func (w *Wallet) addresses() []common.Address {
	accts := w.ks.Accounts()
	addresses := make([]common.Address, len(accts))
	for i, acct := range accts {
		addresses[i] = acct.Address
	}
	return addresses
}

func (w *Wallet) emit(ev ProviderEvent) {
	select {
	case w.events <- ev:
	case <-w.done:
	}
}
