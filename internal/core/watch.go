package core

import (
	"context"
	"fmt"

	"github.com/emerice12-oss/Exit-Dapp/internal/ethereum"
	"github.com/emerice12-oss/Exit-Dapp/internal/explorer"
)

// Watch consumes wallet-level change notifications for the lifetime of the
// context. An empty accounts list tears the session down; a new first account
// is adopted against the existing contract handle; a chain change re-resolves
// the explorer base.
func (v *Vault) Watch(ctx context.Context) {
	events := v.wallet.Events()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			v.handleEvent(ctx, ev)
		}
	}
}

func (v *Vault) handleEvent(ctx context.Context, ev ethereum.ProviderEvent) {
	switch ev.Kind {
	case ethereum.AccountsChanged:
		if len(ev.Accounts) == 0 {
			v.Disconnect()
			return
		}

		v.mu.Lock()
		if v.session == nil {
			v.mu.Unlock()
			return
		}
		v.session.Account = ev.Accounts[0]
		v.message = fmt.Sprintf("Switched to account %s", ev.Accounts[0].Hex())
		v.mu.Unlock()

		v.logs.Infow("account changed", "account", ev.Accounts[0].Hex())
		if _, err := v.RefreshBalance(ctx); err != nil {
			v.logs.Errorw("balance refresh after account change failed", "error", err)
		}

	case ethereum.ChainChanged:
		base := explorer.BaseURL(ev.ChainID)

		v.mu.Lock()
		if v.session != nil {
			v.session.ChainID = ev.ChainID
			v.session.ExplorerBase = base
		}
		v.message = fmt.Sprintf("Network changed, explorer links now use %s", base)
		v.mu.Unlock()

		v.logs.Infow("chain changed", "chain_id", ev.ChainID, "explorer_base", base)
	}
}
