package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// EventKind labels wallet-level change notifications.
type EventKind int

const (
	AccountsChanged EventKind = iota
	ChainChanged
)

// ProviderEvent is emitted by the wallet when the available accounts or the
// connected network change.
type ProviderEvent struct {
	Kind     EventKind
	Accounts []common.Address
	ChainID  *big.Int
}

// Receipt carries the confirmation outcome of a submitted transaction.
type Receipt struct {
	TxHash      string
	Status      uint64
	BlockHash   string
	BlockNumber uint64
}
