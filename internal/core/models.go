package core

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// TxStatus reflects the single most recent invest/withdraw action.
type TxStatus string

const (
	StatusNone      TxStatus = "none"
	StatusPending   TxStatus = "pending"
	StatusConfirmed TxStatus = "confirmed"
	StatusFailed    TxStatus = "failed"
)

// Session is the live association between the connected account and the
// bound vault contract. At most one session exists at a time.
type Session struct {
	Account      common.Address
	ChainID      *big.Int
	ExplorerBase string
}

// ActivityEntry is one line of the dashboard activity log. Key is the
// transaction hash when one exists, otherwise a synthetic identifier.
type ActivityEntry struct {
	Key       string    `json:"key"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

// ActionResult is the outcome of one invest or withdraw action.
type ActionResult struct {
	Status      TxStatus `json:"status"`
	TxHash      string   `json:"txHash,omitempty"`
	ExplorerURL string   `json:"explorerUrl,omitempty"`
	Message     string   `json:"message"`
}

// DashboardState is a point-in-time view of the session for rendering.
type DashboardState struct {
	Connected    bool     `json:"connected"`
	Account      string   `json:"account,omitempty"`
	ChainID      string   `json:"chainId,omitempty"`
	ExplorerBase string   `json:"explorerBase,omitempty"`
	Balance      string   `json:"balance,omitempty"`
	Status       TxStatus `json:"status"`
	TxHash       string   `json:"txHash,omitempty"`
	ExplorerURL  string   `json:"explorerUrl,omitempty"`
	Message      string   `json:"message,omitempty"`
}
