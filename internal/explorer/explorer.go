package explorer

import (
	"fmt"
	"math/big"
)

const mainnetBase = "https://etherscan.io"

var explorerBases = map[uint64]string{
	1:        mainnetBase,
	5:        "https://goerli.etherscan.io",
	11155111: "https://sepolia.etherscan.io",
}

// BaseURL resolves the block-explorer root for a chain ID. Unrecognized
// chains fall back to the mainnet explorer.
func BaseURL(chainID *big.Int) string {
	if chainID == nil {
		return mainnetBase
	}
	if base, ok := explorerBases[chainID.Uint64()]; ok {
		return base
	}
	return mainnetBase
}

// TxURL builds a human-navigable transaction lookup link.
func TxURL(base, txHash string) string {
	return fmt.Sprintf("%s/tx/%s", base, txHash)
}
