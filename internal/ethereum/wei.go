package ethereum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/params"
)

var ErrInvalidAmount = errors.New("invalid amount")

var weiPerEther = new(big.Int).SetUint64(params.Ether)

// ToWei converts a decimal ETH-denominated string into wei. Amounts must be
// positive and carry at most 18 fractional digits.
func ToWei(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}

	rat, ok := new(big.Rat).SetString(amount)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if rat.Sign() <= 0 {
		return nil, fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	}

	rat.Mul(rat, new(big.Rat).SetInt(weiPerEther))
	if !rat.IsInt() {
		return nil, fmt.Errorf("%w: more than 18 decimal places", ErrInvalidAmount)
	}

	return new(big.Int).Set(rat.Num()), nil
}

// FromWei converts a smallest-unit integer into a decimal ETH string with
// trailing zeros trimmed.
func FromWei(wei *big.Int) string {
	if wei == nil {
		return "0"
	}

	rat := new(big.Rat).SetFrac(wei, weiPerEther)
	out := rat.FloatString(18)
	out = strings.TrimRight(out, "0")
	out = strings.TrimSuffix(out, ".")
	if out == "" || out == "-" {
		return "0"
	}
	return out
}
