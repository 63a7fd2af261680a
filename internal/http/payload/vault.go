package payload

import (
	"regexp"

	"github.com/jellydator/validation"
)

var amountRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// InvestRequest carries the decimal ETH amount to deposit.
type InvestRequest struct {
	Amount string `json:"amount"`
}

func (i InvestRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Amount, validation.Required),
		validation.Field(&i.Amount, validation.Match(amountRegex)),
	)
}

// WithdrawRequest carries the decimal ETH amount to withdraw. An empty
// amount withdraws the full vault balance.
type WithdrawRequest struct {
	Amount string `json:"amount"`
}

func (w WithdrawRequest) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.Amount, validation.Match(amountRegex)),
	)
}
