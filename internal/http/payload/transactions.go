package payload

import (
	"finledger/internal/core"
	"fmt"
	"math/big"
	"regexp"

	"github.com/jellydator/validation"
)

var amountRegex = regexp.MustCompile(`^[0-9]+$`)

type CreateTransactionRequest struct {
	To          string `json:"to"`
	Amount      string `json:"amount"` // smallest-unit denomination
	Description string `json:"description"`
}

func (t CreateTransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.To, validation.Required, validation.Match(addressRegex)),
		validation.Field(&t.Amount, validation.Required, validation.Match(amountRegex)),
	)
}

func (t CreateTransactionRequest) ToMessage() (core.CreateTransactionMessage, error) {
	amount, ok := new(big.Int).SetString(t.Amount, 10)
	if !ok {
		return core.CreateTransactionMessage{}, fmt.Errorf("parse amount %q", t.Amount)
	}

	return core.CreateTransactionMessage{
		To:          t.To,
		Amount:      amount,
		Description: t.Description,
	}, nil
}
