package core

import (
	"finledger/internal/ledger"
	"math/big"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterUserMessage carries an optional API login next to the on-ledger
// identity. A user without credentials is ledger-only.
type RegisterUserMessage struct {
	Address  string
	Name     string
	Email    string
	Role     ledger.Role
	Username string
	Password string
}

type CreateTransactionMessage struct {
	To          string
	Amount      *big.Int
	Description string
}
