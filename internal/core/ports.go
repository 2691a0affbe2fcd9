package core

import (
	"context"
	"finledger/internal/ledger"
	"finledger/internal/repository"
	tokenIssuer "finledger/pkg/jwt"
	"math/big"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	RegisterUser(ctx context.Context, caller, address, name, email string, role ledger.Role) (ledger.User, error)
	UpdateUserRole(ctx context.Context, caller, address string, role ledger.Role) (ledger.User, error)
	CreateTransaction(ctx context.Context, caller, to string, amount *big.Int, description string) (ledger.Transaction, error)
	RequestApproval(ctx context.Context, caller string, transactionID uint64, reason string) (ledger.Approval, error)
	ProcessApproval(ctx context.Context, caller string, approvalID uint64, approved bool, reason string) (ledger.Approval, error)
	CompleteTransaction(ctx context.Context, caller string, transactionID uint64) (ledger.Transaction, error)
	User(ctx context.Context, address string) (ledger.User, error)
	Transaction(ctx context.Context, id uint64) (ledger.Transaction, error)
	Approval(ctx context.Context, id uint64) (ledger.Approval, error)
	UserTransactions(ctx context.Context, address string) ([]ledger.Transaction, error)
	AllTransactions(ctx context.Context) ([]ledger.Transaction, error)
	PendingApprovals(ctx context.Context) ([]ledger.Approval, error)
	Metrics(ctx context.Context) (ledger.Metrics, error)
}

//counterfeiter:generate -o fake -fake-name CredentialStore . CredentialStore
type CredentialStore interface {
	SaveCredential(ctx context.Context, credential repository.Credential) error
	CredentialByUsername(ctx context.Context, username string) (repository.Credential, error)
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
