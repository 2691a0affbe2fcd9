package handler

import (
	"context"
	"finledger/internal/core"
	"finledger/internal/ledger"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name PlatformService . PlatformService
type PlatformService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	RegisterUser(ctx context.Context, token string, msg core.RegisterUserMessage) (ledger.User, error)
	UpdateUserRole(ctx context.Context, token, address string, role ledger.Role) (ledger.User, error)
	CreateTransaction(ctx context.Context, token string, msg core.CreateTransactionMessage) (ledger.Transaction, error)
	RequestApproval(ctx context.Context, token string, transactionID uint64, reason string) (ledger.Approval, error)
	ProcessApproval(ctx context.Context, token string, approvalID uint64, approved bool, reason string) (ledger.Approval, error)
	CompleteTransaction(ctx context.Context, token string, transactionID uint64) (ledger.Transaction, error)
	User(ctx context.Context, address string) (ledger.User, error)
	Transaction(ctx context.Context, id uint64) (ledger.Transaction, error)
	Approval(ctx context.Context, id uint64) (ledger.Approval, error)
	UserTransactions(ctx context.Context, token string) ([]ledger.Transaction, error)
	AllTransactions(ctx context.Context) ([]ledger.Transaction, error)
	PendingApprovals(ctx context.Context) ([]ledger.Approval, error)
	Metrics(ctx context.Context) (ledger.Metrics, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
