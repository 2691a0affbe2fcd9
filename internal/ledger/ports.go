package ledger

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	CreateUser(ctx context.Context, user *User) error
	UserByAddress(ctx context.Context, address string) (User, error)
	UpdateUser(ctx context.Context, user User) error
	CountUsers(ctx context.Context) (int64, error)

	CreateTransaction(ctx context.Context, tx *Transaction) error
	TransactionByID(ctx context.Context, id uint64) (Transaction, error)
	UpdateTransaction(ctx context.Context, tx Transaction) error
	TransactionsByAddress(ctx context.Context, address string) ([]Transaction, error)
	AllTransactions(ctx context.Context) ([]Transaction, error)
	CountTransactions(ctx context.Context) (int64, error)

	CreateApprovalAndLink(ctx context.Context, approval *Approval, tx *Transaction) error
	ApprovalByID(ctx context.Context, id uint64) (Approval, error)
	DecideApproval(ctx context.Context, approval Approval, tx Transaction) error
	PendingApprovals(ctx context.Context) ([]Approval, error)
	CountApprovals(ctx context.Context) (int64, error)
}

//counterfeiter:generate -o fake -fake-name Publisher . Publisher
type Publisher interface {
	Publish(event Event)
}

//counterfeiter:generate -o fake -fake-name Settler . Settler
type Settler interface {
	Settle(ctx context.Context, tx Transaction) (string, error)
}
