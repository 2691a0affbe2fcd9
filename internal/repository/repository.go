package repository

import (
	"context"
	"errors"
	"finledger/internal/db"
	"finledger/internal/ledger"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

var ErrCredentialNotFound error = errors.New("credential not found")

// LedgerRepository persists ledger entities through the generic storage
// helper and converts between storage rows and ledger models.
type LedgerRepository struct {
	db Storage
}

func NewLedgerRepository(db Storage) *LedgerRepository {
	return &LedgerRepository{
		db: db,
	}
}

// MigrateAndSeed creates the schema and seeds the bootstrap admin, which is
// the only way the first RegisterUser call can ever be authorized.
func (r *LedgerRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(&User{}, &Transaction{}, &Approval{}, &Credential{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	admins := []User{
		{
			Address: "0x00000000000000000000000000000000000000a1",
			Name:    "Platform Admin",
			Email:   "admin@finledger.local",
			Role:    int(ledger.RoleAdmin),
			Active:  true,
		},
	}
	if err := r.db.SeedTable(ctx, &admins); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	credentials := []Credential{
		{
			ID:           uuid.NewString(),
			Username:     "admin",
			Address:      "0x00000000000000000000000000000000000000a1",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
	}
	if err := r.db.SeedTable(ctx, &credentials); err != nil {
		return fmt.Errorf("seed credentials: %w", err)
	}

	return nil
}

func (r *LedgerRepository) CreateUser(ctx context.Context, user *ledger.User) error {
	row := userToRow(*user)
	if err := r.db.Insert(ctx, &row); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = row.ID
	return nil
}

func (r *LedgerRepository) UserByAddress(ctx context.Context, address string) (ledger.User, error) {
	var row User
	if err := r.db.GetOneBy(ctx, "address", address, &row); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ledger.User{}, ledger.ErrNotFound
		}
		return ledger.User{}, fmt.Errorf("get user by address: %w", err)
	}
	return userToModel(row), nil
}

func (r *LedgerRepository) UpdateUser(ctx context.Context, user ledger.User) error {
	row := userToRow(user)
	if err := r.db.Save(ctx, &row); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (r *LedgerRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.db.Count(ctx, &User{})
}

func (r *LedgerRepository) CreateTransaction(ctx context.Context, tx *ledger.Transaction) error {
	row := transactionToRow(*tx)
	if err := r.db.Insert(ctx, &row); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	tx.ID = row.ID
	return nil
}

func (r *LedgerRepository) TransactionByID(ctx context.Context, id uint64) (ledger.Transaction, error) {
	var row Transaction
	if err := r.db.GetOneBy(ctx, "id", id, &row); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ledger.Transaction{}, ledger.ErrNotFound
		}
		return ledger.Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}
	return transactionToModel(row)
}

func (r *LedgerRepository) UpdateTransaction(ctx context.Context, tx ledger.Transaction) error {
	row := transactionToRow(tx)
	if err := r.db.Save(ctx, &row); err != nil {
		return fmt.Errorf("save transaction: %w", err)
	}
	return nil
}

// TransactionsByAddress returns transactions where the address is sender or
// recipient, ordered by id.
func (r *LedgerRepository) TransactionsByAddress(ctx context.Context, address string) ([]ledger.Transaction, error) {
	var sent []Transaction
	if err := r.db.GetAllBy(ctx, "from_address", []string{address}, &sent); err != nil {
		return nil, fmt.Errorf("get sent transactions: %w", err)
	}

	var received []Transaction
	if err := r.db.GetAllBy(ctx, "to_address", []string{address}, &received); err != nil {
		return nil, fmt.Errorf("get received transactions: %w", err)
	}

	seen := make(map[uint64]struct{}, len(sent))
	rows := make([]Transaction, 0, len(sent)+len(received))
	for _, row := range append(sent, received...) {
		if _, ok := seen[row.ID]; ok {
			continue
		}
		seen[row.ID] = struct{}{}
		rows = append(rows, row)
	}

	return transactionsToModels(rows)
}

func (r *LedgerRepository) AllTransactions(ctx context.Context) ([]ledger.Transaction, error) {
	var rows []Transaction
	if err := r.db.GetAll(ctx, &rows); err != nil {
		return nil, fmt.Errorf("get all transactions: %w", err)
	}
	return transactionsToModels(rows)
}

func (r *LedgerRepository) CountTransactions(ctx context.Context) (int64, error) {
	return r.db.Count(ctx, &Transaction{})
}

// CreateApprovalAndLink inserts the approval and writes its generated id onto
// the transaction in one database transaction, so a link failure leaves no
// orphaned approval behind.
func (r *LedgerRepository) CreateApprovalAndLink(ctx context.Context, approval *ledger.Approval, tx *ledger.Transaction) error {
	approvalRow := approvalToRow(*approval)
	err := r.db.Transaction(ctx, func(store db.Store) error {
		if err := store.Insert(ctx, &approvalRow); err != nil {
			return fmt.Errorf("insert approval: %w", err)
		}
		txRow := transactionToRow(*tx)
		txRow.ApprovalID = approvalRow.ID
		if err := store.Save(ctx, &txRow); err != nil {
			return fmt.Errorf("link approval to transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	approval.ID = approvalRow.ID
	tx.ApprovalID = approvalRow.ID
	return nil
}

func (r *LedgerRepository) ApprovalByID(ctx context.Context, id uint64) (ledger.Approval, error) {
	var row Approval
	if err := r.db.GetOneBy(ctx, "id", id, &row); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ledger.Approval{}, ledger.ErrNotFound
		}
		return ledger.Approval{}, fmt.Errorf("get approval by id: %w", err)
	}
	return approvalToModel(row), nil
}

// DecideApproval persists the decided approval and the transaction it moved
// atomically. Either both records carry the decision or neither does.
func (r *LedgerRepository) DecideApproval(ctx context.Context, approval ledger.Approval, tx ledger.Transaction) error {
	return r.db.Transaction(ctx, func(store db.Store) error {
		approvalRow := approvalToRow(approval)
		if err := store.Save(ctx, &approvalRow); err != nil {
			return fmt.Errorf("save approval: %w", err)
		}
		txRow := transactionToRow(tx)
		if err := store.Save(ctx, &txRow); err != nil {
			return fmt.Errorf("save transaction: %w", err)
		}
		return nil
	})
}

func (r *LedgerRepository) PendingApprovals(ctx context.Context) ([]ledger.Approval, error) {
	var rows []Approval
	if err := r.db.GetAllBy(ctx, "status", []int{int(ledger.ApprovalPending)}, &rows); err != nil {
		return nil, fmt.Errorf("get pending approvals: %w", err)
	}

	approvals := make([]ledger.Approval, len(rows))
	for i, row := range rows {
		approvals[i] = approvalToModel(row)
	}
	return approvals, nil
}

func (r *LedgerRepository) CountApprovals(ctx context.Context) (int64, error) {
	return r.db.Count(ctx, &Approval{})
}

func (r *LedgerRepository) SaveCredential(ctx context.Context, credential Credential) error {
	if credential.ID == "" {
		credential.ID = uuid.NewString()
	}
	if err := r.db.Insert(ctx, &credential); err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

func (r *LedgerRepository) CredentialByUsername(ctx context.Context, username string) (Credential, error) {
	var credential Credential
	if err := r.db.GetOneBy(ctx, "username", username, &credential); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Credential{}, ErrCredentialNotFound
		}
		return Credential{}, fmt.Errorf("get credential by username: %w", err)
	}
	return credential, nil
}

func userToRow(user ledger.User) User {
	return User{
		ID:        user.ID,
		Address:   user.Address,
		Name:      user.Name,
		Email:     user.Email,
		Role:      int(user.Role),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

func userToModel(row User) ledger.User {
	return ledger.User{
		ID:        row.ID,
		Address:   row.Address,
		Name:      row.Name,
		Email:     row.Email,
		Role:      ledger.RoleFromInt(row.Role),
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
	}
}

func transactionToRow(tx ledger.Transaction) Transaction {
	return Transaction{
		ID:             tx.ID,
		FromAddress:    tx.From,
		ToAddress:      tx.To,
		Amount:         tx.Amount.String(),
		Description:    tx.Description,
		Status:         int(tx.Status),
		ApprovalID:     tx.ApprovalID,
		SettlementHash: tx.SettlementHash,
		CreatedAt:      tx.CreatedAt,
	}
}

func transactionToModel(row Transaction) (ledger.Transaction, error) {
	amount, ok := new(big.Int).SetString(row.Amount, 10)
	if !ok {
		return ledger.Transaction{}, fmt.Errorf("parse amount %q of transaction %d", row.Amount, row.ID)
	}

	return ledger.Transaction{
		ID:             row.ID,
		From:           row.FromAddress,
		To:             row.ToAddress,
		Amount:         amount,
		Description:    row.Description,
		Status:         ledger.TxStatusFromInt(row.Status),
		ApprovalID:     row.ApprovalID,
		SettlementHash: row.SettlementHash,
		CreatedAt:      row.CreatedAt,
	}, nil
}

func transactionsToModels(rows []Transaction) ([]ledger.Transaction, error) {
	transactions := make([]ledger.Transaction, len(rows))
	for i, row := range rows {
		tx, err := transactionToModel(row)
		if err != nil {
			return nil, err
		}
		transactions[i] = tx
	}
	return transactions, nil
}

func approvalToRow(approval ledger.Approval) Approval {
	return Approval{
		ID:            approval.ID,
		TransactionID: approval.TransactionID,
		Requester:     approval.Requester,
		Approver:      approval.Approver,
		Type:          int(approval.Type),
		Status:        int(approval.Status),
		Reason:        approval.Reason,
		Timestamp:     approval.Timestamp,
	}
}

func approvalToModel(row Approval) ledger.Approval {
	status := ledger.ApprovalStatusFromInt(row.Status)

	approvalType := ledger.ApprovalTypeUnknown
	if row.Type >= 0 && row.Type <= int(ledger.ApprovalTypeSystemConfig) {
		approvalType = ledger.ApprovalType(row.Type)
	}

	return ledger.Approval{
		ID:            row.ID,
		TransactionID: row.TransactionID,
		Requester:     row.Requester,
		Approver:      row.Approver,
		Type:          approvalType,
		Status:        status,
		Reason:        row.Reason,
		Timestamp:     row.Timestamp,
	}
}
