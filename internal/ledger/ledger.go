package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"
)

var TimeNow = time.Now

// Ledger is the authoritative state machine for users, transfer requests and
// approvals. Every mutation checks the caller's role or ownership, applies
// exactly one transition and publishes the matching event after the store
// write succeeded.
type Ledger struct {
	logs    *zap.SugaredLogger
	store   Store
	events  Publisher
	settler Settler
}

func NewLedger(logger *zap.SugaredLogger, store Store, events Publisher, settler Settler) *Ledger {
	return &Ledger{
		logs:    logger,
		store:   store,
		events:  events,
		settler: settler,
	}
}

// RegisterUser creates a user for an unregistered address. Admin only.
func (l *Ledger) RegisterUser(ctx context.Context, caller, address, name, email string, role Role) (User, error) {
	if err := l.requireRole(ctx, caller, RoleAdmin); err != nil {
		return User{}, err
	}

	if role == RoleUnknown {
		return User{}, fmt.Errorf("%w: unknown role", ErrInvalidState)
	}

	_, err := l.store.UserByAddress(ctx, address)
	if err == nil {
		return User{}, ErrDuplicateAddress
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("get user by address: %w", err)
	}

	user := User{
		Address:   address,
		Name:      name,
		Email:     email,
		Role:      role,
		Active:    true,
		CreatedAt: TimeNow(),
	}
	if err := l.store.CreateUser(ctx, &user); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}

	l.logs.Infow("user registered", "userId", user.ID, "address", address, "role", role.String())

	l.events.Publish(Event{
		Kind:    EventUserRegistered,
		UserID:  user.ID,
		Address: user.Address,
		Name:    user.Name,
		Role:    user.Role,
	})

	return user, nil
}

// UpdateUserRole mutates a registered user's role in place. Admin only.
// In-flight transactions and approvals are not affected.
func (l *Ledger) UpdateUserRole(ctx context.Context, caller, address string, role Role) (User, error) {
	if err := l.requireRole(ctx, caller, RoleAdmin); err != nil {
		return User{}, err
	}

	if role == RoleUnknown {
		return User{}, fmt.Errorf("%w: unknown role", ErrInvalidState)
	}

	user, err := l.store.UserByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by address: %w", err)
	}

	user.Role = role
	if err := l.store.UpdateUser(ctx, user); err != nil {
		return User{}, fmt.Errorf("update user: %w", err)
	}

	l.logs.Infow("user role updated", "address", address, "role", role.String())

	l.events.Publish(Event{
		Kind:    EventUserRoleUpdated,
		UserID:  user.ID,
		Address: user.Address,
		Role:    user.Role,
	})

	return user, nil
}

// CreateTransaction creates a transfer request in the pending state. The
// caller must be a registered active user and the recipient must be a
// registered user as well.
func (l *Ledger) CreateTransaction(ctx context.Context, caller, to string, amount *big.Int, description string) (Transaction, error) {
	sender, err := l.activeUser(ctx, caller)
	if err != nil {
		return Transaction{}, err
	}

	if amount == nil || amount.Sign() <= 0 {
		return Transaction{}, ErrInvalidAmount
	}

	if _, err := l.store.UserByAddress(ctx, to); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Transaction{}, ErrInvalidRecipient
		}
		return Transaction{}, fmt.Errorf("get recipient: %w", err)
	}

	tx := Transaction{
		From:        sender.Address,
		To:          to,
		Amount:      new(big.Int).Set(amount),
		Description: description,
		Status:      TxPending,
		CreatedAt:   TimeNow(),
	}
	if err := l.store.CreateTransaction(ctx, &tx); err != nil {
		return Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	l.logs.Infow("transaction created", "transactionId", tx.ID, "from", tx.From, "to", tx.To, "amount", tx.Amount.String())

	l.events.Publish(Event{
		Kind:          EventTransactionCreated,
		TransactionID: tx.ID,
		From:          tx.From,
		To:            tx.To,
		Amount:        tx.Amount.String(),
		TxStatus:      tx.Status,
	})

	return tx, nil
}

// RequestApproval opens an approval for a pending transaction that has none
// outstanding yet. Only the transaction sender may request one.
func (l *Ledger) RequestApproval(ctx context.Context, caller string, transactionID uint64, reason string) (Approval, error) {
	if reason == "" {
		return Approval{}, ErrReasonRequired
	}

	tx, err := l.transaction(ctx, transactionID)
	if err != nil {
		return Approval{}, err
	}

	if tx.From != caller {
		return Approval{}, ErrNotOwner
	}

	if tx.Status != TxPending || tx.ApprovalID != 0 {
		return Approval{}, fmt.Errorf("%w: transaction %d is %s with approval %d",
			ErrInvalidState, tx.ID, tx.Status, tx.ApprovalID)
	}

	approval := Approval{
		TransactionID: tx.ID,
		Requester:     caller,
		Type:          ApprovalTypeTransaction,
		Status:        ApprovalPending,
		Reason:        reason,
		Timestamp:     TimeNow(),
	}
	// one atomic write: the approval row and the transaction link land
	// together or not at all
	if err := l.store.CreateApprovalAndLink(ctx, &approval, &tx); err != nil {
		return Approval{}, fmt.Errorf("create approval: %w", err)
	}

	l.logs.Infow("approval requested", "approvalId", approval.ID, "transactionId", tx.ID, "requester", caller)

	l.events.Publish(Event{
		Kind:          EventApprovalRequested,
		ApprovalID:    approval.ID,
		TransactionID: tx.ID,
		Requester:     caller,
	})

	return approval, nil
}

// ProcessApproval decides a pending approval and moves the linked transaction
// to active or rejected. Manager or admin only. A decided approval can never
// be decided again.
func (l *Ledger) ProcessApproval(ctx context.Context, caller string, approvalID uint64, approved bool, reason string) (Approval, error) {
	if err := l.requireRole(ctx, caller, RoleManager); err != nil {
		return Approval{}, err
	}

	if reason == "" {
		return Approval{}, ErrReasonRequired
	}

	approval, err := l.store.ApprovalByID(ctx, approvalID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Approval{}, ErrApprovalNotFound
		}
		return Approval{}, fmt.Errorf("get approval: %w", err)
	}

	if approval.Status != ApprovalPending {
		return Approval{}, fmt.Errorf("%w: approval %d is already %s",
			ErrInvalidState, approval.ID, approval.Status)
	}

	tx, err := l.transaction(ctx, approval.TransactionID)
	if err != nil {
		return Approval{}, err
	}

	if approved {
		approval.Status = ApprovalApproved
		tx.Status = TxActive
	} else {
		approval.Status = ApprovalRejected
		tx.Status = TxRejected
	}
	approval.Approver = caller
	approval.Reason = reason
	approval.Timestamp = TimeNow()

	// the decision and the status transition land atomically; a partial
	// write would strand the transaction behind a decided approval
	if err := l.store.DecideApproval(ctx, approval, tx); err != nil {
		return Approval{}, fmt.Errorf("decide approval: %w", err)
	}

	l.logs.Infow("approval processed",
		"approvalId", approval.ID,
		"transactionId", tx.ID,
		"status", approval.Status.String(),
		"approver", caller)

	l.events.Publish(Event{
		Kind:           EventApprovalProcessed,
		ApprovalID:     approval.ID,
		TransactionID:  tx.ID,
		Approver:       caller,
		ApprovalStatus: approval.Status,
	})
	l.events.Publish(Event{
		Kind:          EventTransactionStatusUpdated,
		TransactionID: tx.ID,
		From:          tx.From,
		To:            tx.To,
		TxStatus:      tx.Status,
	})

	return approval, nil
}

// CompleteTransaction settles an active transaction and moves it to the
// terminal completed state. Only the sender may complete it. The settlement
// runs before the status write; a settlement failure leaves the transaction
// active.
func (l *Ledger) CompleteTransaction(ctx context.Context, caller string, transactionID uint64) (Transaction, error) {
	tx, err := l.transaction(ctx, transactionID)
	if err != nil {
		return Transaction{}, err
	}

	if tx.From != caller {
		return Transaction{}, ErrNotOwner
	}

	if tx.Status != TxActive {
		return Transaction{}, fmt.Errorf("%w: transaction %d is %s", ErrInvalidState, tx.ID, tx.Status)
	}

	settlementHash, err := l.settler.Settle(ctx, tx)
	if err != nil {
		return Transaction{}, fmt.Errorf("settle transaction %d: %w", tx.ID, err)
	}

	tx.Status = TxCompleted
	tx.SettlementHash = settlementHash
	if err := l.store.UpdateTransaction(ctx, tx); err != nil {
		return Transaction{}, fmt.Errorf("update transaction: %w", err)
	}

	l.logs.Infow("transaction completed", "transactionId", tx.ID, "settlementHash", settlementHash)

	l.events.Publish(Event{
		Kind:           EventTransactionStatusUpdated,
		TransactionID:  tx.ID,
		From:           tx.From,
		To:             tx.To,
		TxStatus:       tx.Status,
		SettlementHash: settlementHash,
	})

	return tx, nil
}

func (l *Ledger) User(ctx context.Context, address string) (User, error) {
	user, err := l.store.UserByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (l *Ledger) Transaction(ctx context.Context, id uint64) (Transaction, error) {
	return l.transaction(ctx, id)
}

func (l *Ledger) Approval(ctx context.Context, id uint64) (Approval, error) {
	approval, err := l.store.ApprovalByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Approval{}, ErrApprovalNotFound
		}
		return Approval{}, fmt.Errorf("get approval: %w", err)
	}
	return approval, nil
}

func (l *Ledger) UserTransactions(ctx context.Context, address string) ([]Transaction, error) {
	transactions, err := l.store.TransactionsByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}
	return transactions, nil
}

func (l *Ledger) AllTransactions(ctx context.Context) ([]Transaction, error) {
	transactions, err := l.store.AllTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all transactions: %w", err)
	}
	return transactions, nil
}

func (l *Ledger) PendingApprovals(ctx context.Context) ([]Approval, error) {
	approvals, err := l.store.PendingApprovals(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pending approvals: %w", err)
	}
	return approvals, nil
}

func (l *Ledger) Metrics(ctx context.Context) (Metrics, error) {
	users, err := l.store.CountUsers(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("count users: %w", err)
	}
	transactions, err := l.store.CountTransactions(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("count transactions: %w", err)
	}
	approvals, err := l.store.CountApprovals(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("count approvals: %w", err)
	}

	return Metrics{
		Users:        users,
		Transactions: transactions,
		Approvals:    approvals,
	}, nil
}

func (l *Ledger) transaction(ctx context.Context, id uint64) (Transaction, error) {
	tx, err := l.store.TransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return tx, nil
}

func (l *Ledger) activeUser(ctx context.Context, address string) (User, error) {
	user, err := l.store.UserByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrUnauthorized
		}
		return User{}, fmt.Errorf("get caller: %w", err)
	}
	if !user.Active {
		return User{}, ErrUnauthorized
	}
	return user, nil
}

// requireRole checks that the caller is a registered active user holding at
// least the given role. Admin satisfies a manager requirement.
func (l *Ledger) requireRole(ctx context.Context, address string, role Role) error {
	user, err := l.activeUser(ctx, address)
	if err != nil {
		return err
	}
	if user.Role != role && user.Role != RoleAdmin {
		return ErrUnauthorized
	}
	return nil
}
