package handler

import (
	"finledger/internal/ledger"
	"time"
)

// View models returned in Response.Data. Amounts stay decimal strings and
// enums go out as names, matching what validation accepts on the way in.
type UserView struct {
	ID        uint64    `json:"id"`
	Address   string    `json:"address"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type TransactionView struct {
	ID             uint64    `json:"id"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Amount         string    `json:"amount"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	ApprovalID     uint64    `json:"approvalId"`
	SettlementHash string    `json:"settlementHash,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ApprovalView struct {
	ID            uint64    `json:"id"`
	TransactionID uint64    `json:"transactionId"`
	Requester     string    `json:"requester"`
	Approver      string    `json:"approver,omitempty"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	Reason        string    `json:"reason"`
	Timestamp     time.Time `json:"timestamp"`
}

type MetricsView struct {
	Users        int64 `json:"users"`
	Transactions int64 `json:"transactions"`
	Approvals    int64 `json:"approvals"`
}

func userView(user ledger.User) UserView {
	return UserView{
		ID:        user.ID,
		Address:   user.Address,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

func transactionView(tx ledger.Transaction) TransactionView {
	return TransactionView{
		ID:             tx.ID,
		From:           tx.From,
		To:             tx.To,
		Amount:         tx.Amount.String(),
		Description:    tx.Description,
		Status:         tx.Status.String(),
		ApprovalID:     tx.ApprovalID,
		SettlementHash: tx.SettlementHash,
		CreatedAt:      tx.CreatedAt,
	}
}

func transactionViews(transactions []ledger.Transaction) []TransactionView {
	views := make([]TransactionView, len(transactions))
	for i, tx := range transactions {
		views[i] = transactionView(tx)
	}
	return views
}

func approvalView(approval ledger.Approval) ApprovalView {
	return ApprovalView{
		ID:            approval.ID,
		TransactionID: approval.TransactionID,
		Requester:     approval.Requester,
		Approver:      approval.Approver,
		Type:          approval.Type.String(),
		Status:        approval.Status.String(),
		Reason:        approval.Reason,
		Timestamp:     approval.Timestamp,
	}
}

func approvalViews(approvals []ledger.Approval) []ApprovalView {
	views := make([]ApprovalView, len(approvals))
	for i, approval := range approvals {
		views[i] = approvalView(approval)
	}
	return views
}
