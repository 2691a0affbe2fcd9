package ledger

import (
	"math/big"
	"time"
)

// Role is the access-control tier of a registered user. Wire values follow
// the contract enum; anything out of range decodes as RoleUnknown.
type Role uint8

const (
	RoleRegular Role = iota
	RoleManager
	RoleAdmin
	RoleUnknown
)

func RoleFromInt(v int) Role {
	if v < 0 || v > int(RoleAdmin) {
		return RoleUnknown
	}
	return Role(v)
}

func (r Role) String() string {
	switch r {
	case RoleRegular:
		return "regular"
	case RoleManager:
		return "manager"
	case RoleAdmin:
		return "admin"
	}
	return "unknown"
}

// TxStatus is the lifecycle state of a transfer request.
type TxStatus uint8

const (
	TxPending TxStatus = iota
	TxActive
	TxCompleted
	TxRejected
	TxUnknown
)

func TxStatusFromInt(v int) TxStatus {
	if v < 0 || v > int(TxRejected) {
		return TxUnknown
	}
	return TxStatus(v)
}

func (s TxStatus) String() string {
	switch s {
	case TxPending:
		return "pending"
	case TxActive:
		return "active"
	case TxCompleted:
		return "completed"
	case TxRejected:
		return "rejected"
	}
	return "unknown"
}

// Terminal reports whether no transition exists out of the status.
func (s TxStatus) Terminal() bool {
	return s == TxCompleted || s == TxRejected
}

// ApprovalStatus moves Pending -> Approved or Pending -> Rejected, exactly once.
type ApprovalStatus uint8

const (
	ApprovalPending ApprovalStatus = iota
	ApprovalApproved
	ApprovalRejected
	ApprovalUnknown
)

func ApprovalStatusFromInt(v int) ApprovalStatus {
	if v < 0 || v > int(ApprovalRejected) {
		return ApprovalUnknown
	}
	return ApprovalStatus(v)
}

func (s ApprovalStatus) String() string {
	switch s {
	case ApprovalPending:
		return "pending"
	case ApprovalApproved:
		return "approved"
	case ApprovalRejected:
		return "rejected"
	}
	return "unknown"
}

// ApprovalType classifies what an approval decides on. Only transfer
// approvals are exercised by the API surface.
type ApprovalType uint8

const (
	ApprovalTypeTransaction ApprovalType = iota
	ApprovalTypeUserRole
	ApprovalTypeSystemConfig
	ApprovalTypeUnknown
)

func (t ApprovalType) String() string {
	switch t {
	case ApprovalTypeTransaction:
		return "transaction"
	case ApprovalTypeUserRole:
		return "user_role"
	case ApprovalTypeSystemConfig:
		return "system_config"
	}
	return "unknown"
}

// User is an identity bound to one address. Exactly one user exists per
// address; users are never deleted, only deactivated.
type User struct {
	ID        uint64
	Address   string
	Name      string
	Email     string
	Role      Role
	Active    bool
	CreatedAt time.Time
}

// Transaction is a value-transfer request. ApprovalID is zero until an
// approval has been requested and refers to exactly one approval afterwards.
type Transaction struct {
	ID             uint64
	From           string
	To             string
	Amount         *big.Int
	Description    string
	Status         TxStatus
	ApprovalID     uint64
	SettlementHash string
	CreatedAt      time.Time
}

// Approval is a decision record tied to one transaction. Approver stays
// empty until the approval is decided.
type Approval struct {
	ID            uint64
	TransactionID uint64
	Requester     string
	Approver      string
	Type          ApprovalType
	Status        ApprovalStatus
	Reason        string
	Timestamp     time.Time
}

// Metrics are the aggregate counters served to the dashboard.
type Metrics struct {
	Users        int64
	Transactions int64
	Approvals    int64
}
