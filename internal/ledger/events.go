package ledger

// EventKind identifies which state change an event reports.
type EventKind string

const (
	EventUserRegistered           EventKind = "user_registered"
	EventUserRoleUpdated          EventKind = "user_role_updated"
	EventTransactionCreated       EventKind = "transaction_created"
	EventApprovalRequested        EventKind = "approval_requested"
	EventApprovalProcessed        EventKind = "approval_processed"
	EventTransactionStatusUpdated EventKind = "transaction_status_updated"
	EventSettlementConfirmed      EventKind = "settlement_confirmed"
)

// Event is the minimal delta published on a successful state change.
// Subscribers invalidate caches from it; they never reconstruct an entity
// out of the payload alone.
type Event struct {
	Kind EventKind

	UserID  uint64
	Address string
	Name    string
	Role    Role

	TransactionID uint64
	From          string
	To            string
	Amount        string
	TxStatus      TxStatus

	ApprovalID     uint64
	Requester      string
	Approver       string
	ApprovalStatus ApprovalStatus

	SettlementHash string
}
