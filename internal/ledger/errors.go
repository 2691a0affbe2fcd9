package ledger

import "errors"

var ErrUnauthorized error = errors.New("caller is not authorized")
var ErrDuplicateAddress error = errors.New("address is already registered")
var ErrUserNotFound error = errors.New("user not found")
var ErrTransactionNotFound error = errors.New("transaction not found")
var ErrApprovalNotFound error = errors.New("approval not found")
var ErrInvalidRecipient error = errors.New("recipient is not a registered user")
var ErrInvalidAmount error = errors.New("amount must be positive")
var ErrNotOwner error = errors.New("caller is not the transaction sender")
var ErrInvalidState error = errors.New("entity is not in the expected state")
var ErrReasonRequired error = errors.New("reason is required")

// ErrNotFound is the storage-level sentinel the Store implementation maps
// missing records to. Operations translate it to the entity-specific error.
var ErrNotFound error = errors.New("record not found")
