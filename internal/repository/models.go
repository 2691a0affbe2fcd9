package repository

import "time"

// User mirrors a ledger user row. Addresses are 0x-prefixed, 20-byte hex.
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Address   string    `gorm:"size:42;uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Role      int       `gorm:"not null"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
}

// Transaction stores the amount as a string to handle large smallest-unit values.
type Transaction struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	FromAddress    string    `gorm:"size:42;not null;index"`
	ToAddress      string    `gorm:"size:42;not null;index"`
	Amount         string    `gorm:"size:100;not null"`
	Description    string    `gorm:"type:text;not null"`
	Status         int       `gorm:"not null;index"`
	ApprovalID     uint64    `gorm:"not null;default:0"`
	SettlementHash string    `gorm:"size:66"` // 0x + 64 hex chars
	CreatedAt      time.Time `gorm:"not null"`
}

// Approval rows carry a partial unique index so the database refuses a second
// pending approval for one transaction even under concurrent requests.
type Approval struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	TransactionID uint64    `gorm:"not null;index;index:uniq_pending_approval_tx,unique,where:status = 0"`
	Requester     string    `gorm:"size:42;not null"`
	Approver      string    `gorm:"size:42"`
	Type          int       `gorm:"not null"`
	Status        int       `gorm:"not null;index"`
	Reason        string    `gorm:"type:text;not null"`
	Timestamp     time.Time `gorm:"not null"`
}

// Credential is an API login bound to a ledger address.
type Credential struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Address      string `gorm:"size:42;not null;index"`
	PasswordHash string `gorm:"not null"`
}
