package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time
	CreatedBy     string
	LastUpdatedAt time.Time
	LastUpdatedBy string
}

// Receipt is the persistence shape of an issued, signed receipt. Line
// items and tax summaries are stored as JSONB documents: the receipt is
// frozen after hashing, so there is nothing relational to update in them.
type Receipt struct {
	ReceiptNumber string
	ReceiptDate   string
	ReceiptTime   string
	BusinessJSON  []byte
	ItemsJSON     []byte
	TotalNet      decimal.Decimal
	TotalTax      decimal.Decimal
	TotalGross    decimal.Decimal
	SummariesJSON []byte
	PaymentJSON   []byte
	Currency      string
	GuestName     string
	TableID       string
	HashAlgorithm string
	Hash          string
	IssuedBy      string
	IssuedAt      time.Time
}

// Deckel is the persistence shape of a guest tab.
type Deckel struct {
	TabID         string
	GuestName     string
	TableID       string
	Status        string
	OpenedAt      time.Time
	SettledAt     *time.Time
	ReceiptNumber *string
	AuditFields
}

// LedgerTransaction is the persistence shape of one tab ledger line.
type LedgerTransaction struct {
	TransactionID string
	TabID         string
	Date          time.Time
	Description   string
	Count         int
	Sum           decimal.Decimal
	IsTip         bool
	AuditFields
}

// BusinessProfile is the persistence shape of the single seller identity row.
type BusinessProfile struct {
	BusinessName string
	Address      string
	TaxNumber    *string
	VATID        *string
	Phone        *string
	Email        *string
	LogoPath     *string
	AuditFields
}

// User is the persistence shape of a staff member.
type User struct {
	UserID       string
	Username     string
	Name         string
	PasswordHash string
	AuditFields
}
