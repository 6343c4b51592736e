package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangeRefundLabel is the description the tab UI writes on a line that
// returns change to the guest. Lines with this label are paid out in cash
// but never appear on the fiscal receipt.
const ChangeRefundLabel = "Rückgeld"

// LedgerTransaction is a single line on a guest's open tab ("Deckel"), as
// supplied by the ledger source. The sign of Sum carries the meaning:
// negative is a sale or refund, zero or positive is a payment or deposit
// and is never a sale.
type LedgerTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary key (UUID)
	TabID         string          `json:"tabID"`         // FK -> Deckel.TabID
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Count         int             `json:"count"` // Units sold; 0 is treated as 1
	Sum           decimal.Decimal `json:"sum"`   // Signed amount in EUR
	IsTip         bool            `json:"isTip"`
	AuditFields
}

// IsSale reports whether the transaction qualifies for line-item
// aggregation: a negative sum that is neither a tip nor a change refund.
func (t LedgerTransaction) IsSale() bool {
	return t.Sum.IsNegative() && !t.IsTip && t.Description != ChangeRefundLabel
}
