package domain

import "github.com/shopspring/decimal"

// HashAlgorithm tags which integrity provider fingerprinted a receipt.
type HashAlgorithm string

const (
	HashSHA256  HashAlgorithm = "SHA-256"
	HashRolling HashAlgorithm = "ROLLING" // non-cryptographic fallback
)

// DraftReceipt is a fully assembled guest receipt ("GastBeleg") before its
// integrity hash has been computed. It is the only mutable stage of a
// receipt's life; once hashed it becomes a SignedReceipt and is frozen.
type DraftReceipt struct {
	ReceiptNumber string            `json:"receiptNumber"` // RCP-YYYY-NNNNN
	ReceiptDate   string            `json:"receiptDate"`   // ISO date, 2006-01-02
	ReceiptTime   string            `json:"receiptTime"`   // localized 15:04:05
	Business      BusinessProfile   `json:"business"`      // snapshot at issue time
	Items         []ReceiptLineItem `json:"items"`
	TotalNet      decimal.Decimal   `json:"totalNet"`
	TotalTax      decimal.Decimal   `json:"totalTax"`
	TotalGross    decimal.Decimal   `json:"totalGross"`
	TaxSummaries  []TaxSummary      `json:"taxSummaries"`
	Payment       PaymentDetails    `json:"payment"`
	Currency      string            `json:"currency"` // always EUR
	GuestName     string            `json:"guestName,omitempty"`
	TableID       string            `json:"tableID,omitempty"`
}

// SignedReceipt is a hashed, frozen GastBeleg. No mutating operations are
// exposed on it; any later change to a hashed field invalidates the hash
// and is caught by re-validation before the document reaches a sink.
type SignedReceipt struct {
	DraftReceipt
	HashAlgorithm HashAlgorithm `json:"hashAlgorithm"`
	Hash          string        `json:"hash"` // 64 lowercase hex chars
	Immutable     bool          `json:"immutable"`
}
