package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
)

// OpenTabRequest opens a new guest tab.
type OpenTabRequest struct {
	GuestName string `json:"guestName" binding:"required"`
	TableID   string `json:"tableID,omitempty"`
}

// TabResponse is a guest tab as returned to the till UI.
type TabResponse struct {
	TabID         string     `json:"tabID"`
	GuestName     string     `json:"guestName"`
	TableID       string     `json:"tableID,omitempty"`
	Status        string     `json:"status"`
	OpenedAt      time.Time  `json:"openedAt"`
	SettledAt     *time.Time `json:"settledAt,omitempty"`
	ReceiptNumber string     `json:"receiptNumber,omitempty"`
}

// TransactionResponse is one ledger line on a tab.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Count         int             `json:"count"`
	Sum           decimal.Decimal `json:"sum"`
	IsTip         bool            `json:"isTip"`
}

// ToTabResponse converts a domain tab to its response DTO.
func ToTabResponse(t *domain.Deckel) TabResponse {
	return TabResponse{
		TabID:         t.TabID,
		GuestName:     t.GuestName,
		TableID:       t.TableID,
		Status:        string(t.Status),
		OpenedAt:      t.OpenedAt,
		SettledAt:     t.SettledAt,
		ReceiptNumber: t.ReceiptNumber,
	}
}

// ToTransactionResponse converts a domain ledger line to its response DTO.
func ToTransactionResponse(txn *domain.LedgerTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date,
		Description:   txn.Description,
		Count:         txn.Count,
		Sum:           txn.Sum,
		IsTip:         txn.IsTip,
	}
}

// ToTransactionResponses converts a slice of ledger lines.
func ToTransactionResponses(txns []domain.LedgerTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
