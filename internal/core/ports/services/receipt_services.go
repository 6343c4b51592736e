package services

import (
	"context"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/dto"
)

// ReceiptGeneratorSvc runs the receipt pipeline end to end: aggregate,
// summarize, reconcile, assemble, hash, validate, archive.
type ReceiptGeneratorSvc interface {
	// GenerateReceipt issues a receipt over explicitly supplied transactions.
	GenerateReceipt(ctx context.Context, req dto.GenerateReceiptRequest, issuerUserID string) (*domain.SignedReceipt, error)

	// SettleTab issues a receipt over a stored tab's ledger and closes the tab.
	SettleTab(ctx context.Context, tabID string, req dto.SettleTabRequest, issuerUserID string) (*domain.SignedReceipt, error)
}

// ReceiptReaderSvc reads and re-verifies archived receipts.
type ReceiptReaderSvc interface {
	// GetReceiptByNumber retrieves an issued receipt from the archive.
	GetReceiptByNumber(ctx context.Context, receiptNumber string) (*domain.SignedReceipt, error)

	// ListReceipts retrieves the most recently issued receipts.
	ListReceipts(ctx context.Context, limit int) ([]domain.SignedReceipt, error)

	// VerifyReceipt recomputes the hash and revalidates a stored receipt.
	VerifyReceipt(ctx context.Context, receiptNumber string) (*dto.VerifyReceiptResponse, error)
}

// ReceiptSvcFacade combines all receipt service interfaces.
type ReceiptSvcFacade interface {
	ReceiptGeneratorSvc
	ReceiptReaderSvc
}
