package repositories

import (
	"context"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
)

// ReceiptReader defines read operations for the receipt archive.
type ReceiptReader interface {
	// FindReceiptByNumber retrieves an issued receipt.
	FindReceiptByNumber(ctx context.Context, receiptNumber string) (*domain.SignedReceipt, error)

	// ListReceipts retrieves issued receipts, newest first.
	ListReceipts(ctx context.Context, limit int) ([]domain.SignedReceipt, error)
}

// ReceiptWriter defines write operations for the receipt archive. Receipts
// are frozen after hashing, so the archive is append-only: there is no
// update or delete.
type ReceiptWriter interface {
	// SaveReceipt archives a validated receipt.
	SaveReceipt(ctx context.Context, r domain.SignedReceipt, issuerUserID string) error
}

// ReceiptRepositoryFacade combines all receipt archive interfaces.
type ReceiptRepositoryFacade interface {
	ReceiptReader
	ReceiptWriter
}
