package repositories

import (
	"context"
	"time"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
)

// DeckelReader defines read operations for guest tabs and their ledgers.
type DeckelReader interface {
	// FindTabByID retrieves a tab by its ID.
	FindTabByID(ctx context.Context, tabID string) (*domain.Deckel, error)

	// ListOpenTabs retrieves all tabs that have not been settled yet.
	ListOpenTabs(ctx context.Context) ([]domain.Deckel, error)

	// ListTransactionsByTabID retrieves a tab's ledger in insertion order.
	ListTransactionsByTabID(ctx context.Context, tabID string) ([]domain.LedgerTransaction, error)
}

// DeckelWriter defines write operations for guest tabs.
type DeckelWriter interface {
	// SaveTab persists a new tab.
	SaveTab(ctx context.Context, tab domain.Deckel) error

	// AppendTransaction adds one ledger line to an open tab.
	AppendTransaction(ctx context.Context, txn domain.LedgerTransaction) error

	// MarkSettled closes a tab and records the receipt that settled it.
	MarkSettled(ctx context.Context, tabID, receiptNumber string, settledAt time.Time) error
}

// DeckelRepositoryFacade combines all tab-related repository interfaces.
type DeckelRepositoryFacade interface {
	DeckelReader
	DeckelWriter
}
