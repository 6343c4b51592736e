package services

import (
	"context"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/dto"
)

// DeckelReaderSvc defines read operations for guest tabs.
type DeckelReaderSvc interface {
	// GetTab retrieves a tab by ID.
	GetTab(ctx context.Context, tabID string) (*domain.Deckel, error)

	// ListOpenTabs retrieves all open tabs.
	ListOpenTabs(ctx context.Context) ([]domain.Deckel, error)

	// ListTransactions retrieves a tab's ledger in insertion order.
	ListTransactions(ctx context.Context, tabID string) ([]domain.LedgerTransaction, error)
}

// DeckelWriterSvc defines write operations for guest tabs.
type DeckelWriterSvc interface {
	// OpenTab opens a new tab for a guest.
	OpenTab(ctx context.Context, req dto.OpenTabRequest, creatorUserID string) (*domain.Deckel, error)

	// AppendTransaction adds one ledger line to an open tab.
	AppendTransaction(ctx context.Context, tabID string, req dto.LedgerTransactionRequest, creatorUserID string) (*domain.LedgerTransaction, error)
}

// DeckelSvcFacade combines all tab service interfaces.
type DeckelSvcFacade interface {
	DeckelReaderSvc
	DeckelWriterSvc
}
