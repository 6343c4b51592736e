package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	portsrepo "github.com/zapfwerk/deckelkasse/internal/core/ports/repositories"
	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/dto"
)

// deckelService manages guest tabs and their ledgers. It is thin glue
// around the repository; the receipt pipeline consumes the ledger it
// maintains.
type deckelService struct {
	repo portsrepo.DeckelRepositoryFacade
}

// NewDeckelService creates the tab service.
func NewDeckelService(repo portsrepo.DeckelRepositoryFacade) portssvc.DeckelSvcFacade {
	return &deckelService{repo: repo}
}

func (s *deckelService) OpenTab(ctx context.Context, req dto.OpenTabRequest, creatorUserID string) (*domain.Deckel, error) {
	now := time.Now()
	tab := domain.Deckel{
		TabID:     uuid.NewString(),
		GuestName: req.GuestName,
		TableID:   req.TableID,
		Status:    domain.TabOpen,
		OpenedAt:  now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.repo.SaveTab(ctx, tab); err != nil {
		return nil, fmt.Errorf("failed to open tab: %w", err)
	}
	return &tab, nil
}

func (s *deckelService) AppendTransaction(ctx context.Context, tabID string, req dto.LedgerTransactionRequest, creatorUserID string) (*domain.LedgerTransaction, error) {
	tab, err := s.repo.FindTabByID(ctx, tabID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tab %s: %w", tabID, err)
	}
	if tab.Status != domain.TabOpen {
		return nil, fmt.Errorf("tab %s is settled, no further transactions allowed: %w", tabID, apperrors.ErrValidation)
	}

	now := time.Now()
	txn := dto.ToDomainLedgerTransaction(req)
	txn.TransactionID = uuid.NewString()
	txn.TabID = tabID
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}
	if err := s.repo.AppendTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to append transaction to tab %s: %w", tabID, err)
	}
	return &txn, nil
}

func (s *deckelService) GetTab(ctx context.Context, tabID string) (*domain.Deckel, error) {
	tab, err := s.repo.FindTabByID(ctx, tabID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tab %s: %w", tabID, err)
	}
	return tab, nil
}

func (s *deckelService) ListOpenTabs(ctx context.Context) ([]domain.Deckel, error) {
	tabs, err := s.repo.ListOpenTabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open tabs: %w", err)
	}
	if tabs == nil {
		return []domain.Deckel{}, nil
	}
	return tabs, nil
}

func (s *deckelService) ListTransactions(ctx context.Context, tabID string) ([]domain.LedgerTransaction, error) {
	txns, err := s.repo.ListTransactionsByTabID(ctx, tabID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for tab %s: %w", tabID, err)
	}
	if txns == nil {
		return []domain.LedgerTransaction{}, nil
	}
	return txns, nil
}
