package services

import (
	"context"
	"fmt"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/core/integrity"
	portsrepo "github.com/zapfwerk/deckelkasse/internal/core/ports/repositories"
	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/core/receipt"
	"github.com/zapfwerk/deckelkasse/internal/dto"
	"github.com/zapfwerk/deckelkasse/internal/utils"
)

const (
	defaultReceiptListLimit = 50
	maxReceiptListLimit     = 500
)

// receiptService runs the receipt pipeline: aggregate line items,
// summarize taxes, reconcile the payment, assemble the draft, hash it,
// validate it, and only then archive it. Each call owns its draft
// exclusively; nothing mutable is shared between in-flight generations.
type receiptService struct {
	profileRepo portsrepo.ProfileRepositoryFacade
	receiptRepo portsrepo.ReceiptRepositoryFacade
	deckelRepo  portsrepo.DeckelRepositoryFacade
	taxClasses  portssvc.TaxClassSvcFacade
	hasher      integrity.Hasher
	clock       receipt.Clock
	numbers     receipt.NumberSource
}

// ReceiptServiceOption customizes a receiptService, mainly for tests.
type ReceiptServiceOption func(*receiptService)

// WithClock overrides the wall clock used for receipt date and time.
func WithClock(c receipt.Clock) ReceiptServiceOption {
	return func(s *receiptService) { s.clock = c }
}

// WithNumberSource overrides the random source for receipt numbers.
func WithNumberSource(n receipt.NumberSource) ReceiptServiceOption {
	return func(s *receiptService) { s.numbers = n }
}

// NewReceiptService creates the receipt pipeline service. The hash
// provider is chosen once at process start and injected here; the
// pipeline never queries the environment itself.
func NewReceiptService(
	profileRepo portsrepo.ProfileRepositoryFacade,
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	deckelRepo portsrepo.DeckelRepositoryFacade,
	taxClasses portssvc.TaxClassSvcFacade,
	hasher integrity.Hasher,
	opts ...ReceiptServiceOption,
) portssvc.ReceiptSvcFacade {
	s := &receiptService{
		profileRepo: profileRepo,
		receiptRepo: receiptRepo,
		deckelRepo:  deckelRepo,
		taxClasses:  taxClasses,
		hasher:      hasher,
		clock:       receipt.SystemClock{},
		numbers:     utils.SecureNumberSource{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *receiptService) GenerateReceipt(ctx context.Context, req dto.GenerateReceiptRequest, issuerUserID string) (*domain.SignedReceipt, error) {
	txns := make([]domain.LedgerTransaction, len(req.Transactions))
	for i, t := range req.Transactions {
		txns[i] = dto.ToDomainLedgerTransaction(t)
	}

	signed, err := s.runPipeline(ctx, txns, req.Payment, req.GuestName, req.TableID)
	if err != nil {
		return nil, err
	}

	if err := s.receiptRepo.SaveReceipt(ctx, *signed, issuerUserID); err != nil {
		return nil, fmt.Errorf("failed to archive receipt %s: %w", signed.ReceiptNumber, err)
	}
	return signed, nil
}

func (s *receiptService) SettleTab(ctx context.Context, tabID string, req dto.SettleTabRequest, issuerUserID string) (*domain.SignedReceipt, error) {
	tab, err := s.deckelRepo.FindTabByID(ctx, tabID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tab %s: %w", tabID, err)
	}
	if tab.Status != domain.TabOpen {
		return nil, fmt.Errorf("tab %s is already settled: %w", tabID, apperrors.ErrValidation)
	}

	txns, err := s.deckelRepo.ListTransactionsByTabID(ctx, tabID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for tab %s: %w", tabID, err)
	}

	signed, err := s.runPipeline(ctx, txns, req.Payment, tab.GuestName, tab.TableID)
	if err != nil {
		return nil, err
	}

	if err := s.receiptRepo.SaveReceipt(ctx, *signed, issuerUserID); err != nil {
		return nil, fmt.Errorf("failed to archive receipt %s: %w", signed.ReceiptNumber, err)
	}
	if err := s.deckelRepo.MarkSettled(ctx, tabID, signed.ReceiptNumber, s.clock.Now()); err != nil {
		return nil, fmt.Errorf("failed to settle tab %s: %w", tabID, err)
	}
	return signed, nil
}

// runPipeline executes stages 1-6 over an owned transaction slice. The
// draft never leaves this method unhashed or unvalidated.
func (s *receiptService) runPipeline(ctx context.Context, txns []domain.LedgerTransaction, payment dto.PaymentRequest, guestName, tableID string) (*domain.SignedReceipt, error) {
	taxRates, err := s.taxClasses.GetTaxRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax classification: %w", err)
	}

	items, err := receipt.AggregateLineItems(txns, taxRates)
	if err != nil {
		return nil, err
	}
	summaries := receipt.SummarizeTaxes(items)
	_, _, gross := receipt.ComputeTotals(items)
	details := receipt.ReconcilePayment(dto.ToPipelinePaymentRequest(payment), gross)

	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load business profile: %w", err)
	}

	draft := receipt.AssembleReceipt(receipt.AssemblerInput{
		Profile:   *profile,
		Items:     items,
		Summaries: summaries,
		Payment:   details,
		GuestName: guestName,
		TableID:   tableID,
	}, s.clock, s.numbers)

	signed := domain.SignedReceipt{
		DraftReceipt:  draft,
		HashAlgorithm: s.hasher.Algorithm(),
		Hash:          s.hasher.Fingerprint(draft),
		Immutable:     true,
	}

	if err := receipt.MustValidate(signed, s.hasher.Algorithm()); err != nil {
		return nil, err
	}
	return &signed, nil
}

func (s *receiptService) GetReceiptByNumber(ctx context.Context, receiptNumber string) (*domain.SignedReceipt, error) {
	r, err := s.receiptRepo.FindReceiptByNumber(ctx, receiptNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt %s: %w", receiptNumber, err)
	}
	return r, nil
}

func (s *receiptService) ListReceipts(ctx context.Context, limit int) ([]domain.SignedReceipt, error) {
	if limit <= 0 || limit > maxReceiptListLimit {
		limit = defaultReceiptListLimit
	}
	receipts, err := s.receiptRepo.ListReceipts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return receipts, nil
}

func (s *receiptService) VerifyReceipt(ctx context.Context, receiptNumber string) (*dto.VerifyReceiptResponse, error) {
	stored, err := s.receiptRepo.FindReceiptByNumber(ctx, receiptNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt %s: %w", receiptNumber, err)
	}
	return &dto.VerifyReceiptResponse{
		ReceiptNumber: receiptNumber,
		HashValid:     s.hasher.Verify(*stored),
		Validation:    receipt.ValidateReceipt(*stored, s.hasher.Algorithm()),
	}, nil
}
