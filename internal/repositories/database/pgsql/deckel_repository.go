package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	portsrepo "github.com/zapfwerk/deckelkasse/internal/core/ports/repositories"
	"github.com/zapfwerk/deckelkasse/internal/models"
	"github.com/zapfwerk/deckelkasse/internal/utils/mapping"
)

// PgxDeckelRepository persists guest tabs and their ledger lines.
type PgxDeckelRepository struct {
	BaseRepository
}

func newPgxDeckelRepository(pool *pgxpool.Pool) portsrepo.DeckelRepositoryFacade {
	return &PgxDeckelRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DeckelRepositoryFacade = (*PgxDeckelRepository)(nil)

// SaveTab persists a new tab.
func (r *PgxDeckelRepository) SaveTab(ctx context.Context, tab domain.Deckel) error {
	model := mapping.ToModelDeckel(tab)

	query := `
		INSERT INTO tabs (tab_id, guest_name, table_id, status, opened_at, settled_at, receipt_number,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.TabID,
		model.GuestName,
		model.TableID,
		model.Status,
		model.OpenedAt,
		model.SettledAt,
		model.ReceiptNumber,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("tab %s already exists: %w", model.TabID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save tab %s: %w", model.TabID, err)
	}
	return nil
}

// FindTabByID retrieves a tab by its ID.
func (r *PgxDeckelRepository) FindTabByID(ctx context.Context, tabID string) (*domain.Deckel, error) {
	query := `
		SELECT tab_id, guest_name, table_id, status, opened_at, settled_at, receipt_number,
			created_at, created_by, last_updated_at, last_updated_by
		FROM tabs WHERE tab_id = $1;
	`
	model, err := scanDeckel(r.Pool.QueryRow(ctx, query, tabID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tab %s: %w", tabID, err)
	}
	tab := mapping.ToDomainDeckel(*model)
	return &tab, nil
}

// ListOpenTabs retrieves all unsettled tabs, oldest first.
func (r *PgxDeckelRepository) ListOpenTabs(ctx context.Context) ([]domain.Deckel, error) {
	query := `
		SELECT tab_id, guest_name, table_id, status, opened_at, settled_at, receipt_number,
			created_at, created_by, last_updated_at, last_updated_by
		FROM tabs WHERE status = $1 ORDER BY opened_at;
	`
	rows, err := r.Pool.Query(ctx, query, string(domain.TabOpen))
	if err != nil {
		return nil, fmt.Errorf("failed to list open tabs: %w", err)
	}
	defer rows.Close()

	var tabs []domain.Deckel
	for rows.Next() {
		model, err := scanDeckel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tab row: %w", err)
		}
		tabs = append(tabs, mapping.ToDomainDeckel(*model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tab rows: %w", err)
	}
	return tabs, nil
}

// AppendTransaction adds one ledger line to a tab.
func (r *PgxDeckelRepository) AppendTransaction(ctx context.Context, txn domain.LedgerTransaction) error {
	model := mapping.ToModelLedgerTransaction(txn)

	query := `
		INSERT INTO tab_transactions (transaction_id, tab_id, date, description, count, sum, is_tip,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.TransactionID,
		model.TabID,
		model.Date,
		model.Description,
		model.Count,
		model.Sum,
		model.IsTip,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to append transaction to tab %s: %w", model.TabID, err)
	}
	return nil
}

// ListTransactionsByTabID retrieves a tab's ledger in insertion order.
func (r *PgxDeckelRepository) ListTransactionsByTabID(ctx context.Context, tabID string) ([]domain.LedgerTransaction, error) {
	query := `
		SELECT transaction_id, tab_id, date, description, count, sum, is_tip,
			created_at, created_by, last_updated_at, last_updated_by
		FROM tab_transactions WHERE tab_id = $1 ORDER BY created_at, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, tabID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for tab %s: %w", tabID, err)
	}
	defer rows.Close()

	var txns []domain.LedgerTransaction
	for rows.Next() {
		var model models.LedgerTransaction
		err := rows.Scan(
			&model.TransactionID,
			&model.TabID,
			&model.Date,
			&model.Description,
			&model.Count,
			&model.Sum,
			&model.IsTip,
			&model.CreatedAt,
			&model.CreatedBy,
			&model.LastUpdatedAt,
			&model.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainLedgerTransaction(model))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transaction rows: %w", err)
	}
	return txns, nil
}

// MarkSettled closes a tab and records the receipt that settled it.
func (r *PgxDeckelRepository) MarkSettled(ctx context.Context, tabID, receiptNumber string, settledAt time.Time) error {
	query := `
		UPDATE tabs
		SET status = $1, settled_at = $2, receipt_number = $3, last_updated_at = $2
		WHERE tab_id = $4 AND status = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, string(domain.TabSettled), settledAt, receiptNumber, tabID, string(domain.TabOpen))
	if err != nil {
		return fmt.Errorf("failed to settle tab %s: %w", tabID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tab %s is not open: %w", tabID, apperrors.ErrNotFound)
	}
	return nil
}

func scanDeckel(row pgx.Row) (*models.Deckel, error) {
	var model models.Deckel
	err := row.Scan(
		&model.TabID,
		&model.GuestName,
		&model.TableID,
		&model.Status,
		&model.OpenedAt,
		&model.SettledAt,
		&model.ReceiptNumber,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}
