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

// PgxReceiptRepository archives issued receipts. The archive is
// append-only: receipts are frozen after hashing, so there is no update
// or delete path.
type PgxReceiptRepository struct {
	BaseRepository
}

func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptColumns = `
	receipt_number, receipt_date, receipt_time, business, items,
	total_net, total_tax, total_gross, tax_summaries, payment,
	currency, guest_name, table_id, hash_algorithm, hash, issued_by, issued_at`

// SaveReceipt inserts a validated receipt into the archive.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.SignedReceipt, issuerUserID string) error {
	model, err := mapping.ToModelReceipt(receipt, issuerUserID, time.Now())
	if err != nil {
		return err
	}

	query := `
		INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = r.Pool.Exec(ctx, query,
		model.ReceiptNumber,
		model.ReceiptDate,
		model.ReceiptTime,
		model.BusinessJSON,
		model.ItemsJSON,
		model.TotalNet,
		model.TotalTax,
		model.TotalGross,
		model.SummariesJSON,
		model.PaymentJSON,
		model.Currency,
		model.GuestName,
		model.TableID,
		model.HashAlgorithm,
		model.Hash,
		model.IssuedBy,
		model.IssuedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("receipt number %s already issued: %w", model.ReceiptNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save receipt %s: %w", model.ReceiptNumber, err)
	}
	return nil
}

// FindReceiptByNumber retrieves one archived receipt.
func (r *PgxReceiptRepository) FindReceiptByNumber(ctx context.Context, receiptNumber string) (*domain.SignedReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE receipt_number = $1;`

	model, err := scanReceipt(r.Pool.QueryRow(ctx, query, receiptNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receipt %s: %w", receiptNumber, err)
	}

	receipt, err := mapping.ToDomainReceipt(*model)
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// ListReceipts retrieves archived receipts, newest first.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context, limit int) ([]domain.SignedReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts ORDER BY issued_at DESC LIMIT $1;`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []domain.SignedReceipt
	for rows.Next() {
		model, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan receipt row: %w", err)
		}
		receipt, err := mapping.ToDomainReceipt(*model)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipt rows: %w", err)
	}
	return receipts, nil
}

func scanReceipt(row pgx.Row) (*models.Receipt, error) {
	var model models.Receipt
	err := row.Scan(
		&model.ReceiptNumber,
		&model.ReceiptDate,
		&model.ReceiptTime,
		&model.BusinessJSON,
		&model.ItemsJSON,
		&model.TotalNet,
		&model.TotalTax,
		&model.TotalGross,
		&model.SummariesJSON,
		&model.PaymentJSON,
		&model.Currency,
		&model.GuestName,
		&model.TableID,
		&model.HashAlgorithm,
		&model.Hash,
		&model.IssuedBy,
		&model.IssuedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}
