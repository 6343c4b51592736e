package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	portsrepo "github.com/zapfwerk/deckelkasse/internal/core/ports/repositories"
	"github.com/zapfwerk/deckelkasse/internal/models"
	"github.com/zapfwerk/deckelkasse/internal/utils/mapping"
)

// PgxProfileRepository persists the single business profile row. The
// table is keyed on a constant id so an upsert always replaces the one row.
type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

// SaveProfile upserts the business profile.
func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.BusinessProfile) error {
	model := mapping.ToModelProfile(profile)

	query := `
		INSERT INTO business_profile (id, business_name, address, tax_number, vat_id, phone, email, logo_path,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			address = EXCLUDED.address,
			tax_number = EXCLUDED.tax_number,
			vat_id = EXCLUDED.vat_id,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			logo_path = EXCLUDED.logo_path,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		model.BusinessName,
		model.Address,
		model.TaxNumber,
		model.VATID,
		model.Phone,
		model.Email,
		model.LogoPath,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save business profile: %w", err)
	}
	return nil
}

// GetProfile retrieves the business profile.
func (r *PgxProfileRepository) GetProfile(ctx context.Context) (*domain.BusinessProfile, error) {
	query := `
		SELECT business_name, address, tax_number, vat_id, phone, email, logo_path,
			created_at, created_by, last_updated_at, last_updated_by
		FROM business_profile WHERE id = 1;
	`
	var model models.BusinessProfile
	err := r.Pool.QueryRow(ctx, query).Scan(
		&model.BusinessName,
		&model.Address,
		&model.TaxNumber,
		&model.VATID,
		&model.Phone,
		&model.Email,
		&model.LogoPath,
		&model.CreatedAt,
		&model.CreatedBy,
		&model.LastUpdatedAt,
		&model.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business profile: %w", err)
	}

	profile := mapping.ToDomainProfile(model)
	return &profile, nil
}
