package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/zapfwerk/deckelkasse/internal/core/ports/repositories"
)

// PgxTaxClassRepository persists the product description -> VAT rate mapping.
type PgxTaxClassRepository struct {
	BaseRepository
}

func newPgxTaxClassRepository(pool *pgxpool.Pool) portsrepo.TaxClassRepositoryFacade {
	return &PgxTaxClassRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaxClassRepositoryFacade = (*PgxTaxClassRepository)(nil)

// GetTaxRates retrieves the full classification table.
func (r *PgxTaxClassRepository) GetTaxRates(ctx context.Context) (map[string]int, error) {
	query := `SELECT description, rate FROM tax_classes;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax classes: %w", err)
	}
	defer rows.Close()

	rates := make(map[string]int)
	for rows.Next() {
		var description string
		var rate int
		if err := rows.Scan(&description, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan tax class row: %w", err)
		}
		rates[description] = rate
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating tax class rows: %w", err)
	}
	return rates, nil
}

// SaveTaxRate upserts the VAT rate for one product description.
func (r *PgxTaxClassRepository) SaveTaxRate(ctx context.Context, description string, rate int) error {
	query := `
		INSERT INTO tax_classes (description, rate)
		VALUES ($1, $2)
		ON CONFLICT (description) DO UPDATE SET rate = EXCLUDED.rate;
	`
	_, err := r.Pool.Exec(ctx, query, description, rate)
	if err != nil {
		return fmt.Errorf("failed to save tax class %q: %w", description, err)
	}
	return nil
}
