package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/zapfwerk/deckelkasse/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgx-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DeckelRepo:   newPgxDeckelRepository(pool),
		ReceiptRepo:  newPgxReceiptRepository(pool),
		ProfileRepo:  newPgxProfileRepository(pool),
		TaxClassRepo: newPgxTaxClassRepository(pool),
		UserRepo:     newPgxUserRepository(pool),
	}
}
