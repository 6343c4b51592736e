package repositories

import (
	"context"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
)

// ProfileReader defines read operations for the business profile.
type ProfileReader interface {
	// GetProfile retrieves the seller's legal identity.
	GetProfile(ctx context.Context) (*domain.BusinessProfile, error)
}

// ProfileWriter defines write operations for the business profile.
type ProfileWriter interface {
	// SaveProfile upserts the single business profile row.
	SaveProfile(ctx context.Context, profile domain.BusinessProfile) error
}

// ProfileRepositoryFacade combines the business profile interfaces.
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
