package services

import (
	"context"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/dto"
)

// ProfileSvcFacade manages the seller's legal identity.
type ProfileSvcFacade interface {
	// GetProfile retrieves the business profile.
	GetProfile(ctx context.Context) (*domain.BusinessProfile, error)

	// UpdateProfile replaces the business profile.
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, updaterUserID string) (*domain.BusinessProfile, error)
}

// TaxClassSvcFacade manages the product tax classification.
type TaxClassSvcFacade interface {
	// GetTaxRates retrieves the description -> VAT percentage mapping.
	GetTaxRates(ctx context.Context) (map[string]int, error)

	// SetTaxRate upserts the classification for one product description.
	SetTaxRate(ctx context.Context, req dto.SetTaxRateRequest, updaterUserID string) error
}

// UserSvcFacade manages staff users and authentication.
type UserSvcFacade interface {
	// CreateUser registers a new staff member.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)

	// GetUserByID retrieves a staff member.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate checks credentials and returns the matching user.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenSvc issues access tokens for authenticated staff.
type TokenSvc interface {
	// GenerateAccessToken signs a JWT for the given user.
	GenerateAccessToken(userID string) (token string, expiresInSeconds int64, err error)
}
