package services

import (
	"context"
	"fmt"
	"time"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	portsrepo "github.com/zapfwerk/deckelkasse/internal/core/ports/repositories"
	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/dto"
)

// profileService manages the single business profile row. The receipt
// pipeline snapshots this profile into every issued receipt.
type profileService struct {
	repo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates the business profile service.
func NewProfileService(repo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{repo: repo}
}

func (s *profileService) GetProfile(ctx context.Context) (*domain.BusinessProfile, error) {
	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get business profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, updaterUserID string) (*domain.BusinessProfile, error) {
	now := time.Now()
	profile := dto.ToDomainProfile(req)
	profile.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     updaterUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: updaterUserID,
	}
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save business profile: %w", err)
	}
	return &profile, nil
}
