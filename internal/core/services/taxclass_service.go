package services

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	portsrepo "github.com/zapfwerk/deckelkasse/internal/core/ports/repositories"
	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/dto"
)

const taxRatesCacheKey = "taxRates"

// taxClassService serves the product -> VAT rate mapping. The mapping is
// read on every receipt generation, so it sits behind a short-lived
// in-memory cache; writes invalidate the cache immediately.
type taxClassService struct {
	repo  portsrepo.TaxClassRepositoryFacade
	cache *gocache.Cache
}

// NewTaxClassService creates the tax classification service.
func NewTaxClassService(repo portsrepo.TaxClassRepositoryFacade) portssvc.TaxClassSvcFacade {
	return &taxClassService{
		repo:  repo,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *taxClassService) GetTaxRates(ctx context.Context) (map[string]int, error) {
	if cached, ok := s.cache.Get(taxRatesCacheKey); ok {
		return cached.(map[string]int), nil
	}

	rates, err := s.repo.GetTaxRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax rates: %w", err)
	}
	if rates == nil {
		rates = map[string]int{}
	}
	s.cache.Set(taxRatesCacheKey, rates, gocache.DefaultExpiration)
	return rates, nil
}

func (s *taxClassService) SetTaxRate(ctx context.Context, req dto.SetTaxRateRequest, updaterUserID string) error {
	if !domain.ValidTaxRate(req.Rate) {
		return fmt.Errorf("tax rate %d is not one of %v: %w", req.Rate, domain.ValidTaxRates, apperrors.ErrValidation)
	}
	if err := s.repo.SaveTaxRate(ctx, req.Description, req.Rate); err != nil {
		return fmt.Errorf("failed to save tax rate for %q: %w", req.Description, err)
	}
	s.cache.Delete(taxRatesCacheKey)
	return nil
}
