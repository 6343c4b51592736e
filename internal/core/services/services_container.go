package services

import (
	"github.com/zapfwerk/deckelkasse/internal/core/integrity"
	portsrepo "github.com/zapfwerk/deckelkasse/internal/core/ports/repositories"
	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The hash provider has already been selected
// at process start and is threaded into the receipt pipeline here.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, hasher integrity.Hasher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Tax classification first since the receipt pipeline reads it.
	container.TaxClass = NewTaxClassService(repos.TaxClassRepo)

	container.Receipt = NewReceiptService(
		repos.ProfileRepo,
		repos.ReceiptRepo,
		repos.DeckelRepo,
		container.TaxClass,
		hasher,
	)

	container.Deckel = NewDeckelService(repos.DeckelRepo)
	container.Profile = NewProfileService(repos.ProfileRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.ReceiptSvcFacade  = (*receiptService)(nil)
	_ portssvc.DeckelSvcFacade   = (*deckelService)(nil)
	_ portssvc.ProfileSvcFacade  = (*profileService)(nil)
	_ portssvc.TaxClassSvcFacade = (*taxClassService)(nil)
	_ portssvc.UserSvcFacade     = (*userService)(nil)
)
