package repositories

import "context"

// TaxClassReader defines read operations for the product tax classification.
type TaxClassReader interface {
	// GetTaxRates retrieves the full description -> VAT percentage mapping.
	GetTaxRates(ctx context.Context) (map[string]int, error)
}

// TaxClassWriter defines write operations for the product tax classification.
type TaxClassWriter interface {
	// SaveTaxRate upserts the VAT percentage for one product description.
	SaveTaxRate(ctx context.Context, description string, rate int) error
}

// TaxClassRepositoryFacade combines the tax classification interfaces.
type TaxClassRepositoryFacade interface {
	TaxClassReader
	TaxClassWriter
}
