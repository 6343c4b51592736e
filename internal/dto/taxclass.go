package dto

// SetTaxRateRequest upserts the VAT classification for one product.
type SetTaxRateRequest struct {
	Description string `json:"description" binding:"required"`
	Rate        int    `json:"rate" binding:"oneof=0 7 19"`
}

// TaxClassesResponse is the full description -> VAT percentage mapping.
type TaxClassesResponse struct {
	Rates map[string]int `json:"rates"`
}
