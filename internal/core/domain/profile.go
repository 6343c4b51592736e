package domain

// BusinessProfile is the seller's legal identity printed on every receipt.
// Either TaxNumber or VATID must be present for a receipt to validate.
type BusinessProfile struct {
	BusinessName string `json:"businessName"`
	Address      string `json:"address"`
	TaxNumber    string `json:"taxNumber,omitempty"`
	VATID        string `json:"vatId,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	LogoPath     string `json:"logoPath,omitempty"`
	AuditFields
}
