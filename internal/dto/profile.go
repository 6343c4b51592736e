package dto

import "github.com/zapfwerk/deckelkasse/internal/core/domain"

// UpdateProfileRequest replaces the seller's legal identity.
type UpdateProfileRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	Address      string `json:"address" binding:"required"`
	TaxNumber    string `json:"taxNumber,omitempty"`
	VATID        string `json:"vatId,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty" binding:"omitempty,email"`
	LogoPath     string `json:"logoPath,omitempty"`
}

// ProfileResponse is the seller identity as printed on receipts.
type ProfileResponse struct {
	BusinessName string `json:"businessName"`
	Address      string `json:"address"`
	TaxNumber    string `json:"taxNumber,omitempty"`
	VATID        string `json:"vatId,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	LogoPath     string `json:"logoPath,omitempty"`
}

// ToProfileResponse converts a domain profile to its response DTO.
func ToProfileResponse(p *domain.BusinessProfile) ProfileResponse {
	return ProfileResponse{
		BusinessName: p.BusinessName,
		Address:      p.Address,
		TaxNumber:    p.TaxNumber,
		VATID:        p.VATID,
		Phone:        p.Phone,
		Email:        p.Email,
		LogoPath:     p.LogoPath,
	}
}

// ToDomainProfile converts an update request to the domain shape.
func ToDomainProfile(req UpdateProfileRequest) domain.BusinessProfile {
	return domain.BusinessProfile{
		BusinessName: req.BusinessName,
		Address:      req.Address,
		TaxNumber:    req.TaxNumber,
		VATID:        req.VATID,
		Phone:        req.Phone,
		Email:        req.Email,
		LogoPath:     req.LogoPath,
	}
}
