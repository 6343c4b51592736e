package mapping

import (
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/models"
)

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToModelProfile converts the domain business profile to its persistence shape.
func ToModelProfile(d domain.BusinessProfile) models.BusinessProfile {
	return models.BusinessProfile{
		BusinessName: d.BusinessName,
		Address:      d.Address,
		TaxNumber:    strPtr(d.TaxNumber),
		VATID:        strPtr(d.VATID),
		Phone:        strPtr(d.Phone),
		Email:        strPtr(d.Email),
		LogoPath:     strPtr(d.LogoPath),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProfile converts the stored business profile to the domain shape.
func ToDomainProfile(m models.BusinessProfile) domain.BusinessProfile {
	return domain.BusinessProfile{
		BusinessName: m.BusinessName,
		Address:      m.Address,
		TaxNumber:    strVal(m.TaxNumber),
		VATID:        strVal(m.VATID),
		Phone:        strVal(m.Phone),
		Email:        strVal(m.Email),
		LogoPath:     strVal(m.LogoPath),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelUser converts a domain user to its persistence shape.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a stored user to the domain shape.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
