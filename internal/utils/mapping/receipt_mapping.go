package mapping

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/models"
)

// ToModelReceipt converts a signed receipt to its persistence shape,
// serializing the frozen sub-documents to JSON.
func ToModelReceipt(r domain.SignedReceipt, issuerUserID string, issuedAt time.Time) (models.Receipt, error) {
	businessJSON, err := json.Marshal(r.Business)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("failed to marshal business profile: %w", err)
	}
	itemsJSON, err := json.Marshal(r.Items)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("failed to marshal line items: %w", err)
	}
	summariesJSON, err := json.Marshal(r.TaxSummaries)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("failed to marshal tax summaries: %w", err)
	}
	paymentJSON, err := json.Marshal(r.Payment)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("failed to marshal payment details: %w", err)
	}

	return models.Receipt{
		ReceiptNumber: r.ReceiptNumber,
		ReceiptDate:   r.ReceiptDate,
		ReceiptTime:   r.ReceiptTime,
		BusinessJSON:  businessJSON,
		ItemsJSON:     itemsJSON,
		TotalNet:      r.TotalNet,
		TotalTax:      r.TotalTax,
		TotalGross:    r.TotalGross,
		SummariesJSON: summariesJSON,
		PaymentJSON:   paymentJSON,
		Currency:      r.Currency,
		GuestName:     r.GuestName,
		TableID:       r.TableID,
		HashAlgorithm: string(r.HashAlgorithm),
		Hash:          r.Hash,
		IssuedBy:      issuerUserID,
		IssuedAt:      issuedAt,
	}, nil
}

// ToDomainReceipt converts a stored receipt back to the domain shape.
func ToDomainReceipt(m models.Receipt) (domain.SignedReceipt, error) {
	var business domain.BusinessProfile
	if err := json.Unmarshal(m.BusinessJSON, &business); err != nil {
		return domain.SignedReceipt{}, fmt.Errorf("failed to unmarshal business profile: %w", err)
	}
	var items []domain.ReceiptLineItem
	if err := json.Unmarshal(m.ItemsJSON, &items); err != nil {
		return domain.SignedReceipt{}, fmt.Errorf("failed to unmarshal line items: %w", err)
	}
	var summaries []domain.TaxSummary
	if err := json.Unmarshal(m.SummariesJSON, &summaries); err != nil {
		return domain.SignedReceipt{}, fmt.Errorf("failed to unmarshal tax summaries: %w", err)
	}
	var payment domain.PaymentDetails
	if err := json.Unmarshal(m.PaymentJSON, &payment); err != nil {
		return domain.SignedReceipt{}, fmt.Errorf("failed to unmarshal payment details: %w", err)
	}

	return domain.SignedReceipt{
		DraftReceipt: domain.DraftReceipt{
			ReceiptNumber: m.ReceiptNumber,
			ReceiptDate:   m.ReceiptDate,
			ReceiptTime:   m.ReceiptTime,
			Business:      business,
			Items:         items,
			TotalNet:      m.TotalNet,
			TotalTax:      m.TotalTax,
			TotalGross:    m.TotalGross,
			TaxSummaries:  summaries,
			Payment:       payment,
			Currency:      m.Currency,
			GuestName:     m.GuestName,
			TableID:       m.TableID,
		},
		HashAlgorithm: domain.HashAlgorithm(m.HashAlgorithm),
		Hash:          m.Hash,
		Immutable:     true,
	}, nil
}
