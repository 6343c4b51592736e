package mapping

import (
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/models"
)

// ToModelDeckel converts a domain tab to its persistence shape.
func ToModelDeckel(d domain.Deckel) models.Deckel {
	var receiptNumber *string
	if d.ReceiptNumber != "" {
		receiptNumber = &d.ReceiptNumber
	}
	return models.Deckel{
		TabID:         d.TabID,
		GuestName:     d.GuestName,
		TableID:       d.TableID,
		Status:        string(d.Status),
		OpenedAt:      d.OpenedAt,
		SettledAt:     d.SettledAt,
		ReceiptNumber: receiptNumber,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDeckel converts a stored tab to the domain shape.
func ToDomainDeckel(m models.Deckel) domain.Deckel {
	receiptNumber := ""
	if m.ReceiptNumber != nil {
		receiptNumber = *m.ReceiptNumber
	}
	return domain.Deckel{
		TabID:         m.TabID,
		GuestName:     m.GuestName,
		TableID:       m.TableID,
		Status:        domain.TabStatus(m.Status),
		OpenedAt:      m.OpenedAt,
		SettledAt:     m.SettledAt,
		ReceiptNumber: receiptNumber,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLedgerTransaction converts a domain ledger line to its persistence shape.
func ToModelLedgerTransaction(d domain.LedgerTransaction) models.LedgerTransaction {
	return models.LedgerTransaction{
		TransactionID: d.TransactionID,
		TabID:         d.TabID,
		Date:          d.Date,
		Description:   d.Description,
		Count:         d.Count,
		Sum:           d.Sum,
		IsTip:         d.IsTip,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerTransaction converts a stored ledger line to the domain shape.
func ToDomainLedgerTransaction(m models.LedgerTransaction) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		TransactionID: m.TransactionID,
		TabID:         m.TabID,
		Date:          m.Date,
		Description:   m.Description,
		Count:         m.Count,
		Sum:           m.Sum,
		IsTip:         m.IsTip,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
