package integrity

import (
	"encoding/json"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
)

// canonicalItem is the hashed projection of one line item. Field order and
// the fixed two-decimal rendering of amounts are the compatibility surface
// for previously issued receipts and must not change.
type canonicalItem struct {
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPriceNet   string `json:"unitPriceNet"`
	TaxRate        int    `json:"taxRate"`
	LineTotalNet   string `json:"lineTotalNet"`
	TaxAmount      string `json:"taxAmount"`
	LineTotalGross string `json:"lineTotalGross"`
}

// canonicalReceipt is the fixed, ordered subset of a receipt's fields the
// integrity hash covers. The payment is represented by its method tag
// only, not its full payload.
type canonicalReceipt struct {
	ReceiptNumber string          `json:"receiptNumber"`
	ReceiptDate   string          `json:"receiptDate"`
	ReceiptTime   string          `json:"receiptTime"`
	Items         []canonicalItem `json:"items"`
	TotalNet      string          `json:"totalNet"`
	TotalTax      string          `json:"totalTax"`
	TotalGross    string          `json:"totalGross"`
	PaymentMethod string          `json:"paymentMethod"`
}

// CanonicalEncoding renders the hashed field subset of a draft as a
// deterministic JSON document: identical canonical fields always produce
// an identical byte sequence.
func CanonicalEncoding(r domain.DraftReceipt) []byte {
	items := make([]canonicalItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = canonicalItem{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceNet:   item.UnitPriceNet.StringFixed(2),
			TaxRate:        item.TaxRate,
			LineTotalNet:   item.LineTotalNet.StringFixed(2),
			TaxAmount:      item.TaxAmount.StringFixed(2),
			LineTotalGross: item.LineTotalGross.StringFixed(2),
		}
	}
	// Marshal of a struct cannot fail and emits fields in declaration order.
	encoded, _ := json.Marshal(canonicalReceipt{
		ReceiptNumber: r.ReceiptNumber,
		ReceiptDate:   r.ReceiptDate,
		ReceiptTime:   r.ReceiptTime,
		Items:         items,
		TotalNet:      r.TotalNet.StringFixed(2),
		TotalTax:      r.TotalTax.StringFixed(2),
		TotalGross:    r.TotalGross.StringFixed(2),
		PaymentMethod: string(r.Payment.Method),
	})
	return encoded
}
