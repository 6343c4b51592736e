package domain

import "github.com/shopspring/decimal"

// ValidTaxRates is the closed set of VAT percentages a line item may carry.
var ValidTaxRates = []int{0, 7, 19}

// DefaultTaxRate applies to any product the tax classification does not know.
const DefaultTaxRate = 19

// Currency is fixed; the tab ledger and all receipts are EUR only.
const Currency = "EUR"

// ReceiptLineItem is one aggregated, taxed row on a receipt, derived from
// one or more same-description sale transactions.
//
// Invariants, each rounded to the cent:
//
//	LineTotalNet   == round2(Quantity × UnitPriceNet)
//	TaxAmount      == round2(LineTotalNet × TaxRate/100)
//	LineTotalGross == round2(LineTotalNet + TaxAmount)
type ReceiptLineItem struct {
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	UnitPriceNet   decimal.Decimal `json:"unitPriceNet"`
	TaxRate        int             `json:"taxRate"`
	LineTotalNet   decimal.Decimal `json:"lineTotalNet"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	LineTotalGross decimal.Decimal `json:"lineTotalGross"`
}

// TaxSummary rolls up all line items of one tax rate, as required on
// VAT-compliant receipts.
type TaxSummary struct {
	TaxRate    int             `json:"taxRate"`
	NetTotal   decimal.Decimal `json:"netTotal"`
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	GrossTotal decimal.Decimal `json:"grossTotal"`
}

// ValidTaxRate reports whether rate is one of the supported VAT percentages.
func ValidTaxRate(rate int) bool {
	for _, r := range ValidTaxRates {
		if rate == r {
			return true
		}
	}
	return false
}
