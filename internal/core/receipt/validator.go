package receipt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/utils/money"
)

// Severity classifies a validation finding. Errors block the receipt from
// reaching a sink; warnings never do.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding names one offending field on a receipt.
type Finding struct {
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ValidationResult is the structured outcome of validating a receipt.
type ValidationResult struct {
	Valid    bool      `json:"valid"`
	Findings []Finding `json:"findings"`
}

var (
	maxQuantity  = 999
	maxUnitPrice = decimal.RequireFromString("99999.99")
	maxLineItems = 500
)

// ValidateReceipt independently recomputes every derived value on a fully
// assembled, hashed receipt and cross-checks it against the stored fields,
// trusting nothing at face value. Monetary comparisons use a fixed 0.01
// tolerance. expectedAlg is the hash algorithm of the provider this
// process runs with.
func ValidateReceipt(r domain.SignedReceipt, expectedAlg domain.HashAlgorithm) ValidationResult {
	var findings []Finding
	fail := func(field, format string, args ...any) {
		findings = append(findings, Finding{Field: field, Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
	}
	warn := func(field, format string, args ...any) {
		findings = append(findings, Finding{Field: field, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(r.ReceiptNumber) == "" {
		fail("receiptNumber", "receipt number is empty")
	}
	if strings.TrimSpace(r.ReceiptDate) == "" {
		fail("receiptDate", "receipt date is empty")
	}
	if strings.TrimSpace(r.Business.BusinessName) == "" {
		fail("business.businessName", "business name is empty")
	}
	if strings.TrimSpace(r.Business.Address) == "" {
		fail("business.address", "business address is empty")
	}
	if strings.TrimSpace(r.Business.TaxNumber) == "" && strings.TrimSpace(r.Business.VATID) == "" {
		fail("business.taxNumber", "neither tax number nor VAT id is present")
	}
	if r.Business.LogoPath != "" && !strings.HasPrefix(r.Business.LogoPath, "/") {
		warn("business.logoPath", "logo path %q is not absolute", r.Business.LogoPath)
	}

	if r.Currency != domain.Currency {
		fail("currency", "currency is %q, want %q", r.Currency, domain.Currency)
	}
	if r.HashAlgorithm != expectedAlg {
		fail("hashAlgorithm", "hash algorithm is %q, want %q", r.HashAlgorithm, expectedAlg)
	}
	if r.Hash == "" {
		fail("hash", "hash is empty")
	}

	if len(r.Items) == 0 {
		fail("items", "receipt has no line items")
	}
	if len(r.Items) > maxLineItems {
		fail("items", "receipt has %d line items, maximum is %d", len(r.Items), maxLineItems)
	}

	var sumNet, sumTax decimal.Decimal
	for i, item := range r.Items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }

		if strings.TrimSpace(item.Description) == "" {
			fail(field("description"), "description is empty")
		}
		if item.Quantity <= 0 || item.Quantity > maxQuantity {
			fail(field("quantity"), "quantity %d is outside (0, %d]", item.Quantity, maxQuantity)
		}
		if item.UnitPriceNet.IsNegative() || item.UnitPriceNet.GreaterThan(maxUnitPrice) {
			fail(field("unitPriceNet"), "unit price %s is outside [0, %s]", item.UnitPriceNet, maxUnitPrice)
		}
		if !domain.ValidTaxRate(item.TaxRate) {
			fail(field("taxRate"), "tax rate %d is not one of %v", item.TaxRate, domain.ValidTaxRates)
		}

		wantNet := money.Round2(decimal.NewFromInt(int64(item.Quantity)).Mul(item.UnitPriceNet))
		if !money.WithinTolerance(item.LineTotalNet, wantNet) {
			fail(field("lineTotalNet"), "line total net %s does not match quantity × unit price %s", item.LineTotalNet, wantNet)
		}
		wantTax := money.TaxFromNet(item.LineTotalNet, item.TaxRate)
		if !money.WithinTolerance(item.TaxAmount, wantTax) {
			fail(field("taxAmount"), "tax amount %s does not match %d%% of %s", item.TaxAmount, item.TaxRate, item.LineTotalNet)
		}
		wantGross := money.Round2(item.LineTotalNet.Add(item.TaxAmount))
		if !money.WithinTolerance(item.LineTotalGross, wantGross) {
			fail(field("lineTotalGross"), "line total gross %s does not match net + tax %s", item.LineTotalGross, wantGross)
		}

		sumNet = money.Round2(sumNet.Add(item.LineTotalNet))
		sumTax = money.Round2(sumTax.Add(item.TaxAmount))
	}

	if !money.WithinTolerance(r.TotalNet, sumNet) {
		fail("totalNet", "total net %s does not match sum over line items %s", r.TotalNet, sumNet)
	}
	if !money.WithinTolerance(r.TotalTax, sumTax) {
		fail("totalTax", "total tax %s does not match sum over line items %s", r.TotalTax, sumTax)
	}
	if !money.WithinTolerance(r.TotalGross, money.Round2(sumNet.Add(sumTax))) {
		fail("totalGross", "total gross %s does not match net + tax", r.TotalGross)
	}

	if len(r.TaxSummaries) == 0 {
		fail("taxSummaries", "receipt has no tax summaries")
	}
	var summaryNet, summaryTax decimal.Decimal
	for i, s := range r.TaxSummaries {
		if !domain.ValidTaxRate(s.TaxRate) {
			fail(fmt.Sprintf("taxSummaries[%d].taxRate", i), "tax rate %d is not one of %v", s.TaxRate, domain.ValidTaxRates)
		}
		summaryNet = money.Round2(summaryNet.Add(s.NetTotal))
		summaryTax = money.Round2(summaryTax.Add(s.TaxAmount))
	}
	if len(r.TaxSummaries) > 0 {
		if !money.WithinTolerance(summaryNet, r.TotalNet) {
			fail("taxSummaries", "summed net %s does not match total net %s", summaryNet, r.TotalNet)
		}
		if !money.WithinTolerance(summaryTax, r.TotalTax) {
			fail("taxSummaries", "summed tax %s does not match total tax %s", summaryTax, r.TotalTax)
		}
	}

	if r.Payment.Method == domain.PaymentCash {
		if r.Payment.AmountReceived.LessThan(r.TotalGross) {
			fail("payment.amountReceived", "amount received %s is less than total gross %s", r.Payment.AmountReceived, r.TotalGross)
		}
		wantChange := money.Round2(r.Payment.AmountReceived.Sub(r.TotalGross))
		if !money.WithinTolerance(r.Payment.ChangeGiven, wantChange) {
			fail("payment.changeGiven", "change given %s does not match amount received − total gross %s", r.Payment.ChangeGiven, wantChange)
		}
	}

	valid := true
	for _, f := range findings {
		if f.Severity == SeverityError {
			valid = false
			break
		}
	}
	return ValidationResult{Valid: valid, Findings: findings}
}

// MustValidate runs ValidateReceipt and folds all error-severity findings
// into a single apperrors.ValidationFailure. Warnings never block.
func MustValidate(r domain.SignedReceipt, expectedAlg domain.HashAlgorithm) error {
	result := ValidateReceipt(r, expectedAlg)
	if result.Valid {
		return nil
	}
	var msgs []string
	for _, f := range result.Findings {
		if f.Severity == SeverityError {
			msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
		}
	}
	return &apperrors.ValidationFailure{Findings: msgs}
}
