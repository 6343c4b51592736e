package receipt_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/core/receipt"
)

// validReceipt assembles a receipt through the real pipeline so every
// derived value is consistent by construction.
func validReceipt(t *testing.T) domain.SignedReceipt {
	t.Helper()

	items, err := receipt.AggregateLineItems([]domain.LedgerTransaction{
		txn("Stubbi", 2, "-2.00", false),
		txn("Brezel", 1, "-1.50", false),
	}, barTaxRates)
	require.NoError(t, err)

	_, _, gross := receipt.ComputeTotals(items)
	payment := receipt.ReconcilePayment(receipt.PaymentRequest{
		Method:         "CASH",
		AmountReceived: decimalPtr("5.00"),
	}, gross)

	draft := receipt.AssembleReceipt(receipt.AssemblerInput{
		Profile:   testProfile(),
		Items:     items,
		Summaries: receipt.SummarizeTaxes(items),
		Payment:   payment,
	}, fixedClock{t: time.Date(2024, 6, 1, 21, 30, 15, 0, time.UTC)}, fixedNumbers{n: 123})

	return domain.SignedReceipt{
		DraftReceipt:  draft,
		HashAlgorithm: domain.HashSHA256,
		Hash:          "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9",
		Immutable:     true,
	}
}

func findingFields(result receipt.ValidationResult) []string {
	fields := make([]string, 0, len(result.Findings))
	for _, f := range result.Findings {
		fields = append(fields, f.Field)
	}
	return fields
}

func TestValidateReceipt_Valid(t *testing.T) {
	result := receipt.ValidateReceipt(validReceipt(t), domain.HashSHA256)
	assert.True(t, result.Valid, "findings: %v", result.Findings)
	assert.Empty(t, result.Findings)
}

func TestValidateReceipt_BrokenInvariants(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *domain.SignedReceipt)
		wantField string
	}{
		{
			name:      "empty receipt number",
			mutate:    func(r *domain.SignedReceipt) { r.ReceiptNumber = " " },
			wantField: "receiptNumber",
		},
		{
			name:      "missing business name",
			mutate:    func(r *domain.SignedReceipt) { r.Business.BusinessName = "" },
			wantField: "business.businessName",
		},
		{
			name: "neither tax number nor VAT id",
			mutate: func(r *domain.SignedReceipt) {
				r.Business.TaxNumber = ""
				r.Business.VATID = ""
			},
			wantField: "business.taxNumber",
		},
		{
			name:      "foreign currency",
			mutate:    func(r *domain.SignedReceipt) { r.Currency = "USD" },
			wantField: "currency",
		},
		{
			name:      "wrong hash algorithm",
			mutate:    func(r *domain.SignedReceipt) { r.HashAlgorithm = domain.HashRolling },
			wantField: "hashAlgorithm",
		},
		{
			name:      "empty hash",
			mutate:    func(r *domain.SignedReceipt) { r.Hash = "" },
			wantField: "hash",
		},
		{
			name:      "tampered line total",
			mutate:    func(r *domain.SignedReceipt) { r.Items[0].LineTotalNet = decimal.RequireFromString("9.99") },
			wantField: "items[0].lineTotalNet",
		},
		{
			name:      "tampered tax amount",
			mutate:    func(r *domain.SignedReceipt) { r.Items[1].TaxAmount = decimal.RequireFromString("0.50") },
			wantField: "items[1].taxAmount",
		},
		{
			name:      "unsupported tax rate",
			mutate:    func(r *domain.SignedReceipt) { r.Items[0].TaxRate = 16 },
			wantField: "items[0].taxRate",
		},
		{
			name:      "excessive quantity",
			mutate:    func(r *domain.SignedReceipt) { r.Items[0].Quantity = 1000 },
			wantField: "items[0].quantity",
		},
		{
			name:      "tampered total gross",
			mutate:    func(r *domain.SignedReceipt) { r.TotalGross = decimal.RequireFromString("100.00") },
			wantField: "totalGross",
		},
		{
			name:      "cash received below gross",
			mutate:    func(r *domain.SignedReceipt) { r.Payment.AmountReceived = decimal.RequireFromString("1.00") },
			wantField: "payment.amountReceived",
		},
		{
			name:      "tampered change",
			mutate:    func(r *domain.SignedReceipt) { r.Payment.ChangeGiven = decimal.RequireFromString("2.00") },
			wantField: "payment.changeGiven",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReceipt(t)
			tt.mutate(&r)

			result := receipt.ValidateReceipt(r, domain.HashSHA256)
			assert.False(t, result.Valid)
			assert.Contains(t, findingFields(result), tt.wantField)
		})
	}
}

func TestValidateReceipt_NoItems(t *testing.T) {
	r := validReceipt(t)
	r.Items = nil
	r.TaxSummaries = nil
	r.TotalNet = decimal.Zero
	r.TotalTax = decimal.Zero
	r.TotalGross = decimal.Zero
	r.Payment = domain.PaymentDetails{Method: domain.PaymentOther}

	result := receipt.ValidateReceipt(r, domain.HashSHA256)
	assert.False(t, result.Valid)
	assert.Contains(t, findingFields(result), "items")
	assert.Contains(t, findingFields(result), "taxSummaries")
}

func TestValidateReceipt_RelativeLogoPathIsWarningOnly(t *testing.T) {
	r := validReceipt(t)
	r.Business.LogoPath = "assets/logo.png"

	result := receipt.ValidateReceipt(r, domain.HashSHA256)
	assert.True(t, result.Valid, "warnings must not invalidate")
	require.Len(t, result.Findings, 1)
	assert.Equal(t, receipt.SeverityWarning, result.Findings[0].Severity)
	assert.Equal(t, "business.logoPath", result.Findings[0].Field)
}

func TestValidateReceipt_ToleranceAbsorbsOneCent(t *testing.T) {
	r := validReceipt(t)
	r.TotalNet = r.TotalNet.Add(decimal.RequireFromString("0.01"))

	result := receipt.ValidateReceipt(r, domain.HashSHA256)
	assert.True(t, result.Valid, "one cent drift is within tolerance: %v", result.Findings)
}

func TestMustValidate(t *testing.T) {
	assert.NoError(t, receipt.MustValidate(validReceipt(t), domain.HashSHA256))

	broken := validReceipt(t)
	broken.Currency = "USD"
	broken.Hash = ""

	err := receipt.MustValidate(broken, domain.HashSHA256)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var failure *apperrors.ValidationFailure
	require.ErrorAs(t, err, &failure)
	assert.Len(t, failure.Findings, 2)
}
