package receipt_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/core/receipt"
)

func lineItem(description string, qty int, unitPrice string, rate int, lineNet, tax, gross string) domain.ReceiptLineItem {
	return domain.ReceiptLineItem{
		Description:    description,
		Quantity:       qty,
		UnitPriceNet:   decimal.RequireFromString(unitPrice),
		TaxRate:        rate,
		LineTotalNet:   decimal.RequireFromString(lineNet),
		TaxAmount:      decimal.RequireFromString(tax),
		LineTotalGross: decimal.RequireFromString(gross),
	}
}

func TestSummarizeTaxes(t *testing.T) {
	items := []domain.ReceiptLineItem{
		lineItem("Brezel", 1, "1.50", 7, "1.50", "0.11", "1.61"),
		lineItem("Stubbi", 2, "1.00", 19, "2.00", "0.38", "2.38"),
		lineItem("Wasser", 1, "0.80", 19, "0.80", "0.15", "0.95"),
	}

	summaries := receipt.SummarizeTaxes(items)
	require.Len(t, summaries, 2)

	// Descending by rate.
	assert.Equal(t, 19, summaries[0].TaxRate)
	assert.True(t, summaries[0].NetTotal.Equal(decimal.RequireFromString("2.80")), "net %s", summaries[0].NetTotal)
	assert.True(t, summaries[0].TaxAmount.Equal(decimal.RequireFromString("0.53")), "tax %s", summaries[0].TaxAmount)
	assert.True(t, summaries[0].GrossTotal.Equal(decimal.RequireFromString("3.33")), "gross %s", summaries[0].GrossTotal)

	assert.Equal(t, 7, summaries[1].TaxRate)
	assert.True(t, summaries[1].NetTotal.Equal(decimal.RequireFromString("1.50")))
	assert.True(t, summaries[1].TaxAmount.Equal(decimal.RequireFromString("0.11")))
	assert.True(t, summaries[1].GrossTotal.Equal(decimal.RequireFromString("1.61")))
}

func TestSummarizeTaxes_SingleRate(t *testing.T) {
	items := []domain.ReceiptLineItem{
		lineItem("Stubbi", 2, "1.00", 19, "2.00", "0.38", "2.38"),
	}

	summaries := receipt.SummarizeTaxes(items)
	require.Len(t, summaries, 1)
	assert.Equal(t, 19, summaries[0].TaxRate)
}

func TestSummarizeTaxes_Empty(t *testing.T) {
	assert.Empty(t, receipt.SummarizeTaxes(nil))
}

func TestComputeTotals(t *testing.T) {
	items := []domain.ReceiptLineItem{
		lineItem("Stubbi", 2, "1.00", 19, "2.00", "0.38", "2.38"),
		lineItem("Brezel", 1, "1.50", 7, "1.50", "0.11", "1.61"),
	}

	net, tax, gross := receipt.ComputeTotals(items)
	assert.True(t, net.Equal(decimal.RequireFromString("3.50")), "net %s", net)
	assert.True(t, tax.Equal(decimal.RequireFromString("0.49")), "tax %s", tax)
	assert.True(t, gross.Equal(decimal.RequireFromString("3.99")), "gross %s", gross)
}
