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

func txn(description string, count int, sum string, isTip bool) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		TransactionID: "txn-" + description,
		TabID:         "tab-1",
		Date:          time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC),
		Description:   description,
		Count:         count,
		Sum:           decimal.RequireFromString(sum),
		IsTip:         isTip,
	}
}

var barTaxRates = map[string]int{
	"Stubbi": 19,
	"Brezel": 7,
	"Wasser": 19,
}

func TestAggregateLineItems(t *testing.T) {
	txns := []domain.LedgerTransaction{
		txn("Stubbi", 1, "-1.00", false),
		txn("Brezel", 1, "-1.50", false),
		txn("Stubbi", 1, "-1.00", false),
		txn("Trinkgeld", 1, "-0.50", true),               // tip, excluded
		txn(domain.ChangeRefundLabel, 1, "-2.00", false), // change refund, excluded
		txn("Einzahlung", 1, "10.00", false),             // deposit, excluded
	}

	items, err := receipt.AggregateLineItems(txns, barTaxRates)
	require.NoError(t, err)
	require.Len(t, items, 2)

	stubbi := items[0]
	assert.Equal(t, "Stubbi", stubbi.Description)
	assert.Equal(t, 2, stubbi.Quantity)
	assert.True(t, stubbi.UnitPriceNet.Equal(decimal.RequireFromString("1.00")), "unit price %s", stubbi.UnitPriceNet)
	assert.Equal(t, 19, stubbi.TaxRate)
	assert.True(t, stubbi.LineTotalNet.Equal(decimal.RequireFromString("2.00")), "line net %s", stubbi.LineTotalNet)
	assert.True(t, stubbi.TaxAmount.Equal(decimal.RequireFromString("0.38")), "tax %s", stubbi.TaxAmount)
	assert.True(t, stubbi.LineTotalGross.Equal(decimal.RequireFromString("2.38")), "line gross %s", stubbi.LineTotalGross)

	brezel := items[1]
	assert.Equal(t, "Brezel", brezel.Description)
	assert.Equal(t, 1, brezel.Quantity)
	assert.Equal(t, 7, brezel.TaxRate)
	assert.True(t, brezel.LineTotalNet.Equal(decimal.RequireFromString("1.50")), "line net %s", brezel.LineTotalNet)
	assert.True(t, brezel.TaxAmount.Equal(decimal.RequireFromString("0.11")), "tax %s", brezel.TaxAmount)
	assert.True(t, brezel.LineTotalGross.Equal(decimal.RequireFromString("1.61")), "line gross %s", brezel.LineTotalGross)
}

func TestAggregateLineItems_GroupingOrderIsDeterministic(t *testing.T) {
	txns := []domain.LedgerTransaction{
		txn("Wasser", 1, "-0.80", false),
		txn("Stubbi", 1, "-1.00", false),
		txn("Wasser", 1, "-0.80", false),
	}

	items, err := receipt.AggregateLineItems(txns, barTaxRates)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Order of first occurrence, not map iteration order.
	assert.Equal(t, "Wasser", items[0].Description)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Stubbi", items[1].Description)
}

func TestAggregateLineItems_CountNormalization(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		wantQuantity int
	}{
		{name: "zero count treated as one", count: 0, wantQuantity: 1},
		{name: "negative count uses absolute value", count: -3, wantQuantity: 3},
		{name: "positive count kept", count: 2, wantQuantity: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := receipt.AggregateLineItems([]domain.LedgerTransaction{
				txn("Stubbi", tt.count, "-3.00", false),
			}, barTaxRates)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, tt.wantQuantity, items[0].Quantity)
		})
	}
}

func TestAggregateLineItems_UnknownProductGetsDefaultRate(t *testing.T) {
	items, err := receipt.AggregateLineItems([]domain.LedgerTransaction{
		txn("Überraschung", 1, "-5.00", false),
	}, barTaxRates)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.DefaultTaxRate, items[0].TaxRate)
}

func TestAggregateLineItems_NoSales(t *testing.T) {
	tests := []struct {
		name string
		txns []domain.LedgerTransaction
	}{
		{name: "empty ledger", txns: nil},
		{name: "only payments", txns: []domain.LedgerTransaction{txn("Einzahlung", 1, "5.00", false)}},
		{name: "only tips", txns: []domain.LedgerTransaction{txn("Trinkgeld", 1, "-1.00", true)}},
		{name: "only change refunds", txns: []domain.LedgerTransaction{txn(domain.ChangeRefundLabel, 1, "-2.00", false)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := receipt.AggregateLineItems(tt.txns, barTaxRates)
			assert.Nil(t, items)
			assert.ErrorIs(t, err, apperrors.ErrNoSales)
		})
	}
}

func TestAggregateLineItems_UnevenSplitRederivesLineTotal(t *testing.T) {
	// 3 units for 1.00 total: unit price rounds to 0.33, the line total is
	// re-derived as 0.99 so quantity × unit price holds exactly.
	items, err := receipt.AggregateLineItems([]domain.LedgerTransaction{
		txn("Stubbi", 3, "-1.00", false),
	}, barTaxRates)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.True(t, items[0].UnitPriceNet.Equal(decimal.RequireFromString("0.33")), "unit price %s", items[0].UnitPriceNet)
	assert.True(t, items[0].LineTotalNet.Equal(decimal.RequireFromString("0.99")), "line net %s", items[0].LineTotalNet)
}
