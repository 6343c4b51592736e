package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
)

func TestLedgerTransaction_IsSale(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.LedgerTransaction
		want        bool
	}{
		{
			name: "negative sum is a sale",
			transaction: domain.LedgerTransaction{
				Description: "Stubbi",
				Sum:         decimal.RequireFromString("-1.00"),
			},
			want: true,
		},
		{
			name: "positive sum is a payment, never a sale",
			transaction: domain.LedgerTransaction{
				Description: "Einzahlung",
				Sum:         decimal.RequireFromString("10.00"),
			},
			want: false,
		},
		{
			name: "zero sum is not a sale",
			transaction: domain.LedgerTransaction{
				Description: "Storno",
				Sum:         decimal.Zero,
			},
			want: false,
		},
		{
			name: "tip is excluded even with negative sum",
			transaction: domain.LedgerTransaction{
				Description: "Trinkgeld",
				Sum:         decimal.RequireFromString("-0.50"),
				IsTip:       true,
			},
			want: false,
		},
		{
			name: "change refund is excluded",
			transaction: domain.LedgerTransaction{
				Description: domain.ChangeRefundLabel,
				Sum:         decimal.RequireFromString("-2.00"),
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transaction.IsSale())
		})
	}
}

func TestValidTaxRate(t *testing.T) {
	for _, rate := range domain.ValidTaxRates {
		assert.True(t, domain.ValidTaxRate(rate), "rate %d", rate)
	}
	for _, rate := range []int{-1, 5, 16, 20, 100} {
		assert.False(t, domain.ValidTaxRate(rate), "rate %d", rate)
	}
}
