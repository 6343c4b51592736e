package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zapfwerk/deckelkasse/internal/utils/money"
)

func TestRound2_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0.005", want: "0.01"},
		{in: "-0.005", want: "-0.01"},
		{in: "2.675", want: "2.68"},
		{in: "1.004", want: "1.00"},
		{in: "1.006", want: "1.01"},
		{in: "3.99", want: "3.99"},
		{in: "0", want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := money.Round2(decimal.RequireFromString(tt.in))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "Round2(%s) = %s, want %s", tt.in, got, tt.want)
		})
	}
}

func TestTaxFromNet(t *testing.T) {
	tests := []struct {
		net  string
		rate int
		want string
	}{
		{net: "2.00", rate: 19, want: "0.38"},
		{net: "1.50", rate: 7, want: "0.11"}, // 0.105 rounds up
		{net: "10.00", rate: 0, want: "0.00"},
		{net: "0.99", rate: 19, want: "0.19"}, // 0.1881 rounds down
	}
	for _, tt := range tests {
		got := money.TaxFromNet(decimal.RequireFromString(tt.net), tt.rate)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "TaxFromNet(%s, %d) = %s, want %s", tt.net, tt.rate, got, tt.want)
	}
}

func TestWithinTolerance(t *testing.T) {
	a := decimal.RequireFromString("3.99")

	assert.True(t, money.WithinTolerance(a, decimal.RequireFromString("3.99")))
	assert.True(t, money.WithinTolerance(a, decimal.RequireFromString("4.00")))
	assert.True(t, money.WithinTolerance(a, decimal.RequireFromString("3.98")))
	assert.False(t, money.WithinTolerance(a, decimal.RequireFromString("4.01")))
	assert.False(t, money.WithinTolerance(a, decimal.RequireFromString("3.97")))
}
