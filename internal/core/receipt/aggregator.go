package receipt

import (
	"github.com/shopspring/decimal"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/utils/money"
)

// lineGroup accumulates the sale transactions sharing one description.
type lineGroup struct {
	description string
	quantity    int
	netTotal    decimal.Decimal
}

// AggregateLineItems groups the sale transactions of a tab into priced,
// taxed line items. Payments and deposits (sum >= 0), tips and change
// refunds are discarded; the remaining sales are grouped by exact
// description equality in insertion order of first occurrence, which keeps
// the output deterministic for hash reproducibility.
//
// taxRates maps a product description to its VAT percentage; products the
// mapping does not know fall back to domain.DefaultTaxRate.
//
// Returns apperrors.ErrNoSales when no qualifying sale exists: a receipt
// without items must never be assembled.
func AggregateLineItems(txns []domain.LedgerTransaction, taxRates map[string]int) ([]domain.ReceiptLineItem, error) {
	groups := make([]*lineGroup, 0, len(txns))
	index := make(map[string]*lineGroup, len(txns))

	for _, txn := range txns {
		if !txn.IsSale() {
			continue
		}

		count := txn.Count
		if count == 0 {
			count = 1
		} else if count < 0 {
			count = -count
		}

		g, ok := index[txn.Description]
		if !ok {
			g = &lineGroup{description: txn.Description}
			index[txn.Description] = g
			groups = append(groups, g)
		}
		g.quantity += count
		g.netTotal = g.netTotal.Add(txn.Sum.Abs())
	}

	if len(groups) == 0 {
		return nil, apperrors.ErrNoSales
	}

	items := make([]domain.ReceiptLineItem, 0, len(groups))
	for _, g := range groups {
		rate, ok := taxRates[g.description]
		if !ok {
			rate = domain.DefaultTaxRate
		}
		items = append(items, buildLineItem(g, rate))
	}
	return items, nil
}

// buildLineItem derives the priced row for one group. The line total is
// re-derived from the rounded unit price so the quantity × unit price
// invariant holds exactly on the emitted item.
func buildLineItem(g *lineGroup, rate int) domain.ReceiptLineItem {
	qty := decimal.NewFromInt(int64(g.quantity))
	unitPrice := money.Round2(g.netTotal.Div(qty))
	lineNet := money.Round2(qty.Mul(unitPrice))
	tax := money.TaxFromNet(lineNet, rate)
	return domain.ReceiptLineItem{
		Description:    g.description,
		Quantity:       g.quantity,
		UnitPriceNet:   unitPrice,
		TaxRate:        rate,
		LineTotalNet:   lineNet,
		TaxAmount:      tax,
		LineTotalGross: money.Round2(lineNet.Add(tax)),
	}
}
