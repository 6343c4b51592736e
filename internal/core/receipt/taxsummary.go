package receipt

import (
	"sort"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/utils/money"
)

// SummarizeTaxes rolls the line items up into one summary row per distinct
// tax rate, ordered descending by rate. Each addition is rounded to the
// cent before the next one; receipts issued before this service must
// re-verify bit-for-bit, so the incremental rounding is deliberate and
// must not be collapsed into a single final rounding.
//
// Empty input yields empty output; the aggregator has already rejected
// item-less receipts upstream.
func SummarizeTaxes(items []domain.ReceiptLineItem) []domain.TaxSummary {
	byRate := make(map[int]*domain.TaxSummary, len(domain.ValidTaxRates))
	for _, item := range items {
		s, ok := byRate[item.TaxRate]
		if !ok {
			s = &domain.TaxSummary{TaxRate: item.TaxRate}
			byRate[item.TaxRate] = s
		}
		s.NetTotal = money.Round2(s.NetTotal.Add(item.LineTotalNet))
		s.TaxAmount = money.Round2(s.TaxAmount.Add(item.TaxAmount))
		s.GrossTotal = money.Round2(s.GrossTotal.Add(item.LineTotalGross))
	}

	summaries := make([]domain.TaxSummary, 0, len(byRate))
	for _, s := range byRate {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].TaxRate > summaries[j].TaxRate
	})
	return summaries
}
