package receipt

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/utils/money"
)

// Clock supplies the wall-clock time stamped onto a receipt. It is
// injected so receipt generation stays deterministic under test.
type Clock interface {
	Now() time.Time
}

// NumberSource supplies the random suffix of a receipt number.
type NumberSource interface {
	Intn(n int) int
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ComputeTotals sums the line items into receipt-level totals, each
// addition rounded to the cent, with totalGross derived from the rounded
// net and tax totals.
func ComputeTotals(items []domain.ReceiptLineItem) (net, tax, gross decimal.Decimal) {
	for _, item := range items {
		net = money.Round2(net.Add(item.LineTotalNet))
		tax = money.Round2(tax.Add(item.TaxAmount))
	}
	gross = money.Round2(net.Add(tax))
	return net, tax, gross
}

// AssemblerInput carries everything the assembler combines into a draft.
type AssemblerInput struct {
	Profile   domain.BusinessProfile
	Items     []domain.ReceiptLineItem
	Summaries []domain.TaxSummary
	Payment   domain.PaymentDetails
	GuestName string
	TableID   string
}

// AssembleReceipt combines the pipeline outputs into a draft GastBeleg:
// it generates the receipt number, stamps the current date and time and
// computes the totals. It does not validate arithmetic; that is the
// validator's job.
func AssembleReceipt(in AssemblerInput, clock Clock, numbers NumberSource) domain.DraftReceipt {
	now := clock.Now()
	net, tax, gross := ComputeTotals(in.Items)

	return domain.DraftReceipt{
		ReceiptNumber: NewReceiptNumber(now, numbers),
		ReceiptDate:   now.Format("2006-01-02"),
		ReceiptTime:   now.Format("15:04:05"),
		Business:      in.Profile,
		Items:         in.Items,
		TotalNet:      net,
		TotalTax:      tax,
		TotalGross:    gross,
		TaxSummaries:  in.Summaries,
		Payment:       in.Payment,
		Currency:      domain.Currency,
		GuestName:     in.GuestName,
		TableID:       in.TableID,
	}
}

// NewReceiptNumber builds a receipt number in the RCP-YYYY-NNNNN format:
// four-digit year, five-digit zero-padded random suffix.
func NewReceiptNumber(now time.Time, numbers NumberSource) string {
	return fmt.Sprintf("RCP-%04d-%05d", now.Year(), numbers.Intn(100000))
}
