package receipt

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/utils/money"
)

// PaymentRequest is the declared tender for settling a tab, as supplied by
// the caller. Only the fields matching the method are consulted.
type PaymentRequest struct {
	Method         string
	AmountReceived *decimal.Decimal
	CardLast4      string
	Reference      string
}

// ReconcilePayment maps the declared payment onto exactly one tagged
// variant. This is a total function: every method string, known or not,
// yields a variant, so no unknown tender can leak into cash arithmetic.
//
// For cash, a missing amountReceived defaults to the receipt's gross total
// (exact payment, zero change), and changeGiven is always recomputed here
// rather than trusted from the request.
func ReconcilePayment(req PaymentRequest, totalGross decimal.Decimal) domain.PaymentDetails {
	switch domain.PaymentMethod(strings.ToUpper(req.Method)) {
	case domain.PaymentCash:
		received := totalGross
		if req.AmountReceived != nil {
			received = *req.AmountReceived
		}
		return domain.PaymentDetails{
			Method:         domain.PaymentCash,
			AmountReceived: money.Round2(received),
			ChangeGiven:    money.Round2(received.Sub(totalGross)),
		}
	case domain.PaymentCard:
		return domain.PaymentDetails{
			Method:    domain.PaymentCard,
			CardLast4: req.CardLast4,
		}
	case domain.PaymentTransfer:
		return domain.PaymentDetails{
			Method:    domain.PaymentTransfer,
			Reference: req.Reference,
		}
	default:
		return domain.PaymentDetails{Method: domain.PaymentOther}
	}
}
