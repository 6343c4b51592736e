package domain

import "github.com/shopspring/decimal"

// PaymentMethod is the closed set of tender types a receipt can carry.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentOther    PaymentMethod = "OTHER"
)

// PaymentDetails is a tagged variant over the payment methods. Only the
// fields belonging to the tagged method are populated:
//
//	CASH     -> AmountReceived, ChangeGiven
//	CARD     -> CardLast4 (optional)
//	TRANSFER -> Reference (optional)
//	OTHER    -> no fields
type PaymentDetails struct {
	Method         PaymentMethod   `json:"method"`
	AmountReceived decimal.Decimal `json:"amountReceived,omitempty"`
	ChangeGiven    decimal.Decimal `json:"changeGiven,omitempty"`
	CardLast4      string          `json:"cardLast4,omitempty"`
	Reference      string          `json:"reference,omitempty"`
}
