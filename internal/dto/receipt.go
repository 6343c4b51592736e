package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zapfwerk/deckelkasse/internal/core/domain"
	"github.com/zapfwerk/deckelkasse/internal/core/receipt"
)

// LedgerTransactionRequest is one raw tab line supplied by the caller.
// Sign convention follows the ledger: negative sum is a sale or refund,
// zero or positive is a payment or deposit.
type LedgerTransactionRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Count       int             `json:"count"`
	Sum         decimal.Decimal `json:"sum" binding:"required"`
	IsTip       bool            `json:"isTip"`
}

// PaymentRequest declares the tender for a receipt. Method is mapped
// totally: anything that is not CASH, CARD or TRANSFER becomes OTHER.
type PaymentRequest struct {
	Method         string           `json:"method" binding:"required"`
	AmountReceived *decimal.Decimal `json:"amountReceived,omitempty"`
	CardLast4      string           `json:"cardLast4,omitempty" binding:"omitempty,len=4,numeric"`
	Reference      string           `json:"reference,omitempty"`
}

// GenerateReceiptRequest runs the pipeline over explicitly supplied
// transactions, without touching any stored tab.
type GenerateReceiptRequest struct {
	Transactions []LedgerTransactionRequest `json:"transactions" binding:"required,min=1,dive"`
	Payment      PaymentRequest             `json:"payment" binding:"required"`
	GuestName    string                     `json:"guestName,omitempty"`
	TableID      string                     `json:"tableID,omitempty"`
}

// SettleTabRequest settles a stored tab; the ledger comes from the tab.
type SettleTabRequest struct {
	Payment PaymentRequest `json:"payment" binding:"required"`
}

// LineItemResponse mirrors one receipt row.
type LineItemResponse struct {
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	UnitPriceNet   decimal.Decimal `json:"unitPriceNet"`
	TaxRate        int             `json:"taxRate"`
	LineTotalNet   decimal.Decimal `json:"lineTotalNet"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	LineTotalGross decimal.Decimal `json:"lineTotalGross"`
}

// TaxSummaryResponse mirrors one per-rate rollup row.
type TaxSummaryResponse struct {
	TaxRate    int             `json:"taxRate"`
	NetTotal   decimal.Decimal `json:"netTotal"`
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	GrossTotal decimal.Decimal `json:"grossTotal"`
}

// PaymentResponse mirrors the reconciled payment variant.
type PaymentResponse struct {
	Method         string          `json:"method"`
	AmountReceived decimal.Decimal `json:"amountReceived,omitempty"`
	ChangeGiven    decimal.Decimal `json:"changeGiven,omitempty"`
	CardLast4      string          `json:"cardLast4,omitempty"`
	Reference      string          `json:"reference,omitempty"`
}

// ReceiptResponse is the complete issued GastBeleg handed back to the caller.
type ReceiptResponse struct {
	ReceiptNumber string               `json:"receiptNumber"`
	ReceiptDate   string               `json:"receiptDate"`
	ReceiptTime   string               `json:"receiptTime"`
	Business      ProfileResponse      `json:"business"`
	Items         []LineItemResponse   `json:"items"`
	TotalNet      decimal.Decimal      `json:"totalNet"`
	TotalTax      decimal.Decimal      `json:"totalTax"`
	TotalGross    decimal.Decimal      `json:"totalGross"`
	TaxSummaries  []TaxSummaryResponse `json:"taxSummaries"`
	Payment       PaymentResponse      `json:"payment"`
	Currency      string               `json:"currency"`
	GuestName     string               `json:"guestName,omitempty"`
	TableID       string               `json:"tableID,omitempty"`
	HashAlgorithm string               `json:"hashAlgorithm"`
	Hash          string               `json:"hash"`
	Immutable     bool                 `json:"immutable"`
}

// VerifyReceiptResponse reports tamper detection and re-validation of a
// stored receipt.
type VerifyReceiptResponse struct {
	ReceiptNumber string                   `json:"receiptNumber"`
	HashValid     bool                     `json:"hashValid"`
	Validation    receipt.ValidationResult `json:"validation"`
}

// ToDomainLedgerTransaction converts a request line to the domain shape.
func ToDomainLedgerTransaction(req LedgerTransactionRequest) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		Date:        req.Date,
		Description: req.Description,
		Count:       req.Count,
		Sum:         req.Sum,
		IsTip:       req.IsTip,
	}
}

// ToPipelinePaymentRequest converts the DTO into the pipeline's input shape.
func ToPipelinePaymentRequest(req PaymentRequest) receipt.PaymentRequest {
	return receipt.PaymentRequest{
		Method:         req.Method,
		AmountReceived: req.AmountReceived,
		CardLast4:      req.CardLast4,
		Reference:      req.Reference,
	}
}

// ToReceiptResponse converts a signed receipt to its response DTO.
func ToReceiptResponse(r *domain.SignedReceipt) ReceiptResponse {
	items := make([]LineItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = LineItemResponse{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPriceNet:   item.UnitPriceNet,
			TaxRate:        item.TaxRate,
			LineTotalNet:   item.LineTotalNet,
			TaxAmount:      item.TaxAmount,
			LineTotalGross: item.LineTotalGross,
		}
	}
	summaries := make([]TaxSummaryResponse, len(r.TaxSummaries))
	for i, s := range r.TaxSummaries {
		summaries[i] = TaxSummaryResponse{
			TaxRate:    s.TaxRate,
			NetTotal:   s.NetTotal,
			TaxAmount:  s.TaxAmount,
			GrossTotal: s.GrossTotal,
		}
	}
	return ReceiptResponse{
		ReceiptNumber: r.ReceiptNumber,
		ReceiptDate:   r.ReceiptDate,
		ReceiptTime:   r.ReceiptTime,
		Business:      ToProfileResponse(&r.Business),
		Items:         items,
		TotalNet:      r.TotalNet,
		TotalTax:      r.TotalTax,
		TotalGross:    r.TotalGross,
		TaxSummaries:  summaries,
		Payment: PaymentResponse{
			Method:         string(r.Payment.Method),
			AmountReceived: r.Payment.AmountReceived,
			ChangeGiven:    r.Payment.ChangeGiven,
			CardLast4:      r.Payment.CardLast4,
			Reference:      r.Payment.Reference,
		},
		Currency:      r.Currency,
		GuestName:     r.GuestName,
		TableID:       r.TableID,
		HashAlgorithm: string(r.HashAlgorithm),
		Hash:          r.Hash,
		Immutable:     r.Immutable,
	}
}
