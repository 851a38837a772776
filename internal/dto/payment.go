package dto

import (
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the payload for recording a collection or a
// payment.
type CreatePaymentRequest struct {
	AccountID    string           `json:"accountID" binding:"required"`
	PaymentType  string           `json:"paymentType" binding:"required,oneof=COLLECTION PAYMENT"`
	Method       string           `json:"method" binding:"required,oneof=CASH BANK_TRANSFER CREDIT_CARD CHEQUE"`
	Amount       decimal.Decimal  `json:"amount" binding:"required,gt=0"`
	CurrencyCode string           `json:"currencyCode" binding:"required,len=2|len=3"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate"`
	PaymentDate  time.Time        `json:"paymentDate" binding:"required"`
	Description  string           `json:"description"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID    string          `json:"paymentID"`
	AccountID    string          `json:"accountID"`
	PaymentType  string          `json:"paymentType"`
	Method       string          `json:"method"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	PaymentDate  time.Time       `json:"paymentDate"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.PaymentID,
		AccountID:    p.AccountID,
		PaymentType:  string(p.PaymentType),
		Method:       string(p.Method),
		Amount:       p.Amount,
		CurrencyCode: p.CurrencyCode,
		ExchangeRate: p.ExchangeRate,
		PaymentDate:  p.PaymentDate,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
	}
	return out
}
