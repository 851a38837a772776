package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a collection or payment row.
type Payment struct {
	PaymentID    string          `json:"paymentID"` // Primary Key (UUID)
	AccountID    string          `json:"accountID"`
	PaymentType  string          `json:"paymentType"` // COLLECTION or PAYMENT
	Method       string          `json:"method"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	PaymentDate  time.Time       `json:"paymentDate"`
	Description  string          `json:"description"`
	AuditFields
}
