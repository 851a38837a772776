package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType distinguishes money collected from a counterparty from money
// paid out to one. COLLECTION credits the account, PAYMENT debits it.
type PaymentType string

const (
	Collection PaymentType = "COLLECTION"
	PaymentOut PaymentType = "PAYMENT"
)

// PaymentMethod is how the money moved.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodCheque       PaymentMethod = "CHEQUE"
)

// Payment records a single collection from or payment to a cari account.
type Payment struct {
	PaymentID    string          `json:"paymentID"` // Primary Key (e.g., UUID)
	AccountID    string          `json:"accountID"`
	PaymentType  PaymentType     `json:"paymentType"`
	Method       PaymentMethod   `json:"method"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	PaymentDate  time.Time       `json:"paymentDate"`
	Description  string          `json:"description"`
	AuditFields
}
