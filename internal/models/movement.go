package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement represents one row of the append-only movement stream. Amount is
// always positive; direction carries the sign.
type Movement struct {
	MovementID      string          `json:"movementID"` // Primary Key (ULID, sorts in insertion order)
	AccountID       string          `json:"accountID"`
	Direction       string          `json:"direction"` // DEBIT or CREDIT
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode"`
	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	SourceKind      string          `json:"sourceKind"`
	SourceID        string          `json:"sourceID"`
	Description     string          `json:"description"`
	TransactionDate time.Time       `json:"transactionDate"`
	AuditFields
}
