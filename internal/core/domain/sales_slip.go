package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSlip records a sale to a customer. Posting it debits the customer's
// account (they owe more).
type SalesSlip struct {
	SalesSlipID  string          `json:"salesSlipID"` // Primary Key (e.g., UUID)
	CustomerID   string          `json:"customerID"`
	SlipDate     time.Time       `json:"slipDate"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Total        decimal.Decimal `json:"total"`
	Description  string          `json:"description"`
	Lines        []SalesSlipLine `json:"lines,omitempty"`
	AuditFields
}

// SalesSlipLine is a single sales slip line item.
type SalesSlipLine struct {
	LineID      string          `json:"lineID"`
	SalesSlipID string          `json:"salesSlipID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     decimal.Decimal `json:"vatRate"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
