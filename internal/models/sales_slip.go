package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSlip represents a sales slip row.
type SalesSlip struct {
	SalesSlipID  string          `json:"salesSlipID"` // Primary Key (UUID)
	CustomerID   string          `json:"customerID"`
	SlipDate     time.Time       `json:"slipDate"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	Total        decimal.Decimal `json:"total"`
	Description  string          `json:"description"`
	AuditFields
}

// SalesSlipLine represents one line of a sales slip.
type SalesSlipLine struct {
	LineID      string          `json:"lineID"` // Primary Key (UUID)
	SalesSlipID string          `json:"salesSlipID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     decimal.Decimal `json:"vatRate"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
