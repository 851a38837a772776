package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a purchase invoice row.
type Invoice struct {
	InvoiceID    string          `json:"invoiceID"` // Primary Key (UUID)
	SupplierID   string          `json:"supplierID"`
	InvoiceNo    string          `json:"invoiceNo"`
	InvoiceDate  time.Time       `json:"invoiceDate"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	DiscountRate decimal.Decimal `json:"discountRate"`
	Total        decimal.Decimal `json:"total"`
	Description  string          `json:"description"`
	AuditFields
}

// InvoiceLine represents one line of a purchase invoice.
type InvoiceLine struct {
	LineID      string          `json:"lineID"` // Primary Key (UUID)
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     decimal.Decimal `json:"vatRate"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
