package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a purchase invoice received from a supplier. Posting it
// credits the supplier's account (we owe them more).
type Invoice struct {
	InvoiceID    string          `json:"invoiceID"` // Primary Key (e.g., UUID)
	SupplierID   string          `json:"supplierID"`
	InvoiceNo    string          `json:"invoiceNo"`
	InvoiceDate  time.Time       `json:"invoiceDate"`
	CurrencyCode string          `json:"currencyCode"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	DiscountRate decimal.Decimal `json:"discountRate"` // Percentage applied to every line
	Total        decimal.Decimal `json:"total"`        // After discount and VAT
	Description  string          `json:"description"`
	Lines        []InvoiceLine   `json:"lines,omitempty"`
	AuditFields
}

// InvoiceLine is a single invoice line item.
type InvoiceLine struct {
	LineID      string          `json:"lineID"`
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     decimal.Decimal `json:"vatRate"`   // Percentage
	LineTotal   decimal.Decimal `json:"lineTotal"` // qty*price, minus discount, plus VAT
}
