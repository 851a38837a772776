package dto

import (
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceLineRequest is one line of a purchase invoice payload.
type InvoiceLineRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required,gt=0"`
	VATRate     decimal.Decimal `json:"vatRate"`
}

// CreateInvoiceRequest defines the payload for posting (or re-posting on
// update) a purchase invoice. ExchangeRate overrides the looked-up current
// rate when set.
type CreateInvoiceRequest struct {
	SupplierID   string               `json:"supplierID" binding:"required"`
	InvoiceNo    string               `json:"invoiceNo"`
	InvoiceDate  time.Time            `json:"invoiceDate" binding:"required"`
	CurrencyCode string               `json:"currencyCode" binding:"required,len=2|len=3"`
	ExchangeRate *decimal.Decimal     `json:"exchangeRate"`
	DiscountRate decimal.Decimal      `json:"discountRate"`
	Description  string               `json:"description"`
	Lines        []InvoiceLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// InvoiceLineResponse is one invoice line in responses.
type InvoiceLineResponse struct {
	LineID      string          `json:"lineID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     decimal.Decimal `json:"vatRate"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID    string                `json:"invoiceID"`
	SupplierID   string                `json:"supplierID"`
	InvoiceNo    string                `json:"invoiceNo,omitempty"`
	InvoiceDate  time.Time             `json:"invoiceDate"`
	CurrencyCode string                `json:"currencyCode"`
	ExchangeRate decimal.Decimal       `json:"exchangeRate"`
	DiscountRate decimal.Decimal       `json:"discountRate"`
	Total        decimal.Decimal       `json:"total"`
	Description  string                `json:"description,omitempty"`
	Lines        []InvoiceLineResponse `json:"lines,omitempty"`
	Movements    []MovementResponse    `json:"movements,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, len(inv.Lines))
	for i, l := range inv.Lines {
		lines[i] = InvoiceLineResponse{
			LineID:      l.LineID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
			LineTotal:   l.LineTotal,
		}
	}
	return InvoiceResponse{
		InvoiceID:    inv.InvoiceID,
		SupplierID:   inv.SupplierID,
		InvoiceNo:    inv.InvoiceNo,
		InvoiceDate:  inv.InvoiceDate,
		CurrencyCode: inv.CurrencyCode,
		ExchangeRate: inv.ExchangeRate,
		DiscountRate: inv.DiscountRate,
		Total:        inv.Total,
		Description:  inv.Description,
		Lines:        lines,
		CreatedAt:    inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of invoices.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}
