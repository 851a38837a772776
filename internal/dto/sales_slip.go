package dto

import (
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalesSlipLineRequest is one line of a sales slip payload.
type SalesSlipLineRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required,gt=0"`
	VATRate     decimal.Decimal `json:"vatRate"`
}

// CreateSalesSlipRequest defines the payload for posting a sales slip.
type CreateSalesSlipRequest struct {
	CustomerID   string                 `json:"customerID" binding:"required"`
	SlipDate     time.Time              `json:"slipDate" binding:"required"`
	CurrencyCode string                 `json:"currencyCode" binding:"required,len=2|len=3"`
	ExchangeRate *decimal.Decimal       `json:"exchangeRate"`
	Description  string                 `json:"description"`
	Lines        []SalesSlipLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// SalesSlipLineResponse is one sales slip line in responses.
type SalesSlipLineResponse struct {
	LineID      string          `json:"lineID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     decimal.Decimal `json:"vatRate"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// SalesSlipResponse defines the data returned for a sales slip.
type SalesSlipResponse struct {
	SalesSlipID  string                  `json:"salesSlipID"`
	CustomerID   string                  `json:"customerID"`
	SlipDate     time.Time               `json:"slipDate"`
	CurrencyCode string                  `json:"currencyCode"`
	ExchangeRate decimal.Decimal         `json:"exchangeRate"`
	Total        decimal.Decimal         `json:"total"`
	Description  string                  `json:"description,omitempty"`
	Lines        []SalesSlipLineResponse `json:"lines,omitempty"`
	CreatedAt    time.Time               `json:"createdAt"`
}

// ToSalesSlipResponse converts a domain.SalesSlip to SalesSlipResponse.
func ToSalesSlipResponse(s *domain.SalesSlip) SalesSlipResponse {
	lines := make([]SalesSlipLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = SalesSlipLineResponse{
			LineID:      l.LineID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
			LineTotal:   l.LineTotal,
		}
	}
	return SalesSlipResponse{
		SalesSlipID:  s.SalesSlipID,
		CustomerID:   s.CustomerID,
		SlipDate:     s.SlipDate,
		CurrencyCode: s.CurrencyCode,
		ExchangeRate: s.ExchangeRate,
		Total:        s.Total,
		Description:  s.Description,
		Lines:        lines,
		CreatedAt:    s.CreatedAt,
	}
}

// ToSalesSlipResponses converts a slice of sales slips.
func ToSalesSlipResponses(slips []domain.SalesSlip) []SalesSlipResponse {
	out := make([]SalesSlipResponse, len(slips))
	for i := range slips {
		out[i] = ToSalesSlipResponse(&slips[i])
	}
	return out
}
