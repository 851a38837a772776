package dto

import (
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
)

// CreateCurrencyRequest defines the payload for creating a currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=2|len=3"`
	Symbol       string `json:"symbol" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
	}
}

// ToCurrencyResponses converts a slice of currencies.
func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		out[i] = ToCurrencyResponse(&currencies[i])
	}
	return out
}
