package dto

import (
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the payload for appending a rate row.
type CreateExchangeRateRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,len=2|len=3"`
	Rate         decimal.Decimal `json:"rate" binding:"required,gt=0"`
	RateDate     time.Time       `json:"rateDate" binding:"required"`
}

// ExchangeRateResponse defines the data returned for an exchange rate.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	CurrencyCode   string          `json:"currencyCode"`
	Rate           decimal.Decimal `json:"rate"`
	RateDate       time.Time       `json:"rateDate"`
}

// CurrentRateResponse is the answer to a "current rate" lookup.
type CurrentRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"`
	AsOf         time.Time       `json:"asOf"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: r.ExchangeRateID,
		CurrencyCode:   r.CurrencyCode,
		Rate:           r.Rate,
		RateDate:       r.RateDate,
	}
}

// ToExchangeRateResponses converts a slice of exchange rates.
func ToExchangeRateResponses(rates []domain.ExchangeRate) []ExchangeRateResponse {
	out := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		out[i] = ToExchangeRateResponse(&rates[i])
	}
	return out
}
