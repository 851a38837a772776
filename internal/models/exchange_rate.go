package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents one row of the append-only rate history.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (UUID)
	CurrencyCode   string          `json:"currencyCode"`
	Rate           decimal.Decimal `json:"rate"` // Base currency per one unit of CurrencyCode
	RateDate       time.Time       `json:"rateDate"`
	AuditFields
}
