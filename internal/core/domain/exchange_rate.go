package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the TL value of one unit of a foreign currency on a
// specific date. The history is append-only; the "current" rate for a
// moment in time is the most recent row dated at or before it.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (e.g., UUID)
	CurrencyCode   string          `json:"currencyCode"`   // FK -> Currency.currencyCode
	Rate           decimal.Decimal `json:"rate"`           // Positive; precise decimal type
	RateDate       time.Time       `json:"rateDate"`
	AuditFields
}
