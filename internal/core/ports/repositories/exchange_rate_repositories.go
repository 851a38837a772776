package repositories

import (
	"context"
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
)

// ExchangeRateRepositoryFacade defines persistence operations for the
// append-only exchange rate history.
type ExchangeRateRepositoryFacade interface {
	// SaveExchangeRate appends a rate row.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// FindLatestRate retrieves the most recent rate for a currency with
	// rate_date <= asOf. Returns apperrors.ErrNotFound when no row matches.
	FindLatestRate(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error)

	// ListRates retrieves the rate history for a currency, newest first.
	ListRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error)
}
