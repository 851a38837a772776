package services

import (
	"context"
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencySvcFacade defines the service operations for currency reference data.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// ExchangeRateSvcFacade defines the service operations for exchange rates.
type ExchangeRateSvcFacade interface {
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)

	// CurrentRate resolves the rate for a currency as of the given moment:
	// 1 for the base currency, otherwise the latest known rate dated at or
	// before asOf. Fails with apperrors.ErrNotFound when a foreign currency
	// has no usable rate.
	CurrentRate(ctx context.Context, currencyCode string, asOf time.Time) (decimal.Decimal, error)

	ListRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error)
}
