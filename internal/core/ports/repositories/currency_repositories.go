package repositories

import (
	"context"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
)

// CurrencyRepositoryFacade defines persistence operations for currency
// reference data.
type CurrencyRepositoryFacade interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// FindCurrencyByCode retrieves a currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all known currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
