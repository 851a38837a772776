package repositories

import (
	"context"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate queries behind the
// dashboard. No side effects.
type ReportingRepository interface {
	// GetCurrencyTotals returns debit/credit sums grouped by currency.
	GetCurrencyTotals(ctx context.Context) ([]domain.CurrencyTotals, error)

	// GetAccountBalances returns derived balances per (account, currency),
	// joined to account metadata. Accounts without movements are omitted.
	GetAccountBalances(ctx context.Context) ([]domain.AccountBalance, error)
}
