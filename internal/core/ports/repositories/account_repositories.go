package repositories

import (
	"context"
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves accounts, optionally filtered by kind and
	// restricted to active ones.
	ListAccounts(ctx context.Context, kind *domain.AccountKind, onlyActive bool) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account together with its opening-balance
	// movement (nil when the opening balance is zero) in one transaction.
	SaveAccount(ctx context.Context, account domain.Account, opening *domain.Movement) error

	// UpdateAccount updates an existing account's mutable details.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
