package services

import (
	"context"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
)

// AccountSvcFacade defines the service operations for cari accounts.
type AccountSvcFacade interface {
	// CreateAccount creates an account; a positive opening balance is
	// materialized as an opening_balance movement in the same transaction.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// GetAccountByID retrieves an account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts lists accounts, optionally filtered by kind.
	ListAccounts(ctx context.Context, kind *domain.AccountKind, onlyActive bool) ([]domain.Account, error)

	// UpdateAccount updates mutable account details (title, contact,
	// salary, status). Kind and currency are not updatable.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error)

	// DeactivateAccount soft-deletes an account.
	DeactivateAccount(ctx context.Context, accountID string, updaterUserID string) error
}
