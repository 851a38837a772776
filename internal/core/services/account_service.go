package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
	"github.com/onmuhasebe/cari_ledger_app/internal/utils/accounting"
)

type accountService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates the account and, when the opening balance is
// positive, materializes it as an opening_balance movement written in the
// same transaction. The movement's direction follows the account kind:
// what a customer owes us is a debit, what we owe a supplier is a credit.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	kind := domain.AccountKind(req.Kind)
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}
	if kind == domain.Employee && req.Salary != nil && req.Salary.IsNegative() {
		return nil, fmt.Errorf("%w: salary cannot be negative", apperrors.ErrValidation)
	}
	if kind != domain.Employee && req.Salary != nil {
		return nil, fmt.Errorf("%w: only employee accounts carry a salary", apperrors.ErrValidation)
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		return nil, fmt.Errorf("failed to resolve currency %s: %w", req.CurrencyCode, err)
	}

	openingCurrency := req.OpeningBalanceCurrency
	if openingCurrency == "" {
		openingCurrency = req.CurrencyCode
	}
	if openingCurrency != req.CurrencyCode {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, openingCurrency); err != nil {
			return nil, fmt.Errorf("failed to resolve currency %s: %w", openingCurrency, err)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:              uuid.NewString(),
		Title:                  req.Title,
		Kind:                   kind,
		CurrencyCode:           req.CurrencyCode,
		OpeningBalance:         req.OpeningBalance,
		OpeningBalanceCurrency: openingCurrency,
		Phone:                  req.Phone,
		Email:                  req.Email,
		TaxNumber:              req.TaxNumber,
		IsActive:               true,
		Salary:                 req.Salary,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var opening *domain.Movement
	if req.OpeningBalance.IsPositive() {
		direction, err := accounting.DirectionFor(accounting.EventOpeningBalance, kind)
		if err != nil {
			return nil, err
		}
		opening = &domain.Movement{
			MovementID:      ulid.Make().String(),
			AccountID:       account.AccountID,
			Direction:       direction,
			Amount:          req.OpeningBalance,
			CurrencyCode:    openingCurrency,
			ExchangeRate:    decimal.NewFromInt(1),
			SourceKind:      domain.SourceOpeningBalance,
			SourceID:        account.AccountID,
			Description:     "Opening balance",
			TransactionDate: now,
			AuditFields:     account.AuditFields,
		}
	}

	if err := s.accountRepo.SaveAccount(ctx, account, opening); err != nil {
		logger.Error("Failed to save account", slog.String("title", req.Title), slog.Any("error", err))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created",
		slog.String("account_id", account.AccountID),
		slog.String("kind", string(kind)),
		slog.Bool("opening_movement", opening != nil))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, kind *domain.AccountKind, onlyActive bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, kind, onlyActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}

	if req.Title != nil {
		account.Title = *req.Title
	}
	if req.Phone != nil {
		account.Phone = *req.Phone
	}
	if req.Email != nil {
		account.Email = *req.Email
	}
	if req.TaxNumber != nil {
		account.TaxNumber = *req.TaxNumber
	}
	if req.Salary != nil {
		if account.Kind != domain.Employee {
			return nil, fmt.Errorf("%w: only employee accounts carry a salary", apperrors.ErrValidation)
		}
		if req.Salary.IsNegative() {
			return nil, fmt.Errorf("%w: salary cannot be negative", apperrors.ErrValidation)
		}
		account.Salary = req.Salary
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = updaterUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}
	return account, nil
}

// DeactivateAccount soft-deletes the account. The movement history stays;
// balances and statements over it remain queryable.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, updaterUserID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, updaterUserID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	return nil
}
