package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
	"github.com/onmuhasebe/cari_ledger_app/internal/utils/accounting"
)

// accrualDayOfMonth is the fixed transaction date for salary movements.
const accrualDayOfMonth = 28

type salaryService struct {
	accrualRepo portsrepo.SalaryAccrualRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
}

// NewSalaryService creates a new salary accrual service.
func NewSalaryService(accrualRepo portsrepo.SalaryAccrualRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade) portssvc.SalarySvcFacade {
	return &salaryService{
		accrualRepo: accrualRepo,
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
	}
}

var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

// AccrueSalaries runs the monthly accrual. Each employee gets one credit
// movement per calendar month at most; a unique constraint on
// (account, year, month) backs the idempotency, so two concurrent runs for
// the same month cannot double-accrue. Employees without a defined salary
// and employees already accrued are reported as skipped, never as errors.
func (s *salaryService) AccrueSalaries(ctx context.Context, month, year int, accountID *string, creatorUserID string) ([]domain.AccrualResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12, got %d", apperrors.ErrValidation, month)
	}

	var employees []domain.Account
	if accountID != nil {
		account, err := s.accountRepo.FindAccountByID(ctx, *accountID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve account %s: %w", *accountID, err)
		}
		if account.Kind != domain.Employee {
			return nil, fmt.Errorf("%w: account %s is a %s, salary accrual requires an employee", apperrors.ErrInvalidState, *accountID, account.Kind)
		}
		employees = []domain.Account{*account}
	} else {
		kind := domain.Employee
		var err error
		employees, err = s.accountRepo.ListAccounts(ctx, &kind, true)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}
	}

	accrualDate := time.Date(year, time.Month(month), accrualDayOfMonth, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	results := make([]domain.AccrualResult, 0, len(employees))

	for _, employee := range employees {
		result := domain.AccrualResult{
			AccountID: employee.AccountID,
			Employee:  employee.Title,
		}

		if employee.Salary == nil || !employee.Salary.IsPositive() {
			result.Status = domain.AccrualSkipped
			result.NetPayable = decimal.Zero
			results = append(results, result)
			continue
		}
		result.NetPayable = *employee.Salary

		exists, err := s.accrualRepo.HasAccrualForPeriod(ctx, employee.AccountID, year, month)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing accrual for %s: %w", employee.AccountID, err)
		}
		if exists {
			result.Status = domain.AccrualSkipped
			results = append(results, result)
			continue
		}

		accrual := domain.SalaryAccrual{
			AccrualID:   uuid.NewString(),
			AccountID:   employee.AccountID,
			PeriodMonth: month,
			PeriodYear:  year,
			NetPayable:  *employee.Salary,
			AccrualDate: accrualDate,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}

		direction, err := accounting.DirectionFor(accounting.EventSalaryAccrual, employee.Kind)
		if err != nil {
			return nil, err
		}
		// The ledger engine re-resolves the account and rejects inactive
		// ones, so a deactivated employee named explicitly cannot accrue.
		movement, err := s.ledgerSvc.PrepareMovement(ctx, dto.RecordMovementInput{
			AccountID:       employee.AccountID,
			Direction:       direction,
			Amount:          *employee.Salary,
			CurrencyCode:    domain.BaseCurrencyCode,
			ExchangeRate:    decimal.NewFromInt(1),
			SourceKind:      domain.SourceSalaryAccrual,
			SourceID:        accrual.AccrualID,
			Description:     fmt.Sprintf("Salary %04d-%02d", year, month),
			TransactionDate: accrualDate,
			UserID:          creatorUserID,
		})
		if err != nil {
			return nil, err
		}

		if err := s.accrualRepo.SaveAccrual(ctx, accrual, movement); err != nil {
			// Lost the race with a concurrent run for the same month.
			if errors.Is(err, apperrors.ErrDuplicate) {
				result.Status = domain.AccrualSkipped
				results = append(results, result)
				continue
			}
			return nil, fmt.Errorf("failed to save accrual for %s: %w", employee.AccountID, err)
		}
		result.Status = domain.AccrualSuccess
		results = append(results, result)
	}

	logger.Info("Salary accrual run finished",
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("employees", len(results)))
	return results, nil
}
