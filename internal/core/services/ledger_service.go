package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

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

// ledgerService is the ledger engine: it constructs validated movements for
// the document workflows and derives balances and statements from the
// movement stream. It never opens a transaction of its own; appends happen
// through the movement repository inside the calling workflow's transaction.
type ledgerService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	movementRepo portsrepo.MovementRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(movementRepo portsrepo.MovementRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo:  accountRepo,
		movementRepo: movementRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PrepareMovement validates the input and constructs the immutable movement.
// Movement IDs are ULIDs so that IDs sort in insertion order, which is what
// makes statement replay deterministic for same-day movements.
func (s *ledgerService) PrepareMovement(ctx context.Context, in dto.RecordMovementInput) (domain.Movement, error) {
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.Movement{}, fmt.Errorf("%w: movement amount must be positive, got %s", apperrors.ErrValidation, in.Amount.String())
	}
	if in.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		return domain.Movement{}, fmt.Errorf("%w: exchange rate must be positive, got %s", apperrors.ErrValidation, in.ExchangeRate.String())
	}
	if in.Direction != domain.Debit && in.Direction != domain.Credit {
		return domain.Movement{}, fmt.Errorf("%w: unknown direction '%s'", apperrors.ErrValidation, in.Direction)
	}
	if in.SourceID == "" {
		return domain.Movement{}, fmt.Errorf("%w: movement source ID is required", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, in.AccountID)
	if err != nil {
		return domain.Movement{}, fmt.Errorf("failed to resolve account %s: %w", in.AccountID, err)
	}
	if !account.IsActive {
		return domain.Movement{}, fmt.Errorf("%w: account %s is inactive", apperrors.ErrInvalidState, in.AccountID)
	}

	now := time.Now().UTC()
	return domain.Movement{
		MovementID:      ulid.Make().String(),
		AccountID:       in.AccountID,
		Direction:       in.Direction,
		Amount:          in.Amount,
		CurrencyCode:    in.CurrencyCode,
		ExchangeRate:    in.ExchangeRate,
		SourceKind:      in.SourceKind,
		SourceID:        in.SourceID,
		Description:     in.Description,
		TransactionDate: in.TransactionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     in.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: in.UserID,
		},
	}, nil
}

// GetBalance computes the signed balance for one account and currency over
// the whole history: sum of debits minus sum of credits. Always derived on
// read; nothing is cached.
func (s *ledgerService) GetBalance(ctx context.Context, accountID, currencyCode string) (decimal.Decimal, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve account %s: %w", accountID, err)
	}

	debit, credit, err := s.movementRepo.SumMovements(ctx, accountID, currencyCode, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum movements for account %s: %w", accountID, err)
	}
	return debit.Sub(credit), nil
}

// MovementsForSource retrieves the movements owned by one document, so
// handlers can show the ledger effect alongside the document itself.
func (s *ledgerService) MovementsForSource(ctx context.Context, sourceKind domain.SourceKind, sourceID string) ([]domain.Movement, error) {
	movements, err := s.movementRepo.FindMovementsBySource(ctx, sourceKind, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movements for %s %s: %w", sourceKind, sourceID, err)
	}
	return movements, nil
}

// BuildStatement replays the account's movements in one currency. With a
// start date, the first line is the synthetic opening carry-forward: the
// net of everything strictly before it. Lines are ordered by transaction
// date, ties broken by movement ID (insertion order); running the same
// query twice over unchanged data yields identical output.
func (s *ledgerService) BuildStatement(ctx context.Context, accountID, currencyCode string, from, to *time.Time) ([]domain.StatementLine, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to resolve account %s: %w", accountID, err)
	}

	lines := []domain.StatementLine{}
	running := decimal.Zero

	if from != nil {
		debit, credit, err := s.movementRepo.SumMovements(ctx, accountID, currencyCode, from)
		if err != nil {
			return nil, fmt.Errorf("failed to compute opening balance: %w", err)
		}
		running = debit.Sub(credit)
		lines = append(lines, domain.StatementLine{
			Date:           *from,
			SourceKind:     domain.SourceOpeningCarryforward,
			Description:    "Opening balance carried forward",
			DebitAmount:    decimal.Zero,
			CreditAmount:   decimal.Zero,
			RunningBalance: running,
		})
	}

	movements, err := s.movementRepo.FindMovements(ctx, accountID, currencyCode, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movements for statement: %w", err)
	}

	for _, m := range movements {
		line := domain.StatementLine{
			Date:        m.TransactionDate,
			SourceKind:  m.SourceKind,
			Description: m.Description,
		}
		if m.Direction == domain.Debit {
			line.DebitAmount = m.Amount
		} else {
			line.CreditAmount = m.Amount
		}
		running = running.Add(accounting.SignedAmount(m.Direction, m.Amount))
		line.RunningBalance = running
		lines = append(lines, line)
	}

	logger.Debug("Statement built",
		slog.String("account_id", accountID),
		slog.String("currency_code", currencyCode),
		slog.Int("line_count", len(lines)))
	return lines, nil
}
