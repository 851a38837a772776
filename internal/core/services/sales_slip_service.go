package services

import (
	"context"
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

type salesSlipService struct {
	slipRepo    portsrepo.SalesSlipRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	rateSvc     portssvc.ExchangeRateSvcFacade
}

// NewSalesSlipService creates a new sales slip service.
func NewSalesSlipService(
	slipRepo portsrepo.SalesSlipRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	rateSvc portssvc.ExchangeRateSvcFacade,
) portssvc.SalesSlipSvcFacade {
	return &salesSlipService{
		slipRepo:    slipRepo,
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
		rateSvc:     rateSvc,
	}
}

var _ portssvc.SalesSlipSvcFacade = (*salesSlipService)(nil)

func (s *salesSlipService) buildSalesSlip(ctx context.Context, salesSlipID string, req dto.CreateSalesSlipRequest, userID string, createdAt time.Time) (domain.SalesSlip, domain.Movement, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, req.CustomerID)
	if err != nil {
		return domain.SalesSlip{}, domain.Movement{}, fmt.Errorf("failed to resolve customer %s: %w", req.CustomerID, err)
	}
	if account.Kind != domain.Customer {
		return domain.SalesSlip{}, domain.Movement{}, fmt.Errorf("%w: account %s is a %s, sales slips require a customer", apperrors.ErrInvalidState, req.CustomerID, account.Kind)
	}

	var rate decimal.Decimal
	if req.ExchangeRate != nil {
		if req.ExchangeRate.LessThanOrEqual(decimal.Zero) {
			return domain.SalesSlip{}, domain.Movement{}, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		rate = *req.ExchangeRate
	} else {
		rate, err = s.rateSvc.CurrentRate(ctx, req.CurrencyCode, req.SlipDate)
		if err != nil {
			return domain.SalesSlip{}, domain.Movement{}, err
		}
	}

	now := time.Now().UTC()
	lines := make([]domain.SalesSlipLine, len(req.Lines))
	lineTotals := make([]decimal.Decimal, len(req.Lines))
	for i, l := range req.Lines {
		total := accounting.LineTotal(l.Quantity, l.UnitPrice, decimal.Zero, l.VATRate)
		lines[i] = domain.SalesSlipLine{
			LineID:      uuid.NewString(),
			SalesSlipID: salesSlipID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
			LineTotal:   total,
		}
		lineTotals[i] = total
	}
	total := accounting.DocumentTotal(lineTotals)

	slip := domain.SalesSlip{
		SalesSlipID:  salesSlipID,
		CustomerID:   req.CustomerID,
		SlipDate:     req.SlipDate,
		CurrencyCode: req.CurrencyCode,
		ExchangeRate: rate,
		Total:        total,
		Description:  req.Description,
		Lines:        lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	direction, err := accounting.DirectionFor(accounting.EventSale, account.Kind)
	if err != nil {
		return domain.SalesSlip{}, domain.Movement{}, err
	}
	movement, err := s.ledgerSvc.PrepareMovement(ctx, dto.RecordMovementInput{
		AccountID:       req.CustomerID,
		Direction:       direction,
		Amount:          total,
		CurrencyCode:    req.CurrencyCode,
		ExchangeRate:    rate,
		SourceKind:      domain.SourceSalesSlip,
		SourceID:        salesSlipID,
		Description:     movementDescription("Sales slip", "", req.Description),
		TransactionDate: req.SlipDate,
		UserID:          userID,
	})
	if err != nil {
		return domain.SalesSlip{}, domain.Movement{}, err
	}
	return slip, movement, nil
}

// PostSalesSlip materializes a sale: the slip, its lines and a single debit
// movement on the customer, written atomically.
func (s *salesSlipService) PostSalesSlip(ctx context.Context, req dto.CreateSalesSlipRequest, creatorUserID string) (*domain.SalesSlip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	salesSlipID := uuid.NewString()
	slip, movement, err := s.buildSalesSlip(ctx, salesSlipID, req, creatorUserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.slipRepo.SaveSalesSlip(ctx, slip, movement); err != nil {
		logger.Error("Failed to save sales slip", slog.String("customer_id", req.CustomerID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to save sales slip: %w", err)
	}

	logger.Info("Sales slip posted",
		slog.String("sales_slip_id", salesSlipID),
		slog.String("customer_id", req.CustomerID),
		slog.String("total", slip.Total.String()))
	return &slip, nil
}

func (s *salesSlipService) UpdateSalesSlip(ctx context.Context, salesSlipID string, req dto.CreateSalesSlipRequest, updaterUserID string) (*domain.SalesSlip, error) {
	existing, err := s.slipRepo.FindSalesSlipByID(ctx, salesSlipID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales slip %s: %w", salesSlipID, err)
	}
	if req.CustomerID != existing.CustomerID {
		return nil, fmt.Errorf("%w: a sales slip cannot be moved to another customer", apperrors.ErrValidation)
	}

	slip, movement, err := s.buildSalesSlip(ctx, salesSlipID, req, updaterUserID, existing.CreatedAt)
	if err != nil {
		return nil, err
	}
	slip.CreatedBy = existing.CreatedBy

	if err := s.slipRepo.UpdateSalesSlip(ctx, slip, movement); err != nil {
		return nil, fmt.Errorf("failed to update sales slip %s: %w", salesSlipID, err)
	}
	return &slip, nil
}

func (s *salesSlipService) DeleteSalesSlip(ctx context.Context, salesSlipID string) error {
	if _, err := s.slipRepo.FindSalesSlipByID(ctx, salesSlipID); err != nil {
		return fmt.Errorf("failed to fetch sales slip %s: %w", salesSlipID, err)
	}
	if err := s.slipRepo.DeleteSalesSlip(ctx, salesSlipID); err != nil {
		return fmt.Errorf("failed to delete sales slip %s: %w", salesSlipID, err)
	}
	return nil
}

func (s *salesSlipService) GetSalesSlipByID(ctx context.Context, salesSlipID string) (*domain.SalesSlip, error) {
	slip, err := s.slipRepo.FindSalesSlipByID(ctx, salesSlipID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales slip %s: %w", salesSlipID, err)
	}
	return slip, nil
}

func (s *salesSlipService) ListSalesSlips(ctx context.Context) ([]domain.SalesSlip, error) {
	slips, err := s.slipRepo.ListSalesSlips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales slips: %w", err)
	}
	return slips, nil
}
