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

type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	rateSvc     portssvc.ExchangeRateSvcFacade
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	rateSvc portssvc.ExchangeRateSvcFacade,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
		rateSvc:     rateSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) buildPayment(ctx context.Context, paymentID string, req dto.CreatePaymentRequest, userID string, createdAt time.Time) (domain.Payment, domain.Movement, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return domain.Payment{}, domain.Movement{}, fmt.Errorf("failed to resolve account %s: %w", req.AccountID, err)
	}

	paymentType := domain.PaymentType(req.PaymentType)
	event := accounting.EventCollection
	if paymentType == domain.PaymentOut {
		event = accounting.EventPayment
	}
	direction, err := accounting.DirectionFor(event, account.Kind)
	if err != nil {
		return domain.Payment{}, domain.Movement{}, err
	}

	var rate decimal.Decimal
	if req.ExchangeRate != nil {
		if req.ExchangeRate.LessThanOrEqual(decimal.Zero) {
			return domain.Payment{}, domain.Movement{}, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		rate = *req.ExchangeRate
	} else {
		rate, err = s.rateSvc.CurrentRate(ctx, req.CurrencyCode, req.PaymentDate)
		if err != nil {
			return domain.Payment{}, domain.Movement{}, err
		}
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:    paymentID,
		AccountID:    req.AccountID,
		PaymentType:  paymentType,
		Method:       domain.PaymentMethod(req.Method),
		Amount:       req.Amount,
		CurrencyCode: req.CurrencyCode,
		ExchangeRate: rate,
		PaymentDate:  req.PaymentDate,
		Description:  req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	prefix := "Collection"
	if paymentType == domain.PaymentOut {
		prefix = "Payment"
	}
	movement, err := s.ledgerSvc.PrepareMovement(ctx, dto.RecordMovementInput{
		AccountID:       req.AccountID,
		Direction:       direction,
		Amount:          req.Amount,
		CurrencyCode:    req.CurrencyCode,
		ExchangeRate:    rate,
		SourceKind:      domain.SourcePayment,
		SourceID:        paymentID,
		Description:     movementDescription(prefix, "", req.Description),
		TransactionDate: req.PaymentDate,
		UserID:          userID,
	})
	if err != nil {
		return domain.Payment{}, domain.Movement{}, err
	}
	return payment, movement, nil
}

// PostPayment records a collection from or a payment to a cari account: the
// payment row plus a single movement, written atomically. A collection
// credits the account (the counterparty owes us less), a payment debits it.
func (s *paymentService) PostPayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	paymentID := uuid.NewString()
	payment, movement, err := s.buildPayment(ctx, paymentID, req, creatorUserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.SavePayment(ctx, payment, movement); err != nil {
		logger.Error("Failed to save payment", slog.String("account_id", req.AccountID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", paymentID),
		slog.String("account_id", req.AccountID),
		slog.String("payment_type", req.PaymentType),
		slog.String("amount", req.Amount.String()))
	return &payment, nil
}

func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.CreatePaymentRequest, updaterUserID string) (*domain.Payment, error) {
	existing, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment %s: %w", paymentID, err)
	}
	if req.AccountID != existing.AccountID {
		return nil, fmt.Errorf("%w: a payment cannot be moved to another account", apperrors.ErrValidation)
	}

	payment, movement, err := s.buildPayment(ctx, paymentID, req, updaterUserID, existing.CreatedAt)
	if err != nil {
		return nil, err
	}
	payment.CreatedBy = existing.CreatedBy

	if err := s.paymentRepo.UpdatePayment(ctx, payment, movement); err != nil {
		return nil, fmt.Errorf("failed to update payment %s: %w", paymentID, err)
	}
	return &payment, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, paymentID string) error {
	if _, err := s.paymentRepo.FindPaymentByID(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to fetch payment %s: %w", paymentID, err)
	}
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	return nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment %s: %w", paymentID, err)
	}
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
