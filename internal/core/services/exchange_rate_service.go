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
)

type exchangeRateService struct {
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CurrencyCode == domain.BaseCurrencyCode {
		return nil, fmt.Errorf("%w: the base currency %s does not take exchange rates", apperrors.ErrValidation, domain.BaseCurrencyCode)
	}
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		return nil, fmt.Errorf("failed to resolve currency %s: %w", req.CurrencyCode, err)
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		CurrencyCode:   req.CurrencyCode,
		Rate:           req.Rate,
		RateDate:       req.RateDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save exchange rate", slog.String("currency_code", req.CurrencyCode), slog.Any("error", err))
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}
	return &rate, nil
}

// CurrentRate resolves the conversion rate for a currency as of asOf. The
// base currency is always 1. A foreign currency with no rate on record is
// an error, never a silent fallback.
func (s *exchangeRateService) CurrentRate(ctx context.Context, currencyCode string, asOf time.Time) (decimal.Decimal, error) {
	if currencyCode == domain.BaseCurrencyCode {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.FindLatestRate(ctx, currencyCode, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve exchange rate for %s as of %s: %w", currencyCode, asOf.Format("2006-01-02"), err)
	}
	return rate.Rate, nil
}

func (s *exchangeRateService) ListRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRates(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates for %s: %w", currencyCode, err)
	}
	return rates, nil
}
