package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
)

type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		logger.Error("Failed to save currency", slog.String("currency_code", req.CurrencyCode), slog.Any("error", err))
		return nil, fmt.Errorf("failed to save currency: %w", err)
	}
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	return currencies, nil
}
