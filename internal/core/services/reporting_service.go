package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
)

// topAccountsLimit bounds the debtor and creditor lists on the dashboard.
const topAccountsLimit = 5

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// GetDashboardSummary aggregates the movement stream into per-currency
// totals plus the top debtors (positive balances, they owe us) and top
// creditors (negative balances, we owe them).
func (s *reportingService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	totals, err := s.reportingRepo.GetCurrencyTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate currency totals: %w", err)
	}

	balances, err := s.reportingRepo.GetAccountBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate account balances: %w", err)
	}

	debtors := make([]domain.AccountBalance, 0)
	creditors := make([]domain.AccountBalance, 0)
	for _, b := range balances {
		switch {
		case b.Balance.IsPositive():
			debtors = append(debtors, b)
		case b.Balance.IsNegative():
			creditors = append(creditors, b)
		}
	}
	sort.Slice(debtors, func(i, j int) bool {
		return debtors[i].Balance.GreaterThan(debtors[j].Balance)
	})
	sort.Slice(creditors, func(i, j int) bool {
		return creditors[i].Balance.LessThan(creditors[j].Balance)
	})
	if len(debtors) > topAccountsLimit {
		debtors = debtors[:topAccountsLimit]
	}
	if len(creditors) > topAccountsLimit {
		creditors = creditors[:topAccountsLimit]
	}

	return &domain.DashboardSummary{
		ByCurrency:   totals,
		TopDebtors:   debtors,
		TopCreditors: creditors,
	}, nil
}
