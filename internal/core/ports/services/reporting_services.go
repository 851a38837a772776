package services

import (
	"context"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
)

// ReportingService defines the dashboard aggregate queries.
type ReportingService interface {
	// GetDashboardSummary returns per-currency totals plus top debtor and
	// creditor lists derived from the movement stream.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
