package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetCurrencyTotals aggregates the whole movement stream into debit and
// credit sums per currency.
func (r *PgxReportingRepository) GetCurrencyTotals(ctx context.Context) ([]domain.CurrencyTotals, error) {
	query := `
		SELECT
			currency_code,
			COALESCE(SUM(CASE WHEN direction = 'DEBIT' THEN amount ELSE 0 END), 0) AS total_debit,
			COALESCE(SUM(CASE WHEN direction = 'CREDIT' THEN amount ELSE 0 END), 0) AS total_credit
		FROM movements
		GROUP BY currency_code
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency totals: %w", err)
	}
	defer rows.Close()

	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CurrencyTotals, error) {
		var t domain.CurrencyTotals
		err := row.Scan(&t.CurrencyCode, &t.TotalDebit, &t.TotalCredit)
		if err == nil {
			t.Balance = t.TotalDebit.Sub(t.TotalCredit)
		}
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currency totals: %w", err)
	}
	return totals, nil
}

// GetAccountBalances derives the balance of every (account, currency) pair
// that has movements, joined to account metadata.
func (r *PgxReportingRepository) GetAccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	query := `
		SELECT
			a.account_id,
			a.title,
			a.kind,
			m.currency_code,
			COALESCE(SUM(CASE WHEN m.direction = 'DEBIT' THEN m.amount ELSE -m.amount END), 0) AS balance
		FROM movements m
		JOIN accounts a ON a.account_id = m.account_id
		GROUP BY a.account_id, a.title, a.kind, m.currency_code
		ORDER BY a.title, m.currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer rows.Close()

	balances, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AccountBalance, error) {
		var b domain.AccountBalance
		var kind string
		err := row.Scan(&b.AccountID, &b.Title, &kind, &b.CurrencyCode, &b.Balance)
		b.Kind = domain.AccountKind(kind)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan account balances: %w", err)
	}
	return balances, nil
}
