package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	"github.com/onmuhasebe/cari_ledger_app/internal/models"
	"github.com/onmuhasebe/cari_ledger_app/internal/utils/mapping"
)

const exchangeRateColumns = `exchange_rate_id, currency_code, rate, rate_date,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate appends a rate row. The history is append-only; existing
// rows are never updated.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	query := `
		INSERT INTO exchange_rates (` + exchangeRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExchangeRateID,
		m.CurrencyCode,
		m.Rate,
		m.RateDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save exchange rate for %s: %w", m.CurrencyCode, err)
	}
	return nil
}

// FindLatestRate retrieves the most recent rate dated at or before asOf.
func (r *PgxExchangeRateRepository) FindLatestRate(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_code = $1 AND rate_date <= $2
		ORDER BY rate_date DESC, created_at DESC
		LIMIT 1;
	`
	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, currencyCode, asOf).Scan(
		&m.ExchangeRateID,
		&m.CurrencyCode,
		&m.Rate,
		&m.RateDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no exchange rate for %s at or before %s: %w", currencyCode, asOf.Format("2006-01-02"), apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find latest rate for %s: %w", currencyCode, err)
	}

	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// ListRates retrieves the rate history for a currency, newest first.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE currency_code = $1
		ORDER BY rate_date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates for %s: %w", currencyCode, err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var m models.ExchangeRate
		err := row.Scan(
			&m.ExchangeRateID,
			&m.CurrencyCode,
			&m.Rate,
			&m.RateDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}
	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}
