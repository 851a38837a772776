package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	"github.com/onmuhasebe/cari_ledger_app/internal/utils/mapping"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolationCode = "23505"

type PgxSalaryAccrualRepository struct {
	BaseRepository
	movementRepo portsrepo.MovementWriter
}

// newPgxSalaryAccrualRepository creates a new repository for salary accruals.
func newPgxSalaryAccrualRepository(pool *pgxpool.Pool, movementRepo portsrepo.MovementWriter) portsrepo.SalaryAccrualRepositoryFacade {
	return &PgxSalaryAccrualRepository{
		BaseRepository: BaseRepository{Pool: pool},
		movementRepo:   movementRepo,
	}
}

var _ portsrepo.SalaryAccrualRepositoryFacade = (*PgxSalaryAccrualRepository)(nil)

// SaveAccrual inserts the accrual row and its movement in one transaction.
// The unique (account_id, period_year, period_month) constraint turns a
// concurrent duplicate run into ErrDuplicate instead of a second accrual.
func (r *PgxSalaryAccrualRepository) SaveAccrual(ctx context.Context, accrual domain.SalaryAccrual, movement domain.Movement) error {
	m := mapping.ToModelSalaryAccrual(accrual)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO salary_accruals (
			accrual_id, account_id, period_month, period_year, net_payable, accrual_date,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		m.AccrualID,
		m.AccountID,
		m.PeriodMonth,
		m.PeriodYear,
		m.NetPayable,
		m.AccrualDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("accrual for account %s period %d-%02d: %w", m.AccountID, m.PeriodYear, m.PeriodMonth, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert accrual %s: %w", m.AccrualID, err)
	}

	if err := r.movementRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to insert movement for accrual %s: %w", m.AccrualID, err)
	}
	return r.Commit(ctx, tx)
}

// HasAccrualForPeriod reports whether an accrual already exists for the
// employee in the given calendar month.
func (r *PgxSalaryAccrualRepository) HasAccrualForPeriod(ctx context.Context, accountID string, year, month int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM salary_accruals
			WHERE account_id = $1 AND period_year = $2 AND period_month = $3
		);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, accountID, year, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check accrual for account %s: %w", accountID, err)
	}
	return exists, nil
}
