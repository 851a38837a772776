package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	"github.com/onmuhasebe/cari_ledger_app/internal/models"
	"github.com/onmuhasebe/cari_ledger_app/internal/utils/mapping"
)

const movementColumns = `movement_id, account_id, direction, amount, currency_code, exchange_rate,
		source_kind, source_id, description, transaction_date,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for the movement stream.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

// InsertMovementInTx appends one movement within the caller's transaction.
// Movements are only ever written alongside their owning document.
func (r *PgxMovementRepository) InsertMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	m := mapping.ToModelMovement(movement)
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		m.MovementID,
		m.AccountID,
		m.Direction,
		m.Amount,
		m.CurrencyCode,
		m.ExchangeRate,
		m.SourceKind,
		m.SourceID,
		m.Description,
		m.TransactionDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert movement %s: %w", m.MovementID, err)
	}
	return nil
}

// DeleteMovementsBySourceInTx removes the movements owned by one document
// within the caller's transaction.
func (r *PgxMovementRepository) DeleteMovementsBySourceInTx(ctx context.Context, tx pgx.Tx, sourceKind domain.SourceKind, sourceID string) error {
	query := `DELETE FROM movements WHERE source_kind = $1 AND source_id = $2;`
	_, err := tx.Exec(ctx, query, string(sourceKind), sourceID)
	if err != nil {
		return fmt.Errorf("failed to delete movements for %s %s: %w", sourceKind, sourceID, err)
	}
	return nil
}

// FindMovements retrieves an account's movements in one currency, optionally
// bounded by [from, to]. Ordered by transaction date then movement ID; the
// IDs are ULIDs, so ties resolve in insertion order.
func (r *PgxMovementRepository) FindMovements(ctx context.Context, accountID, currencyCode string, from, to *time.Time) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE account_id = $1 AND currency_code = $2
	`
	args := []any{accountID, currencyCode}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND transaction_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND transaction_date <= $%d", len(args))
	}
	query += " ORDER BY transaction_date ASC, movement_id ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for account %s: %w", accountID, err)
	}
	defer rows.Close()

	modelMovements, err := pgx.CollectRows(rows, scanMovement)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Movement{}, nil
		}
		return nil, fmt.Errorf("failed to scan movements: %w", err)
	}
	return mapping.ToDomainMovementSlice(modelMovements), nil
}

// SumMovements returns debit and credit totals for one account and currency,
// counting only movements dated strictly before `before` when it is set.
func (r *PgxMovementRepository) SumMovements(ctx context.Context, accountID, currencyCode string, before *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN direction = 'DEBIT' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN direction = 'CREDIT' THEN amount ELSE 0 END), 0)
		FROM movements
		WHERE account_id = $1 AND currency_code = $2
	`
	args := []any{accountID, currencyCode}
	if before != nil {
		args = append(args, *before)
		query += fmt.Sprintf(" AND transaction_date < $%d", len(args))
	}
	query += ";"

	var debit, credit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum movements for account %s: %w", accountID, err)
	}
	return debit, credit, nil
}

// FindMovementsBySource retrieves the movements owned by one document.
func (r *PgxMovementRepository) FindMovementsBySource(ctx context.Context, sourceKind domain.SourceKind, sourceID string) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE source_kind = $1 AND source_id = $2
		ORDER BY movement_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, string(sourceKind), sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for %s %s: %w", sourceKind, sourceID, err)
	}
	defer rows.Close()

	modelMovements, err := pgx.CollectRows(rows, scanMovement)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Movement{}, nil
		}
		return nil, fmt.Errorf("failed to scan movements: %w", err)
	}
	return mapping.ToDomainMovementSlice(modelMovements), nil
}

func scanMovement(row pgx.CollectableRow) (models.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.AccountID,
		&m.Direction,
		&m.Amount,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.SourceKind,
		&m.SourceID,
		&m.Description,
		&m.TransactionDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
