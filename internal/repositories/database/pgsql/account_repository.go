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

const accountColumns = `account_id, title, kind, currency_code, opening_balance, opening_balance_currency,
		phone, email, tax_number, is_active, salary,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
	movementRepo portsrepo.MovementWriter
}

// newPgxAccountRepository creates a new repository for cari account data.
func newPgxAccountRepository(pool *pgxpool.Pool, movementRepo portsrepo.MovementWriter) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
		movementRepo:   movementRepo,
	}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount persists the account and, when present, its opening-balance
// movement in one database transaction. Either both rows land or neither.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account, opening *domain.Movement) error {
	m := mapping.ToModelAccount(account)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = tx.Exec(ctx, query,
		m.AccountID,
		m.Title,
		m.Kind,
		m.CurrencyCode,
		m.OpeningBalance,
		m.OpeningBalanceCurrency,
		m.Phone,
		m.Email,
		m.TaxNumber,
		m.IsActive,
		m.Salary,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account %s: %w", m.AccountID, err)
	}

	if opening != nil {
		if err := r.movementRepo.InsertMovementInTx(ctx, tx, *opening); err != nil {
			return fmt.Errorf("failed to insert opening movement for account %s: %w", m.AccountID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindAccountByID retrieves a specific account by its unique identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1;
	`
	var m models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&m.AccountID,
		&m.Title,
		&m.Kind,
		&m.CurrencyCode,
		&m.OpeningBalance,
		&m.OpeningBalanceCurrency,
		&m.Phone,
		&m.Email,
		&m.TaxNumber,
		&m.IsActive,
		&m.Salary,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// ListAccounts retrieves accounts ordered by title, optionally filtered by
// kind and restricted to active ones.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, kind *domain.AccountKind, onlyActive bool) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE 1=1
	`
	args := []any{}
	if kind != nil {
		args = append(args, string(*kind))
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if onlyActive {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY title ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		var m models.Account
		err := row.Scan(
			&m.AccountID,
			&m.Title,
			&m.Kind,
			&m.CurrencyCode,
			&m.OpeningBalance,
			&m.OpeningBalanceCurrency,
			&m.Phone,
			&m.Email,
			&m.TaxNumber,
			&m.IsActive,
			&m.Salary,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// UpdateAccount updates an existing account's mutable details.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET title = $2, phone = $3, email = $4, tax_number = $5, is_active = $6, salary = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountID,
		m.Title,
		m.Phone,
		m.Email,
		m.TaxNumber,
		m.IsActive,
		m.Salary,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", m.AccountID, apperrors.ErrNotFound)
	}
	return nil
}

// DeactivateAccount marks an account as inactive. Its movement history is
// untouched.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}
