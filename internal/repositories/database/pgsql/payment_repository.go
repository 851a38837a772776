package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	"github.com/onmuhasebe/cari_ledger_app/internal/models"
	"github.com/onmuhasebe/cari_ledger_app/internal/utils/mapping"
)

const paymentColumns = `payment_id, account_id, payment_type, method, amount, currency_code, exchange_rate,
		payment_date, description,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
	movementRepo portsrepo.MovementWriter
}

// newPgxPaymentRepository creates a new repository for payments and collections.
func newPgxPaymentRepository(pool *pgxpool.Pool, movementRepo portsrepo.MovementWriter) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		movementRepo:   movementRepo,
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// SavePayment inserts the payment and its movement in one transaction.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, movement domain.Movement) error {
	m := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.PaymentID,
		m.AccountID,
		m.PaymentType,
		m.Method,
		m.Amount,
		m.CurrencyCode,
		m.ExchangeRate,
		m.PaymentDate,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment %s: %w", m.PaymentID, err)
	}

	if err := r.movementRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to insert movement for payment %s: %w", m.PaymentID, err)
	}
	return r.Commit(ctx, tx)
}

// UpdatePayment updates the payment row and replaces its movement,
// atomically.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment, movement domain.Movement) error {
	m := mapping.ToModelPayment(payment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE payments
		SET payment_type = $2, method = $3, amount = $4, currency_code = $5, exchange_rate = $6,
			payment_date = $7, description = $8, last_updated_at = $9, last_updated_by = $10
		WHERE payment_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.PaymentType,
		m.Method,
		m.Amount,
		m.CurrencyCode,
		m.ExchangeRate,
		m.PaymentDate,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment %s: %w", m.PaymentID, apperrors.ErrNotFound)
	}

	if err := r.movementRepo.DeleteMovementsBySourceInTx(ctx, tx, domain.SourcePayment, payment.PaymentID); err != nil {
		return err
	}
	if err := r.movementRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to insert movement for payment %s: %w", m.PaymentID, err)
	}
	return r.Commit(ctx, tx)
}

// DeletePayment removes the movement and the payment row in one transaction.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.movementRepo.DeleteMovementsBySourceInTx(ctx, tx, domain.SourcePayment, paymentID); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM payments WHERE payment_id = $1;`, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
	}
	return r.Commit(ctx, tx)
}

// FindPaymentByID retrieves a payment.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE payment_id = $1;
	`
	var m models.Payment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID,
		&m.AccountID,
		&m.PaymentType,
		&m.Method,
		&m.Amount,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.PaymentDate,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}

	d := mapping.ToDomainPayment(m)
	return &d, nil
}

// ListPayments retrieves payments, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		ORDER BY payment_date DESC, payment_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		var m models.Payment
		err := row.Scan(
			&m.PaymentID,
			&m.AccountID,
			&m.PaymentType,
			&m.Method,
			&m.Amount,
			&m.CurrencyCode,
			&m.ExchangeRate,
			&m.PaymentDate,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}
	return mapping.ToDomainPaymentSlice(modelPayments), nil
}
