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

const salesSlipColumns = `sales_slip_id, customer_id, slip_date, currency_code, exchange_rate,
		total, description,
		created_at, created_by, last_updated_at, last_updated_by`

const salesSlipLineInsert = `
	INSERT INTO sales_slip_lines (line_id, sales_slip_id, description, quantity, unit_price, vat_rate, line_total)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

type PgxSalesSlipRepository struct {
	BaseRepository
	movementRepo portsrepo.MovementWriter
}

// newPgxSalesSlipRepository creates a new repository for sales slips.
func newPgxSalesSlipRepository(pool *pgxpool.Pool, movementRepo portsrepo.MovementWriter) portsrepo.SalesSlipRepositoryFacade {
	return &PgxSalesSlipRepository{
		BaseRepository: BaseRepository{Pool: pool},
		movementRepo:   movementRepo,
	}
}

var _ portsrepo.SalesSlipRepositoryFacade = (*PgxSalesSlipRepository)(nil)

// SaveSalesSlip inserts the slip, its lines and the customer movement in
// one database transaction.
func (r *PgxSalesSlipRepository) SaveSalesSlip(ctx context.Context, slip domain.SalesSlip, movement domain.Movement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertSalesSlipInTx(ctx, tx, slip); err != nil {
		return err
	}
	if err := r.movementRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to insert movement for sales slip %s: %w", slip.SalesSlipID, err)
	}
	return r.Commit(ctx, tx)
}

// UpdateSalesSlip replaces the slip's lines and movement with the recomputed
// ones and updates the document row, atomically.
func (r *PgxSalesSlipRepository) UpdateSalesSlip(ctx context.Context, slip domain.SalesSlip, movement domain.Movement) error {
	m := mapping.ToModelSalesSlip(slip)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE sales_slips
		SET slip_date = $2, currency_code = $3, exchange_rate = $4, total = $5, description = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE sales_slip_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.SalesSlipID,
		m.SlipDate,
		m.CurrencyCode,
		m.ExchangeRate,
		m.Total,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update sales slip %s: %w", m.SalesSlipID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sales slip %s: %w", m.SalesSlipID, apperrors.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sales_slip_lines WHERE sales_slip_id = $1;`, m.SalesSlipID); err != nil {
		return fmt.Errorf("failed to delete lines of sales slip %s: %w", m.SalesSlipID, err)
	}
	if err := r.insertSalesSlipLinesInTx(ctx, tx, slip.Lines); err != nil {
		return err
	}

	if err := r.movementRepo.DeleteMovementsBySourceInTx(ctx, tx, domain.SourceSalesSlip, slip.SalesSlipID); err != nil {
		return err
	}
	if err := r.movementRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to insert movement for sales slip %s: %w", slip.SalesSlipID, err)
	}
	return r.Commit(ctx, tx)
}

// DeleteSalesSlip removes the movement, lines and slip row in one
// transaction.
func (r *PgxSalesSlipRepository) DeleteSalesSlip(ctx context.Context, salesSlipID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.movementRepo.DeleteMovementsBySourceInTx(ctx, tx, domain.SourceSalesSlip, salesSlipID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM sales_slip_lines WHERE sales_slip_id = $1;`, salesSlipID); err != nil {
		return fmt.Errorf("failed to delete lines of sales slip %s: %w", salesSlipID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM sales_slips WHERE sales_slip_id = $1;`, salesSlipID)
	if err != nil {
		return fmt.Errorf("failed to delete sales slip %s: %w", salesSlipID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sales slip %s: %w", salesSlipID, apperrors.ErrNotFound)
	}
	return r.Commit(ctx, tx)
}

// FindSalesSlipByID retrieves a sales slip with its lines.
func (r *PgxSalesSlipRepository) FindSalesSlipByID(ctx context.Context, salesSlipID string) (*domain.SalesSlip, error) {
	query := `
		SELECT ` + salesSlipColumns + `
		FROM sales_slips
		WHERE sales_slip_id = $1;
	`
	var m models.SalesSlip
	err := r.Pool.QueryRow(ctx, query, salesSlipID).Scan(
		&m.SalesSlipID,
		&m.CustomerID,
		&m.SlipDate,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.Total,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sales slip %s: %w", salesSlipID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find sales slip by ID %s: %w", salesSlipID, err)
	}

	lines, err := r.findSalesSlipLines(ctx, salesSlipID)
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainSalesSlip(m, lines)
	return &d, nil
}

// ListSalesSlips retrieves sales slips without their lines, newest first.
func (r *PgxSalesSlipRepository) ListSalesSlips(ctx context.Context) ([]domain.SalesSlip, error) {
	query := `
		SELECT ` + salesSlipColumns + `
		FROM sales_slips
		ORDER BY slip_date DESC, sales_slip_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales slips: %w", err)
	}
	defer rows.Close()

	modelSlips, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SalesSlip, error) {
		var m models.SalesSlip
		err := row.Scan(
			&m.SalesSlipID,
			&m.CustomerID,
			&m.SlipDate,
			&m.CurrencyCode,
			&m.ExchangeRate,
			&m.Total,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales slips: %w", err)
	}

	slips := make([]domain.SalesSlip, len(modelSlips))
	for i, m := range modelSlips {
		slips[i] = mapping.ToDomainSalesSlip(m, nil)
	}
	return slips, nil
}

func (r *PgxSalesSlipRepository) insertSalesSlipInTx(ctx context.Context, tx pgx.Tx, slip domain.SalesSlip) error {
	m := mapping.ToModelSalesSlip(slip)
	query := `
		INSERT INTO sales_slips (` + salesSlipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.SalesSlipID,
		m.CustomerID,
		m.SlipDate,
		m.CurrencyCode,
		m.ExchangeRate,
		m.Total,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sales slip %s: %w", m.SalesSlipID, err)
	}
	return r.insertSalesSlipLinesInTx(ctx, tx, slip.Lines)
}

func (r *PgxSalesSlipRepository) insertSalesSlipLinesInTx(ctx context.Context, tx pgx.Tx, lines []domain.SalesSlipLine) error {
	batch := &pgx.Batch{}
	for _, line := range lines {
		l := mapping.ToModelSalesSlipLine(line)
		batch.Queue(salesSlipLineInsert, l.LineID, l.SalesSlipID, l.Description, l.Quantity, l.UnitPrice, l.VATRate, l.LineTotal)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert sales slip line: %w", err)
		}
	}
	return nil
}

func (r *PgxSalesSlipRepository) findSalesSlipLines(ctx context.Context, salesSlipID string) ([]models.SalesSlipLine, error) {
	query := `
		SELECT line_id, sales_slip_id, description, quantity, unit_price, vat_rate, line_total
		FROM sales_slip_lines
		WHERE sales_slip_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, salesSlipID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of sales slip %s: %w", salesSlipID, err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SalesSlipLine, error) {
		var l models.SalesSlipLine
		err := row.Scan(&l.LineID, &l.SalesSlipID, &l.Description, &l.Quantity, &l.UnitPrice, &l.VATRate, &l.LineTotal)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales slip lines: %w", err)
	}
	return lines, nil
}
