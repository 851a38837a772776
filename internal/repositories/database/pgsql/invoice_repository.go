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

const invoiceColumns = `invoice_id, supplier_id, invoice_no, invoice_date, currency_code, exchange_rate,
		discount_rate, total, description,
		created_at, created_by, last_updated_at, last_updated_by`

const invoiceLineInsert = `
	INSERT INTO invoice_lines (line_id, invoice_id, description, quantity, unit_price, vat_rate, line_total)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

type PgxInvoiceRepository struct {
	BaseRepository
	movementRepo portsrepo.MovementWriter
}

// newPgxInvoiceRepository creates a new repository for purchase invoices.
func newPgxInvoiceRepository(pool *pgxpool.Pool, movementRepo portsrepo.MovementWriter) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		movementRepo:   movementRepo,
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice inserts the invoice, its lines and the supplier movement in
// one database transaction.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, movement domain.Movement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertInvoiceInTx(ctx, tx, invoice); err != nil {
		return err
	}
	if err := r.movementRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to insert movement for invoice %s: %w", invoice.InvoiceID, err)
	}
	return r.Commit(ctx, tx)
}

// UpdateInvoice replaces the invoice's lines and movement with the
// recomputed ones and updates the document row, atomically.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, movement domain.Movement) error {
	m := mapping.ToModelInvoice(invoice)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE invoices
		SET invoice_no = $2, invoice_date = $3, currency_code = $4, exchange_rate = $5,
			discount_rate = $6, total = $7, description = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE invoice_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.InvoiceID,
		m.InvoiceNo,
		m.InvoiceDate,
		m.CurrencyCode,
		m.ExchangeRate,
		m.DiscountRate,
		m.Total,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", m.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", m.InvoiceID, apperrors.ErrNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1;`, m.InvoiceID); err != nil {
		return fmt.Errorf("failed to delete lines of invoice %s: %w", m.InvoiceID, err)
	}
	if err := r.insertInvoiceLinesInTx(ctx, tx, invoice.Lines); err != nil {
		return err
	}

	if err := r.movementRepo.DeleteMovementsBySourceInTx(ctx, tx, domain.SourceInvoice, invoice.InvoiceID); err != nil {
		return err
	}
	if err := r.movementRepo.InsertMovementInTx(ctx, tx, movement); err != nil {
		return fmt.Errorf("failed to insert movement for invoice %s: %w", invoice.InvoiceID, err)
	}
	return r.Commit(ctx, tx)
}

// DeleteInvoice removes the movement, lines and invoice row in one
// transaction.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.movementRepo.DeleteMovementsBySourceInTx(ctx, tx, domain.SourceInvoice, invoiceID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1;`, invoiceID); err != nil {
		return fmt.Errorf("failed to delete lines of invoice %s: %w", invoiceID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
	}
	return r.Commit(ctx, tx)
}

// FindInvoiceByID retrieves an invoice with its lines.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_id = $1;
	`
	var m models.Invoice
	err := r.Pool.QueryRow(ctx, query, invoiceID).Scan(
		&m.InvoiceID,
		&m.SupplierID,
		&m.InvoiceNo,
		&m.InvoiceDate,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.DiscountRate,
		&m.Total,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("invoice %s: %w", invoiceID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	lines, err := r.findInvoiceLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainInvoice(m, lines)
	return &d, nil
}

// ListInvoices retrieves invoices without their lines, newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		ORDER BY invoice_date DESC, invoice_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelInvoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		var m models.Invoice
		err := row.Scan(
			&m.InvoiceID,
			&m.SupplierID,
			&m.InvoiceNo,
			&m.InvoiceDate,
			&m.CurrencyCode,
			&m.ExchangeRate,
			&m.DiscountRate,
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
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}

	invoices := make([]domain.Invoice, len(modelInvoices))
	for i, m := range modelInvoices {
		invoices[i] = mapping.ToDomainInvoice(m, nil)
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) insertInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.InvoiceID,
		m.SupplierID,
		m.InvoiceNo,
		m.InvoiceDate,
		m.CurrencyCode,
		m.ExchangeRate,
		m.DiscountRate,
		m.Total,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice %s: %w", m.InvoiceID, err)
	}
	return r.insertInvoiceLinesInTx(ctx, tx, invoice.Lines)
}

func (r *PgxInvoiceRepository) insertInvoiceLinesInTx(ctx context.Context, tx pgx.Tx, lines []domain.InvoiceLine) error {
	batch := &pgx.Batch{}
	for _, line := range lines {
		l := mapping.ToModelInvoiceLine(line)
		batch.Queue(invoiceLineInsert, l.LineID, l.InvoiceID, l.Description, l.Quantity, l.UnitPrice, l.VATRate, l.LineTotal)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range lines {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert invoice line: %w", err)
		}
	}
	return nil
}

func (r *PgxInvoiceRepository) findInvoiceLines(ctx context.Context, invoiceID string) ([]models.InvoiceLine, error) {
	query := `
		SELECT line_id, invoice_id, description, quantity, unit_price, vat_rate, line_total
		FROM invoice_lines
		WHERE invoice_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceLine, error) {
		var l models.InvoiceLine
		err := row.Scan(&l.LineID, &l.InvoiceID, &l.Description, &l.Quantity, &l.UnitPrice, &l.VATRate, &l.LineTotal)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoice lines: %w", err)
	}
	return lines, nil
}
