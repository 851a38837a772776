package repositories

import (
	"context"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
)

// InvoiceRepositoryFacade persists purchase invoices. Every write method
// runs the document, its lines and its movement inside one transaction.
type InvoiceRepositoryFacade interface {
	// SaveInvoice inserts the invoice, its lines and the supplier movement.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, movement domain.Movement) error

	// UpdateInvoice replaces the invoice's lines and movement with the
	// recomputed ones and updates the document row, atomically.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice, movement domain.Movement) error

	// DeleteInvoice removes the movement, lines and invoice row.
	DeleteInvoice(ctx context.Context, invoiceID string) error

	// FindInvoiceByID retrieves an invoice with its lines.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices, newest first.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// SalesSlipRepositoryFacade persists sales slips with the same atomicity
// contract as invoices.
type SalesSlipRepositoryFacade interface {
	SaveSalesSlip(ctx context.Context, slip domain.SalesSlip, movement domain.Movement) error
	UpdateSalesSlip(ctx context.Context, slip domain.SalesSlip, movement domain.Movement) error
	DeleteSalesSlip(ctx context.Context, salesSlipID string) error
	FindSalesSlipByID(ctx context.Context, salesSlipID string) (*domain.SalesSlip, error)
	ListSalesSlips(ctx context.Context) ([]domain.SalesSlip, error)
}

// PaymentRepositoryFacade persists payments/collections with the same
// atomicity contract.
type PaymentRepositoryFacade interface {
	SavePayment(ctx context.Context, payment domain.Payment, movement domain.Movement) error
	UpdatePayment(ctx context.Context, payment domain.Payment, movement domain.Movement) error
	DeletePayment(ctx context.Context, paymentID string) error
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// SalaryAccrualRepositoryFacade persists monthly salary accruals.
type SalaryAccrualRepositoryFacade interface {
	// SaveAccrual inserts the accrual row and its movement in one
	// transaction. Returns apperrors.ErrDuplicate when the unique
	// (account, year, month) constraint rejects the row.
	SaveAccrual(ctx context.Context, accrual domain.SalaryAccrual, movement domain.Movement) error

	// HasAccrualForPeriod reports whether an accrual already exists for
	// the employee in the given calendar month.
	HasAccrualForPeriod(ctx context.Context, accountID string, year, month int) (bool, error)
}
