package services

import (
	"context"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
)

// InvoiceSvcFacade defines the purchase invoice workflow.
type InvoiceSvcFacade interface {
	PostInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.CreateInvoiceRequest, updaterUserID string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// SalesSlipSvcFacade defines the sales slip workflow.
type SalesSlipSvcFacade interface {
	PostSalesSlip(ctx context.Context, req dto.CreateSalesSlipRequest, creatorUserID string) (*domain.SalesSlip, error)
	UpdateSalesSlip(ctx context.Context, salesSlipID string, req dto.CreateSalesSlipRequest, updaterUserID string) (*domain.SalesSlip, error)
	DeleteSalesSlip(ctx context.Context, salesSlipID string) error
	GetSalesSlipByID(ctx context.Context, salesSlipID string) (*domain.SalesSlip, error)
	ListSalesSlips(ctx context.Context) ([]domain.SalesSlip, error)
}

// PaymentSvcFacade defines the payment/collection workflow.
type PaymentSvcFacade interface {
	PostPayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, paymentID string, req dto.CreatePaymentRequest, updaterUserID string) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID string) error
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// SalarySvcFacade defines the monthly salary accrual run.
type SalarySvcFacade interface {
	// AccrueSalaries accrues the salary of every active employee with a
	// defined salary (or just the one named by accountID) for the given
	// calendar month. Idempotent per employee per month: already-accrued
	// employees are reported as skipped.
	AccrueSalaries(ctx context.Context, month, year int, accountID *string, creatorUserID string) ([]domain.AccrualResult, error)
}
