package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
	"github.com/onmuhasebe/cari_ledger_app/internal/utils/accounting"
)

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	rateSvc     portssvc.ExchangeRateSvcFacade
}

// NewInvoiceService creates a new purchase invoice service.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	ledgerSvc portssvc.LedgerSvcFacade,
	rateSvc portssvc.ExchangeRateSvcFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		accountRepo: accountRepo,
		ledgerSvc:   ledgerSvc,
		rateSvc:     rateSvc,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// buildInvoice validates the request against the supplier account, resolves
// the exchange rate and computes line totals and the rounded document total.
func (s *invoiceService) buildInvoice(ctx context.Context, invoiceID string, req dto.CreateInvoiceRequest, userID string, createdAt time.Time) (domain.Invoice, domain.Movement, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, req.SupplierID)
	if err != nil {
		return domain.Invoice{}, domain.Movement{}, fmt.Errorf("failed to resolve supplier %s: %w", req.SupplierID, err)
	}
	if account.Kind != domain.Supplier {
		return domain.Invoice{}, domain.Movement{}, fmt.Errorf("%w: account %s is a %s, purchase invoices require a supplier", apperrors.ErrInvalidState, req.SupplierID, account.Kind)
	}

	rate, err := s.resolveRate(ctx, req.CurrencyCode, req.ExchangeRate, req.InvoiceDate)
	if err != nil {
		return domain.Invoice{}, domain.Movement{}, err
	}

	now := time.Now().UTC()
	lines := make([]domain.InvoiceLine, len(req.Lines))
	lineTotals := make([]decimal.Decimal, len(req.Lines))
	for i, l := range req.Lines {
		total := accounting.LineTotal(l.Quantity, l.UnitPrice, req.DiscountRate, l.VATRate)
		lines[i] = domain.InvoiceLine{
			LineID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
			LineTotal:   total,
		}
		lineTotals[i] = total
	}
	total := accounting.DocumentTotal(lineTotals)

	invoice := domain.Invoice{
		InvoiceID:    invoiceID,
		SupplierID:   req.SupplierID,
		InvoiceNo:    req.InvoiceNo,
		InvoiceDate:  req.InvoiceDate,
		CurrencyCode: req.CurrencyCode,
		ExchangeRate: rate,
		DiscountRate: req.DiscountRate,
		Total:        total,
		Description:  req.Description,
		Lines:        lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	direction, err := accounting.DirectionFor(accounting.EventPurchase, account.Kind)
	if err != nil {
		return domain.Invoice{}, domain.Movement{}, err
	}
	movement, err := s.ledgerSvc.PrepareMovement(ctx, dto.RecordMovementInput{
		AccountID:       req.SupplierID,
		Direction:       direction,
		Amount:          total,
		CurrencyCode:    req.CurrencyCode,
		ExchangeRate:    rate,
		SourceKind:      domain.SourceInvoice,
		SourceID:        invoiceID,
		Description:     movementDescription("Purchase invoice", req.InvoiceNo, req.Description),
		TransactionDate: req.InvoiceDate,
		UserID:          userID,
	})
	if err != nil {
		return domain.Invoice{}, domain.Movement{}, err
	}
	return invoice, movement, nil
}

func (s *invoiceService) resolveRate(ctx context.Context, currencyCode string, override *decimal.Decimal, asOf time.Time) (decimal.Decimal, error) {
	if override != nil {
		if override.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
		}
		return *override, nil
	}
	return s.rateSvc.CurrentRate(ctx, currencyCode, asOf)
}

// PostInvoice materializes a purchase invoice: the document, its lines and
// a single credit movement on the supplier, written atomically.
func (s *invoiceService) PostInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoiceID := uuid.NewString()
	invoice, movement, err := s.buildInvoice(ctx, invoiceID, req, creatorUserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice, movement); err != nil {
		logger.Error("Failed to save invoice", slog.String("supplier_id", req.SupplierID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	logger.Info("Invoice posted",
		slog.String("invoice_id", invoiceID),
		slog.String("supplier_id", req.SupplierID),
		slog.String("total", invoice.Total.String()))
	return &invoice, nil
}

// UpdateInvoice recomputes the document from the new payload and replaces
// its lines and movement in one transaction, so the supplier's balance
// reflects only the corrected amount.
func (s *invoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.CreateInvoiceRequest, updaterUserID string) (*domain.Invoice, error) {
	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice %s: %w", invoiceID, err)
	}
	if req.SupplierID != existing.SupplierID {
		return nil, fmt.Errorf("%w: an invoice cannot be moved to another supplier", apperrors.ErrValidation)
	}

	invoice, movement, err := s.buildInvoice(ctx, invoiceID, req, updaterUserID, existing.CreatedAt)
	if err != nil {
		return nil, err
	}
	invoice.CreatedBy = existing.CreatedBy

	if err := s.invoiceRepo.UpdateInvoice(ctx, invoice, movement); err != nil {
		return nil, fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}
	return &invoice, nil
}

// DeleteInvoice removes the invoice and its movement together; the
// supplier's balance reverts as if the invoice had never been posted.
func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to fetch invoice %s: %w", invoiceID, err)
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	return nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}

// movementDescription builds the ledger description for a document
// movement, preferring the document's own description.
func movementDescription(prefix, docNo, description string) string {
	switch {
	case description != "":
		return description
	case docNo != "":
		return fmt.Sprintf("%s %s", prefix, docNo)
	default:
		return prefix
	}
}
