package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against the shared
// connection pool. The movement repository is injected into the document
// repositories so their writes can carry the movement in the same
// transaction.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	movementRepo := newPgxMovementRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool, movementRepo)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool, movementRepo)
	salesSlipRepo := newPgxSalesSlipRepository(dbPool, movementRepo)
	paymentRepo := newPgxPaymentRepository(dbPool, movementRepo)
	salaryAccrualRepo := newPgxSalaryAccrualRepository(dbPool, movementRepo)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:       accountRepo,
		CurrencyRepo:      currencyRepo,
		ExchangeRateRepo:  exchangeRateRepo,
		MovementRepo:      movementRepo,
		InvoiceRepo:       invoiceRepo,
		SalesSlipRepo:     salesSlipRepo,
		PaymentRepo:       paymentRepo,
		SalaryAccrualRepo: salaryAccrualRepo,
		ReportingRepo:     reportingRepo,
	}
}
