package services

import (
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
)

// NewServiceContainer initializes all application services with their
// repository dependencies and wires the shared ledger engine into the
// document workflows.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	ledgerSvc := NewLedgerService(repos.MovementRepo, repos.AccountRepo)
	rateSvc := NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo)

	return &portssvc.ServiceContainer{
		Account:      NewAccountService(repos.AccountRepo, repos.CurrencyRepo),
		Currency:     NewCurrencyService(repos.CurrencyRepo),
		ExchangeRate: rateSvc,
		Ledger:       ledgerSvc,
		Invoice:      NewInvoiceService(repos.InvoiceRepo, repos.AccountRepo, ledgerSvc, rateSvc),
		SalesSlip:    NewSalesSlipService(repos.SalesSlipRepo, repos.AccountRepo, ledgerSvc, rateSvc),
		Payment:      NewPaymentService(repos.PaymentRepo, repos.AccountRepo, ledgerSvc, rateSvc),
		Salary:       NewSalaryService(repos.SalaryAccrualRepo, repos.AccountRepo, ledgerSvc),
		Reporting:    NewReportingService(repos.ReportingRepo),
	}
}
