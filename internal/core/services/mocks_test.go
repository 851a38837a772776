package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portsrepo "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, kind *domain.AccountKind, onlyActive bool) ([]domain.Account, error) {
	args := m.Called(ctx, kind, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account, opening *domain.Movement) error {
	args := m.Called(ctx, account, opening)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.MovementRepositoryFacade = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) FindMovements(ctx context.Context, accountID, currencyCode string, from, to *time.Time) ([]domain.Movement, error) {
	args := m.Called(ctx, accountID, currencyCode, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) SumMovements(ctx context.Context, accountID, currencyCode string, before *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, accountID, currencyCode, before)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockMovementRepository) FindMovementsBySource(ctx context.Context, sourceKind domain.SourceKind, sourceID string) ([]domain.Movement, error) {
	args := m.Called(ctx, sourceKind, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) InsertMovementInTx(ctx context.Context, tx pgx.Tx, movement domain.Movement) error {
	args := m.Called(ctx, tx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovementsBySourceInTx(ctx context.Context, tx pgx.Tx, sourceKind domain.SourceKind, sourceID string) error {
	args := m.Called(ctx, tx, sourceKind, sourceID)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindLatestRate(ctx context.Context, currencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, movement domain.Movement) error {
	args := m.Called(ctx, invoice, movement)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice, movement domain.Movement) error {
	args := m.Called(ctx, invoice, movement)
	return args.Error(0)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

// --- Mock SalesSlipRepository ---
type MockSalesSlipRepository struct {
	mock.Mock
}

var _ portsrepo.SalesSlipRepositoryFacade = (*MockSalesSlipRepository)(nil)

func (m *MockSalesSlipRepository) SaveSalesSlip(ctx context.Context, slip domain.SalesSlip, movement domain.Movement) error {
	args := m.Called(ctx, slip, movement)
	return args.Error(0)
}

func (m *MockSalesSlipRepository) UpdateSalesSlip(ctx context.Context, slip domain.SalesSlip, movement domain.Movement) error {
	args := m.Called(ctx, slip, movement)
	return args.Error(0)
}

func (m *MockSalesSlipRepository) DeleteSalesSlip(ctx context.Context, salesSlipID string) error {
	args := m.Called(ctx, salesSlipID)
	return args.Error(0)
}

func (m *MockSalesSlipRepository) FindSalesSlipByID(ctx context.Context, salesSlipID string) (*domain.SalesSlip, error) {
	args := m.Called(ctx, salesSlipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesSlip), args.Error(1)
}

func (m *MockSalesSlipRepository) ListSalesSlips(ctx context.Context) ([]domain.SalesSlip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesSlip), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, movement domain.Movement) error {
	args := m.Called(ctx, payment, movement)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment, movement domain.Movement) error {
	args := m.Called(ctx, payment, movement)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// --- Mock SalaryAccrualRepository ---
type MockSalaryAccrualRepository struct {
	mock.Mock
}

var _ portsrepo.SalaryAccrualRepositoryFacade = (*MockSalaryAccrualRepository)(nil)

func (m *MockSalaryAccrualRepository) SaveAccrual(ctx context.Context, accrual domain.SalaryAccrual, movement domain.Movement) error {
	args := m.Called(ctx, accrual, movement)
	return args.Error(0)
}

func (m *MockSalaryAccrualRepository) HasAccrualForPeriod(ctx context.Context, accountID string, year, month int) (bool, error) {
	args := m.Called(ctx, accountID, year, month)
	return args.Bool(0), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetCurrencyTotals(ctx context.Context) ([]domain.CurrencyTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyTotals), args.Error(1)
}

func (m *MockReportingRepository) GetAccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

// --- Mock ExchangeRateService (as used by the document workflows) ---
type MockExchangeRateService struct {
	mock.Mock
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) CurrentRate(ctx context.Context, currencyCode string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, currencyCode, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExchangeRateService) ListRates(ctx context.Context, currencyCode string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}
