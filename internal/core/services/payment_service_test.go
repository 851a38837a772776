package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo  *MockPaymentRepository
	mockAccountRepo  *MockAccountRepository
	mockMovementRepo *MockMovementRepository
	mockRateSvc      *MockExchangeRateService
	service          portssvc.PaymentSvcFacade
	customer         domain.Account
	userID           string
	paymentDate      time.Time
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockRateSvc = new(MockExchangeRateService)

	ledgerSvc := services.NewLedgerService(suite.mockMovementRepo, suite.mockAccountRepo)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockAccountRepo, ledgerSvc, suite.mockRateSvc)

	suite.userID = uuid.NewString()
	suite.paymentDate = time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	suite.customer = domain.Account{
		AccountID:    uuid.NewString(),
		Title:        "Yilmaz Insaat",
		Kind:         domain.Customer,
		CurrencyCode: "TL",
		IsActive:     true,
	}
}

func (suite *PaymentServiceTestSuite) validRequest(paymentType string) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		AccountID:    suite.customer.AccountID,
		PaymentType:  paymentType,
		Method:       "BANK_TRANSFER",
		Amount:       decimal.NewFromInt(750),
		CurrencyCode: "TL",
		PaymentDate:  suite.paymentDate,
	}
}

func (suite *PaymentServiceTestSuite) TestPostPayment_CollectionCreditsAccount() {
	ctx := context.Background()
	req := suite.validRequest("COLLECTION")

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.customer.AccountID).Return(&suite.customer, nil)
	suite.mockRateSvc.On("CurrentRate", ctx, "TL", suite.paymentDate).Return(decimal.NewFromInt(1), nil).Once()

	var savedMovement domain.Movement
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.Movement")).
		Run(func(args mock.Arguments) {
			savedMovement = args.Get(2).(domain.Movement)
		}).Return(nil).Once()

	payment, err := suite.service.PostPayment(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Collection, payment.PaymentType)
	suite.Equal(domain.Credit, savedMovement.Direction)
	suite.True(savedMovement.Amount.Equal(decimal.NewFromInt(750)))
	suite.Equal(domain.SourcePayment, savedMovement.SourceKind)
	suite.Equal(payment.PaymentID, savedMovement.SourceID)
}

func (suite *PaymentServiceTestSuite) TestPostPayment_PaymentDebitsAccount() {
	ctx := context.Background()
	req := suite.validRequest("PAYMENT")

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.customer.AccountID).Return(&suite.customer, nil)
	suite.mockRateSvc.On("CurrentRate", ctx, "TL", suite.paymentDate).Return(decimal.NewFromInt(1), nil).Once()

	var savedMovement domain.Movement
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.Movement")).
		Run(func(args mock.Arguments) {
			savedMovement = args.Get(2).(domain.Movement)
		}).Return(nil).Once()

	payment, err := suite.service.PostPayment(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentOut, payment.PaymentType)
	suite.Equal(domain.Debit, savedMovement.Direction)
}

func (suite *PaymentServiceTestSuite) TestPostPayment_ForeignCurrencyUsesLookedUpRate() {
	ctx := context.Background()
	req := suite.validRequest("COLLECTION")
	req.CurrencyCode = "EUR"
	rate := decimal.RequireFromString("35.20")

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.customer.AccountID).Return(&suite.customer, nil)
	suite.mockRateSvc.On("CurrentRate", ctx, "EUR", suite.paymentDate).Return(rate, nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.Movement")).Return(nil).Once()

	payment, err := suite.service.PostPayment(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(payment.ExchangeRate.Equal(rate))
}

func (suite *PaymentServiceTestSuite) TestPostPayment_AccountNotFound() {
	ctx := context.Background()
	req := suite.validRequest("COLLECTION")

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.customer.AccountID).Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.PostPayment(ctx, req, suite.userID)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_RejectsAccountChange() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	existing := domain.Payment{PaymentID: paymentID, AccountID: uuid.NewString()}
	req := suite.validRequest("COLLECTION")

	suite.mockPaymentRepo.On("FindPaymentByID", ctx, paymentID).Return(&existing, nil).Once()

	_, err := suite.service.UpdatePayment(ctx, paymentID, req, suite.userID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePayment")
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
