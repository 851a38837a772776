package services_test

import (
	"context"
	"fmt"
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
)

type SalaryServiceTestSuite struct {
	suite.Suite
	mockAccrualRepo  *MockSalaryAccrualRepository
	mockAccountRepo  *MockAccountRepository
	mockMovementRepo *MockMovementRepository
	service          portssvc.SalarySvcFacade
	userID           string
}

func (suite *SalaryServiceTestSuite) SetupTest() {
	suite.mockAccrualRepo = new(MockSalaryAccrualRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	ledgerSvc := services.NewLedgerService(suite.mockMovementRepo, suite.mockAccountRepo)
	suite.service = services.NewSalaryService(suite.mockAccrualRepo, suite.mockAccountRepo, ledgerSvc)
	suite.userID = uuid.NewString()
}

func (suite *SalaryServiceTestSuite) employee(salary *decimal.Decimal) domain.Account {
	return domain.Account{
		AccountID:    uuid.NewString(),
		Title:        "Ahmet Demir",
		Kind:         domain.Employee,
		CurrencyCode: "TL",
		IsActive:     true,
		Salary:       salary,
	}
}

func (suite *SalaryServiceTestSuite) TestAccrueSalaries_Success() {
	ctx := context.Background()
	salary := decimal.NewFromInt(10000)
	employee := suite.employee(&salary)
	kind := domain.Employee

	suite.mockAccountRepo.On("ListAccounts", ctx, &kind, true).Return([]domain.Account{employee}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, employee.AccountID).Return(&employee, nil)
	suite.mockAccrualRepo.On("HasAccrualForPeriod", ctx, employee.AccountID, 2024, 12).Return(false, nil).Once()

	var savedAccrual domain.SalaryAccrual
	var savedMovement domain.Movement
	suite.mockAccrualRepo.On("SaveAccrual", ctx, mock.AnythingOfType("domain.SalaryAccrual"), mock.AnythingOfType("domain.Movement")).
		Run(func(args mock.Arguments) {
			savedAccrual = args.Get(1).(domain.SalaryAccrual)
			savedMovement = args.Get(2).(domain.Movement)
		}).Return(nil).Once()

	results, err := suite.service.AccrueSalaries(ctx, 12, 2024, nil, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(domain.AccrualSuccess, results[0].Status)
	suite.True(results[0].NetPayable.Equal(salary))

	suite.Equal(12, savedAccrual.PeriodMonth)
	suite.Equal(2024, savedAccrual.PeriodYear)
	suite.Equal(time.Date(2024, time.December, 28, 0, 0, 0, 0, time.UTC), savedAccrual.AccrualDate)

	suite.Equal(domain.Credit, savedMovement.Direction)
	suite.True(savedMovement.Amount.Equal(salary))
	suite.Equal("TL", savedMovement.CurrencyCode)
	suite.Equal(domain.SourceSalaryAccrual, savedMovement.SourceKind)
	suite.Equal(savedAccrual.AccrualID, savedMovement.SourceID)
	suite.Equal("Salary 2024-12", savedMovement.Description)
}

func (suite *SalaryServiceTestSuite) TestAccrueSalaries_SkipsEmployeeWithoutSalary() {
	ctx := context.Background()
	employee := suite.employee(nil)
	kind := domain.Employee

	suite.mockAccountRepo.On("ListAccounts", ctx, &kind, true).Return([]domain.Account{employee}, nil).Once()

	results, err := suite.service.AccrueSalaries(ctx, 12, 2024, nil, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(domain.AccrualSkipped, results[0].Status)
	suite.True(results[0].NetPayable.IsZero())
	suite.mockAccrualRepo.AssertNotCalled(suite.T(), "SaveAccrual")
}

func (suite *SalaryServiceTestSuite) TestAccrueSalaries_SkipsAlreadyAccrued() {
	ctx := context.Background()
	salary := decimal.NewFromInt(10000)
	employee := suite.employee(&salary)
	kind := domain.Employee

	suite.mockAccountRepo.On("ListAccounts", ctx, &kind, true).Return([]domain.Account{employee}, nil).Once()
	suite.mockAccrualRepo.On("HasAccrualForPeriod", ctx, employee.AccountID, 2024, 12).Return(true, nil).Once()

	results, err := suite.service.AccrueSalaries(ctx, 12, 2024, nil, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(domain.AccrualSkipped, results[0].Status)
	suite.mockAccrualRepo.AssertNotCalled(suite.T(), "SaveAccrual")
}

func (suite *SalaryServiceTestSuite) TestAccrueSalaries_DuplicateRaceReportsSkipped() {
	ctx := context.Background()
	salary := decimal.NewFromInt(10000)
	employee := suite.employee(&salary)
	kind := domain.Employee

	suite.mockAccountRepo.On("ListAccounts", ctx, &kind, true).Return([]domain.Account{employee}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, employee.AccountID).Return(&employee, nil)
	suite.mockAccrualRepo.On("HasAccrualForPeriod", ctx, employee.AccountID, 2024, 12).Return(false, nil).Once()
	suite.mockAccrualRepo.On("SaveAccrual", ctx, mock.AnythingOfType("domain.SalaryAccrual"), mock.AnythingOfType("domain.Movement")).
		Return(fmt.Errorf("accrual exists: %w", apperrors.ErrDuplicate)).Once()

	results, err := suite.service.AccrueSalaries(ctx, 12, 2024, nil, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(domain.AccrualSkipped, results[0].Status)
}

func (suite *SalaryServiceTestSuite) TestAccrueSalaries_MixedRun() {
	ctx := context.Background()
	salaryA := decimal.NewFromInt(12000)
	withSalary := suite.employee(&salaryA)
	withoutSalary := suite.employee(nil)
	kind := domain.Employee

	suite.mockAccountRepo.On("ListAccounts", ctx, &kind, true).
		Return([]domain.Account{withSalary, withoutSalary}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, withSalary.AccountID).Return(&withSalary, nil)
	suite.mockAccrualRepo.On("HasAccrualForPeriod", ctx, withSalary.AccountID, 2025, 1).Return(false, nil).Once()
	suite.mockAccrualRepo.On("SaveAccrual", ctx, mock.AnythingOfType("domain.SalaryAccrual"), mock.AnythingOfType("domain.Movement")).Return(nil).Once()

	results, err := suite.service.AccrueSalaries(ctx, 1, 2025, nil, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.Equal(domain.AccrualSuccess, results[0].Status)
	suite.Equal(domain.AccrualSkipped, results[1].Status)
}

func (suite *SalaryServiceTestSuite) TestAccrueSalaries_SingleAccount() {
	ctx := context.Background()
	salary := decimal.NewFromInt(9000)
	employee := suite.employee(&salary)

	suite.mockAccountRepo.On("FindAccountByID", ctx, employee.AccountID).Return(&employee, nil)
	suite.mockAccrualRepo.On("HasAccrualForPeriod", ctx, employee.AccountID, 2025, 3).Return(false, nil).Once()
	suite.mockAccrualRepo.On("SaveAccrual", ctx, mock.AnythingOfType("domain.SalaryAccrual"), mock.AnythingOfType("domain.Movement")).Return(nil).Once()

	results, err := suite.service.AccrueSalaries(ctx, 3, 2025, &employee.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(domain.AccrualSuccess, results[0].Status)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *SalaryServiceTestSuite) TestAccrueSalaries_SingleAccountNotEmployee() {
	ctx := context.Background()
	customer := domain.Account{AccountID: uuid.NewString(), Kind: domain.Customer, IsActive: true}

	suite.mockAccountRepo.On("FindAccountByID", ctx, customer.AccountID).Return(&customer, nil).Once()

	_, err := suite.service.AccrueSalaries(ctx, 3, 2025, &customer.AccountID, suite.userID)
	suite.Require().ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *SalaryServiceTestSuite) TestAccrueSalaries_SingleAccountInactive() {
	ctx := context.Background()
	salary := decimal.NewFromInt(10000)
	inactive := suite.employee(&salary)
	inactive.IsActive = false

	suite.mockAccountRepo.On("FindAccountByID", ctx, inactive.AccountID).Return(&inactive, nil)
	suite.mockAccrualRepo.On("HasAccrualForPeriod", ctx, inactive.AccountID, 2025, 6).Return(false, nil).Once()

	_, err := suite.service.AccrueSalaries(ctx, 6, 2025, &inactive.AccountID, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockAccrualRepo.AssertNotCalled(suite.T(), "SaveAccrual")
}

func (suite *SalaryServiceTestSuite) TestAccrueSalaries_InvalidMonth() {
	ctx := context.Background()

	_, err := suite.service.AccrueSalaries(ctx, 13, 2025, nil, suite.userID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.AccrueSalaries(ctx, 0, 2025, nil, suite.userID)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestSalaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalaryServiceTestSuite))
}
