package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockMovementRepo *MockMovementRepository
	service          portssvc.LedgerSvcFacade
	account          domain.Account
	userID           string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.service = services.NewLedgerService(suite.mockMovementRepo, suite.mockAccountRepo)

	suite.userID = uuid.NewString()
	suite.account = domain.Account{
		AccountID:    uuid.NewString(),
		Title:        "Acme Tedarik",
		Kind:         domain.Supplier,
		CurrencyCode: "TL",
		IsActive:     true,
	}
}

func (suite *LedgerServiceTestSuite) validInput() dto.RecordMovementInput {
	return dto.RecordMovementInput{
		AccountID:       suite.account.AccountID,
		Direction:       domain.Credit,
		Amount:          decimal.NewFromInt(150),
		CurrencyCode:    "TL",
		ExchangeRate:    decimal.NewFromInt(1),
		SourceKind:      domain.SourceInvoice,
		SourceID:        uuid.NewString(),
		Description:     "Purchase invoice F-001",
		TransactionDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		UserID:          suite.userID,
	}
}

func (suite *LedgerServiceTestSuite) TestPrepareMovement_Success() {
	ctx := context.Background()
	in := suite.validInput()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()

	movement, err := suite.service.PrepareMovement(ctx, in)

	suite.Require().NoError(err)
	suite.NotEmpty(movement.MovementID)
	suite.Equal(in.AccountID, movement.AccountID)
	suite.Equal(domain.Credit, movement.Direction)
	suite.True(movement.Amount.Equal(decimal.NewFromInt(150)))
	suite.Equal(in.SourceID, movement.SourceID)
	suite.Equal(suite.userID, movement.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPrepareMovement_ULIDsSortInCreationOrder() {
	ctx := context.Background()
	in := suite.validInput()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Twice()

	first, err := suite.service.PrepareMovement(ctx, in)
	suite.Require().NoError(err)
	second, err := suite.service.PrepareMovement(ctx, in)
	suite.Require().NoError(err)

	suite.Less(first.MovementID, second.MovementID)
}

func (suite *LedgerServiceTestSuite) TestPrepareMovement_NonPositiveAmount() {
	ctx := context.Background()
	in := suite.validInput()
	in.Amount = decimal.Zero

	_, err := suite.service.PrepareMovement(ctx, in)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	in.Amount = decimal.NewFromInt(-10)
	_, err = suite.service.PrepareMovement(ctx, in)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID")
}

func (suite *LedgerServiceTestSuite) TestPrepareMovement_NonPositiveRate() {
	ctx := context.Background()
	in := suite.validInput()
	in.ExchangeRate = decimal.Zero

	_, err := suite.service.PrepareMovement(ctx, in)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPrepareMovement_UnknownDirection() {
	ctx := context.Background()
	in := suite.validInput()
	in.Direction = domain.Direction("SIDEWAYS")

	_, err := suite.service.PrepareMovement(ctx, in)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPrepareMovement_MissingSourceID() {
	ctx := context.Background()
	in := suite.validInput()
	in.SourceID = ""

	_, err := suite.service.PrepareMovement(ctx, in)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPrepareMovement_InactiveAccount() {
	ctx := context.Background()
	in := suite.validInput()
	inactive := suite.account
	inactive.IsActive = false

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&inactive, nil).Once()

	_, err := suite.service.PrepareMovement(ctx, in)
	suite.Require().ErrorIs(err, apperrors.ErrInvalidState)
}

func (suite *LedgerServiceTestSuite) TestPrepareMovement_AccountNotFound() {
	ctx := context.Background()
	in := suite.validInput()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PrepareMovement(ctx, in)
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestGetBalance_DebitsMinusCredits() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockMovementRepo.On("SumMovements", ctx, suite.account.AccountID, "TL", (*time.Time)(nil)).
		Return(decimal.NewFromInt(500), decimal.NewFromInt(320), nil).Once()

	balance, err := suite.service.GetBalance(ctx, suite.account.AccountID, "TL")

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(180)), "expected 180, got %s", balance)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetBalance_NegativeWhenCreditsDominate() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockMovementRepo.On("SumMovements", ctx, suite.account.AccountID, "TL", (*time.Time)(nil)).
		Return(decimal.NewFromInt(100), decimal.NewFromInt(250), nil).Once()

	balance, err := suite.service.GetBalance(ctx, suite.account.AccountID, "TL")

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(-150)))
}

func (suite *LedgerServiceTestSuite) TestBuildStatement_NoWindow() {
	ctx := context.Background()
	d1 := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	movements := []domain.Movement{
		{Direction: domain.Debit, Amount: decimal.NewFromInt(1000), SourceKind: domain.SourceSalesSlip, Description: "Sale", TransactionDate: d1},
		{Direction: domain.Credit, Amount: decimal.NewFromInt(400), SourceKind: domain.SourcePayment, Description: "Collection", TransactionDate: d2},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockMovementRepo.On("FindMovements", ctx, suite.account.AccountID, "TL", (*time.Time)(nil), (*time.Time)(nil)).
		Return(movements, nil).Once()

	lines, err := suite.service.BuildStatement(ctx, suite.account.AccountID, "TL", nil, nil)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	suite.True(lines[0].DebitAmount.Equal(decimal.NewFromInt(1000)))
	suite.True(lines[0].RunningBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(lines[1].CreditAmount.Equal(decimal.NewFromInt(400)))
	suite.True(lines[1].RunningBalance.Equal(decimal.NewFromInt(600)))
}

func (suite *LedgerServiceTestSuite) TestBuildStatement_OpeningCarryforward() {
	ctx := context.Background()
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	d1 := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)

	movements := []domain.Movement{
		{Direction: domain.Credit, Amount: decimal.NewFromInt(300), SourceKind: domain.SourceInvoice, Description: "Purchase", TransactionDate: d1},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockMovementRepo.On("SumMovements", ctx, suite.account.AccountID, "TL", &from).
		Return(decimal.NewFromInt(900), decimal.NewFromInt(200), nil).Once()
	suite.mockMovementRepo.On("FindMovements", ctx, suite.account.AccountID, "TL", &from, (*time.Time)(nil)).
		Return(movements, nil).Once()

	lines, err := suite.service.BuildStatement(ctx, suite.account.AccountID, "TL", &from, nil)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	suite.Equal(domain.SourceOpeningCarryforward, lines[0].SourceKind)
	suite.Equal(from, lines[0].Date)
	suite.True(lines[0].RunningBalance.Equal(decimal.NewFromInt(700)))
	suite.True(lines[1].RunningBalance.Equal(decimal.NewFromInt(400)))
}

func (suite *LedgerServiceTestSuite) TestBuildStatement_CarryforwardPresentWhenZero() {
	ctx := context.Background()
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockMovementRepo.On("SumMovements", ctx, suite.account.AccountID, "TL", &from).
		Return(decimal.Zero, decimal.Zero, nil).Once()
	suite.mockMovementRepo.On("FindMovements", ctx, suite.account.AccountID, "TL", &from, (*time.Time)(nil)).
		Return([]domain.Movement{}, nil).Once()

	lines, err := suite.service.BuildStatement(ctx, suite.account.AccountID, "TL", &from, nil)

	suite.Require().NoError(err)
	suite.Require().Len(lines, 1)
	suite.Equal(domain.SourceOpeningCarryforward, lines[0].SourceKind)
	suite.True(lines[0].RunningBalance.IsZero())
}

func (suite *LedgerServiceTestSuite) TestBuildStatement_EmptyWithoutWindow() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(&suite.account, nil).Once()
	suite.mockMovementRepo.On("FindMovements", ctx, suite.account.AccountID, "TL", (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Movement{}, nil).Once()

	lines, err := suite.service.BuildStatement(ctx, suite.account.AccountID, "TL", nil, nil)

	suite.Require().NoError(err)
	suite.NotNil(lines)
	suite.Empty(lines)
}

func (suite *LedgerServiceTestSuite) TestMovementsForSource() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	movements := []domain.Movement{
		{
			MovementID:   "01HZX0000000000000000000A1",
			AccountID:    suite.account.AccountID,
			Direction:    domain.Credit,
			Amount:       decimal.NewFromInt(600),
			CurrencyCode: "TL",
			SourceKind:   domain.SourceInvoice,
			SourceID:     invoiceID,
		},
	}
	suite.mockMovementRepo.On("FindMovementsBySource", ctx, domain.SourceInvoice, invoiceID).
		Return(movements, nil).Once()

	got, err := suite.service.MovementsForSource(ctx, domain.SourceInvoice, invoiceID)

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal(invoiceID, got[0].SourceID)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
