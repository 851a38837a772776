package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.CurrencySvcFacade
	userID           string
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo)
	suite.userID = uuid.NewString()
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "CHF", Symbol: "Fr", Name: "Swiss Franc"}

	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "CHF" && c.Name == "Swiss Franc"
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("CHF", currency.CurrencyCode)
	suite.Equal(suite.userID, currency.CreatedBy)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetCurrencyByCode(ctx, "XXX")
	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies() {
	ctx := context.Background()
	currencies := []domain.Currency{
		{CurrencyCode: "TL"},
		{CurrencyCode: "USD"},
	}

	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return(currencies, nil).Once()

	got, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(currencies, got)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
