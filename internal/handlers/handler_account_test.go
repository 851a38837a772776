package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/handlers"
	"github.com/onmuhasebe/cari_ledger_app/internal/platform/config"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, kind *domain.AccountKind, onlyActive bool) ([]domain.Account, error) {
	args := m.Called(ctx, kind, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, updaterUserID string) error {
	args := m.Called(ctx, accountID, updaterUserID)
	return args.Error(0)
}

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) PrepareMovement(ctx context.Context, in dto.RecordMovementInput) (domain.Movement, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Movement), args.Error(1)
}

func (m *MockLedgerService) GetBalance(ctx context.Context, accountID, currencyCode string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, currencyCode)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) BuildStatement(ctx context.Context, accountID, currencyCode string, from, to *time.Time) ([]domain.StatementLine, error) {
	args := m.Called(ctx, accountID, currencyCode, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatementLine), args.Error(1)
}

func (m *MockLedgerService) MovementsForSource(ctx context.Context, sourceKind domain.SourceKind, sourceID string) ([]domain.Movement, error) {
	args := m.Called(ctx, sourceKind, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockLedgerService  *MockLedgerService
	jwtSecret          string
	userID             string
}

func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cari-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockAccountService = new(MockAccountService)
	suite.mockLedgerService = new(MockLedgerService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	services := &portssvc.ServiceContainer{
		Account: suite.mockAccountService,
		Ledger:  suite.mockLedgerService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *AccountHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	return req
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	account := &domain.Account{
		AccountID:              uuid.NewString(),
		Title:                  "Yilmaz Insaat",
		Kind:                   domain.Customer,
		CurrencyCode:           "TL",
		OpeningBalanceCurrency: "TL",
		IsActive:               true,
	}

	suite.mockAccountService.On("CreateAccount",
		mock.Anything,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Title == "Yilmaz Insaat" && req.Kind == "CUSTOMER"
		}),
		suite.userID,
	).Return(account, nil).Once()

	body, _ := json.Marshal(map[string]any{
		"title":        "Yilmaz Insaat",
		"kind":         "CUSTOMER",
		"currencyCode": "TL",
	})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/accounts", body))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(account.AccountID, resp.AccountID)
	suite.Equal("CUSTOMER", resp.Kind)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidKind() {
	body, _ := json.Marshal(map[string]any{
		"title":        "Yilmaz Insaat",
		"kind":         "PARTNER",
		"currencyCode": "TL",
	})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/accounts", body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Unauthorized() {
	body, _ := json.Marshal(map[string]any{
		"title":        "Yilmaz Insaat",
		"kind":         "CUSTOMER",
		"currencyCode": "TL",
	})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccountByID_NotFound() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("GetAccountByID", mock.Anything, accountID).
		Return(nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/accounts/"+accountID, nil))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetBalance_Success() {
	accountID := uuid.NewString()

	suite.mockLedgerService.On("GetBalance", mock.Anything, accountID, "TL").
		Return(decimal.NewFromInt(1250), nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance?currency=TL", nil))

	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.JSONEq(`"1250"`, string(resp["balance"]))
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetBalance_MissingCurrency() {
	accountID := uuid.NewString()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance", nil))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "GetBalance")
}

func (suite *AccountHandlerTestSuite) TestGetStatement_WithDateWindow() {
	accountID := uuid.NewString()
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	lines := []domain.StatementLine{
		{
			Date:           from,
			SourceKind:     domain.SourceOpeningCarryforward,
			Description:    "Opening balance carried forward",
			RunningBalance: decimal.NewFromInt(700),
		},
	}

	suite.mockLedgerService.On("BuildStatement", mock.Anything, accountID, "TL",
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(from) }),
		(*time.Time)(nil),
	).Return(lines, nil).Once()

	url := "/api/v1/accounts/" + accountID + "/statement?currency=TL&from=2025-02-01"
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url, nil))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(accountID, resp.AccountID)
	suite.Require().Len(resp.Lines, 1)
	suite.Equal(string(domain.SourceOpeningCarryforward), resp.Lines[0].SourceKind)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetStatement_EndDateCoversWholeDay() {
	accountID := uuid.NewString()
	endOfDay := time.Date(2025, 2, 28, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)

	suite.mockLedgerService.On("BuildStatement", mock.Anything, accountID, "TL",
		(*time.Time)(nil),
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(endOfDay) }),
	).Return([]domain.StatementLine{}, nil).Once()

	url := "/api/v1/accounts/" + accountID + "/statement?currency=TL&to=2025-02-28"
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, url, nil))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestDeactivateAccount_Success() {
	accountID := uuid.NewString()

	suite.mockAccountService.On("DeactivateAccount", mock.Anything, accountID, suite.userID).Return(nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodDelete, "/api/v1/accounts/"+accountID, nil))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
