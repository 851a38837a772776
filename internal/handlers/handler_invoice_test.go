package handlers_test

import (
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

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

func (m *MockInvoiceService) PostInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.CreateInvoiceRequest, updaterUserID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

// --- Test Suite ---
type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
	mockLedgerService  *MockLedgerService
	jwtSecret          string
	userID             string
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	suite.mockInvoiceService = new(MockInvoiceService)
	suite.mockLedgerService = new(MockLedgerService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	services := &portssvc.ServiceContainer{
		Invoice: suite.mockInvoiceService,
		Ledger:  suite.mockLedgerService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *InvoiceHandlerTestSuite) authedRequest(method, url string) *http.Request {
	claims := jwt.RegisteredClaims{
		Issuer:    "cari-test",
		Subject:   suite.userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	req, _ := http.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	return req
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_IncludesMovementsWithBaseAmount() {
	invoiceID := uuid.NewString()
	supplierID := uuid.NewString()
	invoice := &domain.Invoice{
		InvoiceID:    invoiceID,
		SupplierID:   supplierID,
		InvoiceNo:    "FT-2025-0042",
		InvoiceDate:  time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "USD",
		ExchangeRate: decimal.RequireFromString("33.157"),
		Total:        decimal.NewFromInt(100),
	}
	movements := []domain.Movement{
		{
			MovementID:      "01HZX0000000000000000000B2",
			AccountID:       supplierID,
			Direction:       domain.Credit,
			Amount:          decimal.NewFromInt(100),
			CurrencyCode:    "USD",
			ExchangeRate:    decimal.RequireFromString("33.157"),
			SourceKind:      domain.SourceInvoice,
			SourceID:        invoiceID,
			TransactionDate: invoice.InvoiceDate,
		},
	}

	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, invoiceID).Return(invoice, nil).Once()
	suite.mockLedgerService.On("MovementsForSource", mock.Anything, domain.SourceInvoice, invoiceID).
		Return(movements, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(invoiceID, resp.InvoiceID)
	suite.Require().Len(resp.Movements, 1)
	suite.Equal(string(domain.Credit), resp.Movements[0].Direction)
	suite.True(resp.Movements[0].BaseAmount.Equal(decimal.RequireFromString("3315.70")))

	suite.mockInvoiceService.AssertExpectations(suite.T())
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFound() {
	invoiceID := uuid.NewString()

	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, invoiceID).
		Return(nil, fmt.Errorf("failed to fetch invoice %s: %w", invoiceID, apperrors.ErrNotFound)).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "MovementsForSource")
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
