package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	"github.com/onmuhasebe/cari_ledger_app/internal/core/domain"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
)

// accountHandler handles HTTP requests related to cari accounts, their
// balances and statements.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	ledgerService  portssvc.LedgerSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, ls portssvc.LedgerSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
		ledgerService:  ls,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newAccountHandler(accountService, ledgerService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccountByID)
		accounts.PUT("/:id", h.updateAccount)
		accounts.DELETE("/:id", h.deactivateAccount)
		accounts.GET("/:id/balance", h.getBalance)
		accounts.GET("/:id/statement", h.getStatement)
	}
}

// createAccount godoc
// @Summary Create a cari account
// @Description Creates a customer, supplier or employee account; a positive opening balance is recorded as an opening movement
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.accountService.CreateAccount(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(created))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists accounts, optionally filtered by kind and activity
// @Tags accounts
// @Produce  json
// @Param   kind query string false "Account kind (CUSTOMER, SUPPLIER, EMPLOYEE)"
// @Param   onlyActive query bool false "Only active accounts"
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var kind *domain.AccountKind
	if kindStr := c.Query("kind"); kindStr != "" {
		k := domain.AccountKind(kindStr)
		if k != domain.Customer && k != domain.Supplier && k != domain.Employee {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be CUSTOMER, SUPPLIER or EMPLOYEE"})
			return
		}
		kind = &k
	}
	onlyActive := c.Query("onlyActive") == "true"

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), kind, onlyActive)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccountByID godoc
// @Summary Get an account
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccountByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update an account
// @Description Updates mutable account details; kind and currency cannot change
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Security BearerAuth
// @Router /accounts/{id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(updated))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Soft-deletes the account; movement history stays queryable
// @Tags accounts
// @Param   id path string true "Account ID"
// @Success 204 "Deactivated"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to deactivate account"
// @Security BearerAuth
// @Router /accounts/{id} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), accountID, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to deactivate account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate account"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// getBalance godoc
// @Summary Get an account's balance in one currency
// @Description Derives the balance from the movement stream: debits minus credits
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   currency query string true "Currency code"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Security BearerAuth
// @Router /accounts/{id}/balance [get]
func (h *accountHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	currencyCode := c.Query("currency")
	if currencyCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency query parameter is required"})
		return
	}

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), accountID, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to compute balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accountID":    accountID,
		"currencyCode": currencyCode,
		"balance":      balance,
	})
}

// getStatement godoc
// @Summary Get an account statement
// @Description Replays the account's movements in one currency over an optional date window, with a carried-forward opening line
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   currency query string true "Currency code"
// @Param   from query string false "Start date (YYYY-MM-DD)"
// @Param   to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.StatementResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /accounts/{id}/statement [get]
func (h *accountHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	var query dto.StatementQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from, to := query.Bounds()
	lines, err := h.ledgerService.BuildStatement(c.Request.Context(), accountID, query.CurrencyCode, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to build statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.StatementResponse{
		AccountID:    accountID,
		CurrencyCode: query.CurrencyCode,
		Lines:        dto.ToStatementLineResponses(lines),
	})
}
