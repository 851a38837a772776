package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/onmuhasebe/cari_ledger_app/internal/apperrors"
	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	rateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(rs portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.createExchangeRate)
		rates.GET("/:code", h.listRates)
		rates.GET("/:code/current", h.getCurrentRate)
	}
}

// createExchangeRate godoc
// @Summary Record an exchange rate
// @Description Appends a new rate row for a foreign currency; history is never overwritten
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to record rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.rateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		default:
			logger.Error("Failed to record exchange rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record exchange rate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(created))
}

// getCurrentRate godoc
// @Summary Get the current rate for a currency
// @Description Resolves the rate in effect as of the given date (default: now)
// @Tags exchange-rates
// @Produce  json
// @Param   code path string true "Currency Code"
// @Param   asOf query string false "As-of date (YYYY-MM-DD)"
// @Success 200 {object} dto.CurrentRateResponse
// @Failure 404 {object} map[string]string "No rate on record"
// @Failure 500 {object} map[string]string "Failed to resolve rate"
// @Security BearerAuth
// @Router /exchange-rates/{code}/current [get]
func (h *exchangeRateHandler) getCurrentRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	asOf := time.Now().UTC()
	if asOfStr := c.Query("asOf"); asOfStr != "" {
		parsed, err := time.Parse("2006-01-02", asOfStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be formatted YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	rate, err := h.rateService.CurrentRate(c.Request.Context(), currencyCode, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No exchange rate on record for " + currencyCode})
		} else {
			logger.Error("Failed to resolve rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CurrentRateResponse{
		CurrencyCode: currencyCode,
		Rate:         rate,
		AsOf:         asOf,
	})
}

// listRates godoc
// @Summary List the rate history for a currency
// @Tags exchange-rates
// @Produce  json
// @Param   code path string true "Currency Code"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Security BearerAuth
// @Router /exchange-rates/{code} [get]
func (h *exchangeRateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	rates, err := h.rateService.ListRates(c.Request.Context(), currencyCode)
	if err != nil {
		logger.Error("Failed to list exchange rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponses(rates))
}
