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

// invoiceHandler handles HTTP requests related to purchase invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	ledgerService  portssvc.LedgerSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade, ls portssvc.LedgerSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is, ledgerService: ls}
}

// registerInvoiceRoutes registers routes related to purchase invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newInvoiceHandler(invoiceService, ledgerService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.postInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoiceByID)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

// documentWorkflowError maps workflow errors to HTTP responses shared by all
// document handlers.
func documentWorkflowError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Document workflow failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// postInvoice godoc
// @Summary Post a purchase invoice
// @Description Records the invoice with its lines and a single credit movement on the supplier
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Supplier or rate not found"
// @Failure 409 {object} map[string]string "Account is not a supplier"
// @Failure 500 {object} map[string]string "Failed to post invoice"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) postInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.invoiceService.PostInvoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		documentWorkflowError(c, err, "post invoice")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(created))
}

// updateInvoice godoc
// @Summary Update a purchase invoice
// @Description Recomputes the invoice from the new payload and replaces its movement atomically
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   invoice body dto.CreateInvoiceRequest true "New invoice contents"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to update invoice"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	invoiceID := c.Param("id")

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, req, updaterUserID)
	if err != nil {
		documentWorkflowError(c, err, "update invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(updated))
}

// deleteInvoice godoc
// @Summary Delete a purchase invoice
// @Description Removes the invoice and its movement; the supplier's balance reverts
// @Tags invoices
// @Param   id path string true "Invoice ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to delete invoice"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	invoiceID := c.Param("id")

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		documentWorkflowError(c, err, "delete invoice")
		return
	}

	c.Status(http.StatusNoContent)
}

// getInvoiceByID godoc
// @Summary Get a purchase invoice
// @Description Returns the invoice with its lines and the ledger movements it produced
// @Tags invoices
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoiceByID(c *gin.Context) {
	invoiceID := c.Param("id")

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		documentWorkflowError(c, err, "retrieve invoice")
		return
	}

	movements, err := h.ledgerService.MovementsForSource(c.Request.Context(), domain.SourceInvoice, invoiceID)
	if err != nil {
		documentWorkflowError(c, err, "retrieve invoice")
		return
	}

	resp := dto.ToInvoiceResponse(invoice)
	resp.Movements = dto.ToMovementResponses(movements)
	c.JSON(http.StatusOK, resp)
}

// listInvoices godoc
// @Summary List purchase invoices
// @Tags invoices
// @Produce  json
// @Success 200 {array} dto.InvoiceResponse
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponses(invoices))
}
