package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
)

// paymentHandler handles HTTP requests related to payments and collections.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.postPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPaymentByID)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}
}

// postPayment godoc
// @Summary Record a collection or payment
// @Description Records the money transfer and its movement; collections credit the account, payments debit it
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account or rate not found"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) postPayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.paymentService.PostPayment(c.Request.Context(), req, creatorUserID)
	if err != nil {
		documentWorkflowError(c, err, "record payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(created))
}

// updatePayment godoc
// @Summary Update a payment
// @Description Rebuilds the payment from the new payload and replaces its movement atomically
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   payment body dto.CreatePaymentRequest true "New payment contents"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to update payment"
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	paymentID := c.Param("id")

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.paymentService.UpdatePayment(c.Request.Context(), paymentID, req, updaterUserID)
	if err != nil {
		documentWorkflowError(c, err, "update payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(updated))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes the payment and its movement; the account's balance reverts
// @Tags payments
// @Param   id path string true "Payment ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to delete payment"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	paymentID := c.Param("id")

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		documentWorkflowError(c, err, "delete payment")
		return
	}

	c.Status(http.StatusNoContent)
}

// getPaymentByID godoc
// @Summary Get a payment
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPaymentByID(c *gin.Context) {
	paymentID := c.Param("id")

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		documentWorkflowError(c, err, "retrieve payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Tags payments
// @Produce  json
// @Success 200 {array} dto.PaymentResponse
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payments, err := h.paymentService.ListPayments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list payments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}
