package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
)

// salesSlipHandler handles HTTP requests related to sales slips.
type salesSlipHandler struct {
	slipService portssvc.SalesSlipSvcFacade
}

func newSalesSlipHandler(ss portssvc.SalesSlipSvcFacade) *salesSlipHandler {
	return &salesSlipHandler{slipService: ss}
}

// registerSalesSlipRoutes registers routes related to sales slips.
func registerSalesSlipRoutes(rg *gin.RouterGroup, slipService portssvc.SalesSlipSvcFacade) {
	h := newSalesSlipHandler(slipService)

	slips := rg.Group("/sales-slips")
	{
		slips.POST("", h.postSalesSlip)
		slips.GET("", h.listSalesSlips)
		slips.GET("/:id", h.getSalesSlipByID)
		slips.PUT("/:id", h.updateSalesSlip)
		slips.DELETE("/:id", h.deleteSalesSlip)
	}
}

// postSalesSlip godoc
// @Summary Post a sales slip
// @Description Records the sale with its lines and a single debit movement on the customer
// @Tags sales-slips
// @Accept  json
// @Produce  json
// @Param   slip body dto.CreateSalesSlipRequest true "Sales slip details"
// @Success 201 {object} dto.SalesSlipResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer or rate not found"
// @Failure 409 {object} map[string]string "Account is not a customer"
// @Failure 500 {object} map[string]string "Failed to post sales slip"
// @Security BearerAuth
// @Router /sales-slips [post]
func (h *salesSlipHandler) postSalesSlip(c *gin.Context) {
	var req dto.CreateSalesSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.slipService.PostSalesSlip(c.Request.Context(), req, creatorUserID)
	if err != nil {
		documentWorkflowError(c, err, "post sales slip")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSalesSlipResponse(created))
}

// updateSalesSlip godoc
// @Summary Update a sales slip
// @Description Recomputes the slip from the new payload and replaces its movement atomically
// @Tags sales-slips
// @Accept  json
// @Produce  json
// @Param   id path string true "Sales slip ID"
// @Param   slip body dto.CreateSalesSlipRequest true "New slip contents"
// @Success 200 {object} dto.SalesSlipResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Sales slip not found"
// @Failure 500 {object} map[string]string "Failed to update sales slip"
// @Security BearerAuth
// @Router /sales-slips/{id} [put]
func (h *salesSlipHandler) updateSalesSlip(c *gin.Context) {
	salesSlipID := c.Param("id")

	var req dto.CreateSalesSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.slipService.UpdateSalesSlip(c.Request.Context(), salesSlipID, req, updaterUserID)
	if err != nil {
		documentWorkflowError(c, err, "update sales slip")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesSlipResponse(updated))
}

// deleteSalesSlip godoc
// @Summary Delete a sales slip
// @Description Removes the slip and its movement; the customer's balance reverts
// @Tags sales-slips
// @Param   id path string true "Sales slip ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Sales slip not found"
// @Failure 500 {object} map[string]string "Failed to delete sales slip"
// @Security BearerAuth
// @Router /sales-slips/{id} [delete]
func (h *salesSlipHandler) deleteSalesSlip(c *gin.Context) {
	salesSlipID := c.Param("id")

	if err := h.slipService.DeleteSalesSlip(c.Request.Context(), salesSlipID); err != nil {
		documentWorkflowError(c, err, "delete sales slip")
		return
	}

	c.Status(http.StatusNoContent)
}

// getSalesSlipByID godoc
// @Summary Get a sales slip
// @Tags sales-slips
// @Produce  json
// @Param   id path string true "Sales slip ID"
// @Success 200 {object} dto.SalesSlipResponse
// @Failure 404 {object} map[string]string "Sales slip not found"
// @Failure 500 {object} map[string]string "Failed to retrieve sales slip"
// @Security BearerAuth
// @Router /sales-slips/{id} [get]
func (h *salesSlipHandler) getSalesSlipByID(c *gin.Context) {
	salesSlipID := c.Param("id")

	slip, err := h.slipService.GetSalesSlipByID(c.Request.Context(), salesSlipID)
	if err != nil {
		documentWorkflowError(c, err, "retrieve sales slip")
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesSlipResponse(slip))
}

// listSalesSlips godoc
// @Summary List sales slips
// @Tags sales-slips
// @Produce  json
// @Success 200 {array} dto.SalesSlipResponse
// @Failure 500 {object} map[string]string "Failed to list sales slips"
// @Security BearerAuth
// @Router /sales-slips [get]
func (h *salesSlipHandler) listSalesSlips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	slips, err := h.slipService.ListSalesSlips(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sales slips", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sales slips"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesSlipResponses(slips))
}
