package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
)

// reportingHandler handles the dashboard endpoint.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard", h.getDashboardSummary)
}

// getDashboardSummary godoc
// @Summary Get the dashboard summary
// @Description Aggregates the movement stream into per-currency totals plus top debtor and creditor lists
// @Tags reporting
// @Produce  json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboardSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(summary))
}
