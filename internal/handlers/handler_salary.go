package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
)

// salaryHandler handles HTTP requests for the salary accrual run.
type salaryHandler struct {
	salaryService portssvc.SalarySvcFacade
}

func newSalaryHandler(ss portssvc.SalarySvcFacade) *salaryHandler {
	return &salaryHandler{salaryService: ss}
}

// registerSalaryRoutes registers the salary accrual route.
func registerSalaryRoutes(rg *gin.RouterGroup, salaryService portssvc.SalarySvcFacade) {
	h := newSalaryHandler(salaryService)

	rg.POST("/salaries/accrue", h.accrueSalaries)
}

// accrueSalaries godoc
// @Summary Run the monthly salary accrual
// @Description Accrues the salary of every active employee (or one employee) for a calendar month; already-accrued employees are skipped
// @Tags salaries
// @Accept  json
// @Produce  json
// @Param   run body dto.AccrueSalariesRequest true "Accrual period"
// @Success 200 {array} dto.AccrualResultResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 409 {object} map[string]string "Account is not an employee"
// @Failure 500 {object} map[string]string "Failed to run accrual"
// @Security BearerAuth
// @Router /salaries/accrue [post]
func (h *salaryHandler) accrueSalaries(c *gin.Context) {
	var req dto.AccrueSalariesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	results, err := h.salaryService.AccrueSalaries(c.Request.Context(), req.Month, req.Year, req.AccountID, creatorUserID)
	if err != nil {
		documentWorkflowError(c, err, "run salary accrual")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccrualResultResponses(results))
}
