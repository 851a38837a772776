package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/onmuhasebe/cari_ledger_app/internal/core/ports/services"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
	"github.com/onmuhasebe/cari_ledger_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check stays public
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg)

	// Everything else lives under /api/v1 behind the auth middleware
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCurrencyRoutes(v1, services.Currency)
	registerExchangeRateRoutes(v1, services.ExchangeRate)
	registerAccountRoutes(v1, services.Account, services.Ledger)
	registerInvoiceRoutes(v1, services.Invoice, services.Ledger)
	registerSalesSlipRoutes(v1, services.SalesSlip)
	registerPaymentRoutes(v1, services.Payment)
	registerSalaryRoutes(v1, services.Salary)
	registerReportingRoutes(v1, services.Reporting)
}
