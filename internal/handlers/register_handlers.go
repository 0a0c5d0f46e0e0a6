// Package handlers wires the HTTP surface: route registration, request
// binding and error-to-status mapping over the service facades.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/middleware"
	"github.com/alwazw/manus-erp/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facades.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	setupAPIRoutes(r, cfg, services)
}

// setupAPIRoutes configures the /api group and delegates to the per-module
// route registrations.
func setupAPIRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	var api *gin.RouterGroup
	if cfg.AuthEnabled {
		api = r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret))
	} else {
		api = r.Group("/api")
	}

	registerAccountingRoutes(api, services.Accounts, services.Journal, services.Reporting)
	registerProductRoutes(api, services.Products)
	registerSalesRoutes(api, services.Sales)
	registerPurchaseRoutes(api, services.Purchases)
	registerOpsReportRoutes(api, services.OpsReports)
}
