package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/middleware"
)

// opsReportsHandler handles the operational report endpoints.
type opsReportsHandler struct {
	reports portssvc.OpsReportingSvcFacade
}

func registerOpsReportRoutes(rg *gin.RouterGroup, reports portssvc.OpsReportingSvcFacade) {
	h := &opsReportsHandler{reports: reports}

	group := rg.Group("/reports")
	group.GET("/sales", h.salesReport)
	group.GET("/inventory", h.inventoryReport)
	group.GET("/purchases", h.purchaseReport)
}

func (h *opsReportsHandler) salesReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reports.SalesReport(c.Request.Context(), c.Query("start_date"), c.Query("end_date"), c.Query("group_by"))
	if err != nil {
		logger.Warn("Failed to generate sales report", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *opsReportsHandler) inventoryReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var threshold *int
	if raw := c.Query("low_stock_threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "low_stock_threshold must be an integer"})
			return
		}
		threshold = &parsed
	}

	report, err := h.reports.InventoryReport(c.Request.Context(), c.Query("as_of_date"), threshold)
	if err != nil {
		logger.Warn("Failed to generate inventory report", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *opsReportsHandler) purchaseReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	groupBySupplier := c.Query("group_by") == "supplier"
	report, err := h.reports.PurchaseReport(c.Request.Context(), c.Query("start_date"), c.Query("end_date"), groupBySupplier)
	if err != nil {
		logger.Warn("Failed to generate purchase report", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
