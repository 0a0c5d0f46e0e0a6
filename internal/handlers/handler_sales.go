package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/middleware"
)

// salesHandler handles the sales order endpoints.
type salesHandler struct {
	sales portssvc.SalesSvcFacade
}

func registerSalesRoutes(rg *gin.RouterGroup, sales portssvc.SalesSvcFacade) {
	h := &salesHandler{sales: sales}

	group := rg.Group("/sales")
	group.GET("", h.listSales)
	group.POST("", h.recordSale)
	group.GET("/:orderID", h.getSale)
	group.PUT("/:orderID/status", h.updateSaleStatus)
}

func (h *salesHandler) listSales(c *gin.Context) {
	orders, err := h.sales.GetAllSales(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesOrderResponses(orders))
}

func (h *salesHandler) recordSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind sale request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.sales.RecordSale(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to record sale", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSalesOrderResponse(order))
}

func (h *salesHandler) getSale(c *gin.Context) {
	order, err := h.sales.GetSaleByID(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesOrderResponse(order))
}

func (h *salesHandler) updateSaleStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind status update", slog.String("order_id", orderID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.sales.UpdateSaleStatus(c.Request.Context(), orderID, req.NewStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesOrderResponse(order))
}
