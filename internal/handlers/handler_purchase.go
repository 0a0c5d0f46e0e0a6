package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/middleware"
)

// purchaseHandler handles the purchase order endpoints.
type purchaseHandler struct {
	purchases portssvc.PurchaseSvcFacade
}

func registerPurchaseRoutes(rg *gin.RouterGroup, purchases portssvc.PurchaseSvcFacade) {
	h := &purchaseHandler{purchases: purchases}

	group := rg.Group("/purchases")
	group.GET("", h.listPurchases)
	group.POST("", h.recordPurchase)
	group.GET("/:purchaseID", h.getPurchase)
	group.PUT("/:purchaseID/status", h.updatePurchaseStatus)
}

func (h *purchaseHandler) listPurchases(c *gin.Context) {
	orders, err := h.purchases.GetAllPurchases(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponses(orders))
}

func (h *purchaseHandler) recordPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind purchase request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.purchases.RecordPurchase(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to record purchase", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order))
}

func (h *purchaseHandler) getPurchase(c *gin.Context) {
	order, err := h.purchases.GetPurchaseByID(c.Request.Context(), c.Param("purchaseID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}

func (h *purchaseHandler) updatePurchaseStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("purchaseID")

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind status update", slog.String("purchase_id", purchaseID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.purchases.UpdatePurchaseStatus(c.Request.Context(), purchaseID, req.NewStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order))
}
