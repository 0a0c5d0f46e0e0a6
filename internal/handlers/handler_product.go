package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alwazw/manus-erp/internal/apperrors"
	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/middleware"
)

// productHandler handles the product catalog endpoints.
type productHandler struct {
	products portssvc.ProductSvcFacade
}

func registerProductRoutes(rg *gin.RouterGroup, products portssvc.ProductSvcFacade) {
	h := &productHandler{products: products}

	group := rg.Group("/products")
	group.GET("", h.listProducts)
	group.POST("", h.addProduct)
	group.GET("/:sku", h.getProduct)
	group.PUT("/:sku", h.updateProduct)
	group.DELETE("/:sku", h.deleteProduct)
}

func (h *productHandler) listProducts(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *productHandler) addProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind product request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.products.AddProduct(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to add product", slog.String("sku", req.SKU), slog.String("error", err.Error()))
		// Duplicate SKUs are a conflict here, unlike the accounting API.
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *productHandler) getProduct(c *gin.Context) {
	product, err := h.products.GetProductBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sku := c.Param("sku")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind product update", slog.String("sku", sku), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), sku, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productHandler) deleteProduct(c *gin.Context) {
	if err := h.products.DeleteProduct(c.Request.Context(), c.Param("sku")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
