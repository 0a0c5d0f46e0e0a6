package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/middleware"
)

// productService manages the product catalog.
type productService struct {
	productRepo portsrepo.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo portsrepo.ProductRepository) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// AddProduct registers a new product under its SKU.
func (s *productService) AddProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.SKU) == "" {
		return nil, fmt.Errorf("%w: sku", ErrMissingField)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: category", ErrMissingField)
	}

	status := domain.InventoryStatus(req.InventoryStatus)
	if status == "" {
		status = domain.InStock
	}

	product := domain.Product{
		SKU:             req.SKU,
		Name:            req.Name,
		Category:        req.Category,
		InventoryStatus: status,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("product %s: %w", req.SKU, apperrors.ErrDuplicate)
		}
		logger.Error("Failed to save product", slog.String("sku", req.SKU), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	logger.Info("Product added", slog.String("sku", product.SKU))
	return &product, nil
}

// GetProductBySKU retrieves a product; apperrors.ErrNotFound when absent.
func (s *productService) GetProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return s.productRepo.FindProductBySKU(ctx, sku)
}

// ListProducts returns the catalog in insertion order.
func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpdateProduct applies a partial update to an existing product.
func (s *productService) UpdateProduct(ctx context.Context, sku string, req dto.UpdateProductRequest) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.UpdateProduct(ctx, sku, req.ToProductUpdate())
	if err != nil {
		return nil, err
	}

	logger.Info("Product updated", slog.String("sku", sku))
	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *productService) DeleteProduct(ctx context.Context, sku string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.productRepo.DeleteProduct(ctx, sku); err != nil {
		return err
	}

	logger.Info("Product deleted", slog.String("sku", sku))
	return nil
}
