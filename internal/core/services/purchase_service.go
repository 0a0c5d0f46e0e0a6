package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/middleware"
	"github.com/alwazw/manus-erp/internal/utils/dates"
	"github.com/alwazw/manus-erp/internal/utils/sequence"
)

// DefaultPurchaseStatus is applied when a recorded purchase carries no
// status.
const DefaultPurchaseStatus = "Ordered"

// purchaseService records and tracks purchase orders.
type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepository
	purchaseIDs  *sequence.Generator
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepository, purchaseIDs *sequence.Generator) portssvc.PurchaseSvcFacade {
	return &purchaseService{purchaseRepo: purchaseRepo, purchaseIDs: purchaseIDs}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// RecordPurchase validates and stores a new purchase order, computing its
// total from the item lines.
func (s *purchaseService) RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.SupplierName) == "" {
		return nil, fmt.Errorf("%w: supplier_name", ErrMissingField)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items", ErrMissingField)
	}
	if strings.TrimSpace(req.OrderDate) == "" {
		return nil, fmt.Errorf("%w: order_date", ErrMissingField)
	}

	orderDate, err := dates.Parse(req.OrderDate)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		if strings.TrimSpace(item.SKU) == "" {
			return nil, fmt.Errorf("%w: items[%d].sku", ErrMissingField, i)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: items[%d].quantity must be positive", ErrMissingField, i)
		}
		price := item.UnitPrice()
		if price.IsNegative() {
			return nil, fmt.Errorf("%w: items[%d].cost_price must be non-negative", ErrMissingField, i)
		}
		items[i] = domain.OrderItem{SKU: item.SKU, Quantity: item.Quantity, Price: price}
	}

	status := req.Status
	if status == "" {
		status = DefaultPurchaseStatus
	}

	order := domain.PurchaseOrder{
		PurchaseID:   s.purchaseIDs.Next(),
		SupplierName: req.SupplierName,
		Items:        items,
		TotalAmount:  domain.OrderTotal(items),
		Status:       status,
		OrderDate:    orderDate,
	}

	if err := s.purchaseRepo.SaveOrder(ctx, order); err != nil {
		logger.Error("Failed to save purchase order", slog.String("purchase_id", order.PurchaseID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save purchase order: %w", err)
	}

	logger.Info("Purchase recorded", slog.String("purchase_id", order.PurchaseID), slog.String("total_amount", order.TotalAmount.String()))
	return &order, nil
}

// GetAllPurchases returns all purchase orders in insertion order.
func (s *purchaseService) GetAllPurchases(ctx context.Context) ([]domain.PurchaseOrder, error) {
	orders, err := s.purchaseRepo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, nil
}

// GetPurchaseByID retrieves a purchase order; apperrors.ErrNotFound when
// absent.
func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseOrder, error) {
	return s.purchaseRepo.FindOrderByID(ctx, purchaseID)
}

// UpdatePurchaseStatus changes the status of an existing purchase order.
func (s *purchaseService) UpdatePurchaseStatus(ctx context.Context, purchaseID, newStatus string) (*domain.PurchaseOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(newStatus) == "" {
		return nil, fmt.Errorf("%w: new_status", ErrMissingField)
	}

	order, err := s.purchaseRepo.UpdateOrderStatus(ctx, purchaseID, newStatus)
	if err != nil {
		return nil, err
	}

	logger.Info("Purchase status updated", slog.String("purchase_id", purchaseID), slog.String("status", newStatus))
	return order, nil
}
