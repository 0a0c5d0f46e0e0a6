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

// DefaultSaleStatus is applied when a recorded sale carries no status.
const DefaultSaleStatus = "Pending"

// salesService records and tracks sales orders.
type salesService struct {
	salesRepo portsrepo.SalesRepository
	orderIDs  *sequence.Generator
}

// NewSalesService creates a new sales service.
func NewSalesService(salesRepo portsrepo.SalesRepository, orderIDs *sequence.Generator) portssvc.SalesSvcFacade {
	return &salesService{salesRepo: salesRepo, orderIDs: orderIDs}
}

var _ portssvc.SalesSvcFacade = (*salesService)(nil)

// RecordSale validates and stores a new sales order, computing its total
// from the item lines.
func (s *salesService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.SalesOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer_name", ErrMissingField)
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
			return nil, fmt.Errorf("%w: items[%d].price must be non-negative", ErrMissingField, i)
		}
		items[i] = domain.OrderItem{SKU: item.SKU, Quantity: item.Quantity, Price: price}
	}

	status := req.Status
	if status == "" {
		status = DefaultSaleStatus
	}

	order := domain.SalesOrder{
		OrderID:      s.orderIDs.Next(),
		CustomerName: req.CustomerName,
		Items:        items,
		TotalAmount:  domain.OrderTotal(items),
		Status:       status,
		OrderDate:    orderDate,
	}

	if err := s.salesRepo.SaveOrder(ctx, order); err != nil {
		logger.Error("Failed to save sales order", slog.String("order_id", order.OrderID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save sales order: %w", err)
	}

	logger.Info("Sale recorded", slog.String("order_id", order.OrderID), slog.String("total_amount", order.TotalAmount.String()))
	return &order, nil
}

// GetAllSales returns all sales orders in insertion order.
func (s *salesService) GetAllSales(ctx context.Context) ([]domain.SalesOrder, error) {
	orders, err := s.salesRepo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}
	return orders, nil
}

// GetSaleByID retrieves a sales order; apperrors.ErrNotFound when absent.
func (s *salesService) GetSaleByID(ctx context.Context, orderID string) (*domain.SalesOrder, error) {
	return s.salesRepo.FindOrderByID(ctx, orderID)
}

// UpdateSaleStatus changes the status of an existing sales order.
func (s *salesService) UpdateSaleStatus(ctx context.Context, orderID, newStatus string) (*domain.SalesOrder, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(newStatus) == "" {
		return nil, fmt.Errorf("%w: new_status", ErrMissingField)
	}

	order, err := s.salesRepo.UpdateOrderStatus(ctx, orderID, newStatus)
	if err != nil {
		return nil, err
	}

	logger.Info("Sale status updated", slog.String("order_id", orderID), slog.String("status", newStatus))
	return order, nil
}
