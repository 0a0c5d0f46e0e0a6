package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
)

// SalesStore is an in-memory record of sales orders.
type SalesStore struct {
	mu     sync.RWMutex
	orders []domain.SalesOrder
	byID   map[string]int
}

// NewSalesStore returns an empty sales store.
func NewSalesStore() *SalesStore {
	return &SalesStore{byID: make(map[string]int)}
}

var _ portsrepo.SalesRepository = (*SalesStore)(nil)

func (s *SalesStore) SaveOrder(ctx context.Context, order domain.SalesOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[order.OrderID]; exists {
		return fmt.Errorf("sales order %s: %w", order.OrderID, apperrors.ErrDuplicate)
	}
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	s.byID[order.OrderID] = len(s.orders)
	s.orders = append(s.orders, order)
	return nil
}

func (s *SalesStore) FindOrderByID(ctx context.Context, orderID string) (*domain.SalesOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.byID[orderID]
	if !exists {
		return nil, fmt.Errorf("sales order %s: %w", orderID, apperrors.ErrNotFound)
	}
	order := s.orders[idx]
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	return &order, nil
}

func (s *SalesStore) ListOrders(ctx context.Context) ([]domain.SalesOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SalesOrder, len(s.orders))
	for i, order := range s.orders {
		order.Items = append([]domain.OrderItem(nil), order.Items...)
		out[i] = order
	}
	return out, nil
}

func (s *SalesStore) UpdateOrderStatus(ctx context.Context, orderID string, status string) (*domain.SalesOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.byID[orderID]
	if !exists {
		return nil, fmt.Errorf("sales order %s: %w", orderID, apperrors.ErrNotFound)
	}
	s.orders[idx].Status = status
	order := s.orders[idx]
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	return &order, nil
}

func (s *SalesStore) CountOrders(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.orders)), nil
}

// PurchaseStore is an in-memory record of purchase orders.
type PurchaseStore struct {
	mu     sync.RWMutex
	orders []domain.PurchaseOrder
	byID   map[string]int
}

// NewPurchaseStore returns an empty purchase store.
func NewPurchaseStore() *PurchaseStore {
	return &PurchaseStore{byID: make(map[string]int)}
}

var _ portsrepo.PurchaseRepository = (*PurchaseStore)(nil)

func (s *PurchaseStore) SaveOrder(ctx context.Context, order domain.PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[order.PurchaseID]; exists {
		return fmt.Errorf("purchase order %s: %w", order.PurchaseID, apperrors.ErrDuplicate)
	}
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	s.byID[order.PurchaseID] = len(s.orders)
	s.orders = append(s.orders, order)
	return nil
}

func (s *PurchaseStore) FindOrderByID(ctx context.Context, purchaseID string) (*domain.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.byID[purchaseID]
	if !exists {
		return nil, fmt.Errorf("purchase order %s: %w", purchaseID, apperrors.ErrNotFound)
	}
	order := s.orders[idx]
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	return &order, nil
}

func (s *PurchaseStore) ListOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PurchaseOrder, len(s.orders))
	for i, order := range s.orders {
		order.Items = append([]domain.OrderItem(nil), order.Items...)
		out[i] = order
	}
	return out, nil
}

func (s *PurchaseStore) UpdateOrderStatus(ctx context.Context, purchaseID string, status string) (*domain.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.byID[purchaseID]
	if !exists {
		return nil, fmt.Errorf("purchase order %s: %w", purchaseID, apperrors.ErrNotFound)
	}
	s.orders[idx].Status = status
	order := s.orders[idx]
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	return &order, nil
}

func (s *PurchaseStore) CountOrders(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.orders)), nil
}
