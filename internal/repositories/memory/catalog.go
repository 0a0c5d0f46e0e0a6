package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
)

// ProductStore is an in-memory product catalog keyed by SKU.
type ProductStore struct {
	mu       sync.RWMutex
	products []domain.Product
	bySKU    map[string]int
}

// NewProductStore returns an empty product store.
func NewProductStore() *ProductStore {
	return &ProductStore{bySKU: make(map[string]int)}
}

var _ portsrepo.ProductRepository = (*ProductStore)(nil)

func (s *ProductStore) SaveProduct(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bySKU[product.SKU]; exists {
		return fmt.Errorf("product %s: %w", product.SKU, apperrors.ErrDuplicate)
	}
	s.bySKU[product.SKU] = len(s.products)
	s.products = append(s.products, product)
	return nil
}

func (s *ProductStore) FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.bySKU[sku]
	if !exists {
		return nil, fmt.Errorf("product %s: %w", sku, apperrors.ErrNotFound)
	}
	product := s.products[idx]
	return &product, nil
}

func (s *ProductStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *ProductStore) UpdateProduct(ctx context.Context, sku string, update domain.ProductUpdate) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.bySKU[sku]
	if !exists {
		return nil, fmt.Errorf("product %s: %w", sku, apperrors.ErrNotFound)
	}

	product := s.products[idx]
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.InventoryStatus != nil {
		product.InventoryStatus = *update.InventoryStatus
	}
	if update.Quantity != nil {
		product.Quantity = *update.Quantity
	}
	if update.UnitPrice != nil {
		product.UnitPrice = *update.UnitPrice
	}
	s.products[idx] = product
	return &product, nil
}

func (s *ProductStore) DeleteProduct(ctx context.Context, sku string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.bySKU[sku]
	if !exists {
		return fmt.Errorf("product %s: %w", sku, apperrors.ErrNotFound)
	}

	s.products = append(s.products[:idx], s.products[idx+1:]...)
	delete(s.bySKU, sku)
	// Reindex trailing entries after removal.
	for i := idx; i < len(s.products); i++ {
		s.bySKU[s.products[i].SKU] = i
	}
	return nil
}
