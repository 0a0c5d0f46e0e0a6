// Package repositories defines the persistence ports consumed by the core
// services. Implementations live under internal/repositories (in-memory and
// PostgreSQL).
package repositories

import (
	"context"

	"github.com/alwazw/manus-erp/internal/core/domain"
)

// AccountRepository owns the chart of accounts.
type AccountRepository interface {
	// SaveAccount appends a new account. Fails with apperrors.ErrDuplicate
	// when the account id is already registered.
	SaveAccount(ctx context.Context, account domain.Account) error
	// FindAccountByID fails with apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// ListAccounts returns all accounts in insertion order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// AccountExists reports whether the account id is registered.
	AccountExists(ctx context.Context, accountID string) (bool, error)
}

// JournalRepository owns the sequence of posted journal entries.
type JournalRepository interface {
	// SaveEntry appends a validated entry. The append is atomic: readers
	// never observe a partially stored entry.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error
	// FindEntryByID fails with apperrors.ErrNotFound when absent.
	FindEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)
	// ListEntries returns all posted entries in insertion order.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)
	// CountEntries returns the number of posted entries, used to resume
	// the entry id sequence across restarts.
	CountEntries(ctx context.Context) (int64, error)
}

// ProductRepository owns the product catalog, keyed by SKU.
type ProductRepository interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, sku string, update domain.ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, sku string) error
}

// SalesRepository owns recorded sales orders.
type SalesRepository interface {
	SaveOrder(ctx context.Context, order domain.SalesOrder) error
	FindOrderByID(ctx context.Context, orderID string) (*domain.SalesOrder, error)
	ListOrders(ctx context.Context) ([]domain.SalesOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status string) (*domain.SalesOrder, error)
	CountOrders(ctx context.Context) (int64, error)
}

// PurchaseRepository owns recorded purchase orders.
type PurchaseRepository interface {
	SaveOrder(ctx context.Context, order domain.PurchaseOrder) error
	FindOrderByID(ctx context.Context, purchaseID string) (*domain.PurchaseOrder, error)
	ListOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
	UpdateOrderStatus(ctx context.Context, purchaseID string, status string) (*domain.PurchaseOrder, error)
	CountOrders(ctx context.Context) (int64, error)
}

// Provider bundles the repository implementations handed to the service
// container at startup.
type Provider struct {
	AccountRepo  AccountRepository
	JournalRepo  JournalRepository
	ProductRepo  ProductRepository
	SalesRepo    SalesRepository
	PurchaseRepo PurchaseRepository
}
