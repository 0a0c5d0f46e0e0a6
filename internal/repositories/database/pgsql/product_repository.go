package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
)

// PgxProductRepository persists the product catalog in PostgreSQL.
type PgxProductRepository struct {
	pool *pgxpool.Pool
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{pool: pool}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (sku, name, category, inventory_status, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		product.SKU,
		product.Name,
		product.Category,
		string(product.InventoryStatus),
		product.Quantity,
		product.UnitPrice,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: product with SKU %s already exists", apperrors.ErrDuplicate, product.SKU)
		}
		return fmt.Errorf("failed to save product %s: %w", product.SKU, err)
	}
	return nil
}

// FindProductBySKU retrieves a product by its SKU.
func (r *PgxProductRepository) FindProductBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	query := `
		SELECT sku, name, category, inventory_status, quantity, unit_price
		FROM products
		WHERE sku = $1;
	`
	product, err := scanProductRow(r.pool.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %s: %w", sku, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find product %s: %w", sku, err)
	}
	return product, nil
}

// ListProducts returns the catalog in insertion order.
func (r *PgxProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT sku, name, category, inventory_status, quantity, unit_price
		FROM products
		ORDER BY seq;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}
	return products, nil
}

// UpdateProduct applies a partial update and returns the updated product.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, sku string, update domain.ProductUpdate) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = COALESCE($2, name),
			category = COALESCE($3, category),
			inventory_status = COALESCE($4, inventory_status),
			quantity = COALESCE($5, quantity),
			unit_price = COALESCE($6, unit_price)
		WHERE sku = $1
		RETURNING sku, name, category, inventory_status, quantity, unit_price;
	`
	var status *string
	if update.InventoryStatus != nil {
		s := string(*update.InventoryStatus)
		status = &s
	}
	product, err := scanProductRow(r.pool.QueryRow(ctx, query, sku, update.Name, update.Category, status, update.Quantity, update.UnitPrice))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %s: %w", sku, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update product %s: %w", sku, err)
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, sku string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE sku = $1;`, sku)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", sku, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", sku, apperrors.ErrNotFound)
	}
	return nil
}

func scanProductRow(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	var status string
	var unitPrice decimal.Decimal
	if err := row.Scan(&product.SKU, &product.Name, &product.Category, &status, &product.Quantity, &unitPrice); err != nil {
		return nil, err
	}
	product.InventoryStatus = domain.InventoryStatus(status)
	product.UnitPrice = unitPrice
	return &product, nil
}
