package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
)

// Order items travel as a JSONB column: they are only ever read back whole
// with their order, never queried individually.

// PgxSalesRepository persists sales orders in PostgreSQL.
type PgxSalesRepository struct {
	pool *pgxpool.Pool
}

func newPgxSalesRepository(pool *pgxpool.Pool) portsrepo.SalesRepository {
	return &PgxSalesRepository{pool: pool}
}

var _ portsrepo.SalesRepository = (*PgxSalesRepository)(nil)

// SaveOrder inserts a new sales order.
func (r *PgxSalesRepository) SaveOrder(ctx context.Context, order domain.SalesOrder) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items of sales order %s: %w", order.OrderID, err)
	}
	query := `
		INSERT INTO sales_orders (order_id, customer_name, items, total_amount, status, order_date)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = r.pool.Exec(ctx, query, order.OrderID, order.CustomerName, items, order.TotalAmount, order.Status, order.OrderDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: sales order %s already exists", apperrors.ErrDuplicate, order.OrderID)
		}
		return fmt.Errorf("failed to save sales order %s: %w", order.OrderID, err)
	}
	return nil
}

// FindOrderByID retrieves a sales order by its id.
func (r *PgxSalesRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.SalesOrder, error) {
	query := `
		SELECT order_id, customer_name, items, total_amount, status, order_date
		FROM sales_orders
		WHERE order_id = $1;
	`
	order, err := scanSalesOrderRow(r.pool.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sales order %s: %w", orderID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find sales order %s: %w", orderID, err)
	}
	return order, nil
}

// ListOrders returns all sales orders in insertion order.
func (r *PgxSalesRepository) ListOrders(ctx context.Context) ([]domain.SalesOrder, error) {
	query := `
		SELECT order_id, customer_name, items, total_amount, status, order_date
		FROM sales_orders
		ORDER BY seq;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.SalesOrder{}
	for rows.Next() {
		order, err := scanSalesOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales order row: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales order rows: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus sets a new status and returns the updated order.
func (r *PgxSalesRepository) UpdateOrderStatus(ctx context.Context, orderID string, status string) (*domain.SalesOrder, error) {
	query := `
		UPDATE sales_orders
		SET status = $2
		WHERE order_id = $1
		RETURNING order_id, customer_name, items, total_amount, status, order_date;
	`
	order, err := scanSalesOrderRow(r.pool.QueryRow(ctx, query, orderID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sales order %s: %w", orderID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update sales order %s: %w", orderID, err)
	}
	return order, nil
}

// CountOrders returns the number of recorded sales orders.
func (r *PgxSalesRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM sales_orders;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sales orders: %w", err)
	}
	return count, nil
}

func scanSalesOrderRow(row pgx.Row) (*domain.SalesOrder, error) {
	var order domain.SalesOrder
	var items []byte
	var total decimal.Decimal
	var orderDate time.Time
	if err := row.Scan(&order.OrderID, &order.CustomerName, &items, &total, &order.Status, &orderDate); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items of sales order %s: %w", order.OrderID, err)
	}
	order.TotalAmount = total
	order.OrderDate = time.Date(orderDate.Year(), orderDate.Month(), orderDate.Day(), 0, 0, 0, 0, time.UTC)
	return &order, nil
}

// PgxPurchaseRepository persists purchase orders in PostgreSQL.
type PgxPurchaseRepository struct {
	pool *pgxpool.Pool
}

func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepository {
	return &PgxPurchaseRepository{pool: pool}
}

var _ portsrepo.PurchaseRepository = (*PgxPurchaseRepository)(nil)

// SaveOrder inserts a new purchase order.
func (r *PgxPurchaseRepository) SaveOrder(ctx context.Context, order domain.PurchaseOrder) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode items of purchase order %s: %w", order.PurchaseID, err)
	}
	query := `
		INSERT INTO purchase_orders (purchase_id, supplier_name, items, total_amount, status, order_date)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = r.pool.Exec(ctx, query, order.PurchaseID, order.SupplierName, items, order.TotalAmount, order.Status, order.OrderDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: purchase order %s already exists", apperrors.ErrDuplicate, order.PurchaseID)
		}
		return fmt.Errorf("failed to save purchase order %s: %w", order.PurchaseID, err)
	}
	return nil
}

// FindOrderByID retrieves a purchase order by its id.
func (r *PgxPurchaseRepository) FindOrderByID(ctx context.Context, purchaseID string) (*domain.PurchaseOrder, error) {
	query := `
		SELECT purchase_id, supplier_name, items, total_amount, status, order_date
		FROM purchase_orders
		WHERE purchase_id = $1;
	`
	order, err := scanPurchaseOrderRow(r.pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("purchase order %s: %w", purchaseID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find purchase order %s: %w", purchaseID, err)
	}
	return order, nil
}

// ListOrders returns all purchase orders in insertion order.
func (r *PgxPurchaseRepository) ListOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	query := `
		SELECT purchase_id, supplier_name, items, total_amount, status, order_date
		FROM purchase_orders
		ORDER BY seq;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.PurchaseOrder{}
	for rows.Next() {
		order, err := scanPurchaseOrderRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order row: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchase order rows: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus sets a new status and returns the updated order.
func (r *PgxPurchaseRepository) UpdateOrderStatus(ctx context.Context, purchaseID string, status string) (*domain.PurchaseOrder, error) {
	query := `
		UPDATE purchase_orders
		SET status = $2
		WHERE purchase_id = $1
		RETURNING purchase_id, supplier_name, items, total_amount, status, order_date;
	`
	order, err := scanPurchaseOrderRow(r.pool.QueryRow(ctx, query, purchaseID, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("purchase order %s: %w", purchaseID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update purchase order %s: %w", purchaseID, err)
	}
	return order, nil
}

// CountOrders returns the number of recorded purchase orders.
func (r *PgxPurchaseRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM purchase_orders;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count purchase orders: %w", err)
	}
	return count, nil
}

func scanPurchaseOrderRow(row pgx.Row) (*domain.PurchaseOrder, error) {
	var order domain.PurchaseOrder
	var items []byte
	var total decimal.Decimal
	var orderDate time.Time
	if err := row.Scan(&order.PurchaseID, &order.SupplierName, &items, &total, &order.Status, &orderDate); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("failed to decode items of purchase order %s: %w", order.PurchaseID, err)
	}
	order.TotalAmount = total
	order.OrderDate = time.Date(orderDate.Year(), orderDate.Month(), orderDate.Day(), 0, 0, 0, 0, time.UTC)
	return &order, nil
}
