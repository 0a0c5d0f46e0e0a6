package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of a sales or purchase order. Price holds the unit
// sale price for sales orders and the unit cost price for purchase orders.
type OrderItem struct {
	SKU      string          `json:"sku"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// SalesOrder records a customer sale.
type SalesOrder struct {
	OrderID      string          `json:"order_id"` // System-generated, e.g. "SALE001"
	CustomerName string          `json:"customer_name"`
	Items        []OrderItem     `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"` // e.g. "Pending", "Completed"
	OrderDate    time.Time       `json:"-"`
}

// PurchaseOrder records an order placed with a supplier.
type PurchaseOrder struct {
	PurchaseID   string          `json:"purchase_id"` // System-generated, e.g. "PUR001"
	SupplierName string          `json:"supplier_name"`
	Items        []OrderItem     `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"` // e.g. "Ordered", "Received"
	OrderDate    time.Time       `json:"-"`
}

// OrderTotal sums quantity times price across items.
func OrderTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
