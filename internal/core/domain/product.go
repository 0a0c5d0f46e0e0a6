package domain

import "github.com/shopspring/decimal"

// InventoryStatus classifies a product's stock position.
type InventoryStatus string

const (
	InStock    InventoryStatus = "In Stock"
	LowStock   InventoryStatus = "Low Stock"
	OutOfStock InventoryStatus = "Out of Stock"
)

// Product is a stocked item identified by its SKU.
type Product struct {
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	InventoryStatus InventoryStatus `json:"inventory_level_status"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// ProductUpdate carries the mutable fields of a product; nil pointers mean
// "leave unchanged".
type ProductUpdate struct {
	Name            *string
	Category        *string
	InventoryStatus *InventoryStatus
	Quantity        *int
	UnitPrice       *decimal.Decimal
}
