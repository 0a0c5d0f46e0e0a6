package dto

import (
	"github.com/alwazw/manus-erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the payload for adding a product to the catalog.
// Inventory status defaults to "In Stock" when omitted.
type CreateProductRequest struct {
	SKU             string          `json:"sku" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Category        string          `json:"category" binding:"required"`
	InventoryStatus string          `json:"inventory_level_status"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// UpdateProductRequest carries partial product updates; nil means "leave
// unchanged".
type UpdateProductRequest struct {
	Name            *string          `json:"name"`
	Category        *string          `json:"category"`
	InventoryStatus *string          `json:"inventory_level_status"`
	Quantity        *int             `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
}

// ToProductUpdate converts the request to the domain update form.
func (r UpdateProductRequest) ToProductUpdate() domain.ProductUpdate {
	update := domain.ProductUpdate{
		Name:      r.Name,
		Category:  r.Category,
		Quantity:  r.Quantity,
		UnitPrice: r.UnitPrice,
	}
	if r.InventoryStatus != nil {
		status := domain.InventoryStatus(*r.InventoryStatus)
		update.InventoryStatus = &status
	}
	return update
}
