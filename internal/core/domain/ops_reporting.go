package domain

import "github.com/shopspring/decimal"

// CustomerSales aggregates sales amounts per customer.
type CustomerSales struct {
	CustomerName string          `json:"customer_name"`
	OrderCount   int             `json:"order_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// ProductSales aggregates units sold per SKU.
type ProductSales struct {
	SKU         string          `json:"sku"`
	UnitsSold   int             `json:"units_sold"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SalesReport summarizes sales activity over a period.
type SalesReport struct {
	StartDate          string          `json:"start_date"`
	EndDate            string          `json:"end_date"`
	TotalSalesAmount   decimal.Decimal `json:"total_sales_amount"`
	TotalOrders        int             `json:"total_orders"`
	TopSellingProducts []ProductSales  `json:"top_selling_products"`
	ByCustomer         []CustomerSales `json:"by_customer,omitempty"`
}

// InventoryReport summarizes stock levels as of a date.
type InventoryReport struct {
	AsOfDate            string          `json:"as_of_date"`
	TotalItemsInStock   int             `json:"total_items_in_stock"`
	TotalInventoryValue decimal.Decimal `json:"total_inventory_value"`
	LowStockItems       []Product       `json:"low_stock_items,omitempty"`
}

// SupplierPurchases aggregates purchase amounts per supplier.
type SupplierPurchases struct {
	SupplierName string          `json:"supplier_name"`
	OrderCount   int             `json:"order_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// PurchaseReport summarizes purchasing activity over a period.
type PurchaseReport struct {
	StartDate           string              `json:"start_date"`
	EndDate             string              `json:"end_date"`
	TotalPurchaseAmount decimal.Decimal     `json:"total_purchase_amount"`
	TotalPurchaseOrders int                 `json:"total_purchase_orders"`
	BySupplier          []SupplierPurchases `json:"by_supplier,omitempty"`
}
