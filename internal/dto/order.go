package dto

import (
	"github.com/alwazw/manus-erp/internal/core/domain"
	"github.com/alwazw/manus-erp/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one line of a sales or purchase order request.
type OrderItemRequest struct {
	SKU      string          `json:"sku" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,gt=0"`
	Price    decimal.Decimal `json:"price"`
	// CostPrice is accepted as an alias for Price on purchase orders.
	CostPrice decimal.Decimal `json:"cost_price"`
}

// UnitPrice resolves the effective per-unit amount: purchase payloads use
// cost_price, sales payloads use price.
func (r OrderItemRequest) UnitPrice() decimal.Decimal {
	if !r.CostPrice.IsZero() {
		return r.CostPrice
	}
	return r.Price
}

// RecordSaleRequest is the payload for recording a sales order. Status
// defaults to "Pending" when omitted.
type RecordSaleRequest struct {
	CustomerName string             `json:"customer_name"`
	Items        []OrderItemRequest `json:"items"`
	OrderDate    string             `json:"order_date"`
	Status       string             `json:"status"`
}

// RecordPurchaseRequest is the payload for recording a purchase order.
// Status defaults to "Ordered" when omitted.
type RecordPurchaseRequest struct {
	SupplierName string             `json:"supplier_name"`
	Items        []OrderItemRequest `json:"items"`
	OrderDate    string             `json:"order_date"`
	Status       string             `json:"status"`
}

// UpdateOrderStatusRequest changes the status of an existing order.
type UpdateOrderStatusRequest struct {
	NewStatus string `json:"new_status" binding:"required"`
}

// OrderItemResponse mirrors a stored order item on the wire.
type OrderItemResponse struct {
	SKU      string          `json:"sku"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// SalesOrderResponse mirrors a sales order on the wire.
type SalesOrderResponse struct {
	OrderID      string              `json:"order_id"`
	CustomerName string              `json:"customer_name"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	Status       string              `json:"status"`
	OrderDate    string              `json:"order_date"`
}

// PurchaseOrderResponse mirrors a purchase order on the wire.
type PurchaseOrderResponse struct {
	PurchaseID   string              `json:"purchase_id"`
	SupplierName string              `json:"supplier_name"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	Status       string              `json:"status"`
	OrderDate    string              `json:"order_date"`
}

func toOrderItemResponses(items []domain.OrderItem) []OrderItemResponse {
	responses := make([]OrderItemResponse, len(items))
	for i, item := range items {
		responses[i] = OrderItemResponse{SKU: item.SKU, Quantity: item.Quantity, Price: item.Price}
	}
	return responses
}

// ToSalesOrderResponse converts a domain sales order to its response form.
func ToSalesOrderResponse(o *domain.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		OrderID:      o.OrderID,
		CustomerName: o.CustomerName,
		Items:        toOrderItemResponses(o.Items),
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		OrderDate:    o.OrderDate.Format(dates.Layout),
	}
}

// ToSalesOrderResponses converts a slice of domain sales orders.
func ToSalesOrderResponses(orders []domain.SalesOrder) []SalesOrderResponse {
	responses := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToSalesOrderResponse(&orders[i])
	}
	return responses
}

// ToPurchaseOrderResponse converts a domain purchase order to its response
// form.
func ToPurchaseOrderResponse(o *domain.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		PurchaseID:   o.PurchaseID,
		SupplierName: o.SupplierName,
		Items:        toOrderItemResponses(o.Items),
		TotalAmount:  o.TotalAmount,
		Status:       o.Status,
		OrderDate:    o.OrderDate.Format(dates.Layout),
	}
}

// ToPurchaseOrderResponses converts a slice of domain purchase orders.
func ToPurchaseOrderResponses(orders []domain.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses
}
