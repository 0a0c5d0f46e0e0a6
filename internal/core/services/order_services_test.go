package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/repositories/memory"
	"github.com/alwazw/manus-erp/internal/utils/dates"
	"github.com/alwazw/manus-erp/internal/utils/sequence"
)

func saleRequest() dto.RecordSaleRequest {
	return dto.RecordSaleRequest{
		CustomerName: "Acme Corp",
		OrderDate:    "2024-03-05",
		Items: []dto.OrderItemRequest{
			{SKU: "WID-001", Quantity: 2, Price: decimal.NewFromFloat(9.99)},
			{SKU: "GAD-002", Quantity: 1, Price: decimal.NewFromFloat(49.50)},
		},
	}
}

func TestRecordSale_ComputesTotalAndDefaults(t *testing.T) {
	svc := services.NewSalesService(memory.NewSalesStore(), sequence.NewGenerator("SALE", 3))

	order, err := svc.RecordSale(context.Background(), saleRequest())

	require.NoError(t, err)
	assert.Equal(t, "SALE001", order.OrderID)
	assert.Equal(t, "Pending", order.Status)
	// 2*9.99 + 1*49.50
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(69.48)))
	assert.Equal(t, "2024-03-05", order.OrderDate.Format(dates.Layout))
}

func TestRecordSale_SequentialIDs(t *testing.T) {
	svc := services.NewSalesService(memory.NewSalesStore(), sequence.NewGenerator("SALE", 3))

	for _, want := range []string{"SALE001", "SALE002", "SALE003"} {
		order, err := svc.RecordSale(context.Background(), saleRequest())
		require.NoError(t, err)
		assert.Equal(t, want, order.OrderID)
	}
}

func TestRecordSale_Validation(t *testing.T) {
	svc := services.NewSalesService(memory.NewSalesStore(), sequence.NewGenerator("SALE", 3))

	testCases := []struct {
		name    string
		mutate  func(*dto.RecordSaleRequest)
		wantErr error
	}{
		{"missing customer", func(r *dto.RecordSaleRequest) { r.CustomerName = "" }, services.ErrMissingField},
		{"no items", func(r *dto.RecordSaleRequest) { r.Items = nil }, services.ErrMissingField},
		{"missing date", func(r *dto.RecordSaleRequest) { r.OrderDate = "" }, services.ErrMissingField},
		{"bad date", func(r *dto.RecordSaleRequest) { r.OrderDate = "05/03/2024" }, dates.ErrInvalidDate},
		{"zero quantity", func(r *dto.RecordSaleRequest) { r.Items[0].Quantity = 0 }, services.ErrMissingField},
		{"negative price", func(r *dto.RecordSaleRequest) { r.Items[0].Price = decimal.NewFromInt(-1) }, services.ErrMissingField},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := saleRequest()
			tc.mutate(&req)

			_, err := svc.RecordSale(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUpdateSaleStatus(t *testing.T) {
	svc := services.NewSalesService(memory.NewSalesStore(), sequence.NewGenerator("SALE", 3))
	ctx := context.Background()

	order, err := svc.RecordSale(ctx, saleRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateSaleStatus(ctx, order.OrderID, "Completed")
	require.NoError(t, err)
	assert.Equal(t, "Completed", updated.Status)

	fetched, err := svc.GetSaleByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "Completed", fetched.Status)

	_, err = svc.UpdateSaleStatus(ctx, "SALE999", "Completed")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func purchaseRequest() dto.RecordPurchaseRequest {
	return dto.RecordPurchaseRequest{
		SupplierName: "Parts Unlimited",
		OrderDate:    "2024-03-02",
		Items: []dto.OrderItemRequest{
			{SKU: "WID-001", Quantity: 10, CostPrice: decimal.NewFromFloat(4.25)},
		},
	}
}

func TestRecordPurchase_UsesCostPrice(t *testing.T) {
	svc := services.NewPurchaseService(memory.NewPurchaseStore(), sequence.NewGenerator("PUR", 3))

	order, err := svc.RecordPurchase(context.Background(), purchaseRequest())

	require.NoError(t, err)
	assert.Equal(t, "PUR001", order.PurchaseID)
	assert.Equal(t, "Ordered", order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(42.50)))
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].Price.Equal(decimal.NewFromFloat(4.25)))
}

func TestRecordPurchase_MissingSupplier(t *testing.T) {
	svc := services.NewPurchaseService(memory.NewPurchaseStore(), sequence.NewGenerator("PUR", 3))

	req := purchaseRequest()
	req.SupplierName = ""

	_, err := svc.RecordPurchase(context.Background(), req)
	assert.ErrorIs(t, err, services.ErrMissingField)
}

func TestUpdatePurchaseStatus(t *testing.T) {
	svc := services.NewPurchaseService(memory.NewPurchaseStore(), sequence.NewGenerator("PUR", 3))
	ctx := context.Background()

	order, err := svc.RecordPurchase(ctx, purchaseRequest())
	require.NoError(t, err)

	updated, err := svc.UpdatePurchaseStatus(ctx, order.PurchaseID, "Received")
	require.NoError(t, err)
	assert.Equal(t, "Received", updated.Status)

	_, err = svc.UpdatePurchaseStatus(ctx, order.PurchaseID, "  ")
	assert.ErrorIs(t, err, services.ErrMissingField)
}

func TestGetAllSales_InsertionOrder(t *testing.T) {
	svc := services.NewSalesService(memory.NewSalesStore(), sequence.NewGenerator("SALE", 3))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.RecordSale(ctx, saleRequest())
		require.NoError(t, err)
	}

	orders, err := svc.GetAllSales(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "SALE001", orders[0].OrderID)
	assert.Equal(t, "SALE003", orders[2].OrderID)
}
