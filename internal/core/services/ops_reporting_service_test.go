package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/core/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/repositories/memory"
	"github.com/alwazw/manus-erp/internal/utils/dates"
	"github.com/alwazw/manus-erp/internal/utils/sequence"
)

type opsFixture struct {
	reports   portssvc.OpsReportingSvcFacade
	products  portssvc.ProductSvcFacade
	sales     portssvc.SalesSvcFacade
	purchases portssvc.PurchaseSvcFacade
}

func newOpsFixture() opsFixture {
	productStore := memory.NewProductStore()
	salesStore := memory.NewSalesStore()
	purchaseStore := memory.NewPurchaseStore()
	return opsFixture{
		reports:   services.NewOpsReportingService(productStore, salesStore, purchaseStore),
		products:  services.NewProductService(productStore),
		sales:     services.NewSalesService(salesStore, sequence.NewGenerator("SALE", 3)),
		purchases: services.NewPurchaseService(purchaseStore, sequence.NewGenerator("PUR", 3)),
	}
}

func recordSale(t *testing.T, f opsFixture, customer, date string, items ...dto.OrderItemRequest) {
	t.Helper()
	_, err := f.sales.RecordSale(context.Background(), dto.RecordSaleRequest{
		CustomerName: customer,
		OrderDate:    date,
		Items:        items,
	})
	require.NoError(t, err)
}

func TestSalesReport_TotalsAndTopProducts(t *testing.T) {
	f := newOpsFixture()

	recordSale(t, f, "Acme Corp", "2024-03-05",
		dto.OrderItemRequest{SKU: "WID-001", Quantity: 5, Price: decimal.NewFromInt(10)})
	recordSale(t, f, "Beta LLC", "2024-03-10",
		dto.OrderItemRequest{SKU: "WID-001", Quantity: 2, Price: decimal.NewFromInt(10)},
		dto.OrderItemRequest{SKU: "GAD-002", Quantity: 9, Price: decimal.NewFromInt(3)})

	report, err := f.reports.SalesReport(context.Background(), "2024-03-01", "2024-03-31", "")
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalOrders)
	// 5*10 + 2*10 + 9*3
	assert.True(t, report.TotalSalesAmount.Equal(decimal.NewFromInt(97)))
	require.Len(t, report.TopSellingProducts, 2)
	// Ranked by units sold: GAD-002 (9) before WID-001 (7).
	assert.Equal(t, "GAD-002", report.TopSellingProducts[0].SKU)
	assert.Equal(t, 9, report.TopSellingProducts[0].UnitsSold)
	assert.Equal(t, "WID-001", report.TopSellingProducts[1].SKU)
	assert.Equal(t, 7, report.TopSellingProducts[1].UnitsSold)
	assert.Nil(t, report.ByCustomer)
}

func TestSalesReport_GroupByCustomer(t *testing.T) {
	f := newOpsFixture()

	recordSale(t, f, "Acme Corp", "2024-03-05",
		dto.OrderItemRequest{SKU: "WID-001", Quantity: 1, Price: decimal.NewFromInt(10)})
	recordSale(t, f, "Acme Corp", "2024-03-06",
		dto.OrderItemRequest{SKU: "WID-001", Quantity: 1, Price: decimal.NewFromInt(10)})
	recordSale(t, f, "Beta LLC", "2024-03-07",
		dto.OrderItemRequest{SKU: "WID-001", Quantity: 1, Price: decimal.NewFromInt(5)})

	report, err := f.reports.SalesReport(context.Background(), "", "", "customer")
	require.NoError(t, err)

	require.Len(t, report.ByCustomer, 2)
	assert.Equal(t, "Acme Corp", report.ByCustomer[0].CustomerName)
	assert.Equal(t, 2, report.ByCustomer[0].OrderCount)
	assert.True(t, report.ByCustomer[0].TotalAmount.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "Beta LLC", report.ByCustomer[1].CustomerName)
}

func TestSalesReport_PeriodFilter(t *testing.T) {
	f := newOpsFixture()

	recordSale(t, f, "Acme Corp", "2024-02-28",
		dto.OrderItemRequest{SKU: "WID-001", Quantity: 1, Price: decimal.NewFromInt(10)})
	recordSale(t, f, "Acme Corp", "2024-03-15",
		dto.OrderItemRequest{SKU: "WID-001", Quantity: 1, Price: decimal.NewFromInt(20)})

	report, err := f.reports.SalesReport(context.Background(), "2024-03-01", "2024-03-31", "")
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalOrders)
	assert.True(t, report.TotalSalesAmount.Equal(decimal.NewFromInt(20)))
}

func TestSalesReport_InvalidPeriod(t *testing.T) {
	f := newOpsFixture()

	_, err := f.reports.SalesReport(context.Background(), "bad", "", "")
	assert.ErrorIs(t, err, dates.ErrInvalidDate)
}

func TestInventoryReport_ValueAndLowStock(t *testing.T) {
	f := newOpsFixture()
	ctx := context.Background()

	_, err := f.products.AddProduct(ctx, dto.CreateProductRequest{
		SKU: "WID-001", Name: "Widget", Category: "Hardware", Quantity: 100, UnitPrice: decimal.NewFromInt(2),
	})
	require.NoError(t, err)
	_, err = f.products.AddProduct(ctx, dto.CreateProductRequest{
		SKU: "GAD-002", Name: "Gadget", Category: "Hardware", Quantity: 4, UnitPrice: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	report, err := f.reports.InventoryReport(ctx, "2024-03-31", nil)
	require.NoError(t, err)

	assert.Equal(t, 104, report.TotalItemsInStock)
	// 100*2 + 4*50
	assert.True(t, report.TotalInventoryValue.Equal(decimal.NewFromInt(400)))
	require.Len(t, report.LowStockItems, 1)
	assert.Equal(t, "GAD-002", report.LowStockItems[0].SKU)
}

func TestInventoryReport_CustomThreshold(t *testing.T) {
	f := newOpsFixture()
	ctx := context.Background()

	_, err := f.products.AddProduct(ctx, dto.CreateProductRequest{
		SKU: "WID-001", Name: "Widget", Category: "Hardware", Quantity: 100, UnitPrice: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	threshold := 100
	report, err := f.reports.InventoryReport(ctx, "", &threshold)
	require.NoError(t, err)
	assert.Len(t, report.LowStockItems, 1)
}

func TestPurchaseReport_GroupBySupplier(t *testing.T) {
	f := newOpsFixture()
	ctx := context.Background()

	for _, req := range []dto.RecordPurchaseRequest{
		{SupplierName: "Parts Unlimited", OrderDate: "2024-03-01", Items: []dto.OrderItemRequest{{SKU: "WID-001", Quantity: 10, CostPrice: decimal.NewFromInt(4)}}},
		{SupplierName: "Parts Unlimited", OrderDate: "2024-03-08", Items: []dto.OrderItemRequest{{SKU: "WID-001", Quantity: 5, CostPrice: decimal.NewFromInt(4)}}},
		{SupplierName: "Global Supply", OrderDate: "2024-03-15", Items: []dto.OrderItemRequest{{SKU: "GAD-002", Quantity: 2, CostPrice: decimal.NewFromInt(30)}}},
	} {
		_, err := f.purchases.RecordPurchase(ctx, req)
		require.NoError(t, err)
	}

	report, err := f.reports.PurchaseReport(ctx, "2024-03-01", "2024-03-31", true)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalPurchaseOrders)
	// 40 + 20 + 60
	assert.True(t, report.TotalPurchaseAmount.Equal(decimal.NewFromInt(120)))
	require.Len(t, report.BySupplier, 2)
	assert.Equal(t, "Global Supply", report.BySupplier[0].SupplierName)
	assert.Equal(t, 1, report.BySupplier[0].OrderCount)
	assert.Equal(t, "Parts Unlimited", report.BySupplier[1].SupplierName)
	assert.True(t, report.BySupplier[1].TotalAmount.Equal(decimal.NewFromInt(60)))
}
