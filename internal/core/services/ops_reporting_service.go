package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/utils/dates"
)

// DefaultLowStockThreshold flags products at or below this quantity in the
// inventory report when no threshold is supplied.
const DefaultLowStockThreshold = 10

// topSellingProductsLimit caps the ranked product list in the sales report.
const topSellingProductsLimit = 5

// opsReportingService derives operational reports from the sales, purchase
// and product stores.
type opsReportingService struct {
	productRepo  portsrepo.ProductRepository
	salesRepo    portsrepo.SalesRepository
	purchaseRepo portsrepo.PurchaseRepository
}

// NewOpsReportingService creates a new operational reporting service.
func NewOpsReportingService(productRepo portsrepo.ProductRepository, salesRepo portsrepo.SalesRepository, purchaseRepo portsrepo.PurchaseRepository) portssvc.OpsReportingSvcFacade {
	return &opsReportingService{productRepo: productRepo, salesRepo: salesRepo, purchaseRepo: purchaseRepo}
}

var _ portssvc.OpsReportingSvcFacade = (*opsReportingService)(nil)

// parsePeriod parses an optional inclusive [start, end] range. Empty bounds
// are open.
func parsePeriod(startDate, endDate string) (include func(time.Time) bool, err error) {
	var start, end time.Time
	if startDate != "" {
		if start, err = dates.Parse(startDate); err != nil {
			return nil, err
		}
	}
	if endDate != "" {
		if end, err = dates.Parse(endDate); err != nil {
			return nil, err
		}
	}
	return func(t time.Time) bool {
		if !start.IsZero() && t.Before(start) {
			return false
		}
		if !end.IsZero() && t.After(end) {
			return false
		}
		return true
	}, nil
}

// SalesReport aggregates sales orders over the period. groupBy "customer"
// adds a per-customer breakdown; other values are ignored.
func (s *opsReportingService) SalesReport(ctx context.Context, startDate, endDate, groupBy string) (*domain.SalesReport, error) {
	include, err := parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	orders, err := s.salesRepo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}

	report := domain.SalesReport{
		StartDate:          startDate,
		EndDate:            endDate,
		TotalSalesAmount:   decimal.Zero,
		TopSellingProducts: []domain.ProductSales{},
	}

	bySKU := make(map[string]*domain.ProductSales)
	byCustomer := make(map[string]*domain.CustomerSales)
	for _, order := range orders {
		if !include(order.OrderDate) {
			continue
		}
		report.TotalOrders++
		report.TotalSalesAmount = report.TotalSalesAmount.Add(order.TotalAmount)

		for _, item := range order.Items {
			agg, ok := bySKU[item.SKU]
			if !ok {
				agg = &domain.ProductSales{SKU: item.SKU, TotalAmount: decimal.Zero}
				bySKU[item.SKU] = agg
			}
			agg.UnitsSold += item.Quantity
			agg.TotalAmount = agg.TotalAmount.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		if strings.EqualFold(groupBy, "customer") {
			agg, ok := byCustomer[order.CustomerName]
			if !ok {
				agg = &domain.CustomerSales{CustomerName: order.CustomerName, TotalAmount: decimal.Zero}
				byCustomer[order.CustomerName] = agg
			}
			agg.OrderCount++
			agg.TotalAmount = agg.TotalAmount.Add(order.TotalAmount)
		}
	}

	for _, agg := range bySKU {
		report.TopSellingProducts = append(report.TopSellingProducts, *agg)
	}
	sort.Slice(report.TopSellingProducts, func(i, j int) bool {
		a, b := report.TopSellingProducts[i], report.TopSellingProducts[j]
		if a.UnitsSold != b.UnitsSold {
			return a.UnitsSold > b.UnitsSold
		}
		return a.SKU < b.SKU
	})
	if len(report.TopSellingProducts) > topSellingProductsLimit {
		report.TopSellingProducts = report.TopSellingProducts[:topSellingProductsLimit]
	}

	if strings.EqualFold(groupBy, "customer") {
		report.ByCustomer = make([]domain.CustomerSales, 0, len(byCustomer))
		for _, agg := range byCustomer {
			report.ByCustomer = append(report.ByCustomer, *agg)
		}
		sort.Slice(report.ByCustomer, func(i, j int) bool {
			return report.ByCustomer[i].CustomerName < report.ByCustomer[j].CustomerName
		})
	}

	return &report, nil
}

// InventoryReport summarizes current stock levels. The catalog holds only
// current quantities, so asOfDate is validated and echoed but does not
// filter.
func (s *opsReportingService) InventoryReport(ctx context.Context, asOfDate string, lowStockThreshold *int) (*domain.InventoryReport, error) {
	if asOfDate != "" {
		if _, err := dates.Parse(asOfDate); err != nil {
			return nil, err
		}
	}

	threshold := DefaultLowStockThreshold
	if lowStockThreshold != nil {
		threshold = *lowStockThreshold
	}

	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	report := domain.InventoryReport{
		AsOfDate:            asOfDate,
		TotalInventoryValue: decimal.Zero,
	}
	for _, product := range products {
		report.TotalItemsInStock += product.Quantity
		report.TotalInventoryValue = report.TotalInventoryValue.Add(product.UnitPrice.Mul(decimal.NewFromInt(int64(product.Quantity))))
		if product.Quantity <= threshold {
			report.LowStockItems = append(report.LowStockItems, product)
		}
	}

	return &report, nil
}

// PurchaseReport aggregates purchase orders over the period, optionally
// broken down per supplier.
func (s *opsReportingService) PurchaseReport(ctx context.Context, startDate, endDate string, groupBySupplier bool) (*domain.PurchaseReport, error) {
	include, err := parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}

	orders, err := s.purchaseRepo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}

	report := domain.PurchaseReport{
		StartDate:           startDate,
		EndDate:             endDate,
		TotalPurchaseAmount: decimal.Zero,
	}

	bySupplier := make(map[string]*domain.SupplierPurchases)
	for _, order := range orders {
		if !include(order.OrderDate) {
			continue
		}
		report.TotalPurchaseOrders++
		report.TotalPurchaseAmount = report.TotalPurchaseAmount.Add(order.TotalAmount)

		if groupBySupplier {
			agg, ok := bySupplier[order.SupplierName]
			if !ok {
				agg = &domain.SupplierPurchases{SupplierName: order.SupplierName, TotalAmount: decimal.Zero}
				bySupplier[order.SupplierName] = agg
			}
			agg.OrderCount++
			agg.TotalAmount = agg.TotalAmount.Add(order.TotalAmount)
		}
	}

	if groupBySupplier {
		report.BySupplier = make([]domain.SupplierPurchases, 0, len(bySupplier))
		for _, agg := range bySupplier {
			report.BySupplier = append(report.BySupplier, *agg)
		}
		sort.Slice(report.BySupplier, func(i, j int) bool {
			return report.BySupplier[i].SupplierName < report.BySupplier[j].SupplierName
		})
	}

	return &report, nil
}
