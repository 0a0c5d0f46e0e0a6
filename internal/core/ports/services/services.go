// Package services defines the facades the transport layer programs
// against. Concrete implementations live in internal/core/services.
package services

import (
	"context"

	"github.com/alwazw/manus-erp/internal/core/domain"
	"github.com/alwazw/manus-erp/internal/dto"
)

// ChartOfAccountsSvcFacade manages the chart of accounts and answers
// existence and classification queries.
type ChartOfAccountsSvcFacade interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	AddAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	AccountExists(ctx context.Context, accountID string) (bool, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
}

// JournalSvcFacade posts balanced, validated journal entries and reads
// posted history.
type JournalSvcFacade interface {
	PostEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)
	GetAllEntries(ctx context.Context) ([]domain.JournalEntry, error)
	GetEntry(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error)
}

// ReportingSvcFacade derives financial statements from the chart of
// accounts and the posted journal. Date parameters are ISO-8601 strings;
// malformed input fails with dates.ErrInvalidDate.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, asOfDate string) ([]domain.TrialBalanceRow, error)
	IncomeStatement(ctx context.Context, startDate, endDate string) (*domain.IncomeStatementReport, error)
	BalanceSheet(ctx context.Context, asOfDate string) (*domain.BalanceSheetReport, error)
}

// ProductSvcFacade manages the product catalog.
type ProductSvcFacade interface {
	AddProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, sku string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, sku string) error
}

// SalesSvcFacade records and tracks sales orders.
type SalesSvcFacade interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.SalesOrder, error)
	GetAllSales(ctx context.Context) ([]domain.SalesOrder, error)
	GetSaleByID(ctx context.Context, orderID string) (*domain.SalesOrder, error)
	UpdateSaleStatus(ctx context.Context, orderID, newStatus string) (*domain.SalesOrder, error)
}

// PurchaseSvcFacade records and tracks purchase orders.
type PurchaseSvcFacade interface {
	RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*domain.PurchaseOrder, error)
	GetAllPurchases(ctx context.Context) ([]domain.PurchaseOrder, error)
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseOrder, error)
	UpdatePurchaseStatus(ctx context.Context, purchaseID, newStatus string) (*domain.PurchaseOrder, error)
}

// OpsReportingSvcFacade produces the operational (non-financial) reports.
type OpsReportingSvcFacade interface {
	SalesReport(ctx context.Context, startDate, endDate, groupBy string) (*domain.SalesReport, error)
	InventoryReport(ctx context.Context, asOfDate string, lowStockThreshold *int) (*domain.InventoryReport, error)
	PurchaseReport(ctx context.Context, startDate, endDate string, groupBySupplier bool) (*domain.PurchaseReport, error)
}

// ServiceContainer bundles all service facades handed to the handlers.
type ServiceContainer struct {
	Accounts   ChartOfAccountsSvcFacade
	Journal    JournalSvcFacade
	Reporting  ReportingSvcFacade
	Products   ProductSvcFacade
	Sales      SalesSvcFacade
	Purchases  PurchaseSvcFacade
	OpsReports OpsReportingSvcFacade
}
