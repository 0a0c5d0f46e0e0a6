package services

import (
	"context"
	"fmt"

	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/utils/sequence"
)

// Id sequence formats. Journal entries are zero-padded to four digits,
// orders to three, matching the ids handed out on the wire (JE0001,
// SALE001, PUR001).
const (
	journalIDPrefix  = "JE"
	journalIDWidth   = 4
	saleIDPrefix     = "SALE"
	saleIDWidth      = 3
	purchaseIDPrefix = "PUR"
	purchaseIDWidth  = 3
)

// NewServiceContainer wires the repositories into the full set of service
// facades. Id sequences resume after the rows already persisted so restarts
// never reissue an id.
func NewServiceContainer(ctx context.Context, repos portsrepo.Provider) (*portssvc.ServiceContainer, error) {
	entryCount, err := repos.JournalRepo.CountEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count journal entries: %w", err)
	}
	saleCount, err := repos.SalesRepo.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sales orders: %w", err)
	}
	purchaseCount, err := repos.PurchaseRepo.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count purchase orders: %w", err)
	}

	entryIDs := sequence.NewGeneratorStartingAt(journalIDPrefix, journalIDWidth, entryCount+1)
	saleIDs := sequence.NewGeneratorStartingAt(saleIDPrefix, saleIDWidth, saleCount+1)
	purchaseIDs := sequence.NewGeneratorStartingAt(purchaseIDPrefix, purchaseIDWidth, purchaseCount+1)

	accountSvc := NewChartOfAccountsService(repos.AccountRepo)

	return &portssvc.ServiceContainer{
		Accounts:   accountSvc,
		Journal:    NewJournalService(repos.JournalRepo, accountSvc, entryIDs),
		Reporting:  NewReportingService(repos.AccountRepo, repos.JournalRepo),
		Products:   NewProductService(repos.ProductRepo),
		Sales:      NewSalesService(repos.SalesRepo, saleIDs),
		Purchases:  NewPurchaseService(repos.PurchaseRepo, purchaseIDs),
		OpsReports: NewOpsReportingService(repos.ProductRepo, repos.SalesRepo, repos.PurchaseRepo),
	}, nil
}
