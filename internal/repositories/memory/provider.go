package memory

import (
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
)

// NewRepositoryProvider wires a fresh set of empty in-memory stores.
func NewRepositoryProvider() portsrepo.Provider {
	return portsrepo.Provider{
		AccountRepo:  NewAccountStore(),
		JournalRepo:  NewJournalStore(),
		ProductRepo:  NewProductStore(),
		SalesRepo:    NewSalesStore(),
		PurchaseRepo: NewPurchaseStore(),
	}
}
