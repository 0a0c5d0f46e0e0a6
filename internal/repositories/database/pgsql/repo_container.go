// Package pgsql implements the repository ports on PostgreSQL via pgx.
package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the PostgreSQL-backed repositories over a
// shared connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.Provider {
	return portsrepo.Provider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		JournalRepo:  newPgxJournalRepository(dbPool),
		ProductRepo:  newPgxProductRepository(dbPool),
		SalesRepo:    newPgxSalesRepository(dbPool),
		PurchaseRepo: newPgxPurchaseRepository(dbPool),
	}
}
