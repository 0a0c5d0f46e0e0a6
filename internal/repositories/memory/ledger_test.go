package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	"github.com/alwazw/manus-erp/internal/repositories/memory"
)

func TestAccountStore_DuplicateAndLookup(t *testing.T) {
	store := memory.NewAccountStore()
	ctx := context.Background()

	account := domain.Account{AccountID: "1010", AccountName: "Cash", AccountType: domain.Asset}
	require.NoError(t, store.SaveAccount(ctx, account))
	assert.ErrorIs(t, store.SaveAccount(ctx, account), apperrors.ErrDuplicate)

	found, err := store.FindAccountByID(ctx, "1010")
	require.NoError(t, err)
	assert.Equal(t, "Cash", found.AccountName)

	_, err = store.FindAccountByID(ctx, "9999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestJournalStore_DefensiveLineCopies(t *testing.T) {
	store := memory.NewJournalStore()
	ctx := context.Background()

	lines := []domain.JournalLine{
		{AccountID: "1010", Debit: decimal.NewFromInt(100)},
		{AccountID: "4010", Credit: decimal.NewFromInt(100)},
	}
	entry := domain.JournalEntry{JournalEntryID: "JE0001", Description: "Cash sale", Lines: lines}
	require.NoError(t, store.SaveEntry(ctx, entry))

	// Mutating the caller's slice must not reach stored state.
	lines[0].AccountID = "mutated"

	stored, err := store.FindEntryByID(ctx, "JE0001")
	require.NoError(t, err)
	assert.Equal(t, "1010", stored.Lines[0].AccountID)

	// Mutating a returned copy must not either.
	stored.Lines[1].AccountID = "mutated"
	again, err := store.FindEntryByID(ctx, "JE0001")
	require.NoError(t, err)
	assert.Equal(t, "4010", again.Lines[1].AccountID)
}

func TestJournalStore_ConcurrentAppends(t *testing.T) {
	store := memory.NewJournalStore()
	ctx := context.Background()

	const writers = 100
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			entry := domain.JournalEntry{
				JournalEntryID: fmt.Sprintf("JE%04d", n+1),
				Description:    "concurrent",
			}
			assert.NoError(t, store.SaveEntry(ctx, entry))
		}(i)
	}
	wg.Wait()

	count, err := store.CountEntries(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, writers, count)
}

func TestProductStore_DeleteReindexes(t *testing.T) {
	store := memory.NewProductStore()
	ctx := context.Background()

	for _, sku := range []string{"A", "B", "C"} {
		require.NoError(t, store.SaveProduct(ctx, domain.Product{SKU: sku, Name: sku, Category: "test"}))
	}
	require.NoError(t, store.DeleteProduct(ctx, "B"))

	products, err := store.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].SKU)
	assert.Equal(t, "C", products[1].SKU)

	// Lookups still resolve after the shift.
	found, err := store.FindProductBySKU(ctx, "C")
	require.NoError(t, err)
	assert.Equal(t, "C", found.SKU)
}
