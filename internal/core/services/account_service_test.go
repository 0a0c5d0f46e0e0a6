package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	"github.com/alwazw/manus-erp/internal/core/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/repositories/memory"
)

func TestAddAccount_Success(t *testing.T) {
	svc := services.NewChartOfAccountsService(memory.NewAccountStore())

	account, err := svc.AddAccount(context.Background(), dto.CreateAccountRequest{
		AccountID:   "1010",
		AccountName: "Cash",
		AccountType: "ASSET",
	})

	require.NoError(t, err)
	assert.Equal(t, "1010", account.AccountID)
	assert.Equal(t, "Cash", account.AccountName)
	assert.Equal(t, domain.Asset, account.AccountType)
}

func TestAddAccount_NormalizesAccountType(t *testing.T) {
	svc := services.NewChartOfAccountsService(memory.NewAccountStore())

	account, err := svc.AddAccount(context.Background(), dto.CreateAccountRequest{
		AccountID:   "4010",
		AccountName: "Sales Revenue",
		AccountType: "revenue",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Revenue, account.AccountType)
}

func TestAddAccount_MissingFields(t *testing.T) {
	svc := services.NewChartOfAccountsService(memory.NewAccountStore())

	testCases := []struct {
		name string
		req  dto.CreateAccountRequest
	}{
		{"missing account_id", dto.CreateAccountRequest{AccountName: "Cash", AccountType: "ASSET"}},
		{"missing account_name", dto.CreateAccountRequest{AccountID: "1010", AccountType: "ASSET"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddAccount(context.Background(), tc.req)
			assert.ErrorIs(t, err, services.ErrMissingField)
		})
	}
}

func TestAddAccount_InvalidType(t *testing.T) {
	svc := services.NewChartOfAccountsService(memory.NewAccountStore())

	_, err := svc.AddAccount(context.Background(), dto.CreateAccountRequest{
		AccountID:   "9999",
		AccountName: "Mystery",
		AccountType: "CONTRA",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAddAccount_Duplicate(t *testing.T) {
	svc := services.NewChartOfAccountsService(memory.NewAccountStore())
	ctx := context.Background()

	req := dto.CreateAccountRequest{AccountID: "1010", AccountName: "Cash", AccountType: "ASSET"}
	_, err := svc.AddAccount(ctx, req)
	require.NoError(t, err)

	// Same id with a different name and type is still rejected.
	req.AccountName = "Petty Cash"
	req.AccountType = "EXPENSE"
	_, err = svc.AddAccount(ctx, req)
	assert.ErrorIs(t, err, services.ErrDuplicateAccount)

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Cash", accounts[0].AccountName)
}

func TestListAccounts_PreservesInsertionOrder(t *testing.T) {
	svc := services.NewChartOfAccountsService(memory.NewAccountStore())
	ctx := context.Background()

	for _, req := range []dto.CreateAccountRequest{
		{AccountID: "4010", AccountName: "Sales Revenue", AccountType: "REVENUE"},
		{AccountID: "1010", AccountName: "Cash", AccountType: "ASSET"},
		{AccountID: "2010", AccountName: "Accounts Payable", AccountType: "LIABILITY"},
	} {
		_, err := svc.AddAccount(ctx, req)
		require.NoError(t, err)
	}

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, "4010", accounts[0].AccountID)
	assert.Equal(t, "1010", accounts[1].AccountID)
	assert.Equal(t, "2010", accounts[2].AccountID)
}

func TestAccountExists(t *testing.T) {
	svc := services.NewChartOfAccountsService(memory.NewAccountStore())
	ctx := context.Background()

	_, err := svc.AddAccount(ctx, dto.CreateAccountRequest{AccountID: "1010", AccountName: "Cash", AccountType: "ASSET"})
	require.NoError(t, err)

	exists, err := svc.AccountExists(ctx, "1010")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.AccountExists(ctx, "9999")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetAccount_NotFound(t *testing.T) {
	svc := services.NewChartOfAccountsService(memory.NewAccountStore())

	_, err := svc.GetAccount(context.Background(), "9999")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSeedDefaultChart(t *testing.T) {
	store := memory.NewAccountStore()
	ctx := context.Background()

	require.NoError(t, services.SeedDefaultChart(ctx, store))

	accounts, err := store.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 7)
	assert.Equal(t, "1010", accounts[0].AccountID)
	assert.Equal(t, domain.Asset, accounts[0].AccountType)
	assert.Equal(t, "5050", accounts[6].AccountID)

	// Seeding again is a no-op.
	require.NoError(t, services.SeedDefaultChart(ctx, store))
	accounts, err = store.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 7)
}
