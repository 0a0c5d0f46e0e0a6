package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/middleware"
)

// chartOfAccountsService maintains the set of accounts and answers
// existence and classification queries. Accounts are append-only: there is
// no update or delete.
type chartOfAccountsService struct {
	accountRepo portsrepo.AccountRepository
}

// NewChartOfAccountsService creates a new chart-of-accounts service.
func NewChartOfAccountsService(accountRepo portsrepo.AccountRepository) portssvc.ChartOfAccountsSvcFacade {
	return &chartOfAccountsService{accountRepo: accountRepo}
}

var _ portssvc.ChartOfAccountsSvcFacade = (*chartOfAccountsService)(nil)

// ListAccounts returns all registered accounts in insertion order.
func (s *chartOfAccountsService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// AddAccount registers a new account. The account id is caller-assigned
// and must be unique; the account type must be one of the five valid
// types.
func (s *chartOfAccountsService) AddAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.AccountID) == "" {
		return nil, fmt.Errorf("%w: account_id", ErrMissingField)
	}
	if strings.TrimSpace(req.AccountName) == "" {
		return nil, fmt.Errorf("%w: account_name", ErrMissingField)
	}

	accountType, err := domain.ParseAccountType(req.AccountType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	account := domain.Account{
		AccountID:   req.AccountID,
		AccountName: req.AccountName,
		AccountType: accountType,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAccount, req.AccountID)
		}
		logger.Error("Failed to save account", slog.String("account_id", req.AccountID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account added to chart of accounts", slog.String("account_id", account.AccountID), slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

// AccountExists reports whether an account id is registered.
func (s *chartOfAccountsService) AccountExists(ctx context.Context, accountID string) (bool, error) {
	return s.accountRepo.AccountExists(ctx, accountID)
}

// GetAccount retrieves a single account by id. Fails with
// apperrors.ErrNotFound when absent.
func (s *chartOfAccountsService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// SeedDefaultChart registers the default chart of accounts when the
// registry is empty. Idempotent across restarts against a persistent
// store.
func SeedDefaultChart(ctx context.Context, accountRepo portsrepo.AccountRepository) error {
	existing, err := accountRepo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect chart of accounts: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, account := range domain.DefaultChartOfAccounts() {
		if err := accountRepo.SaveAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", account.AccountID, err)
		}
	}
	return nil
}
