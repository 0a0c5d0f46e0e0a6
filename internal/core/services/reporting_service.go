package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/middleware"
	"github.com/alwazw/manus-erp/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// reportingService derives financial statements from the current contents
// of the chart of accounts and the posted journal. It owns no state and
// performs no mutation; every report is a pure function of the two stores
// plus the date parameters.
type reportingService struct {
	accountRepo portsrepo.AccountRepository
	journalRepo portsrepo.JournalRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountRepository, journalRepo portsrepo.JournalRepository) portssvc.ReportingSvcFacade {
	return &reportingService{accountRepo: accountRepo, journalRepo: journalRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// accountLedgerTotals accumulates debit and credit sums per account over a
// filtered slice of entries.
type accountLedgerTotals struct {
	debit  decimal.Decimal
	credit decimal.Decimal
}

// loadLedger fetches the chart of accounts (as a lookup map) and all
// entries matching the date filter.
func (s *reportingService) loadLedger(ctx context.Context, include func(time.Time) bool) (map[string]domain.Account, []domain.JournalEntry, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accountsByID := make(map[string]domain.Account, len(accounts))
	for _, account := range accounts {
		accountsByID[account.AccountID] = account
	}

	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	filtered := entries[:0:0]
	for _, entry := range entries {
		if include(entry.Date) {
			filtered = append(filtered, entry)
		}
	}
	return accountsByID, filtered, nil
}

// sumByAccount totals debits and credits per account across all lines of
// the given entries.
func sumByAccount(entries []domain.JournalEntry) map[string]accountLedgerTotals {
	totals := make(map[string]accountLedgerTotals)
	for _, entry := range entries {
		for _, line := range entry.Lines {
			t := totals[line.AccountID]
			t.debit = t.debit.Add(line.Debit)
			t.credit = t.credit.Add(line.Credit)
			totals[line.AccountID] = t
		}
	}
	return totals
}

// sortedAccountIDs returns the map keys in ascending order so report rows
// are deterministic.
func sortedAccountIDs(totals map[string]accountLedgerTotals) []string {
	ids := make([]string, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TrialBalance lists per-account debit and credit totals across all
// entries posted on or before asOfDate. Because every contributing entry
// was balanced, the report's debit and credit grand totals are equal.
func (s *reportingService) TrialBalance(ctx context.Context, asOfDate string) ([]domain.TrialBalanceRow, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asOf, err := dates.Parse(asOfDate)
	if err != nil {
		return nil, err
	}

	accountsByID, entries, err := s.loadLedger(ctx, func(d time.Time) bool { return dates.OnOrBefore(d, asOf) })
	if err != nil {
		return nil, err
	}

	totals := sumByAccount(entries)
	rows := make([]domain.TrialBalanceRow, 0, len(totals))
	for _, accountID := range sortedAccountIDs(totals) {
		t := totals[accountID]
		account := accountsByID[accountID]
		rows = append(rows, domain.TrialBalanceRow{
			AccountID:   accountID,
			AccountName: account.AccountName,
			AccountType: account.AccountType,
			TotalDebit:  t.debit,
			TotalCredit: t.credit,
		})
	}

	logger.Info("Trial balance generated", slog.String("as_of_date", asOfDate), slog.Int("row_count", len(rows)))
	return rows, nil
}

// IncomeStatement nets revenue against expenses over the inclusive period
// [startDate, endDate]. Revenue is credit-normal, expense debit-normal.
func (s *reportingService) IncomeStatement(ctx context.Context, startDate, endDate string) (*domain.IncomeStatementReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	start, err := dates.Parse(startDate)
	if err != nil {
		return nil, err
	}
	end, err := dates.Parse(endDate)
	if err != nil {
		return nil, err
	}

	accountsByID, entries, err := s.loadLedger(ctx, func(d time.Time) bool { return dates.InRange(d, start, end) })
	if err != nil {
		return nil, err
	}

	totals := sumByAccount(entries)
	report := &domain.IncomeStatementReport{
		Revenue:      []domain.AccountAmount{},
		Expenses:     []domain.AccountAmount{},
		TotalRevenue: decimal.Zero,
		TotalExpense: decimal.Zero,
	}
	for _, accountID := range sortedAccountIDs(totals) {
		account := accountsByID[accountID]
		t := totals[accountID]
		switch account.AccountType {
		case domain.Revenue:
			net := t.credit.Sub(t.debit)
			report.Revenue = append(report.Revenue, domain.AccountAmount{
				AccountID:   accountID,
				AccountName: account.AccountName,
				NetAmount:   net,
			})
			report.TotalRevenue = report.TotalRevenue.Add(net)
		case domain.Expense:
			net := t.debit.Sub(t.credit)
			report.Expenses = append(report.Expenses, domain.AccountAmount{
				AccountID:   accountID,
				AccountName: account.AccountName,
				NetAmount:   net,
			})
			report.TotalExpense = report.TotalExpense.Add(net)
		}
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpense)

	logger.Info("Income statement generated",
		slog.String("start_date", startDate),
		slog.String("end_date", endDate),
		slog.Int("revenue_accounts", len(report.Revenue)),
		slog.Int("expense_accounts", len(report.Expenses)))
	return report, nil
}

// BalanceSheet reports asset, liability and equity positions as of a date.
// Assets are debit-normal; liabilities and equity are credit-normal. The
// three totals are exposed for the caller to check the accounting
// equation; it is not enforced here.
func (s *reportingService) BalanceSheet(ctx context.Context, asOfDate string) (*domain.BalanceSheetReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	asOf, err := dates.Parse(asOfDate)
	if err != nil {
		return nil, err
	}

	accountsByID, entries, err := s.loadLedger(ctx, func(d time.Time) bool { return dates.OnOrBefore(d, asOf) })
	if err != nil {
		return nil, err
	}

	totals := sumByAccount(entries)
	report := &domain.BalanceSheetReport{
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		TotalEquity:      decimal.Zero,
	}
	for _, accountID := range sortedAccountIDs(totals) {
		account := accountsByID[accountID]
		t := totals[accountID]
		switch account.AccountType {
		case domain.Asset:
			net := t.debit.Sub(t.credit)
			report.Assets = append(report.Assets, domain.AccountAmount{
				AccountID:   accountID,
				AccountName: account.AccountName,
				NetAmount:   net,
			})
			report.TotalAssets = report.TotalAssets.Add(net)
		case domain.Liability:
			net := t.credit.Sub(t.debit)
			report.Liabilities = append(report.Liabilities, domain.AccountAmount{
				AccountID:   accountID,
				AccountName: account.AccountName,
				NetAmount:   net,
			})
			report.TotalLiabilities = report.TotalLiabilities.Add(net)
		case domain.Equity:
			net := t.credit.Sub(t.debit)
			report.Equity = append(report.Equity, domain.AccountAmount{
				AccountID:   accountID,
				AccountName: account.AccountName,
				NetAmount:   net,
			})
			report.TotalEquity = report.TotalEquity.Add(net)
		}
	}

	logger.Info("Balance sheet generated",
		slog.String("as_of_date", asOfDate),
		slog.Int("asset_accounts", len(report.Assets)),
		slog.Int("liability_accounts", len(report.Liabilities)),
		slog.Int("equity_accounts", len(report.Equity)))
	return report, nil
}
