package domain

import (
	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	AccountType AccountType     `json:"account_type"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
}

// AccountAmount represents an account with its net amount for a financial
// statement section.
type AccountAmount struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	NetAmount   decimal.Decimal `json:"net_amount"`
}

// IncomeStatementReport nets revenue against expenses over a period.
// Revenue lines are credit-normal (credit minus debit), expense lines
// debit-normal (debit minus credit).
type IncomeStatementReport struct {
	Revenue      []AccountAmount `json:"revenue"`
	Expenses     []AccountAmount `json:"expenses"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetIncome    decimal.Decimal `json:"net_income"`
}

// BalanceSheetReport lists asset, liability and equity positions as of a
// date. The accounting equation is exposed through the three totals but
// not enforced; whether assets equal liabilities plus equity depends on
// the posted history.
type BalanceSheetReport struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
}
