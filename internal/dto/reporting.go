package dto

import (
	"github.com/alwazw/manus-erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report.
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	AccountType string          `json:"account_type"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
}

// TrialBalanceResponse represents the trial balance report.
type TrialBalanceResponse struct {
	AsOfDate string                    `json:"as_of_date"`
	Rows     []TrialBalanceRowResponse `json:"rows"`
	Totals   struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
}

// AccountAmountResponse represents an account with its net amount in a
// financial statement section.
type AccountAmountResponse struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatementResponse represents the income statement report.
type IncomeStatementResponse struct {
	StartDate string                  `json:"start_date"`
	EndDate   string                  `json:"end_date"`
	Revenue   []AccountAmountResponse `json:"revenue"`
	Expenses  []AccountAmountResponse `json:"expenses"`
	Summary   struct {
		TotalRevenue decimal.Decimal `json:"total_revenue"`
		TotalExpense decimal.Decimal `json:"total_expense"`
		NetIncome    decimal.Decimal `json:"net_income"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report.
type BalanceSheetResponse struct {
	AsOfDate    string                  `json:"as_of_date"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"total_assets"`
		TotalLiabilities decimal.Decimal `json:"total_liabilities"`
		TotalEquity      decimal.Decimal `json:"total_equity"`
	} `json:"summary"`
}

// ToTrialBalanceResponse converts domain trial balance rows to the report
// response, computing the grand totals.
func ToTrialBalanceResponse(rows []domain.TrialBalanceRow, asOfDate string) TrialBalanceResponse {
	response := TrialBalanceResponse{
		AsOfDate: asOfDate,
		Rows:     make([]TrialBalanceRowResponse, len(rows)),
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, row := range rows {
		response.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			TotalDebit:  row.TotalDebit,
			TotalCredit: row.TotalCredit,
		}
		totalDebit = totalDebit.Add(row.TotalDebit)
		totalCredit = totalCredit.Add(row.TotalCredit)
	}

	response.Totals.Debit = totalDebit
	response.Totals.Credit = totalCredit
	return response
}

func toAccountAmountResponses(amounts []domain.AccountAmount) []AccountAmountResponse {
	responses := make([]AccountAmountResponse, len(amounts))
	for i, a := range amounts {
		responses[i] = AccountAmountResponse{
			AccountID:   a.AccountID,
			AccountName: a.AccountName,
			Amount:      a.NetAmount,
		}
	}
	return responses
}

// ToIncomeStatementResponse converts a domain income statement to its
// response form.
func ToIncomeStatementResponse(report *domain.IncomeStatementReport, startDate, endDate string) IncomeStatementResponse {
	response := IncomeStatementResponse{
		StartDate: startDate,
		EndDate:   endDate,
		Revenue:   toAccountAmountResponses(report.Revenue),
		Expenses:  toAccountAmountResponses(report.Expenses),
	}
	response.Summary.TotalRevenue = report.TotalRevenue
	response.Summary.TotalExpense = report.TotalExpense
	response.Summary.NetIncome = report.NetIncome
	return response
}

// ToBalanceSheetResponse converts a domain balance sheet to its response
// form.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, asOfDate string) BalanceSheetResponse {
	response := BalanceSheetResponse{
		AsOfDate:    asOfDate,
		Assets:      toAccountAmountResponses(report.Assets),
		Liabilities: toAccountAmountResponses(report.Liabilities),
		Equity:      toAccountAmountResponses(report.Equity),
	}
	response.Summary.TotalAssets = report.TotalAssets
	response.Summary.TotalLiabilities = report.TotalLiabilities
	response.Summary.TotalEquity = report.TotalEquity
	return response
}
