package domain

import (
	"fmt"
	"strings"
)

// AccountType defines the fundamental accounting type of an account.
// It determines which financial statement the account contributes to and
// its natural balance side (debit-normal: Asset, Expense; credit-normal:
// Liability, Equity, Revenue).
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// ParseAccountType normalizes a caller-supplied account type string to one
// of the five valid types. Matching is case-insensitive.
func ParseAccountType(value string) (AccountType, error) {
	switch AccountType(strings.ToUpper(strings.TrimSpace(value))) {
	case Asset:
		return Asset, nil
	case Liability:
		return Liability, nil
	case Equity:
		return Equity, nil
	case Revenue:
		return Revenue, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown account type %q", value)
	}
}

// IsDebitNormal reports whether the type's natural increasing balance is
// recorded as a debit.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account represents a single entry in the chart of accounts.
// Accounts are immutable once created: there is no update or delete.
type Account struct {
	AccountID   string      `json:"account_id"`   // Caller-assigned unique code, e.g. "1010"
	AccountName string      `json:"account_name"` // Display label
	AccountType AccountType `json:"account_type"`
}

// DefaultChartOfAccounts is the seed chart used when a registry starts
// empty, matching the accounts the system has always shipped with.
func DefaultChartOfAccounts() []Account {
	return []Account{
		{AccountID: "1010", AccountName: "Cash", AccountType: Asset},
		{AccountID: "1200", AccountName: "Accounts Receivable", AccountType: Asset},
		{AccountID: "2010", AccountName: "Accounts Payable", AccountType: Liability},
		{AccountID: "3010", AccountName: "Common Stock", AccountType: Equity},
		{AccountID: "4010", AccountName: "Sales Revenue", AccountType: Revenue},
		{AccountID: "5010", AccountName: "Cost of Goods Sold", AccountType: Expense},
		{AccountID: "5050", AccountName: "Rent Expense", AccountType: Expense},
	}
}
