package dto

import (
	"github.com/alwazw/manus-erp/internal/core/domain"
)

// CreateAccountRequest is the payload for registering a new account in the
// chart of accounts. The account id is caller-assigned.
type CreateAccountRequest struct {
	AccountID   string `json:"account_id" binding:"required"`
	AccountName string `json:"account_name" binding:"required"`
	AccountType string `json:"account_type" binding:"required,accounttype"`
}

// AccountResponse mirrors a chart-of-accounts entry on the wire.
type AccountResponse struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	AccountType string `json:"account_type"`
}

// ToAccountResponse converts a domain account to its response form.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		AccountName: a.AccountName,
		AccountType: string(a.AccountType),
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		responses[i] = ToAccountResponse(a)
	}
	return responses
}
