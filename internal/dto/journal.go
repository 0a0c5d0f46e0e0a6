package dto

import (
	"github.com/alwazw/manus-erp/internal/core/domain"
	"github.com/alwazw/manus-erp/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// JournalLineRequest is one debit/credit posting within a journal entry
// request. Debit and credit default to zero when absent.
type JournalLineRequest struct {
	AccountID string          `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateJournalEntryRequest is the payload for posting a journal entry.
// The date is an ISO-8601 date string; the core parses and validates it.
type CreateJournalEntryRequest struct {
	Date        string               `json:"date"`
	Description string               `json:"description"`
	Lines       []JournalLineRequest `json:"lines"`
}

// JournalLineResponse mirrors a stored journal line on the wire.
type JournalLineResponse struct {
	AccountID string          `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalEntryResponse mirrors a posted journal entry on the wire.
type JournalEntryResponse struct {
	JournalEntryID string                `json:"journal_entry_id"`
	Date           string                `json:"date"`
	Description    string                `json:"description"`
	Lines          []JournalLineResponse `json:"lines"`
	TotalDebits    decimal.Decimal       `json:"total_debits"`
	TotalCredits   decimal.Decimal       `json:"total_credits"`
}

// ToJournalEntryResponse converts a domain entry to its response form.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, line := range e.Lines {
		lines[i] = JournalLineResponse{
			AccountID: line.AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
		}
	}
	return JournalEntryResponse{
		JournalEntryID: e.JournalEntryID,
		Date:           e.Date.Format(dates.Layout),
		Description:    e.Description,
		Lines:          lines,
		TotalDebits:    e.TotalDebits,
		TotalCredits:   e.TotalCredits,
	}
}

// ToJournalEntryResponses converts a slice of domain entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
