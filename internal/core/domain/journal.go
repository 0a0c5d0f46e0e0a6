package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalLine is a single debit/credit posting against one account within
// a journal entry. Lines are values owned by their entry; they carry no
// identity of their own. A line may carry both a nonzero debit and a
// nonzero credit; nothing forbids it.
type JournalLine struct {
	AccountID string          `json:"account_id"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalEntry is an atomic, balanced, dated set of postings. Entries are
// immutable once posted; the ledger offers no update or delete.
type JournalEntry struct {
	JournalEntryID string          `json:"journal_entry_id"` // System-generated, e.g. "JE0001"
	Date           time.Time       `json:"-"`
	Description    string          `json:"description"`
	Lines          []JournalLine   `json:"lines"` // Insertion order preserved
	TotalDebits    decimal.Decimal `json:"total_debits"`
	TotalCredits   decimal.Decimal `json:"total_credits"`
}
