// Package memory provides in-process implementations of the repository
// ports. They back the server when no database is configured and serve as
// the substrate for service tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
)

// AccountStore is an in-memory chart of accounts. Safe for concurrent use.
type AccountStore struct {
	mu       sync.RWMutex
	accounts []domain.Account
	byID     map[string]int
}

// NewAccountStore returns an empty account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{byID: make(map[string]int)}
}

var _ portsrepo.AccountRepository = (*AccountStore)(nil)

func (s *AccountStore) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[account.AccountID]; exists {
		return fmt.Errorf("account %s: %w", account.AccountID, apperrors.ErrDuplicate)
	}
	s.byID[account.AccountID] = len(s.accounts)
	s.accounts = append(s.accounts, account)
	return nil
}

func (s *AccountStore) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.byID[accountID]
	if !exists {
		return nil, fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	account := s.accounts[idx]
	return &account, nil
}

func (s *AccountStore) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Account, len(s.accounts))
	copy(out, s.accounts)
	return out, nil
}

func (s *AccountStore) AccountExists(ctx context.Context, accountID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.byID[accountID]
	return exists, nil
}

// JournalStore is an in-memory append-only journal. Safe for concurrent
// use; an append is atomic with respect to readers.
type JournalStore struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
	byID    map[string]int
}

// NewJournalStore returns an empty journal store.
func NewJournalStore() *JournalStore {
	return &JournalStore{byID: make(map[string]int)}
}

var _ portsrepo.JournalRepository = (*JournalStore)(nil)

func (s *JournalStore) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[entry.JournalEntryID]; exists {
		return fmt.Errorf("journal entry %s: %w", entry.JournalEntryID, apperrors.ErrDuplicate)
	}
	// Copy the line slice so later caller mutations cannot reach stored state.
	entry.Lines = append([]domain.JournalLine(nil), entry.Lines...)
	s.byID[entry.JournalEntryID] = len(s.entries)
	s.entries = append(s.entries, entry)
	return nil
}

func (s *JournalStore) FindEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.byID[journalEntryID]
	if !exists {
		return nil, fmt.Errorf("journal entry %s: %w", journalEntryID, apperrors.ErrNotFound)
	}
	entry := s.entries[idx]
	entry.Lines = append([]domain.JournalLine(nil), entry.Lines...)
	return &entry, nil
}

func (s *JournalStore) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.JournalEntry, len(s.entries))
	for i, entry := range s.entries {
		entry.Lines = append([]domain.JournalLine(nil), entry.Lines...)
		out[i] = entry
	}
	return out, nil
}

func (s *JournalStore) CountEntries(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.entries)), nil
}
