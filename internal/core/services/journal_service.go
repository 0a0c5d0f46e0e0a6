package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
	portssvc "github.com/alwazw/manus-erp/internal/core/ports/services"
	"github.com/alwazw/manus-erp/internal/dto"
	"github.com/alwazw/manus-erp/internal/middleware"
	"github.com/alwazw/manus-erp/internal/utils/dates"
	"github.com/alwazw/manus-erp/internal/utils/sequence"
	"github.com/shopspring/decimal"
)

// journalService posts balanced, validated journal entries against the
// chart of accounts. Posting is all-or-nothing: validation runs with no
// side effects and the single append happens only after every check
// passes.
type journalService struct {
	accountSvc  portssvc.ChartOfAccountsSvcFacade
	journalRepo portsrepo.JournalRepository
	entryIDs    *sequence.Generator

	// postMu makes id assignment and the append one indivisible unit so
	// concurrent posts can never reuse an id or interleave half-posted
	// state.
	postMu sync.Mutex
}

// NewJournalService creates a new JournalService. The id generator should
// be initialized from the store's current entry count when resuming.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountSvc portssvc.ChartOfAccountsSvcFacade, entryIDs *sequence.Generator) portssvc.JournalSvcFacade {
	return &journalService{
		accountSvc:  accountSvc,
		journalRepo: journalRepo,
		entryIDs:    entryIDs,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostEntry validates and appends a journal entry.
//
// Validation order: required fields, date parse, line amounts, balance,
// account existence. All checks are pure; the append is the sole mutation
// and happens only if every check passes.
func (s *journalService) PostEntry(ctx context.Context, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date", ErrMissingField)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description", ErrMissingField)
	}
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("%w: lines", ErrMissingField)
	}

	entryDate, err := dates.Parse(req.Date)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.JournalLine, len(req.Lines))
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for i, lineReq := range req.Lines {
		if strings.TrimSpace(lineReq.AccountID) == "" {
			return nil, fmt.Errorf("%w: lines[%d].account_id", ErrMissingField, i)
		}
		if lineReq.Debit.IsNegative() {
			return nil, fmt.Errorf("%w: lines[%d].debit must be non-negative", ErrMissingField, i)
		}
		if lineReq.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: lines[%d].credit must be non-negative", ErrMissingField, i)
		}
		lines[i] = domain.JournalLine{
			AccountID: lineReq.AccountID,
			Debit:     lineReq.Debit,
			Credit:    lineReq.Credit,
		}
		totalDebits = totalDebits.Add(lineReq.Debit)
		totalCredits = totalCredits.Add(lineReq.Credit)
	}

	// Sums are compared after rounding to 2 decimal places; the stored
	// totals keep full precision.
	if !totalDebits.Round(2).Equal(totalCredits.Round(2)) {
		return nil, fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			ErrUnbalancedEntry, totalDebits.String(), totalCredits.String())
	}

	// Validate account references in line order so the first invalid one
	// is the one reported.
	for _, line := range lines {
		exists, err := s.accountSvc.AccountExists(ctx, line.AccountID)
		if err != nil {
			logger.Error("Failed to check account existence", slog.String("account_id", line.AccountID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to validate account %s: %w", line.AccountID, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, line.AccountID)
		}
	}

	s.postMu.Lock()
	defer s.postMu.Unlock()

	entry := domain.JournalEntry{
		JournalEntryID: s.entryIDs.Next(),
		Date:           entryDate,
		Description:    req.Description,
		Lines:          lines,
		TotalDebits:    totalDebits,
		TotalCredits:   totalCredits,
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save journal entry", slog.String("journal_entry_id", entry.JournalEntryID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry posted",
		slog.String("journal_entry_id", entry.JournalEntryID),
		slog.String("date", req.Date),
		slog.Int("line_count", len(entry.Lines)),
		slog.String("total", totalDebits.String()))
	return &entry, nil
}

// GetAllEntries returns all posted entries in insertion order.
func (s *journalService) GetAllEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// GetEntry retrieves a posted entry by its id. Fails with
// apperrors.ErrNotFound when absent.
func (s *journalService) GetEntry(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, journalEntryID)
}
