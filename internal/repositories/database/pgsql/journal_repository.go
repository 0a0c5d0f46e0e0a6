package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/alwazw/manus-erp/internal/apperrors"
	"github.com/alwazw/manus-erp/internal/core/domain"
	portsrepo "github.com/alwazw/manus-erp/internal/core/ports/repositories"
)

// PgxJournalRepository persists journal entries and their lines in
// PostgreSQL. An entry and its lines are written in one transaction so the
// append stays atomic.
type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{pool: pool}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// SaveEntry inserts the entry row and all its lines atomically.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	entryQuery := `
		INSERT INTO journal_entries (journal_entry_id, entry_date, description, total_debits, total_credits)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.JournalEntryID,
		entry.Date,
		entry.Description,
		entry.TotalDebits,
		entry.TotalCredits,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: journal entry %s already exists", apperrors.ErrDuplicate, entry.JournalEntryID)
		}
		return fmt.Errorf("failed to save journal entry %s: %w", entry.JournalEntryID, err)
	}

	lineQuery := `
		INSERT INTO journal_lines (journal_entry_id, line_no, account_id, debit, credit)
		VALUES ($1, $2, $3, $4, $5);
	`
	for i, line := range entry.Lines {
		if _, err := tx.Exec(ctx, lineQuery, entry.JournalEntryID, i, line.AccountID, line.Debit, line.Credit); err != nil {
			return fmt.Errorf("failed to save line %d of journal entry %s: %w", i, entry.JournalEntryID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit journal entry %s: %w", entry.JournalEntryID, err)
	}
	return nil
}

// FindEntryByID retrieves one entry with its lines.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, journalEntryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT journal_entry_id, entry_date, description, total_debits, total_credits
		FROM journal_entries
		WHERE journal_entry_id = $1;
	`
	entry, err := scanEntryRow(r.pool.QueryRow(ctx, query, journalEntryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("journal entry %s: %w", journalEntryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", journalEntryID, err)
	}

	lines, err := r.loadLines(ctx, []string{journalEntryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[journalEntryID]
	return entry, nil
}

// ListEntries returns all posted entries in insertion order, lines
// included.
func (r *PgxJournalRepository) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	query := `
		SELECT journal_entry_id, entry_date, description, total_debits, total_credits
		FROM journal_entries
		ORDER BY seq;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	ids := []string{}
	for rows.Next() {
		entry, err := scanEntryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, *entry)
		ids = append(ids, entry.JournalEntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entry rows: %w", err)
	}

	lines, err := r.loadLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = lines[entries[i].JournalEntryID]
	}
	return entries, nil
}

// CountEntries returns the number of posted entries.
func (r *PgxJournalRepository) CountEntries(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM journal_entries;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}

// loadLines fetches the lines for the given entries keyed by entry id,
// preserving line order.
func (r *PgxJournalRepository) loadLines(ctx context.Context, journalEntryIDs []string) (map[string][]domain.JournalLine, error) {
	byEntry := make(map[string][]domain.JournalLine, len(journalEntryIDs))
	if len(journalEntryIDs) == 0 {
		return byEntry, nil
	}

	query := `
		SELECT journal_entry_id, account_id, debit, credit
		FROM journal_lines
		WHERE journal_entry_id = ANY($1)
		ORDER BY journal_entry_id, line_no;
	`
	rows, err := r.pool.Query(ctx, query, journalEntryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID string
		var line domain.JournalLine
		var debit, credit decimal.Decimal
		if err := rows.Scan(&entryID, &line.AccountID, &debit, &credit); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		line.Debit = debit
		line.Credit = credit
		byEntry[entryID] = append(byEntry[entryID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal line rows: %w", err)
	}
	return byEntry, nil
}

// scanEntryRow scans the entry columns shared by the find and list
// queries. The stored date is normalized back to UTC midnight.
func scanEntryRow(row pgx.Row) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	var entryDate time.Time
	var totalDebits, totalCredits decimal.Decimal
	if err := row.Scan(&entry.JournalEntryID, &entryDate, &entry.Description, &totalDebits, &totalCredits); err != nil {
		return nil, err
	}
	entry.Date = time.Date(entryDate.Year(), entryDate.Month(), entryDate.Day(), 0, 0, 0, 0, time.UTC)
	entry.TotalDebits = totalDebits
	entry.TotalCredits = totalCredits
	return &entry, nil
}
