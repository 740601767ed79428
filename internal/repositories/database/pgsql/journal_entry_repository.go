package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/models"
	"github.com/SscSPs/rental_ledger/internal/utils/mapping"
	"github.com/SscSPs/rental_ledger/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	entryColumns = `entry_id, workplace_id, entry_number, entry_date, description, reference_type,
		reference_id, status, total_debit, total_credit, posted_at, posted_by,
		created_at, created_by, last_updated_at, last_updated_by`

	lineColumns = `line_id, entry_id, line_number, account_id, description,
		debit_amount, credit_amount, cost_center_id`

	entryNumberConstraint = "journal_entries_workplace_entry_number_key"
)

type PgxJournalEntryRepository struct {
	BaseRepository
}

// newPgxJournalEntryRepository creates a new repository for journal entries and their lines.
func newPgxJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepositoryWithTx {
	return &PgxJournalEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalEntryRepository implements portsrepo.JournalEntryRepositoryWithTx
var _ portsrepo.JournalEntryRepositoryWithTx = (*PgxJournalEntryRepository)(nil)

// CommitEntry inserts the header and every line in one database transaction.
func (r *PgxJournalEntryRepository) CommitEntry(ctx context.Context, entry domain.JournalEntry) (string, error) {
	entryID := uuid.NewString()

	tx, err := r.Begin(ctx)
	if err != nil {
		return "", err
	}
	// Ignored once the transaction is committed.
	defer r.Rollback(ctx, tx)

	header := mapping.ToModelJournalEntry(entry)
	header.EntryID = entryID
	headerQuery := `INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`
	_, err = tx.Exec(ctx, headerQuery,
		header.EntryID,
		header.WorkplaceID,
		header.EntryNumber,
		header.EntryDate,
		header.Description,
		header.ReferenceType,
		header.ReferenceID,
		header.Status,
		header.TotalDebit,
		header.TotalCredit,
		header.PostedAt,
		header.PostedBy,
		header.CreatedAt,
		header.CreatedBy,
		header.LastUpdatedAt,
		header.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, entryNumberConstraint) {
			return "", fmt.Errorf("%w: entry number %s is already used", apperrors.ErrDuplicate, header.EntryNumber)
		}
		return "", apperrors.NewAppError(http.StatusInternalServerError, "failed to insert journal entry "+header.EntryNumber, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `INSERT INTO journal_entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	for _, l := range mapping.ToModelJournalEntryLines(entryID, entry.Lines) {
		batch.Queue(lineQuery,
			l.LineID,
			l.EntryID,
			l.LineNumber,
			l.AccountID,
			l.Description,
			l.DebitAmount,
			l.CreditAmount,
			l.CostCenterID,
		)
	}

	br := tx.SendBatch(ctx, batch)
	// Close reports the first failed insert of the batch.
	if err := br.Close(); err != nil {
		return "", apperrors.NewAppError(http.StatusInternalServerError, "failed to insert lines for journal entry "+header.EntryNumber, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return "", err
	}
	return entryID, nil
}

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.WorkplaceID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.PostedAt,
		&m.PostedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindEntryByID retrieves an entry of the workplace with its lines.
func (r *PgxJournalEntryRepository) FindEntryByID(ctx context.Context, workplaceID, entryID string) (*domain.JournalEntry, error) {
	headerQuery := `SELECT ` + entryColumns + ` FROM journal_entries WHERE workplace_id = $1 AND entry_id = $2;`
	header, err := scanEntry(r.Pool.QueryRow(ctx, headerQuery, workplaceID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("journal entry %s: %w", entryID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	linesQuery := `SELECT ` + lineColumns + ` FROM journal_entry_lines WHERE entry_id = $1 ORDER BY line_number;`
	rows, err := r.Pool.Query(ctx, linesQuery, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of journal entry %s: %w", entryID, err)
	}
	defer rows.Close()

	lines := make([]models.JournalEntryLine, 0)
	for rows.Next() {
		var l models.JournalEntryLine
		if err := rows.Scan(
			&l.LineID,
			&l.EntryID,
			&l.LineNumber,
			&l.AccountID,
			&l.Description,
			&l.DebitAmount,
			&l.CreditAmount,
			&l.CostCenterID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry lines: %w", err)
	}

	entry := mapping.ToDomainJournalEntry(header, lines)
	return &entry, nil
}

// ListEntriesByWorkplace retrieves a page of entries using token-based pagination.
// It returns the list of entries, a token for the next page (if any), and an error.
func (r *PgxJournalEntryRepository) ListEntriesByWorkplace(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE workplace_id = $1`
	args := []any{workplaceID}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusBadRequest, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		// Row comparison keeps the order stable across equal dates.
		query += ` AND (entry_date, created_at, entry_id) < ($2, $3, $4)`
		args = append(args, cursor.EntryDate, cursor.CreatedAt, cursor.EntryID)
	}
	query += ` ORDER BY entry_date DESC, created_at DESC, entry_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query journal entries for workplace "+workplaceID, err)
	}
	defer rows.Close()

	headers := make([]models.JournalEntry, 0, fetchLimit)
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	var newNextToken *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[limit-1]
		token := pagination.EncodeToken(pagination.EntryCursor{
			EntryDate: last.EntryDate,
			CreatedAt: last.CreatedAt,
			EntryID:   last.EntryID,
		})
		newNextToken = &token
	}

	entries := make([]domain.JournalEntry, len(headers))
	for i, h := range headers {
		entries[i] = mapping.ToDomainJournalEntry(h, nil)
	}
	return entries, newNextToken, nil
}
