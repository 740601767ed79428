package repositories

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// JournalEntryReader defines read operations for posted journal entries
type JournalEntryReader interface {
	// FindEntryByID retrieves an entry and its lines, ordered by line number.
	FindEntryByID(ctx context.Context, workplaceID, entryID string) (*domain.JournalEntry, error)

	// ListEntriesByWorkplace retrieves a page of entries (without lines), newest first.
	// It returns the entries, a token for the next page, and an error.
	ListEntriesByWorkplace(ctx context.Context, workplaceID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriter defines write operations for journal entries
type JournalEntryWriter interface {
	// CommitEntry stores the header and all lines of a posted entry as one unit of
	// work and returns the assigned entry id. Either everything is stored or nothing is.
	// A clashing entry number in the same workplace yields apperrors.ErrDuplicate.
	CommitEntry(ctx context.Context, entry domain.JournalEntry) (string, error)
}

// JournalEntryRepositoryFacade combines all journal entry repository interfaces
type JournalEntryRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
}

// JournalEntryRepositoryWithTx extends JournalEntryRepositoryFacade with transaction capabilities
type JournalEntryRepositoryWithTx interface {
	JournalEntryRepositoryFacade
	TransactionManager
}
