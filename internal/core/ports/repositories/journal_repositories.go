package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// JournalReader defines read operations for journal entry data
type JournalReader interface {
	// FindEntryByID retrieves a journal entry with its items and their accounts.
	FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// FindEntriesByReference retrieves every entry tied to ref, items and accounts loaded, in creation order.
	FindEntriesByReference(ctx context.Context, ref domain.Reference) ([]domain.JournalEntry, error)

	// ListEntries retrieves a page of entry headers using token-based pagination.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entry data
type JournalWriter interface {
	// SaveEntry persists the header and all items in a single transaction.
	// It assigns EntryID, EntryNumber and item IDs on success and commits nothing on failure.
	SaveEntry(ctx context.Context, entry *domain.JournalEntry) error

	// DeleteDraftEntryByReference removes the earliest draft entry for ref together with its items.
	// It reports false when no draft entry exists.
	DeleteDraftEntryByReference(ctx context.Context, ref domain.Reference) (bool, error)

	// MarkEntryPosted moves a draft entry to posted. It returns ErrNotFound when no draft entry has that ID.
	MarkEntryPosted(ctx context.Context, entryID int64, userID string, at time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
