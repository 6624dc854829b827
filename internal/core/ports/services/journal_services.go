package services

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

// JournalEngine is the generic balanced-entry kernel. None of its write operations return errors;
// outcomes are reported through domain.PostingResult or a boolean.
type JournalEngine interface {
	// CreateEntry validates the request and atomically stores a balanced entry.
	CreateEntry(ctx context.Context, settings SettingsResolver, req domain.EntryRequest) domain.PostingResult

	// DeleteRelatedEntry removes the draft entry tied to ref. It reports false when there is nothing to undo.
	DeleteRelatedEntry(ctx context.Context, ref domain.Reference) bool
}

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetRelatedEntries returns the entries tied to ref with items and accounts loaded.
	GetRelatedEntries(ctx context.Context, ref domain.Reference) ([]domain.JournalEntry, error)

	// GetEntryByID retrieves a specific journal entry.
	GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries.
	ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWorkflowSvc defines the draft -> posted transition.
type JournalWorkflowSvc interface {
	// PostEntry finalizes a draft entry.
	PostEntry(ctx context.Context, entryID int64, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalEngine
	JournalReaderSvc
	JournalWorkflowSvc
}
