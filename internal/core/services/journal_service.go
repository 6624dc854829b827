package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/utils/accounting"
)

var (
	ErrNoItems          = fmt.Errorf("%w: journal entry has no items", apperrors.ErrValidation)
	ErrNegativeAmount   = fmt.Errorf("%w: debit and credit amounts must not be negative", apperrors.ErrValidation)
	ErrInvalidAccount   = fmt.Errorf("%w: account does not exist", apperrors.ErrValidation)
	ErrParentAccount    = fmt.Errorf("%w: account cannot receive postings", apperrors.ErrValidation)
	ErrUnbalanced       = fmt.Errorf("%w: total debit does not equal total credit", apperrors.ErrValidation)
	ErrInvalidReference = fmt.Errorf("%w: invalid journal entry reference", apperrors.ErrValidation)
)

// AccountError names the account that failed a posting check.
type AccountError struct {
	AccountID int64
	Err       error
}

func (e *AccountError) Error() string {
	return fmt.Sprintf("account %d: %v", e.AccountID, e.Err)
}

func (e *AccountError) Unwrap() error {
	return e.Err
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

const (
	outcomeCreated  = "created"
	outcomeSkipped  = "skipped"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// journalService is the balanced-entry kernel: validation, persistence and the draft/posted workflow.
type journalService struct {
	BaseService
	accountSvc  portssvc.AccountPostingSvc
	journalRepo portsrepo.JournalRepositoryFacade
	now         func() time.Time
}

// JournalServiceOption configures a journalService.
type JournalServiceOption func(*journalService)

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountPostingSvc, opts ...JournalServiceOption) portssvc.JournalSvcFacade {
	s := &journalService{
		accountSvc:  accountSvc,
		journalRepo: journalRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateEntry validates req and stores it as a single entry.
// Checks run in order: reference, items present, amounts non-negative, accounts postable, balance.
func (s *journalService) CreateEntry(ctx context.Context, settings portssvc.SettingsResolver, req domain.EntryRequest) domain.PostingResult {
	logger := s.ReferenceLogger(ctx, req.Reference)

	reject := func(err error, attrs ...any) domain.PostingResult {
		args := append([]any{slog.String("outcome", outcomeRejected), slog.String("error", err.Error())}, attrs...)
		logger.Warn("Journal entry rejected", args...)
		return domain.Rejected(err)
	}

	if err := req.Reference.Validate(); err != nil {
		return reject(fmt.Errorf("%w: %v", ErrInvalidReference, err))
	}
	if len(req.Items) == 0 {
		return reject(ErrNoItems)
	}
	if idx := accounting.HasNegativeAmount(req.Items); idx >= 0 {
		return reject(fmt.Errorf("%w: line %d", ErrNegativeAmount, idx+1),
			slog.Int64("account_id", req.Items[idx].AccountID))
	}

	items := accounting.RoundItems(req.Items)
	accountIDs := uniqueAccountIDs(items)
	accounts, err := s.accountSvc.GetPostableAccounts(ctx, accountIDs)
	if err != nil {
		var accErr *AccountError
		if errors.As(err, &accErr) {
			return reject(err, slog.Int64("account_id", accErr.AccountID))
		}
		logger.Error("Failed to load accounts for journal entry", slog.String("outcome", outcomeFailed), slog.String("error", err.Error()))
		return domain.Failed(fmt.Errorf("failed to load accounts: %w", err))
	}

	debit, credit := accounting.SumItems(items)
	if !accounting.IsBalanced(debit, credit) {
		return reject(fmt.Errorf("%w: debit %s, credit %s", ErrUnbalanced,
			accounting.FormatMoney(debit),
			accounting.FormatMoney(credit)),
			slog.String("total_debit", debit.String()),
			slog.String("total_credit", credit.String()))
	}

	status := domain.Draft
	if settings != nil && settings.AutoPostEntries() {
		status = domain.Posted
	}

	now := s.now()
	entryDate := req.Date
	if entryDate.IsZero() {
		entryDate = now
	}
	y, m, d := entryDate.Date()

	entry := &domain.JournalEntry{
		EntryDate:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Description: req.Description,
		Reference:   req.Reference,
		Status:      status,
		TotalDebit:  accounting.RoundMoney(debit),
		TotalCredit: accounting.RoundMoney(credit),
		Items:       make([]domain.JournalEntryItem, len(items)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}
	for i, item := range items {
		account := accounts[item.AccountID]
		entry.Items[i] = domain.JournalEntryItem{
			AccountID:   item.AccountID,
			Debit:       item.Debit,
			Credit:      item.Credit,
			Description: item.Description,
			Account:     &account,
		}
	}

	if err := s.journalRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save journal entry", slog.String("outcome", outcomeFailed), slog.String("error", err.Error()))
		return domain.Failed(fmt.Errorf("failed to save journal entry: %w", err))
	}

	logger.Info("Journal entry created",
		slog.String("outcome", outcomeCreated),
		slog.Int64("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("status", string(entry.Status)))
	return domain.Created(entry)
}

// DeleteRelatedEntry removes the draft entry tied to ref. Posted entries are never touched.
func (s *journalService) DeleteRelatedEntry(ctx context.Context, ref domain.Reference) bool {
	logger := s.ReferenceLogger(ctx, ref)
	if err := ref.Validate(); err != nil {
		logger.Warn("Refusing to delete journal entry for invalid reference", slog.String("error", err.Error()))
		return false
	}

	deleted, err := s.journalRepo.DeleteDraftEntryByReference(ctx, ref)
	if err != nil {
		logger.Error("Failed to delete draft journal entry", slog.String("error", err.Error()))
		return false
	}
	if !deleted {
		logger.Info("No draft journal entry to delete")
		return false
	}
	logger.Info("Draft journal entry deleted")
	return true
}

// GetRelatedEntries returns every entry tied to ref, oldest first.
func (s *journalService) GetRelatedEntries(ctx context.Context, ref domain.Reference) ([]domain.JournalEntry, error) {
	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	entries, err := s.journalRepo.FindEntriesByReference(ctx, ref)
	if err != nil {
		s.LogError(ctx, err, "Failed to find journal entries by reference",
			slog.String("reference_type", string(ref.Type)), slog.Int64("reference_id", ref.ID))
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, nil
}

// GetEntryByID retrieves a journal entry with its items.
func (s *journalService) GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("journal entry %d not found", entryID))
		}
		s.LogError(ctx, err, "Failed to find journal entry", slog.Int64("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve journal entry: %w", err)
	}
	return entry, nil
}

// ListEntries retrieves a page of journal entries, newest first.
func (s *journalService) ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	entries, nextToken, err := s.journalRepo.ListEntries(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to retrieve journal entries: %w", err)
	}

	s.LogDebug(ctx, "Journal entries listed", slog.Int("count", len(entries)))
	return &dto.ListJournalEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

// PostEntry finalizes a draft entry. Posted entries cannot be posted again.
func (s *journalService) PostEntry(ctx context.Context, entryID int64, userID string) (*domain.JournalEntry, error) {
	entry, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	logger := s.ReferenceLogger(ctx, entry.Reference).With(slog.Int64("entry_id", entryID))
	if !entry.IsDraft() {
		logger.Warn("Journal entry is already posted")
		return nil, apperrors.NewAppError(409, fmt.Sprintf("journal entry %s is already posted", entry.EntryNumber), apperrors.ErrConflict)
	}

	now := s.now()
	if err := s.journalRepo.MarkEntryPosted(ctx, entryID, userID, now); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Posted or deleted concurrently
			return nil, apperrors.NewAppError(409, fmt.Sprintf("journal entry %s is no longer a draft", entry.EntryNumber), apperrors.ErrConflict)
		}
		logger.Error("Failed to post journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to post journal entry: %w", err)
	}

	entry.Status = domain.Posted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID
	logger.Info("Journal entry posted", slog.String("entry_number", entry.EntryNumber))
	return entry, nil
}

// uniqueAccountIDs returns the distinct account IDs of items in first-seen order.
func uniqueAccountIDs(items []domain.EntryItemRequest) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.AccountID]; ok {
			continue
		}
		seen[item.AccountID] = struct{}{}
		ids = append(ids, item.AccountID)
	}
	return ids
}
