package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/models"
	"github.com/SscSPs/rental_ledger/internal/utils/mapping"
	"github.com/SscSPs/rental_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, entry_number, entry_date, description, reference_type, reference_id, status,
		total_debit, total_credit, created_at, created_by, last_updated_at, last_updated_by`

// FormatEntryNumber renders a sequence value as a human-readable entry number.
func FormatEntryNumber(seq int64) string {
	return fmt.Sprintf("JE-%06d", seq)
}

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their items.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// SaveEntry inserts the header and every item in one transaction.
// The entry number is drawn from journal_entry_number_seq inside that transaction.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry *domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Defer rollback in case of error
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	var seq int64
	if err := tx.QueryRow(ctx, `SELECT nextval('journal_entry_number_seq');`).Scan(&seq); err != nil {
		return apperrors.NewAppError(500, "failed to allocate journal entry number", err)
	}
	entryNumber := FormatEntryNumber(seq)

	m := mapping.ToModelJournalEntry(*entry)
	headerQuery := `
		INSERT INTO journal_entries (
			entry_number, entry_date, description, reference_type, reference_id, status,
			total_debit, total_credit, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING entry_id;
	`
	var entryID int64
	err = tx.QueryRow(ctx, headerQuery,
		entryNumber,
		m.EntryDate,
		m.Description,
		m.ReferenceType,
		m.ReferenceID,
		m.Status,
		m.TotalDebit,
		m.TotalCredit,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&entryID)
	if err != nil {
		return translatePgError("failed to insert journal entry "+entryNumber, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO journal_entry_items (entry_id, line_no, account_id, debit, credit, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING item_id;
	`
	for i, item := range entry.Items {
		mi := mapping.ToModelJournalEntryItem(item, i+1)
		batch.Queue(itemQuery, entryID, mi.LineNo, mi.AccountID, mi.Debit, mi.Credit, mi.Description)
	}

	itemIDs := make([]int64, len(entry.Items))
	br := tx.SendBatch(ctx, batch)
	for i := range entry.Items {
		if err := br.QueryRow().Scan(&itemIDs[i]); err != nil {
			br.Close()
			return translatePgError(fmt.Sprintf("failed to insert line %d of journal entry %s", i+1, entryNumber), err)
		}
	}
	// Close the batch results to surface any deferred error
	if err := br.Close(); err != nil {
		return translatePgError("failed to execute item batch for journal entry "+entryNumber, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}

	entry.EntryID = entryID
	entry.EntryNumber = entryNumber
	for i := range entry.Items {
		entry.Items[i].ItemID = itemIDs[i]
		entry.Items[i].EntryID = entryID
	}
	return nil
}

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.Description,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.Status,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	defer rows.Close()
	entries := []domain.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return entries, nil
}

// findItemsByEntryIDs loads the items of several entries with their accounts, in line order.
func findItemsByEntryIDs(ctx context.Context, q querier, entryIDs []int64) (map[int64][]domain.JournalEntryItem, error) {
	result := make(map[int64][]domain.JournalEntryItem, len(entryIDs))
	if len(entryIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT i.item_id, i.entry_id, i.line_no, i.account_id, i.debit, i.credit, i.description,
		       a.account_id, a.code, a.name, a.account_type, a.is_parent, a.parent_account_id, a.is_active,
		       a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
		FROM journal_entry_items i
		JOIN accounts a ON a.account_id = i.account_id
		WHERE i.entry_id = ANY($1)
		ORDER BY i.entry_id, i.line_no;
	`
	rows, err := q.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entry items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mi models.JournalEntryItem
		var ma models.Account
		err := rows.Scan(
			&mi.ItemID, &mi.EntryID, &mi.LineNo, &mi.AccountID, &mi.Debit, &mi.Credit, &mi.Description,
			&ma.AccountID, &ma.Code, &ma.Name, &ma.AccountType, &ma.IsParent, &ma.ParentAccountID, &ma.IsActive,
			&ma.CreatedAt, &ma.CreatedBy, &ma.LastUpdatedAt, &ma.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry item row: %w", err)
		}
		item := mapping.ToDomainJournalEntryItem(mi)
		account := mapping.ToDomainAccount(ma)
		item.Account = &account
		result[mi.EntryID] = append(result[mi.EntryID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry item rows: %w", err)
	}
	return result, nil
}

func (r *PgxJournalRepository) attachItems(ctx context.Context, entries []domain.JournalEntry) error {
	ids := make([]int64, len(entries))
	for i := range entries {
		ids[i] = entries[i].EntryID
	}
	items, err := findItemsByEntryIDs(ctx, r.Pool, ids)
	if err != nil {
		return err
	}
	for i := range entries {
		entries[i].Items = items[entries[i].EntryID]
	}
	return nil
}

// FindEntryByID retrieves a journal entry with its items.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by ID "+strconv.FormatInt(entryID, 10), err)
	}

	entries := []domain.JournalEntry{mapping.ToDomainJournalEntry(m)}
	if err := r.attachItems(ctx, entries); err != nil {
		return nil, apperrors.NewAppError(500, "failed to load items of journal entry "+m.EntryNumber, err)
	}
	return &entries[0], nil
}

// FindEntriesByReference retrieves every entry tied to ref in creation order.
func (r *PgxJournalRepository) FindEntriesByReference(ctx context.Context, ref domain.Reference) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE reference_type = $1 AND reference_id = $2
		ORDER BY entry_id;`
	rows, err := r.Pool.Query(ctx, query, string(ref.Type), ref.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries for "+ref.String(), err)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to read journal entries for "+ref.String(), err)
	}
	if err := r.attachItems(ctx, entries); err != nil {
		return nil, apperrors.NewAppError(500, "failed to load items for "+ref.String(), err)
	}
	return entries, nil
}

// ListEntries retrieves entry headers newest first, using a (entry_date, entry_id) cursor.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + entryColumns + ` FROM journal_entries`
	orderByClause := ` ORDER BY entry_date DESC, entry_id DESC`
	args := []any{}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeEntryToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, decodeErr))
		}
		// Tuple comparison is concise and efficient in Postgres
		query += ` WHERE (entry_date, entry_id) < ($1, $2)`
		args = append(args, lastDate, lastID)
	}
	args = append(args, fetchLimit)
	query += orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journal entries", err)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list journal entries", err)
	}

	var newNextToken *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeEntryToken(last.EntryDate, last.EntryID)
		newNextToken = &token
		entries = entries[:limit]
	}
	return entries, newNextToken, nil
}

// DeleteDraftEntryByReference removes the earliest draft entry for ref.
// The header row is locked first so a concurrent post or delete waits for this transaction.
func (r *PgxJournalRepository) DeleteDraftEntryByReference(ctx context.Context, ref domain.Reference) (bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	var entryID int64
	err = tx.QueryRow(ctx, `
		SELECT entry_id FROM journal_entries
		WHERE reference_type = $1 AND reference_id = $2 AND status = $3
		ORDER BY entry_id
		LIMIT 1
		FOR UPDATE;`,
		string(ref.Type), ref.ID, string(models.Draft),
	).Scan(&entryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.NewAppError(500, "failed to lock draft journal entry for "+ref.String(), err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_entry_items WHERE entry_id = $1;`, entryID); err != nil {
		return false, apperrors.NewAppError(500, "failed to delete journal entry items", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID); err != nil {
		return false, apperrors.NewAppError(500, "failed to delete journal entry", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}

// MarkEntryPosted moves a draft entry to posted.
func (r *PgxJournalRepository) MarkEntryPosted(ctx context.Context, entryID int64, userID string, at time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE journal_entries
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE entry_id = $1 AND status = $5;`,
		entryID, string(models.Posted), at, userID, string(models.Draft),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to post journal entry "+strconv.FormatInt(entryID, 10), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
