package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountReader = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code int) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

var _ portsrepo.SettingsReader = (*MockSettingsRepository)(nil)

func (m *MockSettingsRepository) LoadSettings(ctx context.Context) (map[domain.SettingKey]*string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.SettingKey]*string), args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntriesByReference(ctx context.Context, ref domain.Reference) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry *domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteDraftEntryByReference(ctx context.Context, ref domain.Reference) (bool, error) {
	args := m.Called(ctx, ref)
	return args.Bool(0), args.Error(1)
}

func (m *MockJournalRepository) MarkEntryPosted(ctx context.Context, entryID int64, userID string, at time.Time) error {
	args := m.Called(ctx, entryID, userID, at)
	return args.Error(0)
}

// --- Mock JournalEngine (as used by the event adapters) ---
type MockJournalEngine struct {
	mock.Mock
}

var _ portssvc.JournalEngine = (*MockJournalEngine)(nil)

func (m *MockJournalEngine) CreateEntry(ctx context.Context, settings portssvc.SettingsResolver, req domain.EntryRequest) domain.PostingResult {
	args := m.Called(ctx, settings, req)
	return args.Get(0).(domain.PostingResult)
}

func (m *MockJournalEngine) DeleteRelatedEntry(ctx context.Context, ref domain.Reference) bool {
	args := m.Called(ctx, ref)
	return args.Bool(0)
}

// --- Mock SettingsSvc ---
type MockSettingsSvc struct {
	mock.Mock
}

var _ portssvc.SettingsSvc = (*MockSettingsSvc)(nil)

func (m *MockSettingsSvc) Resolve(ctx context.Context) (domain.AccountingSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AccountingSettings), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

// settingsOf builds a snapshot from plain key/value pairs.
func settingsOf(kv map[domain.SettingKey]string) domain.AccountingSettings {
	values := make(map[domain.SettingKey]*string, len(kv))
	for k, v := range kv {
		values[k] = strPtr(v)
	}
	return domain.NewAccountingSettings(values)
}
