package handlers_test

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByCode(ctx context.Context, code int) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListChildren(ctx context.Context, parentID int64) ([]domain.Account, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) GetPostableAccounts(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.Account), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) CreateEntry(ctx context.Context, settings portssvc.SettingsResolver, req domain.EntryRequest) domain.PostingResult {
	args := m.Called(ctx, settings, req)
	return args.Get(0).(domain.PostingResult)
}

func (m *MockJournalService) DeleteRelatedEntry(ctx context.Context, ref domain.Reference) bool {
	args := m.Called(ctx, ref)
	return args.Bool(0)
}

func (m *MockJournalService) GetRelatedEntries(ctx context.Context, ref domain.Reference) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID int64) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}

func (m *MockJournalService) PostEntry(ctx context.Context, entryID int64, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

var _ portssvc.JournalSvcFacade = (*MockJournalService)(nil)

// --- Mock PostingService ---
type MockPostingService struct {
	mock.Mock
}

func (m *MockPostingService) RecordPaymentReceived(ctx context.Context, payment domain.ContractPayment) domain.PostingResult {
	return m.Called(ctx, payment).Get(0).(domain.PostingResult)
}

func (m *MockPostingService) RecordContractCreated(ctx context.Context, contract domain.Contract) domain.PostingResult {
	return m.Called(ctx, contract).Get(0).(domain.PostingResult)
}

func (m *MockPostingService) RecordSalaryPaid(ctx context.Context, salary domain.SalaryPayment) domain.PostingResult {
	return m.Called(ctx, salary).Get(0).(domain.PostingResult)
}

func (m *MockPostingService) RecordPurchase(ctx context.Context, purchase domain.Purchase) domain.PostingResult {
	return m.Called(ctx, purchase).Get(0).(domain.PostingResult)
}

func (m *MockPostingService) CreateManualEntry(ctx context.Context, req domain.EntryRequest) domain.PostingResult {
	return m.Called(ctx, req).Get(0).(domain.PostingResult)
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Resolve(ctx context.Context) (domain.AccountingSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AccountingSettings), args.Error(1)
}

var _ portssvc.SettingsSvc = (*MockSettingsService)(nil)
