package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/handlers"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	router          *gin.Engine
	accountService  *MockAccountService
	journalService  *MockJournalService
	postingService  *MockPostingService
	settingsService *MockSettingsService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.ActingUserMiddleware())

	suite.accountService = new(MockAccountService)
	suite.journalService = new(MockJournalService)
	suite.postingService = new(MockPostingService)
	suite.settingsService = new(MockSettingsService)

	handlers.RegisterRoutes(suite.router, &portssvc.ServiceContainer{
		Account:  suite.accountService,
		Settings: suite.settingsService,
		Journal:  suite.journalService,
		Posting:  suite.postingService,
	})
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.accountService.AssertExpectations(suite.T())
	suite.journalService.AssertExpectations(suite.T())
	suite.postingService.AssertExpectations(suite.T())
	suite.settingsService.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) do(method, path string, body any, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleEntry(status domain.EntryStatus) *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryID:     42,
		EntryNumber: "JE-000042",
		EntryDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Description: "Payment on contract C-1",
		Reference:   domain.ContractPaymentReference(7),
		Status:      status,
		TotalDebit:  decimal.RequireFromString("500.00"),
		TotalCredit: decimal.RequireFromString("500.00"),
		Items: []domain.JournalEntryItem{
			{ItemID: 1, EntryID: 42, AccountID: 11, Debit: decimal.RequireFromString("500"), Credit: decimal.Zero,
				Account: &domain.Account{AccountID: 11, Code: 1102, Name: "Bank"}},
			{ItemID: 2, EntryID: 42, AccountID: 20, Debit: decimal.Zero, Credit: decimal.RequireFromString("500")},
		},
	}
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestRecordPayment_Created() {
	suite.postingService.On("RecordPaymentReceived", mock.Anything, mock.MatchedBy(func(p domain.ContractPayment) bool {
		return p.PaymentID == 7 && p.ContractID == 3 && p.Method == domain.PaymentBankTransfer &&
			p.Amount.Equal(decimal.NewFromInt(500)) && p.CreatedBy == "clerk-1"
	})).Return(domain.Created(sampleEntry(domain.Posted))).Once()

	w := suite.do(http.MethodPost, "/api/v1/events/contract-payments", map[string]any{
		"paymentID":      7,
		"contractID":     3,
		"contractNumber": "C-1",
		"customerName":   "Acme",
		"amount":         "500",
		"method":         "bank_transfer",
		"paidAt":         "2026-09-01T10:00:00Z",
	}, "clerk-1")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PostingResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ResultCreated, resp.Status)
	suite.Require().NotNil(resp.Entry)
	suite.Equal("JE-000042", resp.Entry.EntryNumber)
	suite.Equal(domain.Posted, resp.Entry.Status)
	suite.Require().Len(resp.Entry.Items, 2)
	suite.Require().NotNil(resp.Entry.Items[0].AccountCode)
	suite.Equal(1102, *resp.Entry.Items[0].AccountCode)
	suite.Nil(resp.Entry.Items[1].AccountCode)
}

func (suite *HandlersTestSuite) TestRecordPayment_InvalidPayload() {
	w := suite.do(http.MethodPost, "/api/v1/events/contract-payments", map[string]any{
		"contractID": 3,
		"amount":     "500",
	}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.postingService.AssertNotCalled(suite.T(), "RecordPaymentReceived", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestRecordPayment_UnknownMethodPostsToCash() {
	cashID, receivableID := "11", "20"
	suite.settingsService.On("Resolve", mock.Anything).Return(domain.NewAccountingSettings(map[domain.SettingKey]*string{
		domain.CashAccountKey:                &cashID,
		domain.CustomersReceivableAccountKey: &receivableID,
	}), nil).Once()
	suite.journalService.On("CreateEntry", mock.Anything, mock.Anything, mock.MatchedBy(func(req domain.EntryRequest) bool {
		return len(req.Items) == 2 &&
			req.Items[0].AccountID == 11 && req.Items[0].Debit.Equal(decimal.NewFromInt(500)) &&
			req.Items[1].AccountID == 20 && req.Items[1].Credit.Equal(decimal.NewFromInt(500))
	})).Return(domain.Created(sampleEntry(domain.Draft))).Once()

	router := gin.New()
	router.Use(middleware.ActingUserMiddleware())
	handlers.RegisterRoutes(router, &portssvc.ServiceContainer{
		Account:  suite.accountService,
		Settings: suite.settingsService,
		Journal:  suite.journalService,
		Posting:  services.NewPostingService(suite.journalService, suite.settingsService),
	})
	suite.router = router

	w := suite.do(http.MethodPost, "/api/v1/events/contract-payments", map[string]any{
		"paymentID":      7,
		"contractID":     3,
		"contractNumber": "C-1",
		"customerName":   "Acme",
		"amount":         "500",
		"method":         "barter",
		"paidAt":         "2026-09-01T10:00:00Z",
	}, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PostingResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ResultCreated, resp.Status)
}

func (suite *HandlersTestSuite) TestRecordPurchase_NegativeAmountRejectedAtBinding() {
	w := suite.do(http.MethodPost, "/api/v1/events/purchases", map[string]any{
		"purchaseID":    5,
		"invoiceNumber": "INV-1",
		"supplierName":  "Tools Ltd",
		"amount":        "-10",
		"purchasedAt":   "2026-09-02T10:00:00Z",
	}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.postingService.AssertNotCalled(suite.T(), "RecordPurchase", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestRecordContract_DefaultsActingUser() {
	suite.postingService.On("RecordContractCreated", mock.Anything, mock.MatchedBy(func(c domain.Contract) bool {
		return c.ContractID == 3 && c.CreatedBy == middleware.SystemUserID
	})).Return(domain.Skipped("customers_receivable_account_id not configured")).Once()

	w := suite.do(http.MethodPost, "/api/v1/events/contracts", map[string]any{
		"contractID":     3,
		"contractNumber": "C-1",
		"customerName":   "Acme",
		"totalAmount":    "1500",
		"signedAt":       "2026-09-01T10:00:00Z",
	}, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PostingResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ResultSkipped, resp.Status)
	suite.Equal("customers_receivable_account_id not configured", resp.Reason)
	suite.Nil(resp.Entry)
}

func (suite *HandlersTestSuite) TestRecordSalary_FailureStillOK() {
	suite.postingService.On("RecordSalaryPaid", mock.Anything, mock.AnythingOfType("domain.SalaryPayment")).
		Return(domain.Failed(errors.New("connection refused"))).Once()

	w := suite.do(http.MethodPost, "/api/v1/events/salaries", map[string]any{
		"salaryID":     9,
		"employeeName": "Jane",
		"period":       "2026-09",
		"totalSalary":  "3000",
		"paidAt":       "2026-09-30T10:00:00Z",
	}, "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PostingResultResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.ResultFailed, resp.Status)
	suite.Contains(resp.Reason, "connection refused")
}

func (suite *HandlersTestSuite) TestRecordPurchase() {
	suite.postingService.On("RecordPurchase", mock.Anything, mock.MatchedBy(func(p domain.Purchase) bool {
		return p.PurchaseID == 5 && p.Method == domain.PaymentCash
	})).Return(domain.Created(sampleEntry(domain.Draft))).Once()

	w := suite.do(http.MethodPost, "/api/v1/events/purchases", map[string]any{
		"purchaseID":    5,
		"invoiceNumber": "INV-1",
		"supplierName":  "Tools Ltd",
		"amount":        "1200",
		"method":        "cash",
		"purchasedAt":   "2026-09-02T10:00:00Z",
	}, "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestCreateEntry_StatusCodes() {
	body := map[string]any{
		"date":          "2026-09-01T00:00:00Z",
		"description":   "Manual adjustment",
		"referenceType": "contract",
		"referenceID":   3,
		"items": []map[string]any{
			{"accountID": 10, "debit": "100", "credit": "0"},
			{"accountID": 50, "debit": "0", "credit": "90"},
		},
	}

	suite.postingService.On("CreateManualEntry", mock.Anything, mock.MatchedBy(func(r domain.EntryRequest) bool {
		return r.Reference == domain.ContractReference(3) && len(r.Items) == 2 && r.CreatedBy == "clerk-1"
	})).Return(domain.Rejected(errors.New("entry is not balanced"))).Once()
	w := suite.do(http.MethodPost, "/api/v1/journal-entries", body, "clerk-1")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), string(domain.ResultRejected))

	suite.postingService.On("CreateManualEntry", mock.Anything, mock.Anything).
		Return(domain.Created(sampleEntry(domain.Draft))).Once()
	w = suite.do(http.MethodPost, "/api/v1/journal-entries", body, "clerk-1")
	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlersTestSuite) TestCreateEntry_BadReferenceType() {
	w := suite.do(http.MethodPost, "/api/v1/journal-entries", map[string]any{
		"date":          "2026-09-01T00:00:00Z",
		"description":   "Manual adjustment",
		"referenceType": "invoice",
		"referenceID":   3,
		"items":         []map[string]any{{"accountID": 10, "debit": "1"}},
	}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestListEntries() {
	token := "abc"
	suite.journalService.On("ListEntries", mock.Anything, dto.ListJournalEntriesParams{Limit: 5, NextToken: &token}).
		Return(&dto.ListJournalEntriesResponse{Entries: []dto.EntryResponse{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal-entries?limit=5&nextToken=abc", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/journal-entries?limit=500", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestListEntries_BadToken() {
	suite.journalService.On("ListEntries", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusBadRequest, "invalid pagination token", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/journal-entries?nextToken=bad", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetEntry() {
	suite.journalService.On("GetEntryByID", mock.Anything, int64(42)).Return(sampleEntry(domain.Draft), nil).Once()
	w := suite.do(http.MethodGet, "/api/v1/journal-entries/42", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	suite.journalService.On("GetEntryByID", mock.Anything, int64(43)).
		Return(nil, apperrors.NewNotFoundError("journal entry 43 not found")).Once()
	w = suite.do(http.MethodGet, "/api/v1/journal-entries/43", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/journal-entries/abc", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestPostEntry() {
	suite.journalService.On("PostEntry", mock.Anything, int64(42), "clerk-1").Return(sampleEntry(domain.Posted), nil).Once()
	w := suite.do(http.MethodPost, "/api/v1/journal-entries/42/post", nil, "clerk-1")
	suite.Equal(http.StatusOK, w.Code)

	suite.journalService.On("PostEntry", mock.Anything, int64(42), "clerk-1").
		Return(nil, apperrors.NewAppError(http.StatusConflict, "journal entry is already posted", apperrors.ErrConflict)).Once()
	w = suite.do(http.MethodPost, "/api/v1/journal-entries/42/post", nil, "clerk-1")
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestGetRelatedEntries() {
	ref := domain.ContractPaymentReference(7)
	suite.journalService.On("GetRelatedEntries", mock.Anything, ref).
		Return([]domain.JournalEntry{*sampleEntry(domain.Posted)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/references/contract_payment/7/journal-entries", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RelatedEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("contract_payment", resp.ReferenceType)
	suite.Equal(int64(7), resp.ReferenceID)
	suite.Len(resp.Entries, 1)
}

func (suite *HandlersTestSuite) TestRelatedEntries_InvalidReference() {
	for _, path := range []string{
		"/api/v1/references/invoice/7/journal-entries",
		"/api/v1/references/contract/0/journal-entries",
		"/api/v1/references/contract/x/journal-entries",
	} {
		w := suite.do(http.MethodGet, path, nil, "")
		suite.Equal(http.StatusBadRequest, w.Code, path)
		w = suite.do(http.MethodDelete, path, nil, "")
		suite.Equal(http.StatusBadRequest, w.Code, path)
	}
}

func (suite *HandlersTestSuite) TestDeleteRelatedEntry() {
	suite.journalService.On("DeleteRelatedEntry", mock.Anything, domain.PurchaseReference(5)).Return(true).Once()
	w := suite.do(http.MethodDelete, "/api/v1/references/purchase/5/journal-entries", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"deleted":true}`, w.Body.String())

	suite.journalService.On("DeleteRelatedEntry", mock.Anything, domain.PurchaseReference(6)).Return(false).Once()
	w = suite.do(http.MethodDelete, "/api/v1/references/purchase/6/journal-entries", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"deleted":false}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestListAccounts() {
	assetType := domain.Asset
	suite.accountService.On("ListAccounts", mock.Anything, domain.AccountFilter{AccountType: &assetType, PostableOnly: true}).
		Return([]domain.Account{{AccountID: 10, Code: 1101, Name: "Cash", AccountType: domain.Asset, IsActive: true}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?type=ASSET&postableOnly=true", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Accounts, 1)
	suite.True(resp.Accounts[0].IsPostable)

	w = suite.do(http.MethodGet, "/api/v1/accounts?type=MONEY", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetAccount() {
	suite.accountService.On("GetAccountByID", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFoundError("account 99 not found")).Once()
	w := suite.do(http.MethodGet, "/api/v1/accounts/99", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)

	suite.accountService.On("GetAccountByID", mock.Anything, int64(1)).
		Return(nil, errors.New("pool closed")).Once()
	w = suite.do(http.MethodGet, "/api/v1/accounts/1", nil, "")
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "pool closed")
}

func (suite *HandlersTestSuite) TestGetSettings() {
	cash := "10"
	auto := "1"
	suite.settingsService.On("Resolve", mock.Anything).Return(domain.NewAccountingSettings(map[domain.SettingKey]*string{
		domain.CashAccountKey:     &cash,
		domain.AutoPostEntriesKey: &auto,
	}), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/settings", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SettingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.AutoPostEntries)
	suite.Equal(int64(10), resp.AccountIDs[domain.CashAccountKey])
	_, hasBank := resp.AccountIDs[domain.BankAccountKey]
	suite.False(hasBank)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
