package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
	ctx      context.Context
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *AccountServiceTestSuite) TestGetAccountByID() {
	expected := &domain.Account{AccountID: 10, Code: 1010, Name: "Cash", AccountType: domain.Asset, IsActive: true}
	suite.mockRepo.On("FindAccountByID", suite.ctx, int64(10)).Return(expected, nil).Once()

	account, err := suite.service.GetAccountByID(suite.ctx, 10)

	suite.Require().NoError(err)
	suite.Equal(expected, account)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	suite.mockRepo.On("FindAccountByID", suite.ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(suite.ctx, 99)

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestGetAccountByCode() {
	expected := &domain.Account{AccountID: 11, Code: 1020, Name: "Bank", AccountType: domain.Asset, IsActive: true}
	suite.mockRepo.On("FindAccountByCode", suite.ctx, 1020).Return(expected, nil).Once()

	account, err := suite.service.GetAccountByCode(suite.ctx, 1020)

	suite.Require().NoError(err)
	suite.Equal(int64(11), account.AccountID)
}

func (suite *AccountServiceTestSuite) TestListAccounts() {
	assetType := domain.Asset
	filter := domain.AccountFilter{AccountType: &assetType, PostableOnly: true}
	suite.mockRepo.On("ListAccounts", suite.ctx, filter).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(suite.ctx, filter)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestListAccounts_InvalidType() {
	bogus := domain.AccountType("INCOME")

	_, err := suite.service.ListAccounts(suite.ctx, domain.AccountFilter{AccountType: &bogus})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListAccounts")
}

func (suite *AccountServiceTestSuite) TestListChildren() {
	parentID := int64(1)
	parent := &domain.Account{AccountID: 1, Code: 1000, Name: "Assets", IsParent: true, IsActive: true}
	children := []domain.Account{
		{AccountID: 10, Code: 1010, Name: "Cash", ParentAccountID: &parentID, IsActive: true},
		{AccountID: 11, Code: 1020, Name: "Bank", ParentAccountID: &parentID, IsActive: true},
	}
	suite.mockRepo.On("FindAccountByID", suite.ctx, parentID).Return(parent, nil).Once()
	suite.mockRepo.On("ListAccounts", suite.ctx, domain.AccountFilter{ParentID: &parentID}).Return(children, nil).Once()

	got, err := suite.service.ListChildren(suite.ctx, parentID)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetPostableAccounts() {
	leaf := domain.Account{AccountID: 10, Name: "Cash", IsActive: true}
	parent := domain.Account{AccountID: 1, Name: "Assets", IsParent: true, IsActive: true}

	suite.mockRepo.On("FindAccountsByIDs", suite.ctx, []int64{10}).Return(map[int64]domain.Account{10: leaf}, nil).Once()
	accounts, err := suite.service.GetPostableAccounts(suite.ctx, []int64{10})
	suite.Require().NoError(err)
	suite.Contains(accounts, int64(10))

	suite.mockRepo.On("FindAccountsByIDs", suite.ctx, []int64{10, 1}).Return(map[int64]domain.Account{10: leaf, 1: parent}, nil).Once()
	_, err = suite.service.GetPostableAccounts(suite.ctx, []int64{10, 1})
	suite.ErrorIs(err, services.ErrParentAccount)
	var accErr *services.AccountError
	suite.Require().ErrorAs(err, &accErr)
	suite.Equal(int64(1), accErr.AccountID)

	suite.mockRepo.On("FindAccountsByIDs", suite.ctx, []int64{77}).Return(map[int64]domain.Account{}, nil).Once()
	_, err = suite.service.GetPostableAccounts(suite.ctx, []int64{77})
	suite.ErrorIs(err, services.ErrInvalidAccount)
	suite.Require().ErrorAs(err, &accErr)
	suite.Equal(int64(77), accErr.AccountID)

	dbErr := errors.New("boom")
	suite.mockRepo.On("FindAccountsByIDs", suite.ctx, []int64{5}).Return(nil, dbErr).Once()
	_, err = suite.service.GetPostableAccounts(suite.ctx, []int64{5})
	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func TestPaymentAccountKey(t *testing.T) {
	tests := []struct {
		method   domain.PaymentMethod
		expected domain.SettingKey
	}{
		{domain.PaymentCash, domain.CashAccountKey},
		{domain.PaymentBankTransfer, domain.BankAccountKey},
		{domain.PaymentCheck, domain.BankAccountKey},
		{domain.PaymentCreditCard, domain.BankAccountKey},
		{"", domain.CashAccountKey},
		{"barter", domain.CashAccountKey},
	}
	for _, tc := range tests {
		t.Run(string(tc.method), func(t *testing.T) {
			assert.Equal(t, tc.expected, services.PaymentAccountKey(tc.method))
		})
	}
}
