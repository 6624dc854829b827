package dto

import (
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID       int64              `json:"accountID"`
	Code            int                `json:"code"`
	Name            string             `json:"name"`
	AccountType     domain.AccountType `json:"accountType"`
	IsParent        bool               `json:"isParent"`
	ParentAccountID *int64             `json:"parentAccountID,omitempty"`
	IsActive        bool               `json:"isActive"`
	IsPostable      bool               `json:"isPostable"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
	LastUpdatedAt   time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy   string             `json:"lastUpdatedBy"`
}

// ListAccountsParams defines the query parameters for listing accounts.
type ListAccountsParams struct {
	AccountType  string `form:"type" binding:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	ParentID     *int64 `form:"parentID" binding:"omitempty,gt=0"`
	ActiveOnly   bool   `form:"activeOnly"`
	PostableOnly bool   `form:"postableOnly"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListAccountsParams) ToFilter() domain.AccountFilter {
	filter := domain.AccountFilter{
		ParentID:     p.ParentID,
		ActiveOnly:   p.ActiveOnly,
		PostableOnly: p.PostableOnly,
	}
	if p.AccountType != "" {
		t := domain.AccountType(p.AccountType)
		filter.AccountType = &t
	}
	return filter
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Code:            acc.Code,
		Name:            acc.Name,
		AccountType:     acc.AccountType,
		IsParent:        acc.IsParent,
		ParentAccountID: acc.ParentAccountID,
		IsActive:        acc.IsActive,
		IsPostable:      acc.IsPostable(),
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to ListAccountsResponse DTO
func ToListAccountResponse(accounts []domain.Account) ListAccountsResponse {
	list := make([]AccountResponse, len(accounts))
	for i := range accounts {
		list[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: list}
}
