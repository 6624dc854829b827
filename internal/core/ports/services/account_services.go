package services

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// AccountReaderSvc defines the chart-of-accounts query surface
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// GetAccountByCode retrieves an account by its human-assigned code.
	GetAccountByCode(ctx context.Context, code int) (*domain.Account, error)

	// ListAccounts retrieves accounts matching the filter.
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)

	// ListChildren retrieves the direct children of a parent account.
	ListChildren(ctx context.Context, parentID int64) ([]domain.Account, error)
}

// AccountPostingSvc defines the checks the journal engine runs against the chart.
type AccountPostingSvc interface {
	// GetPostableAccounts returns the accounts for ids, failing when any is unknown or not a postable leaf.
	GetPostableAccounts(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountPostingSvc
}
