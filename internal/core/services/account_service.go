package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
)

// accountService exposes the chart of accounts. The ledger never creates or mutates accounts.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountReader
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountReader) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// Not found is an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID in repository", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	s.LogDebug(ctx, "Account retrieved successfully from service", slog.Int64("account_id", account.AccountID))
	return account, nil
}

func (s *accountService) GetAccountByCode(ctx context.Context, code int) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code in repository", slog.Int("code", code))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves the accounts matching filter, ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	if filter.AccountType != nil && !filter.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, *filter.AccountType)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts from repository")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed successfully from service", slog.Int("count", len(accounts)))
	return accounts, nil
}

// ListChildren retrieves the direct children of parentID.
func (s *accountService) ListChildren(ctx context.Context, parentID int64) ([]domain.Account, error) {
	if _, err := s.GetAccountByID(ctx, parentID); err != nil {
		return nil, err
	}
	return s.ListAccounts(ctx, domain.AccountFilter{ParentID: &parentID})
}

// GetPostableAccounts loads every id and checks that each one may receive a journal line.
// Failures are *AccountError values wrapping ErrInvalidAccount for unknown ids and
// ErrParentAccount for aggregator or inactive accounts.
func (s *accountService) GetPostableAccounts(ctx context.Context, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, id := range accountIDs {
		account, ok := accounts[id]
		if !ok {
			return nil, &AccountError{AccountID: id, Err: ErrInvalidAccount}
		}
		if !account.IsPostable() {
			reason := "is a parent account"
			if !account.IsActive {
				reason = "is inactive"
			}
			return nil, &AccountError{AccountID: id, Err: fmt.Errorf("%w: %s %s", ErrParentAccount, account.Name, reason)}
		}
	}
	return accounts, nil
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)
