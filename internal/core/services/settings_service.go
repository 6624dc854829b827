package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsReader
}

// NewSettingsService creates a service that snapshots the settings store.
func NewSettingsService(repo portsrepo.SettingsReader) portssvc.SettingsSvc {
	return &settingsService{settingsRepo: repo}
}

// Resolve reads all settings in one query. Missing keys stay unset.
func (s *settingsService) Resolve(ctx context.Context) (domain.AccountingSettings, error) {
	values, err := s.settingsRepo.LoadSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounting settings")
		return domain.AccountingSettings{}, fmt.Errorf("failed to load accounting settings: %w", err)
	}
	return domain.NewAccountingSettings(values), nil
}

// PaymentAccountKey returns the setting naming the account a payment method moves money through.
// Unknown or empty methods fall back to cash.
func PaymentAccountKey(method domain.PaymentMethod) domain.SettingKey {
	switch method {
	case domain.PaymentBankTransfer, domain.PaymentCheck, domain.PaymentCreditCard:
		return domain.BankAccountKey
	default:
		return domain.CashAccountKey
	}
}

// ResolvePaymentAccount looks up the account for method in settings.
func ResolvePaymentAccount(settings portssvc.SettingsResolver, method domain.PaymentMethod) (int64, bool) {
	return settings.AccountID(PaymentAccountKey(method))
}

var _ portssvc.SettingsSvc = (*settingsService)(nil)
