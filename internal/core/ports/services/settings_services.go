package services

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// SettingsResolver answers which account plays each role and whether entries auto-post.
// domain.AccountingSettings is the production implementation.
type SettingsResolver interface {
	AccountID(key domain.SettingKey) (int64, bool)
	AutoPostEntries() bool
}

// SettingsSvc loads settings snapshots.
type SettingsSvc interface {
	// Resolve reads the settings store once and returns an immutable snapshot.
	Resolve(ctx context.Context) (domain.AccountingSettings, error)
}

var _ SettingsResolver = domain.AccountingSettings{}
