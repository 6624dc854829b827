package repositories

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// SettingsReader loads the accounting settings store.
type SettingsReader interface {
	// LoadSettings returns every stored key with its (nullable) value.
	LoadSettings(ctx context.Context) (map[domain.SettingKey]*string, error)
}

// SettingsWriter stores individual settings.
type SettingsWriter interface {
	// SaveSetting upserts a single key. A nil value clears it.
	SaveSetting(ctx context.Context, key domain.SettingKey, value *string) error
}

// SettingsRepositoryFacade combines settings reads and writes.
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
