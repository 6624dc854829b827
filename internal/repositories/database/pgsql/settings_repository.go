package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/rental_ledger/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSettingsRepository stores accounting settings as key/value rows.
type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// LoadSettings reads every row in one query. NULL values come back as nil.
func (r *PgxSettingsRepository) LoadSettings(ctx context.Context) (map[domain.SettingKey]*string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT setting_key, setting_value, updated_at FROM accounting_settings;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounting settings: %w", err)
	}
	defer rows.Close()

	values := make(map[domain.SettingKey]*string)
	for rows.Next() {
		var m models.AccountingSetting
		if err := rows.Scan(&m.SettingKey, &m.SettingValue, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan accounting setting: %w", err)
		}
		if m.SettingValue.Valid {
			v := m.SettingValue.String
			values[domain.SettingKey(m.SettingKey)] = &v
		} else {
			values[domain.SettingKey(m.SettingKey)] = nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounting settings: %w", err)
	}
	return values, nil
}

// SaveSetting upserts key. A nil value stores NULL.
func (r *PgxSettingsRepository) SaveSetting(ctx context.Context, key domain.SettingKey, value *string) error {
	return saveSetting(ctx, r.Pool, key, value)
}

func saveSetting(ctx context.Context, q querier, key domain.SettingKey, value *string) error {
	m := models.AccountingSetting{SettingKey: string(key), UpdatedAt: time.Now().UTC()}
	if value != nil {
		m.SettingValue = sql.NullString{String: *value, Valid: true}
	}
	query := `
		INSERT INTO accounting_settings (setting_key, setting_value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (setting_key) DO UPDATE SET
			setting_value = EXCLUDED.setting_value,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := q.Exec(ctx, query, m.SettingKey, m.SettingValue, m.UpdatedAt); err != nil {
		return translatePgError("failed to save setting "+m.SettingKey, err)
	}
	return nil
}
