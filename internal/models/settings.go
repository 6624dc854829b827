package models

import (
	"database/sql"
	"time"
)

// AccountingSetting is a row of the accounting_settings table.
type AccountingSetting struct {
	SettingKey   string         `db:"setting_key"`
	SettingValue sql.NullString `db:"setting_value"`
	UpdatedAt    time.Time      `db:"updated_at"`
}
