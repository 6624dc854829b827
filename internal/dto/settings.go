package dto

import "github.com/SscSPs/rental_ledger/internal/core/domain"

// SettingsResponse exposes the raw settings snapshot together with the resolved view.
type SettingsResponse struct {
	Values          map[domain.SettingKey]*string `json:"values"`
	AccountIDs      map[domain.SettingKey]int64   `json:"accountIDs"`
	AutoPostEntries bool                          `json:"autoPostEntries"`
}

// ToSettingsResponse converts a snapshot to its DTO. Unconfigured account keys are omitted from AccountIDs.
func ToSettingsResponse(s domain.AccountingSettings) SettingsResponse {
	ids := make(map[domain.SettingKey]int64)
	for _, k := range domain.SettingKeys {
		if k == domain.AutoPostEntriesKey {
			continue
		}
		if id, ok := s.AccountID(k); ok {
			ids[k] = id
		}
	}
	return SettingsResponse{
		Values:          s.Values(),
		AccountIDs:      ids,
		AutoPostEntries: s.AutoPostEntries(),
	}
}
