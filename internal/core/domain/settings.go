package domain

import (
	"strconv"
	"strings"
)

// SettingKey names one entry of the accounting settings store.
type SettingKey string

const (
	CashAccountKey                SettingKey = "cash_account_id"
	BankAccountKey                SettingKey = "bank_account_id"
	CustomersReceivableAccountKey SettingKey = "customers_receivable_account_id"
	ContractRevenueAccountKey     SettingKey = "contract_revenue_account_id"
	SalaryExpenseAccountKey       SettingKey = "salary_expense_account_id"
	SuppliersPayableAccountKey    SettingKey = "suppliers_payable_account_id"
	PurchaseExpenseAccountKey     SettingKey = "purchase_expense_account_id"
	AutoPostEntriesKey            SettingKey = "auto_post_entries"
)

// SettingKeys lists every key the engine understands, in a stable order.
var SettingKeys = []SettingKey{
	CashAccountKey,
	BankAccountKey,
	CustomersReceivableAccountKey,
	ContractRevenueAccountKey,
	SalaryExpenseAccountKey,
	SuppliersPayableAccountKey,
	PurchaseExpenseAccountKey,
	AutoPostEntriesKey,
}

// IsKnown reports whether k belongs to the fixed key set.
func (k SettingKey) IsKnown() bool {
	for _, known := range SettingKeys {
		if k == known {
			return true
		}
	}
	return false
}

// AccountingSettings is an immutable snapshot of the settings store.
// A nil value means the key is unset.
type AccountingSettings struct {
	values map[SettingKey]*string
}

// NewAccountingSettings copies values into a new snapshot. Unknown keys are dropped.
func NewAccountingSettings(values map[SettingKey]*string) AccountingSettings {
	copied := make(map[SettingKey]*string, len(values))
	for k, v := range values {
		if !k.IsKnown() {
			continue
		}
		if v != nil {
			s := *v
			v = &s
		}
		copied[k] = v
	}
	return AccountingSettings{values: copied}
}

// Value returns the raw value for key and whether it is set.
func (s AccountingSettings) Value(key SettingKey) (string, bool) {
	v, ok := s.values[key]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// AccountID returns the configured account id for key.
// Unset, blank, "0" and non-numeric values all count as not configured.
func (s AccountingSettings) AccountID(key SettingKey) (int64, bool) {
	raw, ok := s.Value(key)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// AutoPostEntries reports whether new entries are created already posted.
func (s AccountingSettings) AutoPostEntries() bool {
	raw, ok := s.Value(AutoPostEntriesKey)
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true":
		return true
	}
	return false
}

// Values returns a copy of the raw snapshot keyed by setting.
func (s AccountingSettings) Values() map[SettingKey]*string {
	out := make(map[SettingKey]*string, len(SettingKeys))
	for _, k := range SettingKeys {
		if v, ok := s.Value(k); ok {
			out[k] = &v
		} else {
			out[k] = nil
		}
	}
	return out
}
