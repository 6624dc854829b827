package models

import "database/sql"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID       int64         `db:"account_id"`
	Code            int           `db:"code"`
	Name            string        `db:"name"`
	AccountType     AccountType   `db:"account_type"`
	IsParent        bool          `db:"is_parent"`
	ParentAccountID sql.NullInt64 `db:"parent_account_id"`
	IsActive        bool          `db:"is_active"`
	AuditFields
}
