package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five fundamental account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a node in the chart of accounts.
// Parent accounts only aggregate their children for reporting and never receive postings.
type Account struct {
	AccountID       int64       `json:"accountID"`       // Primary Key
	Code            int         `json:"code"`            // Unique, human-assigned
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`     // Fixed at creation
	IsParent        bool        `json:"isParent"`        // Aggregator, never posted to directly
	ParentAccountID *int64      `json:"parentAccountID"` // Nullable FK -> accounts.account_id
	IsActive        bool        `json:"isActive"`
	AuditFields
}

// IsPostable reports whether a journal line may reference this account.
func (a Account) IsPostable() bool {
	return !a.IsParent && a.IsActive
}

// AccountFilter narrows chart-of-accounts listings.
type AccountFilter struct {
	AccountType  *AccountType
	ParentID     *int64
	ActiveOnly   bool
	PostableOnly bool
}
