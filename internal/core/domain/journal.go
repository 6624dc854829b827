package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "draft"  // Provisional, deletable
	Posted EntryStatus = "posted" // Final and immutable
)

// JournalEntry is a dated, balanced set of debit/credit lines recording one financial event.
type JournalEntry struct {
	EntryID     int64              `json:"entryID"`     // Primary Key
	EntryNumber string             `json:"entryNumber"` // Unique, generated by the store
	EntryDate   time.Time          `json:"entryDate"`
	Description string             `json:"description"`
	Reference   Reference          `json:"reference"`
	Status      EntryStatus        `json:"status"`
	TotalDebit  decimal.Decimal    `json:"totalDebit"`
	TotalCredit decimal.Decimal    `json:"totalCredit"`
	Items       []JournalEntryItem `json:"items,omitempty"`
	AuditFields
}

// IsDraft reports whether the entry may still be deleted or posted.
func (e JournalEntry) IsDraft() bool {
	return e.Status == Draft
}

// JournalEntryItem is a single debit or credit line of a journal entry.
type JournalEntryItem struct {
	ItemID      int64           `json:"itemID"`
	EntryID     int64           `json:"entryID"`
	AccountID   int64           `json:"accountID"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
	Account     *Account        `json:"account,omitempty"` // Populated on eager loads
}

// EntryItemRequest is one requested line of a new journal entry.
type EntryItemRequest struct {
	AccountID   int64
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// EntryRequest is the input of the generic balanced-entry operation.
type EntryRequest struct {
	Date        time.Time
	Description string
	Items       []EntryItemRequest
	Reference   Reference
	CreatedBy   string
}
