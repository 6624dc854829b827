package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus mirrors the status CHECK constraint of journal_entries.
type EntryStatus string

const (
	Draft  EntryStatus = "draft"
	Posted EntryStatus = "posted"
)

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID       int64           `db:"entry_id"`
	EntryNumber   string          `db:"entry_number"`
	EntryDate     time.Time       `db:"entry_date"`
	Description   string          `db:"description"`
	ReferenceType string          `db:"reference_type"`
	ReferenceID   int64           `db:"reference_id"`
	Status        EntryStatus     `db:"status"`
	TotalDebit    decimal.Decimal `db:"total_debit"`
	TotalCredit   decimal.Decimal `db:"total_credit"`
	AuditFields
}

// JournalEntryItem is a row of the journal_entry_items table.
type JournalEntryItem struct {
	ItemID      int64           `db:"item_id"`
	EntryID     int64           `db:"entry_id"`
	LineNo      int             `db:"line_no"`
	AccountID   int64           `db:"account_id"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Description string          `db:"description"`
}
