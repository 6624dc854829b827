package accounting

import (
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// MoneyPlaces is the precision at which entry totals are compared and stored.
	MoneyPlaces = 2
	// ItemPlaces is the scale of the journal_entry_items debit and credit columns.
	ItemPlaces = 4
)

// RoundMoney rounds an amount to MoneyPlaces decimal places.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}

// RoundItemAmount rounds a line amount to the scale the store keeps.
func RoundItemAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(ItemPlaces)
}

// RoundItems returns a copy of items with debit and credit rounded to ItemPlaces,
// so the balance is checked on the values that will be stored.
func RoundItems(items []domain.EntryItemRequest) []domain.EntryItemRequest {
	rounded := make([]domain.EntryItemRequest, len(items))
	for i, item := range items {
		item.Debit = RoundItemAmount(item.Debit)
		item.Credit = RoundItemAmount(item.Credit)
		rounded[i] = item
	}
	return rounded
}

// FormatMoney renders an amount rounded to MoneyPlaces with trailing zeros kept.
// Example: 12.3456 returns "12.35", 500 returns "500.00".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPlaces)
}

// SumItems returns the raw debit and credit totals of the requested lines.
func SumItems(items []domain.EntryItemRequest) (debit decimal.Decimal, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, item := range items {
		debit = debit.Add(item.Debit)
		credit = credit.Add(item.Credit)
	}
	return debit, credit
}

// IsBalanced compares both sides after rounding them to MoneyPlaces.
func IsBalanced(debit, credit decimal.Decimal) bool {
	return RoundMoney(debit).Equal(RoundMoney(credit))
}

// HasNegativeAmount reports the index of the first line with a negative debit or credit, or -1.
func HasNegativeAmount(items []domain.EntryItemRequest) int {
	for i, item := range items {
		if item.Debit.IsNegative() || item.Credit.IsNegative() {
			return i
		}
	}
	return -1
}

// DebitLine and CreditLine build the conventional one-sided ledger lines.
func DebitLine(accountID int64, amount decimal.Decimal, description string) domain.EntryItemRequest {
	return domain.EntryItemRequest{AccountID: accountID, Debit: amount, Credit: decimal.Zero, Description: description}
}

func CreditLine(accountID int64, amount decimal.Decimal, description string) domain.EntryItemRequest {
	return domain.EntryItemRequest{AccountID: accountID, Debit: decimal.Zero, Credit: amount, Description: description}
}
