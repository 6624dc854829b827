package dto

import (
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryItemRequest is one line of a manual journal entry.
type CreateEntryItemRequest struct {
	AccountID   int64           `json:"accountID" binding:"required,gt=0"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description" binding:"max=255"`
}

// CreateEntryRequest defines the data needed to create a manual journal entry.
// Balance and account checks are left to the engine so that they surface as a posting result.
type CreateEntryRequest struct {
	Date          time.Time                `json:"date" binding:"required"`
	Description   string                   `json:"description" binding:"required,max=500"`
	ReferenceType string                   `json:"referenceType" binding:"required,oneof=contract contract_payment salary purchase"`
	ReferenceID   int64                    `json:"referenceID" binding:"required,gt=0"`
	Items         []CreateEntryItemRequest `json:"items" binding:"required,dive"`
}

// ToEntryRequest converts the DTO to the engine's request type.
func (r CreateEntryRequest) ToEntryRequest(userID string) domain.EntryRequest {
	items := make([]domain.EntryItemRequest, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.EntryItemRequest{
			AccountID:   it.AccountID,
			Debit:       it.Debit,
			Credit:      it.Credit,
			Description: it.Description,
		}
	}
	return domain.EntryRequest{
		Date:        r.Date,
		Description: r.Description,
		Items:       items,
		Reference:   domain.Reference{Type: domain.ReferenceType(r.ReferenceType), ID: r.ReferenceID},
		CreatedBy:   userID,
	}
}

// EntryItemResponse defines the data returned for a journal entry line.
type EntryItemResponse struct {
	ItemID      int64           `json:"itemID"`
	AccountID   int64           `json:"accountID"`
	AccountCode *int            `json:"accountCode,omitempty"`
	AccountName string          `json:"accountName,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID       int64               `json:"entryID"`
	EntryNumber   string              `json:"entryNumber"`
	EntryDate     time.Time           `json:"entryDate"`
	Description   string              `json:"description"`
	ReferenceType string              `json:"referenceType"`
	ReferenceID   int64               `json:"referenceID"`
	Status        domain.EntryStatus  `json:"status"`
	TotalDebit    decimal.Decimal     `json:"totalDebit"`
	TotalCredit   decimal.Decimal     `json:"totalCredit"`
	Items         []EntryItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// ListJournalEntriesParams defines the query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// RelatedEntriesResponse lists the entries tied to one business reference.
type RelatedEntriesResponse struct {
	ReferenceType string          `json:"referenceType"`
	ReferenceID   int64           `json:"referenceID"`
	Entries       []EntryResponse `json:"entries"`
}

// DeleteRelatedEntryResponse reports whether a draft entry was removed.
type DeleteRelatedEntryResponse struct {
	Deleted bool `json:"deleted"`
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:       e.EntryID,
		EntryNumber:   e.EntryNumber,
		EntryDate:     e.EntryDate,
		Description:   e.Description,
		ReferenceType: string(e.Reference.Type),
		ReferenceID:   e.Reference.ID,
		Status:        e.Status,
		TotalDebit:    e.TotalDebit,
		TotalCredit:   e.TotalCredit,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
	if len(e.Items) > 0 {
		resp.Items = make([]EntryItemResponse, len(e.Items))
		for i, it := range e.Items {
			item := EntryItemResponse{
				ItemID:      it.ItemID,
				AccountID:   it.AccountID,
				Debit:       it.Debit,
				Credit:      it.Credit,
				Description: it.Description,
			}
			if it.Account != nil {
				code := it.Account.Code
				item.AccountCode = &code
				item.AccountName = it.Account.Name
			}
			resp.Items[i] = item
		}
	}
	return resp
}

// ToEntryResponses converts a slice of domain.JournalEntry to []EntryResponse.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
