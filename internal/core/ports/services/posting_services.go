package services

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// EventPosterSvc translates business events into journal entries.
type EventPosterSvc interface {
	RecordPaymentReceived(ctx context.Context, payment domain.ContractPayment) domain.PostingResult
	RecordContractCreated(ctx context.Context, contract domain.Contract) domain.PostingResult
	RecordSalaryPaid(ctx context.Context, salary domain.SalaryPayment) domain.PostingResult
	RecordPurchase(ctx context.Context, purchase domain.Purchase) domain.PostingResult
}

// PostingSvcFacade is the entry point used by business workflows. Every call sources
// its own settings snapshot.
type PostingSvcFacade interface {
	EventPosterSvc

	// CreateManualEntry runs the generic engine with a fresh settings snapshot.
	CreateManualEntry(ctx context.Context, req domain.EntryRequest) domain.PostingResult
}
