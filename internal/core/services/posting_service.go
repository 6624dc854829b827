package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/utils/accounting"
)

// EventPoster maps business events onto two-line journal entries.
// It holds one settings snapshot and must not outlive the request it was built for.
type EventPoster struct {
	BaseService
	engine   portssvc.JournalEngine
	settings portssvc.SettingsResolver
}

// NewEventPoster creates an adapter that posts through engine using settings.
func NewEventPoster(engine portssvc.JournalEngine, settings portssvc.SettingsResolver) *EventPoster {
	return &EventPoster{engine: engine, settings: settings}
}

var _ portssvc.EventPosterSvc = (*EventPoster)(nil)

// RecordPaymentReceived debits the payment account and credits customers receivable.
func (p *EventPoster) RecordPaymentReceived(ctx context.Context, payment domain.ContractPayment) domain.PostingResult {
	ref := domain.ContractPaymentReference(payment.PaymentID)
	accounts, res, ok := p.requireAccounts(ctx, ref, PaymentAccountKey(payment.Method), domain.CustomersReceivableAccountKey)
	if !ok {
		return res
	}
	amount := payment.Amount
	return p.engine.CreateEntry(ctx, p.settings, domain.EntryRequest{
		Date:        payment.PaidAt,
		Description: fmt.Sprintf("Payment received for contract %s from %s", payment.ContractNumber, payment.CustomerName),
		Items: []domain.EntryItemRequest{
			accounting.DebitLine(accounts[0], amount, fmt.Sprintf("%s payment from %s", methodLabel(payment.Method), payment.CustomerName)),
			accounting.CreditLine(accounts[1], amount, fmt.Sprintf("Settle receivable of %s on contract %s", payment.CustomerName, payment.ContractNumber)),
		},
		Reference: ref,
		CreatedBy: payment.CreatedBy,
	})
}

// RecordContractCreated debits customers receivable and credits contract revenue.
func (p *EventPoster) RecordContractCreated(ctx context.Context, contract domain.Contract) domain.PostingResult {
	ref := domain.ContractReference(contract.ContractID)
	accounts, res, ok := p.requireAccounts(ctx, ref, domain.CustomersReceivableAccountKey, domain.ContractRevenueAccountKey)
	if !ok {
		return res
	}
	amount := contract.TotalAmount
	return p.engine.CreateEntry(ctx, p.settings, domain.EntryRequest{
		Date:        contract.SignedAt,
		Description: fmt.Sprintf("Rental contract %s for %s", contract.ContractNumber, contract.CustomerName),
		Items: []domain.EntryItemRequest{
			accounting.DebitLine(accounts[0], amount, fmt.Sprintf("Receivable from %s", contract.CustomerName)),
			accounting.CreditLine(accounts[1], amount, fmt.Sprintf("Revenue from contract %s", contract.ContractNumber)),
		},
		Reference: ref,
		CreatedBy: contract.CreatedBy,
	})
}

// RecordSalaryPaid debits salary expense and credits the payment account.
func (p *EventPoster) RecordSalaryPaid(ctx context.Context, salary domain.SalaryPayment) domain.PostingResult {
	ref := domain.SalaryReference(salary.SalaryID)
	accounts, res, ok := p.requireAccounts(ctx, ref, domain.SalaryExpenseAccountKey, PaymentAccountKey(salary.Method))
	if !ok {
		return res
	}
	amount := salary.TotalSalary
	return p.engine.CreateEntry(ctx, p.settings, domain.EntryRequest{
		Date:        salary.PaidAt,
		Description: fmt.Sprintf("Salary of %s for %s", salary.EmployeeName, salary.Period),
		Items: []domain.EntryItemRequest{
			accounting.DebitLine(accounts[0], amount, fmt.Sprintf("Salary expense %s", salary.EmployeeName)),
			accounting.CreditLine(accounts[1], amount, fmt.Sprintf("%s salary payment to %s", methodLabel(salary.Method), salary.EmployeeName)),
		},
		Reference: ref,
		CreatedBy: salary.CreatedBy,
	})
}

// RecordPurchase debits purchase expense. Cash and bank transfer purchases credit the payment
// account; every other method leaves the amount owed to the supplier.
func (p *EventPoster) RecordPurchase(ctx context.Context, purchase domain.Purchase) domain.PostingResult {
	ref := domain.PurchaseReference(purchase.PurchaseID)
	creditKey := domain.SuppliersPayableAccountKey
	creditDesc := fmt.Sprintf("Payable to %s", purchase.SupplierName)
	if purchasePaidImmediately(purchase.Method) {
		creditKey = PaymentAccountKey(purchase.Method)
		creditDesc = fmt.Sprintf("%s payment to %s", methodLabel(purchase.Method), purchase.SupplierName)
	}
	accounts, res, ok := p.requireAccounts(ctx, ref, domain.PurchaseExpenseAccountKey, creditKey)
	if !ok {
		return res
	}
	amount := purchase.Amount
	return p.engine.CreateEntry(ctx, p.settings, domain.EntryRequest{
		Date:        purchase.PurchasedAt,
		Description: fmt.Sprintf("Purchase invoice %s from %s", purchase.InvoiceNumber, purchase.SupplierName),
		Items: []domain.EntryItemRequest{
			accounting.DebitLine(accounts[0], amount, fmt.Sprintf("Purchase invoice %s", purchase.InvoiceNumber)),
			accounting.CreditLine(accounts[1], amount, creditDesc),
		},
		Reference: ref,
		CreatedBy: purchase.CreatedBy,
	})
}

// requireAccounts resolves keys in order. The first unset key turns into a skipped result.
func (p *EventPoster) requireAccounts(ctx context.Context, ref domain.Reference, keys ...domain.SettingKey) ([]int64, domain.PostingResult, bool) {
	ids := make([]int64, len(keys))
	for i, key := range keys {
		id, ok := p.settings.AccountID(key)
		if !ok {
			reason := fmt.Sprintf("%s not configured", key)
			p.ReferenceLogger(ctx, ref).Warn("Journal entry skipped",
				slog.String("outcome", outcomeSkipped),
				slog.String("setting_key", string(key)))
			return nil, domain.Skipped(reason), false
		}
		ids[i] = id
	}
	return ids, domain.PostingResult{}, true
}

func purchasePaidImmediately(method domain.PaymentMethod) bool {
	return method == domain.PaymentCash || method == domain.PaymentBankTransfer
}

func methodLabel(method domain.PaymentMethod) string {
	switch method {
	case domain.PaymentBankTransfer:
		return "Bank transfer"
	case domain.PaymentCheck:
		return "Check"
	case domain.PaymentCreditCard:
		return "Credit card"
	default:
		return "Cash"
	}
}

// postingService sources a fresh settings snapshot for every call and delegates to an EventPoster.
type postingService struct {
	BaseService
	engine      portssvc.JournalEngine
	settingsSvc portssvc.SettingsSvc
}

// NewPostingService creates the facade business workflows call into.
func NewPostingService(engine portssvc.JournalEngine, settingsSvc portssvc.SettingsSvc) portssvc.PostingSvcFacade {
	return &postingService{engine: engine, settingsSvc: settingsSvc}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

func (s *postingService) withPoster(ctx context.Context, ref domain.Reference, fn func(*EventPoster) domain.PostingResult) domain.PostingResult {
	settings, err := s.settingsSvc.Resolve(ctx)
	if err != nil {
		s.ReferenceLogger(ctx, ref).Error("Journal entry failed", slog.String("outcome", outcomeFailed), slog.String("error", err.Error()))
		return domain.Failed(err)
	}
	return fn(NewEventPoster(s.engine, settings))
}

func (s *postingService) RecordPaymentReceived(ctx context.Context, payment domain.ContractPayment) domain.PostingResult {
	return s.withPoster(ctx, domain.ContractPaymentReference(payment.PaymentID), func(p *EventPoster) domain.PostingResult {
		return p.RecordPaymentReceived(ctx, payment)
	})
}

func (s *postingService) RecordContractCreated(ctx context.Context, contract domain.Contract) domain.PostingResult {
	return s.withPoster(ctx, domain.ContractReference(contract.ContractID), func(p *EventPoster) domain.PostingResult {
		return p.RecordContractCreated(ctx, contract)
	})
}

func (s *postingService) RecordSalaryPaid(ctx context.Context, salary domain.SalaryPayment) domain.PostingResult {
	return s.withPoster(ctx, domain.SalaryReference(salary.SalaryID), func(p *EventPoster) domain.PostingResult {
		return p.RecordSalaryPaid(ctx, salary)
	})
}

func (s *postingService) RecordPurchase(ctx context.Context, purchase domain.Purchase) domain.PostingResult {
	return s.withPoster(ctx, domain.PurchaseReference(purchase.PurchaseID), func(p *EventPoster) domain.PostingResult {
		return p.RecordPurchase(ctx, purchase)
	})
}

// CreateManualEntry runs the generic engine with a fresh settings snapshot.
func (s *postingService) CreateManualEntry(ctx context.Context, req domain.EntryRequest) domain.PostingResult {
	settings, err := s.settingsSvc.Resolve(ctx)
	if err != nil {
		s.ReferenceLogger(ctx, req.Reference).Error("Journal entry failed", slog.String("outcome", outcomeFailed), slog.String("error", err.Error()))
		return domain.Failed(err)
	}
	return s.engine.CreateEntry(ctx, settings, req)
}
