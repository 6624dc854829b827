package dto

import (
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ContractPaymentEvent is the payload of a received contract payment.
type ContractPaymentEvent struct {
	PaymentID      int64           `json:"paymentID" binding:"required,gt=0"`
	ContractID     int64           `json:"contractID" binding:"required,gt=0"`
	ContractNumber string          `json:"contractNumber" binding:"required"`
	CustomerName   string          `json:"customerName" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"gte=0"`
	Method         string          `json:"method"`
	PaidAt         time.Time       `json:"paidAt" binding:"required"`
}

func (e ContractPaymentEvent) ToDomain(userID string) domain.ContractPayment {
	return domain.ContractPayment{
		PaymentID:      domain.PaymentID(e.PaymentID),
		ContractID:     domain.ContractID(e.ContractID),
		ContractNumber: e.ContractNumber,
		CustomerName:   e.CustomerName,
		Amount:         e.Amount,
		Method:         domain.PaymentMethod(e.Method),
		PaidAt:         e.PaidAt,
		CreatedBy:      userID,
	}
}

// ContractCreatedEvent is the payload of a newly signed contract.
type ContractCreatedEvent struct {
	ContractID     int64           `json:"contractID" binding:"required,gt=0"`
	ContractNumber string          `json:"contractNumber" binding:"required"`
	CustomerName   string          `json:"customerName" binding:"required"`
	TotalAmount    decimal.Decimal `json:"totalAmount" binding:"gte=0"`
	SignedAt       time.Time       `json:"signedAt" binding:"required"`
}

func (e ContractCreatedEvent) ToDomain(userID string) domain.Contract {
	return domain.Contract{
		ContractID:     domain.ContractID(e.ContractID),
		ContractNumber: e.ContractNumber,
		CustomerName:   e.CustomerName,
		TotalAmount:    e.TotalAmount,
		SignedAt:       e.SignedAt,
		CreatedBy:      userID,
	}
}

// SalaryPaidEvent is the payload of a paid salary.
type SalaryPaidEvent struct {
	SalaryID     int64           `json:"salaryID" binding:"required,gt=0"`
	EmployeeName string          `json:"employeeName" binding:"required"`
	Period       string          `json:"period" binding:"required"`
	TotalSalary  decimal.Decimal `json:"totalSalary" binding:"gte=0"`
	Method       string          `json:"method"`
	PaidAt       time.Time       `json:"paidAt" binding:"required"`
}

func (e SalaryPaidEvent) ToDomain(userID string) domain.SalaryPayment {
	return domain.SalaryPayment{
		SalaryID:     domain.SalaryID(e.SalaryID),
		EmployeeName: e.EmployeeName,
		Period:       e.Period,
		TotalSalary:  e.TotalSalary,
		Method:       domain.PaymentMethod(e.Method),
		PaidAt:       e.PaidAt,
		CreatedBy:    userID,
	}
}

// PurchaseEvent is the payload of a recorded supplier purchase.
type PurchaseEvent struct {
	PurchaseID    int64           `json:"purchaseID" binding:"required,gt=0"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	SupplierName  string          `json:"supplierName" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"gte=0"`
	Method        string          `json:"method"`
	PurchasedAt   time.Time       `json:"purchasedAt" binding:"required"`
}

func (e PurchaseEvent) ToDomain(userID string) domain.Purchase {
	return domain.Purchase{
		PurchaseID:    domain.PurchaseID(e.PurchaseID),
		InvoiceNumber: e.InvoiceNumber,
		SupplierName:  e.SupplierName,
		Amount:        e.Amount,
		Method:        domain.PaymentMethod(e.Method),
		PurchasedAt:   e.PurchasedAt,
		CreatedBy:     userID,
	}
}

// PostingResultResponse reports the outcome of a ledger posting attempt.
type PostingResultResponse struct {
	Status domain.ResultStatus `json:"status"`
	Reason string              `json:"reason,omitempty"`
	Entry  *EntryResponse      `json:"entry,omitempty"`
}

// ToPostingResultResponse converts a domain.PostingResult to its DTO.
func ToPostingResultResponse(r domain.PostingResult) PostingResultResponse {
	resp := PostingResultResponse{Status: r.Status, Reason: r.Reason}
	if r.Entry != nil {
		entry := ToEntryResponse(r.Entry)
		resp.Entry = &entry
	}
	return resp
}
