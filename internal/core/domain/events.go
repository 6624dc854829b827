package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how money moved for a payment, salary or purchase.
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheck        PaymentMethod = "check"
	PaymentCreditCard   PaymentMethod = "credit_card"
)

// ContractPayment is a payment collected on a rental contract.
type ContractPayment struct {
	PaymentID      PaymentID
	ContractID     ContractID
	ContractNumber string
	CustomerName   string
	Amount         decimal.Decimal
	Method         PaymentMethod
	PaidAt         time.Time
	CreatedBy      string
}

// Contract is a signed rental contract.
type Contract struct {
	ContractID     ContractID
	ContractNumber string
	CustomerName   string
	TotalAmount    decimal.Decimal
	SignedAt       time.Time
	CreatedBy      string
}

// SalaryPayment is a salary paid to an employee.
type SalaryPayment struct {
	SalaryID     SalaryID
	EmployeeName string
	Period       string // e.g. "2026-09"
	TotalSalary  decimal.Decimal
	Method       PaymentMethod
	PaidAt       time.Time
	CreatedBy    string
}

// Purchase is a supplier invoice recorded by purchasing.
type Purchase struct {
	PurchaseID    PurchaseID
	InvoiceNumber string
	SupplierName  string
	Amount        decimal.Decimal
	Method        PaymentMethod
	PurchasedAt   time.Time
	CreatedBy     string
}
