package domain

import (
	"fmt"
	"strconv"
)

// ReferenceType tags the kind of business event a journal entry originates from.
type ReferenceType string

const (
	ContractReferenceType        ReferenceType = "contract"
	ContractPaymentReferenceType ReferenceType = "contract_payment"
	SalaryReferenceType          ReferenceType = "salary"
	PurchaseReferenceType        ReferenceType = "purchase"
)

// IsValid reports whether t is a known originating event kind.
func (t ReferenceType) IsValid() bool {
	switch t {
	case ContractReferenceType, ContractPaymentReferenceType, SalaryReferenceType, PurchaseReferenceType:
		return true
	}
	return false
}

type (
	ContractID int64
	PaymentID  int64
	SalaryID   int64
	PurchaseID int64
)

// Reference points from a journal entry back to the business record that caused it.
// Build it through the typed constructors so ids of different kinds cannot be mixed up.
type Reference struct {
	Type ReferenceType `json:"referenceType"`
	ID   int64         `json:"referenceID"`
}

func ContractReference(id ContractID) Reference {
	return Reference{Type: ContractReferenceType, ID: int64(id)}
}

func ContractPaymentReference(id PaymentID) Reference {
	return Reference{Type: ContractPaymentReferenceType, ID: int64(id)}
}

func SalaryReference(id SalaryID) Reference {
	return Reference{Type: SalaryReferenceType, ID: int64(id)}
}

func PurchaseReference(id PurchaseID) Reference {
	return Reference{Type: PurchaseReferenceType, ID: int64(id)}
}

// ParseReference builds a Reference from untyped input such as a URL path.
func ParseReference(referenceType string, rawID string) (Reference, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return Reference{}, fmt.Errorf("invalid reference id %q: %w", rawID, err)
	}
	ref := Reference{Type: ReferenceType(referenceType), ID: id}
	if err := ref.Validate(); err != nil {
		return Reference{}, err
	}
	return ref, nil
}

// Validate checks that the reference names a known event kind and a positive id.
func (r Reference) Validate() error {
	if !r.Type.IsValid() {
		return fmt.Errorf("unknown reference type %q", r.Type)
	}
	if r.ID <= 0 {
		return fmt.Errorf("reference id must be positive, got %d", r.ID)
	}
	return nil
}

func (r Reference) String() string {
	return fmt.Sprintf("%s#%d", r.Type, r.ID)
}
