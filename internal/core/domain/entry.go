package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the direction of a ledger entry.
type EntryType string

const (
	EntryIncome  EntryType = "INCOME"
	EntryExpense EntryType = "EXPENSE"
)

// Opposite flips INCOME to EXPENSE and vice versa.
func (t EntryType) Opposite() EntryType {
	if t == EntryIncome {
		return EntryExpense
	}
	return EntryIncome
}

// Valid reports whether t is one of the known entry types.
func (t EntryType) Valid() bool {
	return t == EntryIncome || t == EntryExpense
}

// NamedRef is a resolved lookup reference (category, payment mode, contact)
// embedded in an entry by the server.
type NamedRef struct {
	Name string `json:"name"`
}

// EntryAuthor identifies who recorded an entry.
type EntryAuthor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Entry is a single cash-in or cash-out row in a cashbook. Amount is a
// decimal string; it must never be stored as a binary float, only parsed
// transiently for arithmetic. Identity is immutable and scoped to the
// owning cashbook.
type Entry struct {
	ID          string      `json:"id"` // Primary Key (UUID); placeholder UUID while optimistic
	Type        EntryType   `json:"type"`
	Amount      string      `json:"amount"`
	Description string      `json:"description"`
	EntryDate   string      `json:"entryDate"`
	CreatedAt   time.Time   `json:"createdAt"`
	CreatedBy   EntryAuthor `json:"createdBy"`
	Category    *NamedRef   `json:"category,omitempty"`
	Contact     *NamedRef   `json:"contact,omitempty"`
	PaymentMode *NamedRef   `json:"paymentMode,omitempty"`
}

// AmountDecimal parses the entry amount into a decimal for transient
// arithmetic.
func (e Entry) AmountDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(e.Amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("entry %s has invalid amount %q: %w", e.ID, e.Amount, err)
	}
	return d, nil
}

// Signed returns the amount with its ledger sign: positive for income,
// negative for expense.
func (e Entry) Signed() (decimal.Decimal, error) {
	d, err := e.AmountDecimal()
	if err != nil {
		return decimal.Decimal{}, err
	}
	if e.Type == EntryExpense {
		return d.Neg(), nil
	}
	return d, nil
}
