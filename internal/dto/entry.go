package dto

import "github.com/tresahq/cashbook_cli/internal/core/domain"

// --- Entry DTOs ---

// CreateEntryRequest defines data for recording a new ledger entry. Amount is
// a decimal string and kept as one end to end.
type CreateEntryRequest struct {
	Type          domain.EntryType `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Amount        string           `json:"amount" validate:"required,numeric"`
	Description   string           `json:"description"`
	EntryDate     string           `json:"entryDate" validate:"required"`
	CategoryID    string           `json:"categoryId,omitempty"`
	PaymentModeID string           `json:"paymentModeId,omitempty"`
	ContactID     string           `json:"contactId,omitempty"`
}

// DeleteEntryRequest carries the mandatory reason forwarded with an entry
// deletion.
type DeleteEntryRequest struct {
	Reason string `json:"reason" validate:"required"`
}
