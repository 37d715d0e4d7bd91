package dto

import "github.com/tresahq/cashbook_cli/internal/core/domain"

// --- Cashbook DTOs ---

// CreateCashbookRequest defines data for creating a cashbook in a workspace.
type CreateCashbookRequest struct {
	Name     string `json:"name" validate:"required"`
	Currency string `json:"currency,omitempty" validate:"omitempty,iso4217"`
}

// UpdateCashbookRequest defines a PATCH-style partial cashbook update.
type UpdateCashbookRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description   *string `json:"description,omitempty"`
	AllowBackdate *bool   `json:"allowBackdate,omitempty"`
}

// UpdateCashbookMemberRequest changes a member's role within a cashbook.
// PRIMARY_ADMIN is not assignable through this path.
type UpdateCashbookMemberRequest struct {
	Role domain.CashbookRole `json:"role" validate:"required,oneof=ADMIN BOOK_ADMIN DATA_OPERATOR VIEWER"`
}
