package dto

import "github.com/tresahq/cashbook_cli/internal/core/domain"

// --- Metadata DTOs (categories, payment modes, contacts) ---

// CreateCategoryRequest defines data for creating an entry category.
type CreateCategoryRequest struct {
	Name string              `json:"name" validate:"required"`
	Type domain.CategoryType `json:"type" validate:"required,oneof=INCOME EXPENSE BOTH"`
}

// CreatePaymentModeRequest defines data for creating a payment mode.
type CreatePaymentModeRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateContactRequest defines data for creating a contact.
type CreateContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}
