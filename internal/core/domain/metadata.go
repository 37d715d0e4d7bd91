package domain

// CategoryType restricts which entry types a category may be attached to.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
	CategoryBoth    CategoryType = "BOTH"
)

// Category is a workspace-scoped entry classification.
type Category struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type CategoryType `json:"type"`
}

// PaymentMode is a workspace-scoped payment method (cash, bank, ...).
type PaymentMode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Contact is a workspace-scoped counterparty referenced from entries.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}
