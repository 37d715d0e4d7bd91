package domain

import "time"

// Cashbook is a ledger of cash-in/cash-out entries owned by one workspace.
// Balance, TotalIncome and TotalExpense are decimal strings maintained
// server-side (balance = totalIncome - totalExpense); the client never
// recomputes them authoritatively, only for optimistic display.
type Cashbook struct {
	ID            string         `json:"id"` // Primary Key (UUID)
	WorkspaceID   string         `json:"workspaceId"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Currency      string         `json:"currency"`
	Balance       string         `json:"balance"`
	TotalIncome   string         `json:"totalIncome"`
	TotalExpense  string         `json:"totalExpense"`
	AllowBackdate bool           `json:"allowBackdate"`
	IsActive      bool           `json:"isActive"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Counts        *CashbookCount `json:"_count,omitempty"`
}

// CashbookCount carries the relation counts some list endpoints include.
type CashbookCount struct {
	Members int `json:"members"`
	Entries int `json:"entries"`
}

// CashbookRole is a user's role within a single cashbook, independent of the
// workspace-level role hierarchy. Exactly one member holds PRIMARY_ADMIN.
type CashbookRole string

const (
	RolePrimaryAdmin CashbookRole = "PRIMARY_ADMIN"
	RoleBookAdmin    CashbookRole = "ADMIN"
	RoleBookManager  CashbookRole = "BOOK_ADMIN"
	RoleDataOperator CashbookRole = "DATA_OPERATOR"
	RoleViewer       CashbookRole = "VIEWER"
)

// CashbookMember represents a user's membership in a cashbook.
type CashbookMember struct {
	UserID string       `json:"userId"`
	Role   CashbookRole `json:"role"`
	User   User         `json:"user"`
}
