// Package api declares the REST-client surface the core services consume.
// The concrete implementation lives in internal/client; tests substitute
// mocks.
package api

import (
	"context"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// WorkspaceAPI covers the workspace resource family.
type WorkspaceAPI interface {
	// ListWorkspaces retrieves the caller's owned and joined workspaces as
	// the server categorizes them; the lists may overlap by id.
	ListWorkspaces(ctx context.Context) (dto.WorkspaceListData, error)
	CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest) (*domain.Workspace, error)
	UpdateWorkspace(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

// MemberAPI covers workspace-level membership.
type MemberAPI interface {
	ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error)
	InviteMember(ctx context.Context, workspaceID string, req dto.InviteMemberRequest) (*domain.Invite, error)
}

// CashbookAPI covers cashbooks and their book-level membership.
type CashbookAPI interface {
	ListCashbooks(ctx context.Context, workspaceID string) ([]domain.Cashbook, error)
	GetCashbook(ctx context.Context, cashbookID string) (*domain.Cashbook, error)
	CreateCashbook(ctx context.Context, workspaceID string, req dto.CreateCashbookRequest) (*domain.Cashbook, error)
	UpdateCashbook(ctx context.Context, cashbookID string, req dto.UpdateCashbookRequest) (*domain.Cashbook, error)
	DeleteCashbook(ctx context.Context, cashbookID string) error
	ListCashbookMembers(ctx context.Context, cashbookID string) ([]domain.CashbookMember, error)
	UpdateCashbookMember(ctx context.Context, cashbookID, userID string, req dto.UpdateCashbookMemberRequest) (*domain.CashbookMember, error)
	RemoveCashbookMember(ctx context.Context, cashbookID, userID string) error
}

// EntryAPI covers ledger entries.
type EntryAPI interface {
	ListEntries(ctx context.Context, cashbookID string) ([]domain.Entry, error)
	CreateEntry(ctx context.Context, cashbookID string, req dto.CreateEntryRequest) (*domain.Entry, error)
	// DeleteEntry forwards the mandatory reason with the deletion.
	DeleteEntry(ctx context.Context, entryID, cashbookID string, req dto.DeleteEntryRequest) error
}

// MetadataAPI covers workspace-scoped lookup entities.
type MetadataAPI interface {
	ListCategories(ctx context.Context, workspaceID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, workspaceID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, workspaceID, categoryID string) error
	ListPaymentModes(ctx context.Context, workspaceID string) ([]domain.PaymentMode, error)
	CreatePaymentMode(ctx context.Context, workspaceID string, req dto.CreatePaymentModeRequest) (*domain.PaymentMode, error)
	DeletePaymentMode(ctx context.Context, workspaceID, modeID string) error
	ListContacts(ctx context.Context, workspaceID string) ([]domain.Contact, error)
	CreateContact(ctx context.Context, workspaceID string, req dto.CreateContactRequest) (*domain.Contact, error)
	DeleteContact(ctx context.Context, workspaceID, contactID string) error
}
