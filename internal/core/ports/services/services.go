// Package services declares the facades the view layer (CLI) consumes.
package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// WorkspaceSvcFacade bridges the workspace resource to the view layer.
type WorkspaceSvcFacade interface {
	// ListWorkspaces returns the caller's workspaces, owned and joined merged
	// and de-duplicated by id.
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)
	CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest) (*domain.Workspace, error)
	UpdateWorkspace(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, workspaceID string) error
}

// MemberSvcFacade bridges workspace membership to the view layer.
type MemberSvcFacade interface {
	// ListMembers returns a workspace's members; a missing workspace id
	// yields an empty list without a network call.
	ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error)
	InviteMember(ctx context.Context, workspaceID string, req dto.InviteMemberRequest) (*domain.Invite, error)
}

// CashbookSvcFacade bridges cashbooks and book-level membership to the view
// layer.
type CashbookSvcFacade interface {
	// ListCashbooks returns a workspace's cashbooks; a missing workspace id
	// yields an empty list without a network call.
	ListCashbooks(ctx context.Context, workspaceID string) ([]domain.Cashbook, error)
	GetCashbook(ctx context.Context, cashbookID string) (*domain.Cashbook, error)
	CreateCashbook(ctx context.Context, workspaceID string, req dto.CreateCashbookRequest) (*domain.Cashbook, error)
	UpdateCashbook(ctx context.Context, cashbookID string, req dto.UpdateCashbookRequest) (*domain.Cashbook, error)
	DeleteCashbook(ctx context.Context, cashbookID string) error
	ListCashbookMembers(ctx context.Context, cashbookID string) ([]domain.CashbookMember, error)
	// UpdateCashbookMemberRole rejects PRIMARY_ADMIN targets before any
	// network call; ownership moves only via a dedicated transfer flow.
	UpdateCashbookMemberRole(ctx context.Context, cashbookID, userID string, role domain.CashbookRole) (*domain.CashbookMember, error)
	RemoveCashbookMember(ctx context.Context, cashbookID, userID string) error
}

// EntrySvcFacade bridges ledger entries to the view layer, including the
// optimistic create path.
type EntrySvcFacade interface {
	// ListEntries returns a cashbook's entries; a missing cashbook id yields
	// an empty list without a network call.
	ListEntries(ctx context.Context, cashbookID string) ([]domain.Entry, error)
	// CreateEntry inserts an optimistic placeholder into the cached list,
	// rolls back to the pre-mutation snapshot on failure, and invalidates
	// the cache on success.
	CreateEntry(ctx context.Context, cashbookID string, req dto.CreateEntryRequest) (*domain.Entry, error)
	// DeleteEntry requires a non-empty reason, forwarded to the server.
	DeleteEntry(ctx context.Context, entryID, cashbookID, reason string) error
}

// MetadataSvcFacade bridges categories, payment modes and contacts to the
// view layer.
type MetadataSvcFacade interface {
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

// LocalBookSvcFacade is the offline fallback store: books and entries kept in
// a local database, including the transfer operations that have no
// server-backed equivalent.
type LocalBookSvcFacade interface {
	ListBooks(ctx context.Context) ([]domain.LocalBook, error)
	CreateBook(ctx context.Context, name string) (*domain.LocalBook, error)
	RenameBook(ctx context.Context, bookID, name string) error
	DeleteBook(ctx context.Context, bookID string) error
	// DuplicateBook copies a book and its entries under fresh ids.
	DuplicateBook(ctx context.Context, bookID string) (*domain.LocalBook, error)
	ListEntries(ctx context.Context, bookID string) ([]domain.LocalEntry, error)
	AddEntry(ctx context.Context, bookID string, entry domain.LocalEntry) (*domain.LocalEntry, error)
	DeleteEntry(ctx context.Context, bookID, entryID string) error
	// MoveEntry removes the entry from the source book and inserts a copy
	// with a fresh id into the destination.
	MoveEntry(ctx context.Context, fromBookID, toBookID, entryID string) (*domain.LocalEntry, error)
	// CopyEntry inserts a copy with a fresh id into the destination; the
	// source is untouched.
	CopyEntry(ctx context.Context, fromBookID, toBookID, entryID string) (*domain.LocalEntry, error)
	// CopyOppositeEntry is CopyEntry with the entry type flipped.
	CopyOppositeEntry(ctx context.Context, fromBookID, toBookID, entryID string) (*domain.LocalEntry, error)
	// BookBalance folds a book's entries into its net balance.
	BookBalance(ctx context.Context, bookID string) (decimal.Decimal, error)
}
