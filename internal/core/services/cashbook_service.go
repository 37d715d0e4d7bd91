package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tresahq/cashbook_cli/internal/apperrors"
	"github.com/tresahq/cashbook_cli/internal/cache"
	"github.com/tresahq/cashbook_cli/internal/core/domain"
	portsapi "github.com/tresahq/cashbook_cli/internal/core/ports/api"
	portssvc "github.com/tresahq/cashbook_cli/internal/core/ports/services"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

const (
	cashbooksResource       = "cashbooks"
	cashbookResource        = "cashbook"
	cashbookMembersResource = "cashbook-members"
)

// cashbookService implements the CashbookSvcFacade interface.
type cashbookService struct {
	BaseService
	api   portsapi.CashbookAPI
	cache *cache.Cache
}

// NewCashbookService creates a new cashbook service with the provided dependencies.
func NewCashbookService(api portsapi.CashbookAPI, c *cache.Cache) portssvc.CashbookSvcFacade {
	return &cashbookService{api: api, cache: c}
}

// Ensure cashbookService implements the CashbookSvcFacade interface
var _ portssvc.CashbookSvcFacade = (*cashbookService)(nil)

// ListCashbooks retrieves a workspace's cashbooks. A missing workspace id
// (including the literal strings "undefined"/"null") disables the query:
// no network call, empty list, no error.
func (s *cashbookService) ListCashbooks(ctx context.Context, workspaceID string) ([]domain.Cashbook, error) {
	if missingParentID(workspaceID) {
		s.LogDebug(ctx, "Cashbook list disabled: no usable workspace id")
		return []domain.Cashbook{}, nil
	}
	key := cache.ListKey(cashbooksResource, workspaceID)
	if cached, ok := cache.GetList[domain.Cashbook](s.cache, key); ok {
		return cached, nil
	}

	cashbooks, err := s.api.ListCashbooks(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cashbooks",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if cashbooks == nil {
		cashbooks = []domain.Cashbook{}
	}
	cache.SetList(s.cache, key, cashbooks)
	return cashbooks, nil
}

// GetCashbook retrieves one cashbook with its server-maintained totals.
func (s *cashbookService) GetCashbook(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	key := cache.EntityKey(cashbookResource, cashbookID)
	if cached, ok := cache.GetEntity[domain.Cashbook](s.cache, key); ok {
		return &cached, nil
	}

	cashbook, err := s.api.GetCashbook(ctx, cashbookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find cashbook",
			slog.String("cashbook_id", cashbookID))
		return nil, err
	}
	cache.SetEntity(s.cache, key, *cashbook)
	return cashbook, nil
}

// CreateCashbook creates a cashbook and invalidates the workspace's list.
func (s *cashbookService) CreateCashbook(ctx context.Context, workspaceID string, req dto.CreateCashbookRequest) (*domain.Cashbook, error) {
	if missingParentID(workspaceID) {
		return nil, fmt.Errorf("cannot create cashbook: %w", apperrors.ErrMissingParent)
	}
	cashbook, err := s.api.CreateCashbook(ctx, workspaceID, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to create cashbook",
			slog.String("workspace_id", workspaceID),
			slog.String("name", req.Name))
		return nil, err
	}
	s.cache.Invalidate(cache.ListKey(cashbooksResource, workspaceID))

	s.LogDebug(ctx, "Cashbook created successfully",
		slog.String("cashbook_id", cashbook.ID))
	return cashbook, nil
}

// UpdateCashbook applies a partial update and invalidates both the entity and
// every cached cashbook list (the owning workspace is not always known at the
// call site).
func (s *cashbookService) UpdateCashbook(ctx context.Context, cashbookID string, req dto.UpdateCashbookRequest) (*domain.Cashbook, error) {
	cashbook, err := s.api.UpdateCashbook(ctx, cashbookID, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to update cashbook",
			slog.String("cashbook_id", cashbookID))
		return nil, err
	}
	s.cache.Invalidate(cache.EntityKey(cashbookResource, cashbookID))
	s.cache.InvalidateResource(cashbooksResource)
	return cashbook, nil
}

// DeleteCashbook deletes a cashbook and drops everything cached under it.
func (s *cashbookService) DeleteCashbook(ctx context.Context, cashbookID string) error {
	if err := s.api.DeleteCashbook(ctx, cashbookID); err != nil {
		s.LogError(ctx, err, "Failed to delete cashbook",
			slog.String("cashbook_id", cashbookID))
		return err
	}
	s.cache.Invalidate(
		cache.EntityKey(cashbookResource, cashbookID),
		cache.ListKey(cashbookMembersResource, cashbookID),
		cache.ListKey(entriesResource, cashbookID),
	)
	s.cache.InvalidateResource(cashbooksResource)
	return nil
}

// ListCashbookMembers retrieves a cashbook's members. A missing cashbook id
// disables the query.
func (s *cashbookService) ListCashbookMembers(ctx context.Context, cashbookID string) ([]domain.CashbookMember, error) {
	if missingParentID(cashbookID) {
		return []domain.CashbookMember{}, nil
	}
	key := cache.ListKey(cashbookMembersResource, cashbookID)
	if cached, ok := cache.GetList[domain.CashbookMember](s.cache, key); ok {
		return cached, nil
	}

	members, err := s.api.ListCashbookMembers(ctx, cashbookID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cashbook members",
			slog.String("cashbook_id", cashbookID))
		return nil, err
	}
	if members == nil {
		members = []domain.CashbookMember{}
	}
	cache.SetList(s.cache, key, members)
	return members, nil
}

// UpdateCashbookMemberRole changes a member's book-level role. The
// PRIMARY_ADMIN role is immutable through this path: the check runs here,
// before any network call, in case a view exposes the control anyway.
func (s *cashbookService) UpdateCashbookMemberRole(ctx context.Context, cashbookID, userID string, role domain.CashbookRole) (*domain.CashbookMember, error) {
	if role.Immutable() {
		return nil, fmt.Errorf("%s is not assignable: %w", role, apperrors.ErrForbidden)
	}

	members, err := s.ListCashbookMembers(ctx, cashbookID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.UserID == userID && m.Role.Immutable() {
			s.LogDebug(ctx, "Rejected role change for protected member",
				slog.String("cashbook_id", cashbookID),
				slog.String("user_id", userID))
			return nil, fmt.Errorf("role of %s cannot be changed here, use ownership transfer: %w", m.Role, apperrors.ErrForbidden)
		}
	}

	member, err := s.api.UpdateCashbookMember(ctx, cashbookID, userID, dto.UpdateCashbookMemberRequest{Role: role})
	if err != nil {
		s.LogError(ctx, err, "Failed to update cashbook member role",
			slog.String("cashbook_id", cashbookID),
			slog.String("user_id", userID))
		return nil, err
	}
	s.cache.Invalidate(cache.ListKey(cashbookMembersResource, cashbookID))
	return member, nil
}

// RemoveCashbookMember removes a member from a cashbook.
func (s *cashbookService) RemoveCashbookMember(ctx context.Context, cashbookID, userID string) error {
	if err := s.api.RemoveCashbookMember(ctx, cashbookID, userID); err != nil {
		s.LogError(ctx, err, "Failed to remove cashbook member",
			slog.String("cashbook_id", cashbookID),
			slog.String("user_id", userID))
		return err
	}
	s.cache.Invalidate(cache.ListKey(cashbookMembersResource, cashbookID))
	return nil
}
