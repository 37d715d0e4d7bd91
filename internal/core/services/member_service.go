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

const membersResource = "members"

// memberService implements the MemberSvcFacade interface for workspace-level
// membership.
type memberService struct {
	BaseService
	api   portsapi.MemberAPI
	cache *cache.Cache
}

// NewMemberService creates a new member service with the provided dependencies.
func NewMemberService(api portsapi.MemberAPI, c *cache.Cache) portssvc.MemberSvcFacade {
	return &memberService{api: api, cache: c}
}

// Ensure memberService implements the MemberSvcFacade interface
var _ portssvc.MemberSvcFacade = (*memberService)(nil)

// ListMembers retrieves a workspace's members. A missing workspace id
// (including the literal strings "undefined"/"null") disables the query.
func (s *memberService) ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	if missingParentID(workspaceID) {
		s.LogDebug(ctx, "Member list disabled: no usable workspace id")
		return []domain.Member{}, nil
	}
	key := cache.ListKey(membersResource, workspaceID)
	if cached, ok := cache.GetList[domain.Member](s.cache, key); ok {
		return cached, nil
	}

	members, err := s.api.ListMembers(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	if members == nil {
		members = []domain.Member{}
	}
	cache.SetList(s.cache, key, members)
	return members, nil
}

// InviteMember invites a user into the workspace and invalidates the member
// list so the next read reflects the server state. Invitation failures
// surface to the caller; there is no automatic retry.
func (s *memberService) InviteMember(ctx context.Context, workspaceID string, req dto.InviteMemberRequest) (*domain.Invite, error) {
	if missingParentID(workspaceID) {
		return nil, fmt.Errorf("cannot invite member: %w", apperrors.ErrMissingParent)
	}
	invite, err := s.api.InviteMember(ctx, workspaceID, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to invite member",
			slog.String("workspace_id", workspaceID),
			slog.String("email", req.Email))
		return nil, err
	}
	s.cache.Invalidate(cache.ListKey(membersResource, workspaceID))

	s.LogDebug(ctx, "Member invited successfully",
		slog.String("workspace_id", workspaceID))
	return invite, nil
}
