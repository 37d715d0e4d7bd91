package client

import (
	"context"
	"fmt"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

// ListWorkspaces fetches the caller's workspaces: owned and joined, as two
// lists the server categorizes (they may overlap).
func (c *Client) ListWorkspaces(ctx context.Context) (dto.WorkspaceListData, error) {
	var out dto.WorkspaceListData
	if err := c.get(ctx, "/workspaces", &out); err != nil {
		return dto.WorkspaceListData{}, err
	}
	return out, nil
}

// CreateWorkspace creates a workspace owned by the caller.
func (c *Client) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var out domain.Workspace
	if err := c.post(ctx, "/workspaces", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWorkspace applies a partial update to a workspace.
func (c *Client) UpdateWorkspace(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var out domain.Workspace
	if err := c.patch(ctx, "/workspaces/"+workspaceID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWorkspace deletes a workspace.
func (c *Client) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	return c.del(ctx, "/workspaces/"+workspaceID, nil, nil)
}

// ListMembers fetches a workspace's members.
func (c *Client) ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	var out []domain.Member
	if err := c.get(ctx, fmt.Sprintf("/workspaces/%s/members", workspaceID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InviteMember invites a user into a workspace by email.
func (c *Client) InviteMember(ctx context.Context, workspaceID string, req dto.InviteMemberRequest) (*domain.Invite, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	var out domain.Invite
	if err := c.post(ctx, fmt.Sprintf("/workspaces/%s/members", workspaceID), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
