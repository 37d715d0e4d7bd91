package services

import (
	"context"
	"log/slog"

	"github.com/tresahq/cashbook_cli/internal/cache"
	"github.com/tresahq/cashbook_cli/internal/core/domain"
	portsapi "github.com/tresahq/cashbook_cli/internal/core/ports/api"
	portssvc "github.com/tresahq/cashbook_cli/internal/core/ports/services"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

const workspacesResource = "workspaces"

// workspaceListKey is the single cache key for the merged workspace list
// (the collection has no parent).
var workspaceListKey = cache.ListKey(workspacesResource, "all")

// workspaceService implements the WorkspaceSvcFacade interface.
type workspaceService struct {
	BaseService
	api   portsapi.WorkspaceAPI
	cache *cache.Cache
}

// NewWorkspaceService creates a new workspace service with the provided dependencies.
func NewWorkspaceService(api portsapi.WorkspaceAPI, c *cache.Cache) portssvc.WorkspaceSvcFacade {
	return &workspaceService{api: api, cache: c}
}

// Ensure workspaceService implements the WorkspaceSvcFacade interface
var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

// ListWorkspaces retrieves the caller's workspaces. The server categorizes
// them as owned and joined; the two lists are merged and de-duplicated by id,
// owned first.
func (s *workspaceService) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	if cached, ok := cache.GetList[domain.Workspace](s.cache, workspaceListKey); ok {
		return cached, nil
	}

	data, err := s.api.ListWorkspaces(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces")
		return nil, err
	}
	merged := data.Merged()
	cache.SetList(s.cache, workspaceListKey, merged)

	s.LogDebug(ctx, "Workspaces listed successfully",
		slog.Int("count", len(merged)))
	return merged, nil
}

// CreateWorkspace creates a new workspace and invalidates the cached list.
func (s *workspaceService) CreateWorkspace(ctx context.Context, req dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	workspace, err := s.api.CreateWorkspace(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to create workspace",
			slog.String("name", req.Name))
		return nil, err
	}
	s.cache.Invalidate(workspaceListKey)

	s.LogDebug(ctx, "Workspace created successfully",
		slog.String("workspace_id", workspace.ID))
	return workspace, nil
}

// UpdateWorkspace applies a partial update and invalidates the cached list.
func (s *workspaceService) UpdateWorkspace(ctx context.Context, workspaceID string, req dto.UpdateWorkspaceRequest) (*domain.Workspace, error) {
	workspace, err := s.api.UpdateWorkspace(ctx, workspaceID, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to update workspace",
			slog.String("workspace_id", workspaceID))
		return nil, err
	}
	s.cache.Invalidate(workspaceListKey, cache.EntityKey(workspacesResource, workspaceID))
	return workspace, nil
}

// DeleteWorkspace deletes a workspace and invalidates the cached list.
func (s *workspaceService) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	if err := s.api.DeleteWorkspace(ctx, workspaceID); err != nil {
		s.LogError(ctx, err, "Failed to delete workspace",
			slog.String("workspace_id", workspaceID))
		return err
	}
	s.cache.Invalidate(workspaceListKey, cache.EntityKey(workspacesResource, workspaceID))
	return nil
}
