package dto

import "github.com/tresahq/cashbook_cli/internal/core/domain"

// --- Workspace DTOs ---

// CreateWorkspaceRequest defines data for creating a new workspace.
type CreateWorkspaceRequest struct {
	Name string               `json:"name" validate:"required"`
	Type domain.WorkspaceType `json:"type" validate:"required,oneof=PERSONAL BUSINESS"`
}

// UpdateWorkspaceRequest defines a PATCH-style partial workspace update.
// Nil fields are omitted from the wire payload and left untouched server-side.
type UpdateWorkspaceRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

// WorkspaceListData is the GET /workspaces payload: workspaces the user owns
// and workspaces the user joined as a member. The two lists can overlap and
// are de-duplicated by id client-side.
type WorkspaceListData struct {
	Owned  []domain.Workspace `json:"owned"`
	Member []domain.Workspace `json:"member"`
}

// Merged flattens owned+member, de-duplicating by id with owned entries
// taking precedence and first-seen order preserved.
func (d WorkspaceListData) Merged() []domain.Workspace {
	seen := make(map[string]bool, len(d.Owned)+len(d.Member))
	merged := make([]domain.Workspace, 0, len(d.Owned)+len(d.Member))
	for _, list := range [][]domain.Workspace{d.Owned, d.Member} {
		for _, w := range list {
			if seen[w.ID] {
				continue
			}
			seen[w.ID] = true
			merged = append(merged, w)
		}
	}
	return merged
}

// --- Workspace membership DTOs ---

// InviteMemberRequest defines data for inviting a user into a workspace.
// OWNER is not assignable; ownership moves via a dedicated transfer flow.
type InviteMemberRequest struct {
	Email string               `json:"email" validate:"required,email"`
	Role  domain.WorkspaceRole `json:"role" validate:"required,oneof=ADMIN MEMBER"`
}
