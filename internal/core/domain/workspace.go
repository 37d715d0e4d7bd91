package domain

import "time"

// WorkspaceType distinguishes the single-user personal workspace from a
// multi-member business workspace.
type WorkspaceType string

const (
	WorkspacePersonal WorkspaceType = "PERSONAL"
	WorkspaceBusiness WorkspaceType = "BUSINESS"
)

// Workspace is an isolated environment owning cashbooks, members and metadata.
type Workspace struct {
	ID        string        `json:"id"` // Primary Key (UUID)
	Name      string        `json:"name"`
	Type      WorkspaceType `json:"type"`
	OwnerID   string        `json:"ownerId"`
	Owner     *User         `json:"owner,omitempty"`
	IsActive  bool          `json:"isActive"` // Server-owned flag; the client only displays it
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// WorkspaceRole is a user's role within a workspace. Exactly one member holds
// OWNER; that role is only transferable through a dedicated ownership-transfer
// flow, never through the generic role update.
type WorkspaceRole string

const (
	RoleOwner  WorkspaceRole = "OWNER"
	RoleAdmin  WorkspaceRole = "ADMIN"
	RoleMember WorkspaceRole = "MEMBER"
)

// Member represents a user's membership in a workspace.
type Member struct {
	UserID string        `json:"userId"`
	Role   WorkspaceRole `json:"role"`
	User   User          `json:"user"`
}

// InviteStatus tracks the lifecycle of a pending workspace invitation.
type InviteStatus string

const (
	InvitePending  InviteStatus = "PENDING"
	InviteAccepted InviteStatus = "ACCEPTED"
	InviteRejected InviteStatus = "REJECTED"
)

// Invite is a pending invitation to join a workspace.
type Invite struct {
	ID        string        `json:"id"`
	Email     string        `json:"email"`
	Role      WorkspaceRole `json:"role"`
	Status    InviteStatus  `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
