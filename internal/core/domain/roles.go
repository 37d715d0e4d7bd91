package domain

// Capability is a discrete permission consulted by the views and services.
// Role checks go through the tables below instead of comparing role strings
// at each call site.
type Capability string

const (
	CapManageWorkspace Capability = "manage_workspace" // rename/delete workspace, workspace settings
	CapManageMembers   Capability = "manage_members"   // invite, change roles, remove members
	CapManageBooks     Capability = "manage_books"     // create/rename/delete cashbooks
	CapWriteEntries    Capability = "write_entries"    // add entries
	CapDeleteEntries   Capability = "delete_entries"   // delete entries (with reason)
	CapViewEntries     Capability = "view_entries"     // read-only access
)

var workspaceCapabilities = map[WorkspaceRole]map[Capability]bool{
	RoleOwner: {
		CapManageWorkspace: true,
		CapManageMembers:   true,
		CapManageBooks:     true,
		CapWriteEntries:    true,
		CapDeleteEntries:   true,
		CapViewEntries:     true,
	},
	RoleAdmin: {
		CapManageMembers: true,
		CapManageBooks:   true,
		CapWriteEntries:  true,
		CapDeleteEntries: true,
		CapViewEntries:   true,
	},
	RoleMember: {
		CapWriteEntries: true,
		CapViewEntries:  true,
	},
}

var cashbookCapabilities = map[CashbookRole]map[Capability]bool{
	RolePrimaryAdmin: {
		CapManageMembers: true,
		CapManageBooks:   true,
		CapWriteEntries:  true,
		CapDeleteEntries: true,
		CapViewEntries:   true,
	},
	RoleBookAdmin: {
		CapManageMembers: true,
		CapManageBooks:   true,
		CapWriteEntries:  true,
		CapDeleteEntries: true,
		CapViewEntries:   true,
	},
	RoleBookManager: {
		CapManageBooks:  true,
		CapWriteEntries: true,
		CapViewEntries:  true,
	},
	RoleDataOperator: {
		CapWriteEntries: true,
		CapViewEntries:  true,
	},
	RoleViewer: {
		CapViewEntries: true,
	},
}

// Can reports whether the workspace role grants the capability. Unknown roles
// grant nothing.
func (r WorkspaceRole) Can(c Capability) bool {
	return workspaceCapabilities[r][c]
}

// Can reports whether the cashbook role grants the capability.
func (r CashbookRole) Can(c Capability) bool {
	return cashbookCapabilities[r][c]
}

// Immutable reports whether the role may not be changed through the generic
// role-update path. Ownership moves only via a dedicated transfer operation.
func (r WorkspaceRole) Immutable() bool {
	return r == RoleOwner
}

// Immutable reports whether the cashbook role is protected from the generic
// role-update path.
func (r CashbookRole) Immutable() bool {
	return r == RolePrimaryAdmin
}
