package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

func init() {
	rootCmd.AddCommand(workspaceCmd)
	workspaceCmd.AddCommand(workspaceListCmd)
	workspaceCmd.AddCommand(workspaceCreateCmd)
	workspaceCmd.AddCommand(workspaceRenameCmd)
	workspaceCmd.AddCommand(workspaceDeleteCmd)
	workspaceCmd.AddCommand(workspaceUseCmd)
	workspaceCmd.AddCommand(memberCmd)
	memberCmd.AddCommand(memberListCmd)
	memberCmd.AddCommand(memberInviteCmd)

	workspaceCreateCmd.Flags().StringP("type", "t", string(domain.WorkspaceBusiness), "Workspace type (PERSONAL or BUSINESS)")

	memberListCmd.Flags().StringP("workspace", "w", "", "Workspace id (defaults to the active workspace)")
	memberInviteCmd.Flags().StringP("workspace", "w", "", "Workspace id (defaults to the active workspace)")
	memberInviteCmd.Flags().StringP("email", "e", "", "Email of the user to invite")
	memberInviteCmd.Flags().StringP("role", "r", string(domain.RoleMember), "Role to grant (ADMIN or MEMBER)")
}

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"ws"},
	Short:   "Manage workspaces",
}

var workspaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces you own or joined",
	RunE:  runWorkspaceList,
}

func runWorkspaceList(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	workspaces, err := current.services.Workspace.ListWorkspaces(cmd.Context())
	if err != nil {
		return err
	}

	active := current.session.ActiveWorkspace()
	rows := make([][]string, 0, len(workspaces))
	for _, w := range workspaces {
		marker := ""
		if w.ID == active {
			marker = "*"
		}
		rows = append(rows, []string{marker, w.ID, w.Name, string(w.Type)})
	}
	table([]string{"", "ID", "NAME", "TYPE"}, rows)
	return nil
}

var workspaceCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceCreate,
}

func runWorkspaceCreate(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	wsType, _ := cmd.Flags().GetString("type")

	workspace, err := current.services.Workspace.CreateWorkspace(cmd.Context(), dto.CreateWorkspaceRequest{
		Name: args[0],
		Type: domain.WorkspaceType(wsType),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Workspace %q created (%s)\n", workspace.Name, workspace.ID)
	return nil
}

var workspaceRenameCmd = &cobra.Command{
	Use:   "rename WORKSPACE_ID NEW_NAME",
	Short: "Rename a workspace",
	Args:  cobra.ExactArgs(2),
	RunE:  runWorkspaceRename,
}

func runWorkspaceRename(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	name := args[1]
	workspace, err := current.services.Workspace.UpdateWorkspace(cmd.Context(), args[0], dto.UpdateWorkspaceRequest{
		Name: &name,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Workspace renamed to %q\n", workspace.Name)
	return nil
}

var workspaceDeleteCmd = &cobra.Command{
	Use:   "delete WORKSPACE_ID",
	Short: "Delete a workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceDelete,
}

func runWorkspaceDelete(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	if err := current.services.Workspace.DeleteWorkspace(cmd.Context(), args[0]); err != nil {
		return err
	}
	if current.session.ActiveWorkspace() == args[0] {
		if err := current.session.SetActiveWorkspace(""); err != nil {
			return err
		}
	}
	fmt.Fprintln(os.Stdout, "Workspace deleted.")
	return nil
}

var workspaceUseCmd = &cobra.Command{
	Use:   "use WORKSPACE_ID",
	Short: "Select the active workspace for subsequent commands",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkspaceUse,
}

func runWorkspaceUse(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	// Resolve against the merged list so a typo'd id fails here, not on the
	// next entry command.
	workspaces, err := current.services.Workspace.ListWorkspaces(cmd.Context())
	if err != nil {
		return err
	}
	for _, w := range workspaces {
		if w.ID == args[0] {
			if err := current.session.SetActiveWorkspace(w.ID); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Active workspace: %s (%s)\n", w.Name, w.ID)
			return nil
		}
	}
	return fmt.Errorf("workspace %s not found in your workspaces", args[0])
}

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage workspace members",
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List members of a workspace",
	RunE:  runMemberList,
}

func runMemberList(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	flagWS, _ := cmd.Flags().GetString("workspace")
	workspaceID, err := current.resolveWorkspace(flagWS)
	if err != nil {
		return err
	}

	members, err := current.services.Member.ListMembers(cmd.Context(), workspaceID)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{m.UserID, m.User.FullName(), m.User.Email, string(m.Role)})
	}
	table([]string{"USER ID", "NAME", "EMAIL", "ROLE"}, rows)
	return nil
}

var memberInviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Invite a user into a workspace",
	RunE:  runMemberInvite,
}

func runMemberInvite(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	flagWS, _ := cmd.Flags().GetString("workspace")
	workspaceID, err := current.resolveWorkspace(flagWS)
	if err != nil {
		return err
	}
	email, _ := cmd.Flags().GetString("email")
	role, _ := cmd.Flags().GetString("role")

	invite, err := current.services.Member.InviteMember(cmd.Context(), workspaceID, dto.InviteMemberRequest{
		Email: email,
		Role:  domain.WorkspaceRole(role),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Invited %s as %s (%s)\n", invite.Email, invite.Role, invite.Status)
	return nil
}
