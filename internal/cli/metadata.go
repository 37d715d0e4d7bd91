package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)

	rootCmd.AddCommand(paymentModeCmd)
	paymentModeCmd.AddCommand(paymentModeListCmd)
	paymentModeCmd.AddCommand(paymentModeAddCmd)
	paymentModeCmd.AddCommand(paymentModeDeleteCmd)

	rootCmd.AddCommand(contactCmd)
	contactCmd.AddCommand(contactListCmd)
	contactCmd.AddCommand(contactAddCmd)
	contactCmd.AddCommand(contactDeleteCmd)

	for _, c := range []*cobra.Command{
		categoryListCmd, categoryAddCmd, categoryDeleteCmd,
		paymentModeListCmd, paymentModeAddCmd, paymentModeDeleteCmd,
		contactListCmd, contactAddCmd, contactDeleteCmd,
	} {
		c.Flags().StringP("workspace", "w", "", "Workspace id (defaults to the active workspace)")
	}

	categoryAddCmd.Flags().StringP("type", "t", string(domain.CategoryBoth), "Category type (INCOME, EXPENSE or BOTH)")
	contactAddCmd.Flags().String("phone", "", "Phone number")
	contactAddCmd.Flags().String("email", "", "Email address")
}

// workspaceScope resolves the --workspace flag for metadata commands.
func workspaceScope(cmd *cobra.Command) (string, error) {
	if err := current.requireAuth(); err != nil {
		return "", err
	}
	flagWS, _ := cmd.Flags().GetString("workspace")
	return current.resolveWorkspace(flagWS)
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage entry categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories in a workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := workspaceScope(cmd)
		if err != nil {
			return err
		}
		categories, err := current.services.Metadata.ListCategories(cmd.Context(), workspaceID)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(categories))
		for _, c := range categories {
			rows = append(rows, []string{c.ID, c.Name, string(c.Type)})
		}
		table([]string{"ID", "NAME", "TYPE"}, rows)
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := workspaceScope(cmd)
		if err != nil {
			return err
		}
		catType, _ := cmd.Flags().GetString("type")
		category, err := current.services.Metadata.CreateCategory(cmd.Context(), workspaceID, dto.CreateCategoryRequest{
			Name: args[0],
			Type: domain.CategoryType(catType),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Category %q created (%s)\n", category.Name, category.ID)
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete CATEGORY_ID",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := workspaceScope(cmd)
		if err != nil {
			return err
		}
		if err := current.services.Metadata.DeleteCategory(cmd.Context(), workspaceID, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Category deleted.")
		return nil
	},
}

var paymentModeCmd = &cobra.Command{
	Use:   "payment-mode",
	Short: "Manage payment modes",
}

var paymentModeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payment modes in a workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := workspaceScope(cmd)
		if err != nil {
			return err
		}
		modes, err := current.services.Metadata.ListPaymentModes(cmd.Context(), workspaceID)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(modes))
		for _, m := range modes {
			rows = append(rows, []string{m.ID, m.Name})
		}
		table([]string{"ID", "NAME"}, rows)
		return nil
	},
}

var paymentModeAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a payment mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := workspaceScope(cmd)
		if err != nil {
			return err
		}
		mode, err := current.services.Metadata.CreatePaymentMode(cmd.Context(), workspaceID, dto.CreatePaymentModeRequest{
			Name: args[0],
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Payment mode %q created (%s)\n", mode.Name, mode.ID)
		return nil
	},
}

var paymentModeDeleteCmd = &cobra.Command{
	Use:   "delete PAYMENT_MODE_ID",
	Short: "Delete a payment mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := workspaceScope(cmd)
		if err != nil {
			return err
		}
		if err := current.services.Metadata.DeletePaymentMode(cmd.Context(), workspaceID, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Payment mode deleted.")
		return nil
	},
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Manage contacts",
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts in a workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := workspaceScope(cmd)
		if err != nil {
			return err
		}
		contacts, err := current.services.Metadata.ListContacts(cmd.Context(), workspaceID)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(contacts))
		for _, c := range contacts {
			rows = append(rows, []string{c.ID, c.Name, dash(c.Phone), dash(c.Email)})
		}
		table([]string{"ID", "NAME", "PHONE", "EMAIL"}, rows)
		return nil
	},
}

var contactAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := workspaceScope(cmd)
		if err != nil {
			return err
		}
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		contact, err := current.services.Metadata.CreateContact(cmd.Context(), workspaceID, dto.CreateContactRequest{
			Name:  args[0],
			Phone: phone,
			Email: email,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Contact %q created (%s)\n", contact.Name, contact.ID)
		return nil
	},
}

var contactDeleteCmd = &cobra.Command{
	Use:   "delete CONTACT_ID",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspaceID, err := workspaceScope(cmd)
		if err != nil {
			return err
		}
		if err := current.services.Metadata.DeleteContact(cmd.Context(), workspaceID, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Contact deleted.")
		return nil
	},
}
