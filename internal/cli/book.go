package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

func init() {
	rootCmd.AddCommand(bookCmd)
	bookCmd.AddCommand(bookListCmd)
	bookCmd.AddCommand(bookShowCmd)
	bookCmd.AddCommand(bookCreateCmd)
	bookCmd.AddCommand(bookRenameCmd)
	bookCmd.AddCommand(bookDeleteCmd)
	bookCmd.AddCommand(bookMemberCmd)
	bookMemberCmd.AddCommand(bookMemberListCmd)
	bookMemberCmd.AddCommand(bookMemberSetRoleCmd)
	bookMemberCmd.AddCommand(bookMemberRemoveCmd)

	bookListCmd.Flags().StringP("workspace", "w", "", "Workspace id (defaults to the active workspace)")
	bookCreateCmd.Flags().StringP("workspace", "w", "", "Workspace id (defaults to the active workspace)")
	bookCreateCmd.Flags().StringP("currency", "c", "", "ISO 4217 currency code")
}

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Manage cashbooks",
}

var bookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cashbooks in a workspace",
	RunE:  runBookList,
}

func runBookList(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	flagWS, _ := cmd.Flags().GetString("workspace")
	workspaceID, err := current.resolveWorkspace(flagWS)
	if err != nil {
		return err
	}

	books, err := current.services.Cashbook.ListCashbooks(cmd.Context(), workspaceID)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		entries := "-"
		if b.Counts != nil {
			entries = fmt.Sprintf("%d", b.Counts.Entries)
		}
		rows = append(rows, []string{b.ID, b.Name, b.Currency, b.Balance, entries})
	}
	table([]string{"ID", "NAME", "CURRENCY", "BALANCE", "ENTRIES"}, rows)
	return nil
}

var bookShowCmd = &cobra.Command{
	Use:   "show CASHBOOK_ID",
	Short: "Show one cashbook's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookShow,
}

func runBookShow(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	book, err := current.services.Cashbook.GetCashbook(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Name:          %s\n", book.Name)
	fmt.Fprintf(os.Stdout, "Description:   %s\n", dash(book.Description))
	fmt.Fprintf(os.Stdout, "Currency:      %s\n", book.Currency)
	fmt.Fprintf(os.Stdout, "Balance:       %s\n", book.Balance)
	fmt.Fprintf(os.Stdout, "Total income:  %s\n", book.TotalIncome)
	fmt.Fprintf(os.Stdout, "Total expense: %s\n", book.TotalExpense)
	fmt.Fprintf(os.Stdout, "Backdating:    %t\n", book.AllowBackdate)
	return nil
}

var bookCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a cashbook in a workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookCreate,
}

func runBookCreate(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	flagWS, _ := cmd.Flags().GetString("workspace")
	workspaceID, err := current.resolveWorkspace(flagWS)
	if err != nil {
		return err
	}
	currency, _ := cmd.Flags().GetString("currency")

	book, err := current.services.Cashbook.CreateCashbook(cmd.Context(), workspaceID, dto.CreateCashbookRequest{
		Name:     args[0],
		Currency: currency,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Cashbook %q created (%s)\n", book.Name, book.ID)
	return nil
}

var bookRenameCmd = &cobra.Command{
	Use:   "rename CASHBOOK_ID NEW_NAME",
	Short: "Rename a cashbook",
	Args:  cobra.ExactArgs(2),
	RunE:  runBookRename,
}

func runBookRename(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	name := args[1]
	book, err := current.services.Cashbook.UpdateCashbook(cmd.Context(), args[0], dto.UpdateCashbookRequest{
		Name: &name,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Cashbook renamed to %q\n", book.Name)
	return nil
}

var bookDeleteCmd = &cobra.Command{
	Use:   "delete CASHBOOK_ID",
	Short: "Delete a cashbook and its entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookDelete,
}

func runBookDelete(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	if err := current.services.Cashbook.DeleteCashbook(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Cashbook deleted.")
	return nil
}

var bookMemberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage cashbook-level members",
}

var bookMemberListCmd = &cobra.Command{
	Use:   "list CASHBOOK_ID",
	Short: "List a cashbook's members",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookMemberList,
}

func runBookMemberList(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	members, err := current.services.Cashbook.ListCashbookMembers(cmd.Context(), args[0])
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

var bookMemberSetRoleCmd = &cobra.Command{
	Use:   "set-role CASHBOOK_ID USER_ID ROLE",
	Short: "Change a member's cashbook role",
	Long:  `Change a member's role within a cashbook. Assignable roles are ADMIN, BOOK_ADMIN, DATA_OPERATOR and VIEWER; PRIMARY_ADMIN can only move through an ownership transfer.`,
	Args:  cobra.ExactArgs(3),
	RunE:  runBookMemberSetRole,
}

func runBookMemberSetRole(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	member, err := current.services.Cashbook.UpdateCashbookMemberRole(cmd.Context(), args[0], args[1], domain.CashbookRole(args[2]))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "%s is now %s\n", member.User.FullName(), member.Role)
	return nil
}

var bookMemberRemoveCmd = &cobra.Command{
	Use:   "remove CASHBOOK_ID USER_ID",
	Short: "Remove a member from a cashbook",
	Args:  cobra.ExactArgs(2),
	RunE:  runBookMemberRemove,
}

func runBookMemberRemove(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	if err := current.services.Cashbook.RemoveCashbookMember(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Member removed.")
	return nil
}
