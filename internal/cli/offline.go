package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/core/ledger"
)

func init() {
	rootCmd.AddCommand(offlineCmd)
	offlineCmd.AddCommand(offlineBookCmd)
	offlineBookCmd.AddCommand(offlineBookListCmd)
	offlineBookCmd.AddCommand(offlineBookCreateCmd)
	offlineBookCmd.AddCommand(offlineBookRenameCmd)
	offlineBookCmd.AddCommand(offlineBookDeleteCmd)
	offlineBookCmd.AddCommand(offlineBookDuplicateCmd)
	offlineCmd.AddCommand(offlineEntryCmd)
	offlineEntryCmd.AddCommand(offlineEntryListCmd)
	offlineEntryCmd.AddCommand(offlineEntryAddCmd)
	offlineEntryCmd.AddCommand(offlineEntryDeleteCmd)
	offlineEntryCmd.AddCommand(offlineEntryMoveCmd)
	offlineEntryCmd.AddCommand(offlineEntryCopyCmd)
	offlineEntryCmd.AddCommand(offlineEntryCopyOppositeCmd)

	offlineEntryAddCmd.Flags().StringP("type", "t", string(domain.EntryExpense), "Entry type (INCOME or EXPENSE)")
	offlineEntryAddCmd.Flags().StringP("amount", "a", "", "Amount as a decimal string")
	offlineEntryAddCmd.Flags().StringP("description", "d", "", "Description")
	offlineEntryAddCmd.Flags().String("date", "", "Entry date (YYYY-MM-DD, defaults to today)")
	offlineEntryAddCmd.Flags().String("category", "", "Category name")
	offlineEntryAddCmd.Flags().String("payment-mode", "", "Payment mode name")
	offlineEntryAddCmd.Flags().String("contact", "", "Contact name")
}

var offlineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Work with the local book store, no server required",
	Long:  `The offline store keeps books and entries in a local database. It needs no account and no network; entries can later be re-recorded against a server cashbook by hand.`,
}

var offlineBookCmd = &cobra.Command{
	Use:   "book",
	Short: "Manage offline books",
}

var offlineBookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List offline books with their balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		books, err := svc.LocalBook.ListBooks(cmd.Context())
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(books))
		for _, b := range books {
			balance, err := svc.LocalBook.BookBalance(cmd.Context(), b.ID)
			if err != nil {
				return err
			}
			rows = append(rows, []string{b.ID, b.Name, balance.String()})
		}
		table([]string{"ID", "NAME", "BALANCE"}, rows)
		return nil
	},
}

var offlineBookCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create an offline book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		book, err := svc.LocalBook.CreateBook(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Offline book %q created (%s)\n", book.Name, book.ID)
		return nil
	},
}

var offlineBookRenameCmd = &cobra.Command{
	Use:   "rename BOOK_ID NEW_NAME",
	Short: "Rename an offline book",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		if err := svc.LocalBook.RenameBook(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Book renamed.")
		return nil
	},
}

var offlineBookDeleteCmd = &cobra.Command{
	Use:   "delete BOOK_ID",
	Short: "Delete an offline book and its entries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		if err := svc.LocalBook.DeleteBook(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Book deleted.")
		return nil
	},
}

var offlineBookDuplicateCmd = &cobra.Command{
	Use:   "duplicate BOOK_ID",
	Short: "Copy a book and all its entries under fresh ids",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		book, err := svc.LocalBook.DuplicateBook(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Book duplicated as %q (%s)\n", book.Name, book.ID)
		return nil
	},
}

var offlineEntryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage offline entries",
}

var offlineEntryListCmd = &cobra.Command{
	Use:   "list BOOK_ID",
	Short: "List an offline book's entries with running balances",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		entries, err := svc.LocalBook.ListEntries(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		shared := make([]domain.Entry, 0, len(entries))
		for _, e := range entries {
			shared = append(shared, e.AsEntry())
		}
		lines, err := ledger.RunningBalances(shared)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(lines))
		for _, line := range lines {
			e := line.Entry
			category := "-"
			if e.Category != nil {
				category = e.Category.Name
			}
			rows = append(rows, []string{
				e.ID, e.EntryDate, string(e.Type), e.Amount, line.Balance.String(), category, e.Description,
			})
		}
		table([]string{"ID", "DATE", "TYPE", "AMOUNT", "BALANCE", "CATEGORY", "DESCRIPTION"}, rows)
		return nil
	},
}

var offlineEntryAddCmd = &cobra.Command{
	Use:   "add BOOK_ID",
	Short: "Record an entry in an offline book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		entryType, _ := cmd.Flags().GetString("type")
		amount, _ := cmd.Flags().GetString("amount")
		description, _ := cmd.Flags().GetString("description")
		date, _ := cmd.Flags().GetString("date")
		category, _ := cmd.Flags().GetString("category")
		paymentMode, _ := cmd.Flags().GetString("payment-mode")
		contact, _ := cmd.Flags().GetString("contact")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		createdBy := ""
		if u := current.session.Current().User; u != nil {
			createdBy = u.FirstName
		}
		entry, err := svc.LocalBook.AddEntry(cmd.Context(), args[0], domain.LocalEntry{
			Type:        domain.EntryType(entryType),
			Amount:      amount,
			Description: description,
			Category:    category,
			PaymentMode: paymentMode,
			ContactName: contact,
			EntryDate:   date,
			CreatedBy:   createdBy,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Entry recorded: %s %s on %s (%s)\n", entry.Type, entry.Amount, entry.EntryDate, entry.ID)
		return nil
	},
}

var offlineEntryDeleteCmd = &cobra.Command{
	Use:   "delete BOOK_ID ENTRY_ID",
	Short: "Delete an offline entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		if err := svc.LocalBook.DeleteEntry(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Entry deleted.")
		return nil
	},
}

var offlineEntryMoveCmd = &cobra.Command{
	Use:   "move FROM_BOOK_ID TO_BOOK_ID ENTRY_ID",
	Short: "Move an entry to another book",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		entry, err := svc.LocalBook.MoveEntry(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Entry moved; new id %s\n", entry.ID)
		return nil
	},
}

var offlineEntryCopyCmd = &cobra.Command{
	Use:   "copy FROM_BOOK_ID TO_BOOK_ID ENTRY_ID",
	Short: "Copy an entry into another book",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		entry, err := svc.LocalBook.CopyEntry(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Entry copied; new id %s\n", entry.ID)
		return nil
	},
}

var offlineEntryCopyOppositeCmd = &cobra.Command{
	Use:   "copy-opposite FROM_BOOK_ID TO_BOOK_ID ENTRY_ID",
	Short: "Copy an entry into another book with the type flipped",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := current.local()
		if err != nil {
			return err
		}
		entry, err := svc.LocalBook.CopyOppositeEntry(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Entry copied as %s; new id %s\n", entry.Type, entry.ID)
		return nil
	},
}
