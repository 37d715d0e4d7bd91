package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/core/ledger"
	"github.com/tresahq/cashbook_cli/internal/dto"
)

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.AddCommand(entryListCmd)
	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryDeleteCmd)

	entryAddCmd.Flags().StringP("type", "t", string(domain.EntryExpense), "Entry type (INCOME or EXPENSE)")
	entryAddCmd.Flags().StringP("amount", "a", "", "Amount as a decimal string, e.g. 120.50")
	entryAddCmd.Flags().StringP("description", "d", "", "Description")
	entryAddCmd.Flags().String("date", "", "Entry date (YYYY-MM-DD, defaults to today)")
	entryAddCmd.Flags().String("category", "", "Category id")
	entryAddCmd.Flags().String("payment-mode", "", "Payment mode id")
	entryAddCmd.Flags().String("contact", "", "Contact id")

	entryDeleteCmd.Flags().StringP("reason", "r", "", "Reason for the deletion (required)")
}

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage ledger entries",
}

var entryListCmd = &cobra.Command{
	Use:   "list CASHBOOK_ID",
	Short: "List a cashbook's entries with running balances",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryList,
}

func runEntryList(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	entries, err := current.services.Entry.ListEntries(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	lines, err := ledger.RunningBalances(entries)
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

	totals, err := ledger.Totalize(entries)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\nIncome: %s  Expense: %s  Net: %s\n",
		totals.Income.String(), totals.Expense.String(), totals.Net.String())
	return nil
}

var entryAddCmd = &cobra.Command{
	Use:   "add CASHBOOK_ID",
	Short: "Record a new entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryAdd,
}

func runEntryAdd(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	entryType, _ := cmd.Flags().GetString("type")
	amount, _ := cmd.Flags().GetString("amount")
	description, _ := cmd.Flags().GetString("description")
	date, _ := cmd.Flags().GetString("date")
	categoryID, _ := cmd.Flags().GetString("category")
	paymentModeID, _ := cmd.Flags().GetString("payment-mode")
	contactID, _ := cmd.Flags().GetString("contact")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	entry, err := current.services.Entry.CreateEntry(cmd.Context(), args[0], dto.CreateEntryRequest{
		Type:          domain.EntryType(entryType),
		Amount:        amount,
		Description:   description,
		EntryDate:     date,
		CategoryID:    categoryID,
		PaymentModeID: paymentModeID,
		ContactID:     contactID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Entry recorded: %s %s on %s (%s)\n", entry.Type, entry.Amount, entry.EntryDate, entry.ID)
	return nil
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete ENTRY_ID CASHBOOK_ID",
	Short: "Delete an entry, recording why",
	Args:  cobra.ExactArgs(2),
	RunE:  runEntryDelete,
}

func runEntryDelete(cmd *cobra.Command, args []string) error {
	if err := current.requireAuth(); err != nil {
		return err
	}
	reason, _ := cmd.Flags().GetString("reason")

	if err := current.services.Entry.DeleteEntry(cmd.Context(), args[0], args[1], reason); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Entry deleted.")
	return nil
}
