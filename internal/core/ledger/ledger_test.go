package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
	"github.com/tresahq/cashbook_cli/internal/core/ledger"
)

func entry(entryType domain.EntryType, amount string) domain.Entry {
	return domain.Entry{Type: entryType, Amount: amount}
}

func TestRunningBalances_Empty(t *testing.T) {
	lines, err := ledger.RunningBalances(nil)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = ledger.RunningBalances([]domain.Entry{})
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRunningBalances_LeftFold(t *testing.T) {
	entries := []domain.Entry{
		entry(domain.EntryIncome, "100.00"),
		entry(domain.EntryExpense, "30.50"),
		entry(domain.EntryIncome, "0.50"),
	}

	lines, err := ledger.RunningBalances(entries)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "100", lines[0].Balance.String())
	assert.Equal(t, "69.5", lines[1].Balance.String())
	assert.Equal(t, "70", lines[2].Balance.String())
}

func TestRunningBalances_OrderChangesIntermediates(t *testing.T) {
	a := entry(domain.EntryIncome, "10")
	b := entry(domain.EntryExpense, "4")

	forward, err := ledger.RunningBalances([]domain.Entry{a, b})
	require.NoError(t, err)
	backward, err := ledger.RunningBalances([]domain.Entry{b, a})
	require.NoError(t, err)

	assert.Equal(t, "10", forward[0].Balance.String())
	assert.Equal(t, "-4", backward[0].Balance.String())
	// The final balance is order independent.
	assert.Equal(t, forward[1].Balance.String(), backward[1].Balance.String())
}

func TestRunningBalances_NegativeBalanceAllowed(t *testing.T) {
	lines, err := ledger.RunningBalances([]domain.Entry{
		entry(domain.EntryExpense, "25.75"),
	})
	require.NoError(t, err)
	assert.Equal(t, "-25.75", lines[0].Balance.String())
}

func TestRunningBalances_BadAmount(t *testing.T) {
	_, err := ledger.RunningBalances([]domain.Entry{
		entry(domain.EntryIncome, "10"),
		entry(domain.EntryExpense, "not-a-number"),
	})
	assert.Error(t, err)
}

func TestRunningBalances_PrecisionOnDecimalStrings(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, never a float artifact.
	lines, err := ledger.RunningBalances([]domain.Entry{
		entry(domain.EntryIncome, "0.1"),
		entry(domain.EntryIncome, "0.2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "0.3", lines[1].Balance.String())
}

func TestTotalize(t *testing.T) {
	totals, err := ledger.Totalize([]domain.Entry{
		entry(domain.EntryIncome, "100"),
		entry(domain.EntryIncome, "50.25"),
		entry(domain.EntryExpense, "30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "150.25", totals.Income.String())
	assert.Equal(t, "30", totals.Expense.String())
	assert.Equal(t, "120.25", totals.Net.String())
}

func TestTotalize_Empty(t *testing.T) {
	totals, err := ledger.Totalize(nil)
	require.NoError(t, err)
	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expense.IsZero())
	assert.True(t, totals.Net.IsZero())
}
