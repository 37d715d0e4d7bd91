// Package ledger derives display balances from an ordered entry list. The
// computation is a pure left-fold with no persisted state: it is recomputed
// from the current list on every call, and reordering the input changes every
// downstream running balance. Amounts stay decimal throughout; entry amount
// strings are never routed through a binary float.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tresahq/cashbook_cli/internal/core/domain"
)

// Line pairs an entry with the running balance after applying it.
type Line struct {
	Entry   domain.Entry
	Balance decimal.Decimal
}

// Totals aggregates a whole entry list.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// RunningBalances folds the ordered entry list into per-row running balances:
// balance[i] = balance[i-1] + amount[i] for income, - amount[i] for expense,
// starting from zero. The input order is taken as-is; no sorting is applied.
// An empty list yields an empty result. An unparseable amount aborts with an
// error rather than being coerced.
func RunningBalances(entries []domain.Entry) ([]Line, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	lines := make([]Line, 0, len(entries))
	balance := decimal.Zero
	for _, e := range entries {
		signed, err := e.Signed()
		if err != nil {
			return nil, err
		}
		balance = balance.Add(signed)
		lines = append(lines, Line{Entry: e, Balance: balance})
	}
	return lines, nil
}

// Totalize sums income and expense across the list. No entries means zero
// totals.
func Totalize(entries []domain.Entry) (Totals, error) {
	t := Totals{Income: decimal.Zero, Expense: decimal.Zero, Net: decimal.Zero}
	for _, e := range entries {
		amount, err := e.AmountDecimal()
		if err != nil {
			return Totals{}, err
		}
		if e.Type == domain.EntryExpense {
			t.Expense = t.Expense.Add(amount)
		} else {
			t.Income = t.Income.Add(amount)
		}
	}
	t.Net = t.Income.Sub(t.Expense)
	return t, nil
}
