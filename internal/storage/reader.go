package storage

import (
	"fmt"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// Tables groups one table per collection. The same set is exposed for plain
// reads (Storage) and bound to a transaction (Writer).
type Tables struct {
	Accounts    table.IAccountTable
	Incomes     table.IEntryTable
	Expenses    table.IEntryTable
	Investments table.IEntryTable
	Transfers   table.ITransferTable
	Categories  table.ICategoryTable
	Tasks       table.ITaskTable
	Routines    table.IRoutineTable
}

// Entries returns the table for one entry kind.
func (t Tables) Entries(kind table.EntryKind) (table.IEntryTable, error) {
	switch kind {
	case table.EntryKindIncome:
		return t.Incomes, nil
	case table.EntryKindExpense:
		return t.Expenses, nil
	case table.EntryKindInvestment:
		return t.Investments, nil
	}
	return nil, fmt.Errorf("unknown entry kind %q", kind)
}
