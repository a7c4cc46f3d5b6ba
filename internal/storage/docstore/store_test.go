package docstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "docs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// -- accounts --

func TestAccounts_CRUD(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccounts(openStore(t).Scope())

	low, err := accounts.Insert(ctx, &table.AccountWrite{Name: "Caja", Balance: 10})
	require.NoError(t, err)
	high, err := accounts.Insert(ctx, &table.AccountWrite{Name: "Banco", Balance: 900})
	require.NoError(t, err)

	list, err := accounts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, high, list[0].ID)
	assert.Equal(t, low, list[1].ID)

	byName, err := accounts.FindByName(ctx, "Caja")
	require.NoError(t, err)
	assert.Equal(t, low, byName.ID)

	require.NoError(t, accounts.UpdateBalance(ctx, low, 5000))
	found, err := accounts.FindByID(ctx, low)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), found.Balance)
	assert.Equal(t, "Caja", found.Name)

	require.NoError(t, accounts.Delete(ctx, low))
	_, err = accounts.FindByID(ctx, low)
	assert.ErrorIs(t, err, table.ErrNotFound)
}

func TestAccounts_MissingDocument(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccounts(openStore(t).Scope())
	id := uuid.Must(uuid.NewV4())

	_, err := accounts.FindByName(ctx, "nadie")
	assert.ErrorIs(t, err, table.ErrNotFound)
	assert.ErrorIs(t, accounts.UpdateBalance(ctx, id, 1), table.ErrNotFound)
	assert.ErrorIs(t, accounts.Delete(ctx, id), table.ErrNotFound)
}

// -- transactions --

func TestTxScope_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	tx, err := store.Begin()
	require.NoError(t, err)
	id, err := NewAccounts(TxScope(tx)).Insert(ctx, &table.AccountWrite{Name: "Banco"})
	require.NoError(t, err)

	inside, err := NewAccounts(TxScope(tx)).FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Banco", inside.Name)

	require.NoError(t, tx.Rollback())

	_, err = NewAccounts(store.Scope()).FindByID(ctx, id)
	assert.ErrorIs(t, err, table.ErrNotFound)
}

func TestTxScope_CommitPersists(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	tx, err := store.Begin()
	require.NoError(t, err)
	id, err := NewAccounts(TxScope(tx)).Insert(ctx, &table.AccountWrite{Name: "Banco"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	found, err := NewAccounts(store.Scope()).FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Banco", found.Name)
}

// -- entries --

func TestEntries_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	entries := NewEntries(openStore(t).Scope(), table.CollectionExpenses)

	older, err := entries.Insert(ctx, &table.EntryWrite{Amount: 1, AccountName: "Banco", Date: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	newer, err := entries.Insert(ctx, &table.EntryWrite{Amount: 2, AccountName: "Banco", Date: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	list, err := entries.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer, list[0].ID)
	assert.Equal(t, older, list[1].ID)
	assert.False(t, list[0].CreatedAt.IsZero())
}

func TestEntries_CollectionsAreSeparate(t *testing.T) {
	ctx := context.Background()
	scope := openStore(t).Scope()

	_, err := NewEntries(scope, table.CollectionIncomes).Insert(ctx, &table.EntryWrite{Amount: 1, Date: time.Now()})
	require.NoError(t, err)

	expenses, err := NewEntries(scope, table.CollectionExpenses).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

// -- tasks --

func TestTasks_ListFilterAndPatch(t *testing.T) {
	ctx := context.Background()
	tasks := NewTasks(openStore(t).Scope())
	day := func(d int) time.Time { return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC) }

	for _, d := range []int{5, 1, 3} {
		_, err := tasks.Insert(ctx, &table.Task{Title: "t", Date: day(d), Status: table.TaskStatusPending})
		require.NoError(t, err)
	}

	from, to := day(2), day(4)
	list, err := tasks.List(ctx, &table.TaskFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, day(3), list[0].Date)

	all, err := tasks.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, day(1), all[0].Date)

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	err = tasks.Patch(ctx, all[0].ID, &table.TaskPatch{
		Status:    omit.From(table.TaskStatusInProgress),
		StartedAt: omit.From(now),
	})
	require.NoError(t, err)

	patched, err := tasks.FindByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, table.TaskStatusInProgress, patched.Status)
	require.NotNil(t, patched.StartedAt)
	assert.True(t, now.Equal(*patched.StartedAt))
	assert.Nil(t, patched.CompletedAt)
}

// -- routines --

func TestRoutines_ListByDayOrderedByTime(t *testing.T) {
	ctx := context.Background()
	routines := NewRoutines(openStore(t).Scope())

	for _, w := range []table.RoutineWrite{
		{Title: "Cena", Day: "lunes", Time: "20:00"},
		{Title: "Correr", Day: "lunes", Time: "07:00"},
		{Title: "Yoga", Day: "martes", Time: "06:00"},
	} {
		_, err := routines.Insert(ctx, &w)
		require.NoError(t, err)
	}

	list, err := routines.List(ctx, "lunes")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Correr", list[0].Title)
	assert.Equal(t, "Cena", list[1].Title)
}
