package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/budget-planner/internal/storage"
	"github.com/carson-networks/budget-planner/internal/storage/sqlconfig"
	"github.com/carson-networks/budget-planner/internal/storage/table"
)

// newPostgresStorage starts a throwaway Postgres, applies the migrations and
// returns a storage bound to it.
func newPostgresStorage(t *testing.T) *storage.Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("budget"),
		postgres.WithUsername("budget"),
		postgres.WithPassword("budget"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sqlconfig.Open(ctx, dsn)
	require.NoError(t, err)
	result, err := sqlconfig.Migrate(db, "file://../../migrations")
	require.NoError(t, err)
	assert.Equal(t, uint(1), result.PostMigrationVersion)
	require.NoError(t, db.Close())

	store, err := storage.NewPostgresStorage(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPostgres_WriterCommitAndRollback(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()

	writer, err := store.Write(ctx)
	require.NoError(t, err)
	discarded, err := writer.Accounts.Insert(ctx, &table.AccountWrite{Name: "Temporal"})
	require.NoError(t, err)
	require.NoError(t, writer.Rollback(ctx))

	_, err = store.Accounts.FindByID(ctx, discarded)
	assert.ErrorIs(t, err, table.ErrNotFound)

	writer, err = store.Write(ctx)
	require.NoError(t, err)
	kept, err := writer.Accounts.Insert(ctx, &table.AccountWrite{Name: "Banco", Balance: 100})
	require.NoError(t, err)
	locked, err := writer.Accounts.FindByIDForUpdate(ctx, kept)
	require.NoError(t, err)
	require.NoError(t, writer.Accounts.UpdateBalance(ctx, locked.ID, locked.Balance+50))
	require.NoError(t, writer.Commit(ctx))

	account, err := store.Accounts.FindByName(ctx, "Banco")
	require.NoError(t, err)
	assert.Equal(t, kept, account.ID)
	assert.Equal(t, int64(150), account.Balance)
}

func TestPostgres_Entries(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()
	date := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	id, err := store.Expenses.Insert(ctx, &table.EntryWrite{Amount: 1200, AccountName: "Banco", Category: "Comida", Date: date})
	require.NoError(t, err)

	require.NoError(t, store.Expenses.Update(ctx, id, &table.EntryWrite{Amount: 900, AccountName: "Banco", Date: date}))

	entry, err := store.Expenses.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(900), entry.Amount)
	assert.True(t, date.Equal(entry.Date))
	assert.False(t, entry.CreatedAt.IsZero())

	incomes, err := store.Incomes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, incomes)

	require.NoError(t, store.Expenses.Delete(ctx, id))
	assert.ErrorIs(t, store.Expenses.Delete(ctx, id), table.ErrNotFound)
}

func TestPostgres_Tasks(t *testing.T) {
	store := newPostgresStorage(t)
	ctx := context.Background()
	series := uuid.Must(uuid.NewV4())
	end := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	id, err := store.Tasks.Insert(ctx, &table.Task{
		SeriesID:           uuid.NullUUID{UUID: series, Valid: true},
		Title:              "Gym",
		Date:               time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC),
		StartTime:          "09:00",
		Status:             table.TaskStatusPending,
		Recurring:          true,
		RecurringFrequency: "weekly",
		RecurringEndDate:   &end,
		SelectedWeekDays:   table.Ints{1, 3},
		ParentRecurring:    true,
	})
	require.NoError(t, err)

	startedAt := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	err = store.Tasks.Patch(ctx, id, &table.TaskPatch{
		Status:    omit.From(table.TaskStatusInProgress),
		StartedAt: omit.From(startedAt),
	})
	require.NoError(t, err)

	task, err := store.Tasks.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, series, task.SeriesID.UUID)
	assert.Equal(t, table.Ints{1, 3}, task.SelectedWeekDays)
	assert.Nil(t, task.SelectedMonthDays)
	assert.Equal(t, table.TaskStatusInProgress, task.Status)
	require.NotNil(t, task.StartedAt)
	assert.True(t, startedAt.Equal(*task.StartedAt))
	assert.Nil(t, task.CompletedAt)

	from := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	later, err := store.Tasks.List(ctx, &table.TaskFilter{From: &from})
	require.NoError(t, err)
	assert.Empty(t, later)
}
