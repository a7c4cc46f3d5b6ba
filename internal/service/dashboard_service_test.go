package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-planner/internal/storage/table"
)

func TestGetDashboard(t *testing.T) {
	store, op := newTestStorage(t)
	accounts := NewAccountService(store, op)
	entries := NewEntryService(store, op, new(mockUploader), false)
	dashboard := NewDashboardService(store)
	ctx := context.Background()

	seedAccount(t, accounts, "Banco", 10000)
	seedAccount(t, accounts, "Efectivo", 500)

	for i := 1; i <= 4; i++ {
		_, err := entries.CreateEntry(ctx, table.EntryKindIncome, EntryInput{
			Amount: 100, AccountName: "Banco", Date: day(fmt.Sprintf("2024-04-0%d", i)),
		})
		require.NoError(t, err)
	}
	for i := 5; i <= 7; i++ {
		_, err := entries.CreateEntry(ctx, table.EntryKindExpense, EntryInput{
			Amount: 50, AccountName: "Efectivo", Date: day(fmt.Sprintf("2024-04-0%d", i)),
		})
		require.NoError(t, err)
	}

	summary, err := dashboard.GetDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(400), summary.TotalIncome)
	assert.Equal(t, int64(150), summary.TotalExpenses)
	assert.Equal(t, int64(10000+400+500-150), summary.TotalBalance)

	require.Len(t, summary.Recent, RecentEntryCount)
	var got []string
	for _, entry := range summary.Recent {
		got = append(got, entry.Date.Format("2006-01-02"))
	}
	assert.Equal(t, []string{"2024-04-07", "2024-04-06", "2024-04-05", "2024-04-04", "2024-04-03"}, got)
	assert.Equal(t, table.EntryKindExpense, summary.Recent[0].Kind)
	assert.Equal(t, table.EntryKindIncome, summary.Recent[3].Kind)
}

func TestGetDashboard_Empty(t *testing.T) {
	store, _ := newTestStorage(t)

	summary, err := NewDashboardService(store).GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalBalance)
	assert.NotNil(t, summary.Recent)
	assert.Empty(t, summary.Recent)
}
